// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"errors"
	"fmt"
)

// ErrUnresolvedComponent is reported by [Freeze] when a declarative
// tree still contains a [Component] after reconciliation: a composite
// never bottomed out in primitives, which is a structural contract
// violation of the composite, not a recoverable runtime condition.
var ErrUnresolvedComponent = errors.New("unresolved component in reconciled tree")

// Unit is the frozen, render-ready primitive tree. Implementations
// are the box types such as [*ContentBox] and [*TextBox]; a nil Unit
// renders nothing.
type Unit interface {

	// WidgetID returns the unit's stable identity.
	WidgetID() ID

	// Children returns the unit's direct frozen children, skipping
	// empty slots.
	Children() []Unit
}

// UnitNode is a primitive declarative node: it mirrors a [Unit] shape
// but its child slots are still declarative [Node]s awaiting
// reconciliation. The set of implementations is closed.
type UnitNode interface {
	Node

	// WidgetID returns the identity assigned by reconciliation; the
	// zero [ID] before a pass has processed the node.
	WidgetID() ID

	// SetWidgetID assigns the node's identity.
	SetWidgetID(id ID)

	freeze() (Unit, error)
}

// Freeze converts a fully reconciled declarative tree into its frozen
// [Unit] form. A nil node and an empty [Tuple] freeze to nil. It
// fails with an error wrapping [ErrUnresolvedComponent] if any
// [Component] remains anywhere in the tree, and with an error on a
// non-empty [Tuple], which has no frozen form.
func Freeze(n Node) (Unit, error) {
	switch n := n.(type) {
	case nil:
		return nil, nil
	case *Component:
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedComponent, n.TypeName)
	case Tuple:
		if len(n) == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot freeze a non-empty tuple of %d nodes", len(n))
	case UnitNode:
		return n.freeze()
	default:
		return nil, fmt.Errorf("cannot freeze node of type %T", n)
	}
}

// InspectionNode is a lightweight identity-only mirror of a frozen
// tree, for debugging and tests.
type InspectionNode struct {
	ID       ID
	Children []InspectionNode
}

// Inspect returns the identity-only mirror of the given frozen tree,
// or a zero node for nil.
func Inspect(u Unit) InspectionNode {
	if u == nil {
		return InspectionNode{}
	}
	n := InspectionNode{ID: u.WidgetID()}
	for _, c := range u.Children() {
		n.Children = append(n.Children, Inspect(c))
	}
	return n
}
