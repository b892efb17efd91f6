// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

// Node is the declarative tree: what a driver asks the engine to
// render. A Node is one of:
//   - nil: the empty node, rendering nothing.
//   - [*Component]: a composite expanded by invoking its processor.
//   - a box node such as [*ContentBoxNode] or [*TextBoxNode]: a
//     primitive whose child slots are themselves declarative Nodes.
//   - [Tuple]: an ordered group of nodes for multi-root fragments.
//
// The set of implementations is closed; reconciliation type-switches
// over it.
type Node interface {
	isNode()
}

// Tuple is an ordered group of nodes, used for multi-root fragments.
// Tuples pass through reconciliation unchanged; they are expected to
// wrap only empty or primitive nodes by the time a tree is frozen.
type Tuple []Node

func (Tuple) isNode() {}

// IsNone returns whether the node renders nothing: a nil [Node] or
// an empty [Tuple].
func IsNone(n Node) bool {
	if n == nil {
		return true
	}
	if t, ok := n.(Tuple); ok {
		return len(t) == 0
	}
	return false
}
