// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

// AreaBoxNode is the declarative single-slot pass-through container.
// It adds an identity (and optionally a renderer effect) around its
// slot without affecting layout.
type AreaBoxNode struct {
	ID   ID
	Slot Node

	// RendererEffect names a backend-defined effect applied to the
	// subtree; empty means none.
	RendererEffect string
}

func (*AreaBoxNode) isNode() {}

func (n *AreaBoxNode) WidgetID() ID      { return n.ID }
func (n *AreaBoxNode) SetWidgetID(id ID) { n.ID = id }

func (n *AreaBoxNode) freeze() (Unit, error) {
	slot, err := Freeze(n.Slot)
	if err != nil {
		return nil, err
	}
	return &AreaBox{ID: n.ID, Slot: slot, RendererEffect: n.RendererEffect}, nil
}

// AreaBox is the frozen pass-through container.
type AreaBox struct {
	ID             ID
	Slot           Unit
	RendererEffect string
}

func (b *AreaBox) WidgetID() ID { return b.ID }

func (b *AreaBox) Children() []Unit {
	if b.Slot == nil {
		return nil
	}
	return []Unit{b.Slot}
}
