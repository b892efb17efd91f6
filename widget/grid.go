// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "cogentcore.org/weave/props"

// GridBoxItemLayout places one item of a grid box into a cell span.
type GridBoxItemLayout struct {

	// Space is the cell span the item occupies, in grid coordinates.
	Space IntRect

	// Margin offsets the item's edges within its span.
	Margin Rect

	// HorizontalAlign is the normalized horizontal alignment within
	// the span.
	HorizontalAlign float32

	// VerticalAlign is the normalized vertical alignment within
	// the span.
	VerticalAlign float32
}

// GridBoxItemNode is one declarative item of a [GridBoxNode].
type GridBoxItemNode struct {
	Slot   Node
	Layout GridBoxItemLayout
}

// GridBoxNode is the declarative grid container.
type GridBoxNode struct {
	ID        ID
	Props     props.Props
	Items     []GridBoxItemNode
	Cols      int
	Rows      int
	Transform Transform
}

func (*GridBoxNode) isNode() {}

func (n *GridBoxNode) WidgetID() ID      { return n.ID }
func (n *GridBoxNode) SetWidgetID(id ID) { n.ID = id }

func (n *GridBoxNode) freeze() (Unit, error) {
	b := &GridBox{
		ID:        n.ID,
		Cols:      n.Cols,
		Rows:      n.Rows,
		Transform: n.Transform,
	}
	b.Items = make([]GridBoxItem, 0, len(n.Items))
	for _, item := range n.Items {
		slot, err := Freeze(item.Slot)
		if err != nil {
			return nil, err
		}
		b.Items = append(b.Items, GridBoxItem{Slot: slot, Layout: item.Layout})
	}
	return b, nil
}

// GridBoxItem is one frozen item of a [GridBox].
type GridBoxItem struct {
	Slot   Unit
	Layout GridBoxItemLayout
}

// GridBox is the frozen grid container.
type GridBox struct {
	ID        ID
	Items     []GridBoxItem
	Cols      int
	Rows      int
	Transform Transform
}

func (b *GridBox) WidgetID() ID { return b.ID }

func (b *GridBox) Children() []Unit {
	c := make([]Unit, 0, len(b.Items))
	for _, item := range b.Items {
		if item.Slot != nil {
			c = append(c, item.Slot)
		}
	}
	return c
}
