// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "cogentcore.org/weave/props"

// ContentBoxItemLayout positions one item of a content box inside its
// parent's rectangle.
type ContentBoxItemLayout struct {

	// Anchors are the normalized attachment rectangle within the
	// parent; the default spans the whole parent.
	Anchors Rect

	// Margin offsets the item's edges from its anchors.
	Margin Rect

	// Align is the normalized alignment of the item within its
	// anchor rectangle.
	Align Vec2

	// Offset translates the item after anchoring.
	Offset Vec2

	// Depth orders overlapping items; higher paints later.
	Depth float32
}

// DefaultContentBoxItemLayout returns the default layout: anchors
// spanning the whole parent, everything else zero.
func DefaultContentBoxItemLayout() ContentBoxItemLayout {
	return ContentBoxItemLayout{Anchors: Rect{Right: 1, Bottom: 1}}
}

// ContentBoxItemNode is one declarative item of a [ContentBoxNode].
type ContentBoxItemNode struct {
	Slot   Node
	Layout ContentBoxItemLayout
}

// ContentBoxNode is the declarative free-placement container: items
// are positioned independently by their layouts and may overlap.
type ContentBoxNode struct {
	ID        ID
	Props     props.Props
	Items     []ContentBoxItemNode
	Clipping  bool
	Transform Transform
}

func (*ContentBoxNode) isNode() {}

func (n *ContentBoxNode) WidgetID() ID      { return n.ID }
func (n *ContentBoxNode) SetWidgetID(id ID) { n.ID = id }

func (n *ContentBoxNode) freeze() (Unit, error) {
	b := &ContentBox{
		ID:        n.ID,
		Clipping:  n.Clipping,
		Transform: n.Transform,
	}
	b.Items = make([]ContentBoxItem, 0, len(n.Items))
	for _, item := range n.Items {
		slot, err := Freeze(item.Slot)
		if err != nil {
			return nil, err
		}
		b.Items = append(b.Items, ContentBoxItem{Slot: slot, Layout: item.Layout})
	}
	return b, nil
}

// ContentBoxItem is one frozen item of a [ContentBox].
type ContentBoxItem struct {
	Slot   Unit
	Layout ContentBoxItemLayout
}

// ContentBox is the frozen free-placement container.
type ContentBox struct {
	ID        ID
	Items     []ContentBoxItem
	Clipping  bool
	Transform Transform
}

func (b *ContentBox) WidgetID() ID { return b.ID }

func (b *ContentBox) Children() []Unit {
	c := make([]Unit, 0, len(b.Items))
	for _, item := range b.Items {
		if item.Slot != nil {
			c = append(c, item.Slot)
		}
	}
	return c
}
