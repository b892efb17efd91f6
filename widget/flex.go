// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "cogentcore.org/weave/props"

// FlexBoxDirection is the main axis and order of a flex box.
type FlexBoxDirection int32

const (
	HorizontalLeftToRight FlexBoxDirection = iota
	HorizontalRightToLeft
	VerticalTopToBottom
	VerticalBottomToTop
)

// FlexBoxItemLayout sizes one item of a flex box along the main axis.
type FlexBoxItemLayout struct {

	// Basis, if non-nil, is the item's base main-axis size before
	// growing and shrinking; nil means content-derived.
	Basis *float32

	// Grow is the item's share of leftover main-axis space.
	Grow float32

	// Shrink is the item's share of main-axis overflow to absorb.
	Shrink float32

	// Fill is the normalized cross-axis fill factor.
	Fill float32

	// Align is the normalized cross-axis alignment when not filling.
	Align float32

	// Margin offsets the item's edges.
	Margin Rect
}

// DefaultFlexBoxItemLayout returns the default layout: grow, shrink,
// and fill of 1.
func DefaultFlexBoxItemLayout() FlexBoxItemLayout {
	return FlexBoxItemLayout{Grow: 1, Shrink: 1, Fill: 1}
}

// FlexBoxItemNode is one declarative item of a [FlexBoxNode].
type FlexBoxItemNode struct {
	Slot   Node
	Layout FlexBoxItemLayout
}

// FlexBoxNode is the declarative linear container: items flow along
// the direction axis with optional wrapping.
type FlexBoxNode struct {
	ID         ID
	Props      props.Props
	Items      []FlexBoxItemNode
	Direction  FlexBoxDirection
	Separation float32
	Wrap       bool
	Transform  Transform
}

func (*FlexBoxNode) isNode() {}

func (n *FlexBoxNode) WidgetID() ID      { return n.ID }
func (n *FlexBoxNode) SetWidgetID(id ID) { n.ID = id }

func (n *FlexBoxNode) freeze() (Unit, error) {
	b := &FlexBox{
		ID:         n.ID,
		Direction:  n.Direction,
		Separation: n.Separation,
		Wrap:       n.Wrap,
		Transform:  n.Transform,
	}
	b.Items = make([]FlexBoxItem, 0, len(n.Items))
	for _, item := range n.Items {
		slot, err := Freeze(item.Slot)
		if err != nil {
			return nil, err
		}
		b.Items = append(b.Items, FlexBoxItem{Slot: slot, Layout: item.Layout})
	}
	return b, nil
}

// FlexBoxItem is one frozen item of a [FlexBox].
type FlexBoxItem struct {
	Slot   Unit
	Layout FlexBoxItemLayout
}

// FlexBox is the frozen linear container.
type FlexBox struct {
	ID         ID
	Items      []FlexBoxItem
	Direction  FlexBoxDirection
	Separation float32
	Wrap       bool
	Transform  Transform
}

func (b *FlexBox) WidgetID() ID { return b.ID }

func (b *FlexBox) Children() []Unit {
	c := make([]Unit, 0, len(b.Items))
	for _, item := range b.Items {
		if item.Slot != nil {
			c = append(c, item.Slot)
		}
	}
	return c
}
