// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "cogentcore.org/weave/props"

// SizeValueKind selects how one axis of a size box is sized.
type SizeValueKind int32

const (

	// SizeValueContent sizes the axis to the slot's content.
	SizeValueContent SizeValueKind = iota

	// SizeValueFill sizes the axis to fill the available space.
	SizeValueFill

	// SizeValueExact sizes the axis to an exact value.
	SizeValueExact
)

// SizeBoxSizeValue is the size of one axis of a size box. The zero
// value is content-sized.
type SizeBoxSizeValue struct {
	Kind  SizeValueKind
	Value float32
}

// SizeContent returns a content-sized [SizeBoxSizeValue].
func SizeContent() SizeBoxSizeValue {
	return SizeBoxSizeValue{Kind: SizeValueContent}
}

// SizeFill returns a fill [SizeBoxSizeValue].
func SizeFill() SizeBoxSizeValue {
	return SizeBoxSizeValue{Kind: SizeValueFill}
}

// SizeExact returns an exact [SizeBoxSizeValue].
func SizeExact(v float32) SizeBoxSizeValue {
	return SizeBoxSizeValue{Kind: SizeValueExact, Value: v}
}

// SizeBoxNode is the declarative single-slot container that imposes
// a size on its slot.
type SizeBoxNode struct {
	ID        ID
	Props     props.Props
	Slot      Node
	Width     SizeBoxSizeValue
	Height    SizeBoxSizeValue
	Margin    Rect
	Transform Transform
}

func (*SizeBoxNode) isNode() {}

func (n *SizeBoxNode) WidgetID() ID      { return n.ID }
func (n *SizeBoxNode) SetWidgetID(id ID) { n.ID = id }

func (n *SizeBoxNode) freeze() (Unit, error) {
	slot, err := Freeze(n.Slot)
	if err != nil {
		return nil, err
	}
	return &SizeBox{
		ID:        n.ID,
		Slot:      slot,
		Width:     n.Width,
		Height:    n.Height,
		Margin:    n.Margin,
		Transform: n.Transform,
	}, nil
}

// SizeBox is the frozen sizing container.
type SizeBox struct {
	ID        ID
	Slot      Unit
	Width     SizeBoxSizeValue
	Height    SizeBoxSizeValue
	Margin    Rect
	Transform Transform
}

func (b *SizeBox) WidgetID() ID { return b.ID }

func (b *SizeBox) Children() []Unit {
	if b.Slot == nil {
		return nil
	}
	return []Unit{b.Slot}
}
