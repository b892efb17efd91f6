// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package basic implements the standard widget components: thin
// processors that expand into single primitive boxes, configured by
// typed property structs read from the component's props. Container
// components read each child's item layout from the child's own
// props, so callers attach layout where they attach the child.
package basic

import (
	"cogentcore.org/weave/props"
	"cogentcore.org/weave/widget"
)

// slotLayout reads an item layout of type T from a child node's
// props, falling back to def. Only components carry props; primitive
// children always get the default.
func slotLayout[T any](slot widget.Node, def T) T {
	if c, ok := slot.(*widget.Component); ok {
		if l, ok := props.Read[T](c.Props); ok {
			return l
		}
	}
	return def
}

// ContentBoxProps configure [ContentBox].
type ContentBoxProps struct {
	Clipping  bool
	Transform widget.Transform
}

// ContentBox expands into a [widget.ContentBoxNode] holding the
// listed slots; each child's [widget.ContentBoxItemLayout] is read
// from the child's props.
func ContentBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[ContentBoxProps](ctx.Props)
	items := make([]widget.ContentBoxItemNode, 0, len(ctx.ListedSlots))
	for _, slot := range ctx.ListedSlots {
		items = append(items, widget.ContentBoxItemNode{
			Slot:   slot,
			Layout: slotLayout(slot, widget.DefaultContentBoxItemLayout()),
		})
	}
	return &widget.ContentBoxNode{
		ID:        ctx.ID,
		Props:     ctx.Props,
		Items:     items,
		Clipping:  p.Clipping,
		Transform: p.Transform,
	}
}

// FlexBoxProps configure [FlexBox].
type FlexBoxProps struct {
	Direction  widget.FlexBoxDirection
	Separation float32
	Wrap       bool
	Transform  widget.Transform
}

// FlexBox expands into a [widget.FlexBoxNode] holding the listed
// slots; each child's [widget.FlexBoxItemLayout] is read from the
// child's props.
func FlexBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[FlexBoxProps](ctx.Props)
	return flexBox(ctx, p)
}

func flexBox(ctx *widget.Context, p FlexBoxProps) widget.Node {
	items := make([]widget.FlexBoxItemNode, 0, len(ctx.ListedSlots))
	for _, slot := range ctx.ListedSlots {
		items = append(items, widget.FlexBoxItemNode{
			Slot:   slot,
			Layout: slotLayout(slot, widget.DefaultFlexBoxItemLayout()),
		})
	}
	return &widget.FlexBoxNode{
		ID:         ctx.ID,
		Props:      ctx.Props,
		Items:      items,
		Direction:  p.Direction,
		Separation: p.Separation,
		Wrap:       p.Wrap,
		Transform:  p.Transform,
	}
}

// VerticalBoxProps configure [VerticalBox].
type VerticalBoxProps struct {
	Separation float32
	Reversed   bool
	Transform  widget.Transform
}

// VerticalBox is a [FlexBox] flowing top to bottom (bottom to top
// when reversed).
func VerticalBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[VerticalBoxProps](ctx.Props)
	dir := widget.VerticalTopToBottom
	if p.Reversed {
		dir = widget.VerticalBottomToTop
	}
	return flexBox(ctx, FlexBoxProps{Direction: dir, Separation: p.Separation, Transform: p.Transform})
}

// HorizontalBoxProps configure [HorizontalBox].
type HorizontalBoxProps struct {
	Separation float32
	Reversed   bool
	Transform  widget.Transform
}

// HorizontalBox is a [FlexBox] flowing left to right (right to left
// when reversed).
func HorizontalBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[HorizontalBoxProps](ctx.Props)
	dir := widget.HorizontalLeftToRight
	if p.Reversed {
		dir = widget.HorizontalRightToLeft
	}
	return flexBox(ctx, FlexBoxProps{Direction: dir, Separation: p.Separation, Transform: p.Transform})
}

// WrapBoxProps configure [WrapBox].
type WrapBoxProps struct {
	Direction  widget.FlexBoxDirection
	Separation float32
	Transform  widget.Transform
}

// WrapBox is a wrapping [FlexBox].
func WrapBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[WrapBoxProps](ctx.Props)
	return flexBox(ctx, FlexBoxProps{
		Direction:  p.Direction,
		Separation: p.Separation,
		Wrap:       true,
		Transform:  p.Transform,
	})
}

// GridBoxProps configure [GridBox].
type GridBoxProps struct {
	Cols      int
	Rows      int
	Transform widget.Transform
}

// GridBox expands into a [widget.GridBoxNode] holding the listed
// slots; each child's [widget.GridBoxItemLayout] is read from the
// child's props.
func GridBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[GridBoxProps](ctx.Props)
	items := make([]widget.GridBoxItemNode, 0, len(ctx.ListedSlots))
	for _, slot := range ctx.ListedSlots {
		items = append(items, widget.GridBoxItemNode{
			Slot:   slot,
			Layout: slotLayout(slot, widget.GridBoxItemLayout{}),
		})
	}
	return &widget.GridBoxNode{
		ID:        ctx.ID,
		Props:     ctx.Props,
		Items:     items,
		Cols:      p.Cols,
		Rows:      p.Rows,
		Transform: p.Transform,
	}
}

// SizeBoxProps configure [SizeBox].
type SizeBoxProps struct {
	Width     widget.SizeBoxSizeValue
	Height    widget.SizeBoxSizeValue
	Margin    widget.Rect
	Transform widget.Transform
}

// SizeBox expands into a [widget.SizeBoxNode] wrapping the "content"
// named slot.
func SizeBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[SizeBoxProps](ctx.Props)
	return &widget.SizeBoxNode{
		ID:        ctx.ID,
		Props:     ctx.Props,
		Slot:      ctx.NamedSlot("content"),
		Width:     p.Width,
		Height:    p.Height,
		Margin:    p.Margin,
		Transform: p.Transform,
	}
}

// SpaceBoxProps configure [SpaceBox].
type SpaceBoxProps struct {
	Width  float32
	Height float32
}

// SpaceBox is an empty exact-sized spacer.
func SpaceBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[SpaceBoxProps](ctx.Props)
	return &widget.SizeBoxNode{
		ID:     ctx.ID,
		Props:  ctx.Props,
		Width:  widget.SizeExact(p.Width),
		Height: widget.SizeExact(p.Height),
	}
}

// AreaBoxProps configure [AreaBox].
type AreaBoxProps struct {
	RendererEffect string
}

// AreaBox expands into a [widget.AreaBoxNode] wrapping the "content"
// named slot.
func AreaBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[AreaBoxProps](ctx.Props)
	return &widget.AreaBoxNode{
		ID:             ctx.ID,
		Slot:           ctx.NamedSlot("content"),
		RendererEffect: p.RendererEffect,
	}
}

// ImageBoxProps configure [ImageBox].
type ImageBoxProps struct {
	Material        string
	Tint            widget.Color
	KeepAspectRatio bool
	Width           widget.SizeBoxSizeValue
	Height          widget.SizeBoxSizeValue
	Transform       widget.Transform
}

// ImageBox expands into a [widget.ImageBoxNode] leaf.
func ImageBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[ImageBoxProps](ctx.Props)
	return &widget.ImageBoxNode{
		ID:              ctx.ID,
		Props:           ctx.Props,
		Material:        p.Material,
		Tint:            p.Tint,
		KeepAspectRatio: p.KeepAspectRatio,
		Width:           p.Width,
		Height:          p.Height,
		Transform:       p.Transform,
	}
}

// TextBoxProps configure [TextBox].
type TextBoxProps struct {
	Text            string
	Font            widget.TextBoxFont
	Color           widget.Color
	HorizontalAlign widget.TextBoxHorizontalAlign
	VerticalAlign   widget.TextBoxVerticalAlign
	Transform       widget.Transform
}

// TextBox expands into a [widget.TextBoxNode] leaf.
func TextBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[TextBoxProps](ctx.Props)
	return &widget.TextBoxNode{
		ID:              ctx.ID,
		Props:           ctx.Props,
		Text:            p.Text,
		Font:            p.Font,
		Color:           p.Color,
		HorizontalAlign: p.HorizontalAlign,
		VerticalAlign:   p.VerticalAlign,
		Transform:       p.Transform,
	}
}

// SwitchBoxProps configure [SwitchBox]. A nil ActiveIndex renders
// nothing.
type SwitchBoxProps struct {
	ActiveIndex *int
}

// SwitchBox renders exactly one of its listed slots, selected by
// index.
func SwitchBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[SwitchBoxProps](ctx.Props)
	if p.ActiveIndex == nil || *p.ActiveIndex < 0 || *p.ActiveIndex >= len(ctx.ListedSlots) {
		return nil
	}
	return ctx.ListedSlots[*p.ActiveIndex]
}

// VariantBoxProps configure [VariantBox].
type VariantBoxProps struct {
	Variant string
}

// VariantBox renders the named slot matching the configured variant
// name, or nothing when there is no match.
func VariantBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[VariantBoxProps](ctx.Props)
	return ctx.NamedSlot(p.Variant)
}

// PortalBoxProps configure [PortalBox]. Owner is the identity of the
// container the payload is relocated into after reconciliation;
// obtain it from a [widget.Ref] on the target component.
type PortalBoxProps struct {
	Owner widget.ID
}

// PortalBox expands into a [widget.PortalBoxNode] wrapping the
// "content" named slot as a bare payload.
func PortalBox(ctx *widget.Context) widget.Node {
	p := props.ReadOrDefault[PortalBoxProps](ctx.Props)
	return &widget.PortalBoxNode{
		ID:    ctx.ID,
		Owner: p.Owner,
		Slot: widget.PortalBoxSlotNode{
			Kind: widget.PortalSlotBare,
			Slot: ctx.NamedSlot("content"),
		},
	}
}
