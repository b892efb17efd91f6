// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefab

import "cogentcore.org/weave/widget"

// Node mirrors a declarative [widget.Node]. At most one of the fields
// is set; a zero Node mirrors the empty node.
type Node struct {
	Component *Component `yaml:"component,omitempty" json:"component,omitempty" toml:"component,omitempty"`
	Unit      *Unit      `yaml:"unit,omitempty" json:"unit,omitempty" toml:"unit,omitempty"`
	Tuple     []Node     `yaml:"tuple,omitempty" json:"tuple,omitempty" toml:"tuple,omitempty"`
}

// Component mirrors a [widget.Component]. The processor itself is not
// serialized; TypeName is resolved to a registered processor when the
// prefab is instantiated.
type Component struct {
	TypeName    string          `yaml:"type_name" json:"type_name" toml:"type_name"`
	Key         string          `yaml:"key,omitempty" json:"key,omitempty" toml:"key,omitempty"`
	Props       map[string]any  `yaml:"props,omitempty" json:"props,omitempty" toml:"props,omitempty"`
	SharedProps map[string]any  `yaml:"shared_props,omitempty" json:"shared_props,omitempty" toml:"shared_props,omitempty"`
	NamedSlots  map[string]Node `yaml:"named_slots,omitempty" json:"named_slots,omitempty" toml:"named_slots,omitempty"`
	ListedSlots []Node          `yaml:"listed_slots,omitempty" json:"listed_slots,omitempty" toml:"listed_slots,omitempty"`
}

// Unit mirrors a primitive declarative node. At most one of the
// fields is set.
type Unit struct {
	ContentBox *ContentBox `yaml:"content_box,omitempty" json:"content_box,omitempty" toml:"content_box,omitempty"`
	FlexBox    *FlexBox    `yaml:"flex_box,omitempty" json:"flex_box,omitempty" toml:"flex_box,omitempty"`
	GridBox    *GridBox    `yaml:"grid_box,omitempty" json:"grid_box,omitempty" toml:"grid_box,omitempty"`
	SizeBox    *SizeBox    `yaml:"size_box,omitempty" json:"size_box,omitempty" toml:"size_box,omitempty"`
	AreaBox    *AreaBox    `yaml:"area_box,omitempty" json:"area_box,omitempty" toml:"area_box,omitempty"`
	PortalBox  *PortalBox  `yaml:"portal_box,omitempty" json:"portal_box,omitempty" toml:"portal_box,omitempty"`
	ImageBox   *ImageBox   `yaml:"image_box,omitempty" json:"image_box,omitempty" toml:"image_box,omitempty"`
	TextBox    *TextBox    `yaml:"text_box,omitempty" json:"text_box,omitempty" toml:"text_box,omitempty"`
}

// ContentBoxItem mirrors a [widget.ContentBoxItemNode].
type ContentBoxItem struct {
	Slot   Node                        `yaml:"slot" json:"slot" toml:"slot"`
	Layout widget.ContentBoxItemLayout `yaml:"layout,omitempty" json:"layout,omitempty" toml:"layout,omitempty"`
}

// ContentBox mirrors a [widget.ContentBoxNode].
type ContentBox struct {
	Props     map[string]any   `yaml:"props,omitempty" json:"props,omitempty" toml:"props,omitempty"`
	Items     []ContentBoxItem `yaml:"items,omitempty" json:"items,omitempty" toml:"items,omitempty"`
	Clipping  bool             `yaml:"clipping,omitempty" json:"clipping,omitempty" toml:"clipping,omitempty"`
	Transform widget.Transform `yaml:"transform,omitempty" json:"transform,omitempty" toml:"transform,omitempty"`
}

// FlexBoxItem mirrors a [widget.FlexBoxItemNode].
type FlexBoxItem struct {
	Slot   Node                     `yaml:"slot" json:"slot" toml:"slot"`
	Layout widget.FlexBoxItemLayout `yaml:"layout,omitempty" json:"layout,omitempty" toml:"layout,omitempty"`
}

// FlexBox mirrors a [widget.FlexBoxNode].
type FlexBox struct {
	Props      map[string]any          `yaml:"props,omitempty" json:"props,omitempty" toml:"props,omitempty"`
	Items      []FlexBoxItem           `yaml:"items,omitempty" json:"items,omitempty" toml:"items,omitempty"`
	Direction  widget.FlexBoxDirection `yaml:"direction,omitempty" json:"direction,omitempty" toml:"direction,omitempty"`
	Separation float32                 `yaml:"separation,omitempty" json:"separation,omitempty" toml:"separation,omitempty"`
	Wrap       bool                    `yaml:"wrap,omitempty" json:"wrap,omitempty" toml:"wrap,omitempty"`
	Transform  widget.Transform        `yaml:"transform,omitempty" json:"transform,omitempty" toml:"transform,omitempty"`
}

// GridBoxItem mirrors a [widget.GridBoxItemNode].
type GridBoxItem struct {
	Slot   Node                     `yaml:"slot" json:"slot" toml:"slot"`
	Layout widget.GridBoxItemLayout `yaml:"layout,omitempty" json:"layout,omitempty" toml:"layout,omitempty"`
}

// GridBox mirrors a [widget.GridBoxNode].
type GridBox struct {
	Props     map[string]any   `yaml:"props,omitempty" json:"props,omitempty" toml:"props,omitempty"`
	Items     []GridBoxItem    `yaml:"items,omitempty" json:"items,omitempty" toml:"items,omitempty"`
	Cols      int              `yaml:"cols,omitempty" json:"cols,omitempty" toml:"cols,omitempty"`
	Rows      int              `yaml:"rows,omitempty" json:"rows,omitempty" toml:"rows,omitempty"`
	Transform widget.Transform `yaml:"transform,omitempty" json:"transform,omitempty" toml:"transform,omitempty"`
}

// SizeBox mirrors a [widget.SizeBoxNode].
type SizeBox struct {
	Props     map[string]any          `yaml:"props,omitempty" json:"props,omitempty" toml:"props,omitempty"`
	Slot      Node                    `yaml:"slot" json:"slot" toml:"slot"`
	Width     widget.SizeBoxSizeValue `yaml:"width,omitempty" json:"width,omitempty" toml:"width,omitempty"`
	Height    widget.SizeBoxSizeValue `yaml:"height,omitempty" json:"height,omitempty" toml:"height,omitempty"`
	Margin    widget.Rect             `yaml:"margin,omitempty" json:"margin,omitempty" toml:"margin,omitempty"`
	Transform widget.Transform        `yaml:"transform,omitempty" json:"transform,omitempty" toml:"transform,omitempty"`
}

// AreaBox mirrors a [widget.AreaBoxNode].
type AreaBox struct {
	Slot           Node   `yaml:"slot" json:"slot" toml:"slot"`
	RendererEffect string `yaml:"renderer_effect,omitempty" json:"renderer_effect,omitempty" toml:"renderer_effect,omitempty"`
}

// PortalBoxSlot mirrors a [widget.PortalBoxSlotNode].
type PortalBoxSlot struct {
	Kind          widget.PortalSlotKind       `yaml:"kind,omitempty" json:"kind,omitempty" toml:"kind,omitempty"`
	Slot          Node                        `yaml:"slot" json:"slot" toml:"slot"`
	ContentLayout widget.ContentBoxItemLayout `yaml:"content_layout,omitempty" json:"content_layout,omitempty" toml:"content_layout,omitempty"`
	FlexLayout    widget.FlexBoxItemLayout    `yaml:"flex_layout,omitempty" json:"flex_layout,omitempty" toml:"flex_layout,omitempty"`
	GridLayout    widget.GridBoxItemLayout    `yaml:"grid_layout,omitempty" json:"grid_layout,omitempty" toml:"grid_layout,omitempty"`
}

// PortalBox mirrors a [widget.PortalBoxNode]. Owner is the string
// form of the target identity.
type PortalBox struct {
	Owner string        `yaml:"owner" json:"owner" toml:"owner"`
	Slot  PortalBoxSlot `yaml:"slot" json:"slot" toml:"slot"`
}

// ImageBox mirrors a [widget.ImageBoxNode].
type ImageBox struct {
	Props           map[string]any          `yaml:"props,omitempty" json:"props,omitempty" toml:"props,omitempty"`
	Material        string                  `yaml:"material,omitempty" json:"material,omitempty" toml:"material,omitempty"`
	Tint            widget.Color            `yaml:"tint,omitempty" json:"tint,omitempty" toml:"tint,omitempty"`
	KeepAspectRatio bool                    `yaml:"keep_aspect_ratio,omitempty" json:"keep_aspect_ratio,omitempty" toml:"keep_aspect_ratio,omitempty"`
	Width           widget.SizeBoxSizeValue `yaml:"width,omitempty" json:"width,omitempty" toml:"width,omitempty"`
	Height          widget.SizeBoxSizeValue `yaml:"height,omitempty" json:"height,omitempty" toml:"height,omitempty"`
	Transform       widget.Transform        `yaml:"transform,omitempty" json:"transform,omitempty" toml:"transform,omitempty"`
}

// TextBox mirrors a [widget.TextBoxNode].
type TextBox struct {
	Props           map[string]any                `yaml:"props,omitempty" json:"props,omitempty" toml:"props,omitempty"`
	Text            string                        `yaml:"text" json:"text" toml:"text"`
	Font            widget.TextBoxFont            `yaml:"font,omitempty" json:"font,omitempty" toml:"font,omitempty"`
	Color           widget.Color                  `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"`
	HorizontalAlign widget.TextBoxHorizontalAlign `yaml:"horizontal_align,omitempty" json:"horizontal_align,omitempty" toml:"horizontal_align,omitempty"`
	VerticalAlign   widget.TextBoxVerticalAlign   `yaml:"vertical_align,omitempty" json:"vertical_align,omitempty" toml:"vertical_align,omitempty"`
	Transform       widget.Transform              `yaml:"transform,omitempty" json:"transform,omitempty" toml:"transform,omitempty"`
}
