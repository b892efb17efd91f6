// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "cogentcore.org/weave/props"

// TextBoxFont names the font a text box is laid out with.
type TextBoxFont struct {
	Name string
	Size float32
}

// TextBoxHorizontalAlign is the horizontal text alignment.
type TextBoxHorizontalAlign int32

const (
	TextAlignLeft TextBoxHorizontalAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextBoxVerticalAlign is the vertical text alignment.
type TextBoxVerticalAlign int32

const (
	TextAlignTop TextBoxVerticalAlign = iota
	TextAlignMiddle
	TextAlignBottom
)

// TextBoxNode is the declarative text leaf.
type TextBoxNode struct {
	ID              ID
	Props           props.Props
	Text            string
	Font            TextBoxFont
	Color           Color
	HorizontalAlign TextBoxHorizontalAlign
	VerticalAlign   TextBoxVerticalAlign
	Transform       Transform
}

func (*TextBoxNode) isNode() {}

func (n *TextBoxNode) WidgetID() ID      { return n.ID }
func (n *TextBoxNode) SetWidgetID(id ID) { n.ID = id }

func (n *TextBoxNode) freeze() (Unit, error) {
	return &TextBox{
		ID:              n.ID,
		Text:            n.Text,
		Font:            n.Font,
		Color:           n.Color,
		HorizontalAlign: n.HorizontalAlign,
		VerticalAlign:   n.VerticalAlign,
		Transform:       n.Transform,
	}, nil
}

// TextBox is the frozen text leaf.
type TextBox struct {
	ID              ID
	Text            string
	Font            TextBoxFont
	Color           Color
	HorizontalAlign TextBoxHorizontalAlign
	VerticalAlign   TextBoxVerticalAlign
	Transform       Transform
}

func (b *TextBox) WidgetID() ID { return b.ID }

func (b *TextBox) Children() []Unit { return nil }
