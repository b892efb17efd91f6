// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "cogentcore.org/weave/props"

// ImageBoxNode is the declarative image leaf.
type ImageBoxNode struct {
	ID    ID
	Props props.Props

	// Material identifies the image or material to paint.
	Material string

	// Tint multiplies the image color; the zero value means
	// untinted (treated as opaque white by renderers).
	Tint Color

	// KeepAspectRatio preserves the source aspect ratio when the box
	// is sized on both axes.
	KeepAspectRatio bool

	Width     SizeBoxSizeValue
	Height    SizeBoxSizeValue
	Transform Transform
}

func (*ImageBoxNode) isNode() {}

func (n *ImageBoxNode) WidgetID() ID      { return n.ID }
func (n *ImageBoxNode) SetWidgetID(id ID) { n.ID = id }

func (n *ImageBoxNode) freeze() (Unit, error) {
	return &ImageBox{
		ID:              n.ID,
		Material:        n.Material,
		Tint:            n.Tint,
		KeepAspectRatio: n.KeepAspectRatio,
		Width:           n.Width,
		Height:          n.Height,
		Transform:       n.Transform,
	}, nil
}

// ImageBox is the frozen image leaf.
type ImageBox struct {
	ID              ID
	Material        string
	Tint            Color
	KeepAspectRatio bool
	Width           SizeBoxSizeValue
	Height          SizeBoxSizeValue
	Transform       Transform
}

func (b *ImageBox) WidgetID() ID { return b.ID }

func (b *ImageBox) Children() []Unit { return nil }
