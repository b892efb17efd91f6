// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "cogentcore.org/weave/widget"

// CoordsMapping maps between the virtual coordinate space widgets are
// laid out in and the real coordinate space of the display surface.
type CoordsMapping struct {
	VirtualArea widget.Rect
	RealArea    widget.Rect
}

// NewCoordsMapping returns an identity mapping over the given area.
func NewCoordsMapping(area widget.Rect) CoordsMapping {
	return CoordsMapping{VirtualArea: area, RealArea: area}
}

// VirtualToReal converts a point from virtual to real coordinates.
func (m CoordsMapping) VirtualToReal(v widget.Vec2) widget.Vec2 {
	sx, sy := m.scale()
	return widget.Vec2{
		X: (v.X-m.VirtualArea.Left)*sx + m.RealArea.Left,
		Y: (v.Y-m.VirtualArea.Top)*sy + m.RealArea.Top,
	}
}

// RealToVirtual converts a point from real to virtual coordinates.
func (m CoordsMapping) RealToVirtual(v widget.Vec2) widget.Vec2 {
	sx, sy := m.scale()
	if sx == 0 || sy == 0 {
		return widget.Vec2{}
	}
	return widget.Vec2{
		X: (v.X-m.RealArea.Left)/sx + m.VirtualArea.Left,
		Y: (v.Y-m.RealArea.Top)/sy + m.VirtualArea.Top,
	}
}

func (m CoordsMapping) scale() (float32, float32) {
	vw, vh := m.VirtualArea.Width(), m.VirtualArea.Height()
	if vw == 0 || vh == 0 {
		return 1, 1
	}
	return m.RealArea.Width() / vw, m.RealArea.Height() / vh
}

// LayoutItem is the computed geometry of one widget.
type LayoutItem struct {

	// LocalSpace is the rectangle relative to the parent.
	LocalSpace widget.Rect

	// UISpace is the rectangle in absolute virtual coordinates.
	UISpace widget.Rect
}

// Layout is the geometry map a layout engine produces for one frozen
// tree, keyed by widget identity.
type Layout struct {
	UISpace widget.Rect
	Items   map[widget.ID]LayoutItem
}

// LayoutEngine computes geometry for a frozen tree. Layout itself is
// an external collaborator; the engine only stores its output next to
// the rendered tree.
type LayoutEngine interface {
	Layout(mapping CoordsMapping, tree widget.Unit) (*Layout, error)
}

// UpdateLayout runs the given layout engine over the rendered tree
// and stores the resulting geometry map.
func (a *Application) UpdateLayout(mapping CoordsMapping, engine LayoutEngine) error {
	layout, err := engine.Layout(mapping, a.renderedTree)
	if err != nil {
		return err
	}
	a.layout = layout
	return nil
}

// UpdateLayoutChange runs the layout engine only if the last Process
// call published a new rendered tree, and reports whether it ran.
func (a *Application) UpdateLayoutChange(mapping CoordsMapping, engine LayoutEngine) (bool, error) {
	if !a.renderChanged {
		return false, nil
	}
	if err := a.UpdateLayout(mapping, engine); err != nil {
		return false, err
	}
	return true, nil
}

// Layout returns the geometry map of the last [Application.UpdateLayout]
// call; nil if none has run. Read-only.
func (a *Application) Layout() *Layout {
	return a.layout
}
