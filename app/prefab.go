// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"errors"
	"fmt"

	"cogentcore.org/weave/prefab"
	"cogentcore.org/weave/props"
	"cogentcore.org/weave/widget"
)

// ErrComponentMapping is wrapped when a component type name has no
// registered processor; see [Application.RegisterComponent].
var ErrComponentMapping = errors.New("no component mapping")

// SerializeNode converts a declarative tree into its prefab mirror.
// Every component type name must be registered, so the tree can be
// instantiated again on load, and every property type must be
// registered with the props registry.
func (a *Application) SerializeNode(n widget.Node) (prefab.Node, error) {
	switch n := n.(type) {
	case nil:
		return prefab.Node{}, nil
	case widget.Tuple:
		out := make([]prefab.Node, 0, len(n))
		for _, c := range n {
			p, err := a.SerializeNode(c)
			if err != nil {
				return prefab.Node{}, err
			}
			out = append(out, p)
		}
		return prefab.Node{Tuple: out}, nil
	case *widget.Component:
		c, err := a.componentToPrefab(n)
		if err != nil {
			return prefab.Node{}, err
		}
		return prefab.Node{Component: c}, nil
	case widget.UnitNode:
		u, err := a.unitToPrefab(n)
		if err != nil {
			return prefab.Node{}, err
		}
		return prefab.Node{Unit: u}, nil
	default:
		return prefab.Node{}, fmt.Errorf("%w: cannot serialize node of type %T", prefab.ErrSerialize, n)
	}
}

// DeserializeNode converts a prefab mirror back into a declarative
// tree, resolving component type names to registered processors.
func (a *Application) DeserializeNode(p prefab.Node) (widget.Node, error) {
	switch {
	case p.Component != nil:
		return a.componentFromPrefab(p.Component)
	case p.Unit != nil:
		return a.unitFromPrefab(p.Unit)
	case p.Tuple != nil:
		out := make(widget.Tuple, 0, len(p.Tuple))
		for _, c := range p.Tuple {
			n, err := a.DeserializeNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return nil, nil
	}
}

func (a *Application) componentToPrefab(c *widget.Component) (*prefab.Component, error) {
	if _, ok := a.componentMappings[c.TypeName]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrComponentMapping, c.TypeName)
	}
	p, err := a.propsRegistry.SerializeProps(c.Props)
	if err != nil {
		return nil, err
	}
	var shared map[string]any
	if !c.SharedProps.IsEmpty() {
		shared, err = a.propsRegistry.SerializeProps(c.SharedProps)
		if err != nil {
			return nil, err
		}
	}
	out := &prefab.Component{
		TypeName:    c.TypeName,
		Key:         c.Key,
		Props:       p,
		SharedProps: shared,
	}
	if len(c.NamedSlots) > 0 {
		out.NamedSlots = make(map[string]prefab.Node, len(c.NamedSlots))
		for name, slot := range c.NamedSlots {
			n, err := a.SerializeNode(slot)
			if err != nil {
				return nil, err
			}
			out.NamedSlots[name] = n
		}
	}
	for _, slot := range c.ListedSlots {
		n, err := a.SerializeNode(slot)
		if err != nil {
			return nil, err
		}
		out.ListedSlots = append(out.ListedSlots, n)
	}
	return out, nil
}

func (a *Application) componentFromPrefab(p *prefab.Component) (widget.Node, error) {
	processor, ok := a.componentMappings[p.TypeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrComponentMapping, p.TypeName)
	}
	pr, err := a.propsRegistry.DeserializeProps(p.Props)
	if err != nil {
		return nil, err
	}
	shared := props.Props{}
	if len(p.SharedProps) > 0 {
		shared, err = a.propsRegistry.DeserializeProps(p.SharedProps)
		if err != nil {
			return nil, err
		}
	}
	out := &widget.Component{
		Processor:   processor,
		TypeName:    p.TypeName,
		Key:         p.Key,
		Props:       pr,
		SharedProps: shared,
	}
	if len(p.NamedSlots) > 0 {
		out.NamedSlots = make(map[string]widget.Node, len(p.NamedSlots))
		for name, slot := range p.NamedSlots {
			n, err := a.DeserializeNode(slot)
			if err != nil {
				return nil, err
			}
			out.NamedSlots[name] = n
		}
	}
	for _, slot := range p.ListedSlots {
		n, err := a.DeserializeNode(slot)
		if err != nil {
			return nil, err
		}
		out.ListedSlots = append(out.ListedSlots, n)
	}
	return out, nil
}

func (a *Application) unitToPrefab(n widget.UnitNode) (*prefab.Unit, error) {
	switch n := n.(type) {
	case *widget.ContentBoxNode:
		p, err := a.propsRegistry.SerializeProps(n.Props)
		if err != nil {
			return nil, err
		}
		box := &prefab.ContentBox{Props: p, Clipping: n.Clipping, Transform: n.Transform}
		for _, item := range n.Items {
			slot, err := a.SerializeNode(item.Slot)
			if err != nil {
				return nil, err
			}
			box.Items = append(box.Items, prefab.ContentBoxItem{Slot: slot, Layout: item.Layout})
		}
		return &prefab.Unit{ContentBox: box}, nil
	case *widget.FlexBoxNode:
		p, err := a.propsRegistry.SerializeProps(n.Props)
		if err != nil {
			return nil, err
		}
		box := &prefab.FlexBox{
			Props:      p,
			Direction:  n.Direction,
			Separation: n.Separation,
			Wrap:       n.Wrap,
			Transform:  n.Transform,
		}
		for _, item := range n.Items {
			slot, err := a.SerializeNode(item.Slot)
			if err != nil {
				return nil, err
			}
			box.Items = append(box.Items, prefab.FlexBoxItem{Slot: slot, Layout: item.Layout})
		}
		return &prefab.Unit{FlexBox: box}, nil
	case *widget.GridBoxNode:
		p, err := a.propsRegistry.SerializeProps(n.Props)
		if err != nil {
			return nil, err
		}
		box := &prefab.GridBox{Props: p, Cols: n.Cols, Rows: n.Rows, Transform: n.Transform}
		for _, item := range n.Items {
			slot, err := a.SerializeNode(item.Slot)
			if err != nil {
				return nil, err
			}
			box.Items = append(box.Items, prefab.GridBoxItem{Slot: slot, Layout: item.Layout})
		}
		return &prefab.Unit{GridBox: box}, nil
	case *widget.SizeBoxNode:
		p, err := a.propsRegistry.SerializeProps(n.Props)
		if err != nil {
			return nil, err
		}
		slot, err := a.SerializeNode(n.Slot)
		if err != nil {
			return nil, err
		}
		return &prefab.Unit{SizeBox: &prefab.SizeBox{
			Props:     p,
			Slot:      slot,
			Width:     n.Width,
			Height:    n.Height,
			Margin:    n.Margin,
			Transform: n.Transform,
		}}, nil
	case *widget.AreaBoxNode:
		slot, err := a.SerializeNode(n.Slot)
		if err != nil {
			return nil, err
		}
		return &prefab.Unit{AreaBox: &prefab.AreaBox{Slot: slot, RendererEffect: n.RendererEffect}}, nil
	case *widget.PortalBoxNode:
		slot, err := a.SerializeNode(n.Slot.Slot)
		if err != nil {
			return nil, err
		}
		return &prefab.Unit{PortalBox: &prefab.PortalBox{
			Owner: n.Owner.String(),
			Slot: prefab.PortalBoxSlot{
				Kind:          n.Slot.Kind,
				Slot:          slot,
				ContentLayout: n.Slot.ContentLayout,
				FlexLayout:    n.Slot.FlexLayout,
				GridLayout:    n.Slot.GridLayout,
			},
		}}, nil
	case *widget.ImageBoxNode:
		p, err := a.propsRegistry.SerializeProps(n.Props)
		if err != nil {
			return nil, err
		}
		return &prefab.Unit{ImageBox: &prefab.ImageBox{
			Props:           p,
			Material:        n.Material,
			Tint:            n.Tint,
			KeepAspectRatio: n.KeepAspectRatio,
			Width:           n.Width,
			Height:          n.Height,
			Transform:       n.Transform,
		}}, nil
	case *widget.TextBoxNode:
		p, err := a.propsRegistry.SerializeProps(n.Props)
		if err != nil {
			return nil, err
		}
		return &prefab.Unit{TextBox: &prefab.TextBox{
			Props:           p,
			Text:            n.Text,
			Font:            n.Font,
			Color:           n.Color,
			HorizontalAlign: n.HorizontalAlign,
			VerticalAlign:   n.VerticalAlign,
			Transform:       n.Transform,
		}}, nil
	default:
		return nil, fmt.Errorf("%w: cannot serialize unit of type %T", prefab.ErrSerialize, n)
	}
}

func (a *Application) unitFromPrefab(p *prefab.Unit) (widget.Node, error) {
	switch {
	case p.ContentBox != nil:
		pr, err := a.propsRegistry.DeserializeProps(p.ContentBox.Props)
		if err != nil {
			return nil, err
		}
		box := &widget.ContentBoxNode{
			Props:     pr,
			Clipping:  p.ContentBox.Clipping,
			Transform: p.ContentBox.Transform,
		}
		for _, item := range p.ContentBox.Items {
			slot, err := a.DeserializeNode(item.Slot)
			if err != nil {
				return nil, err
			}
			box.Items = append(box.Items, widget.ContentBoxItemNode{Slot: slot, Layout: item.Layout})
		}
		return box, nil
	case p.FlexBox != nil:
		pr, err := a.propsRegistry.DeserializeProps(p.FlexBox.Props)
		if err != nil {
			return nil, err
		}
		box := &widget.FlexBoxNode{
			Props:      pr,
			Direction:  p.FlexBox.Direction,
			Separation: p.FlexBox.Separation,
			Wrap:       p.FlexBox.Wrap,
			Transform:  p.FlexBox.Transform,
		}
		for _, item := range p.FlexBox.Items {
			slot, err := a.DeserializeNode(item.Slot)
			if err != nil {
				return nil, err
			}
			box.Items = append(box.Items, widget.FlexBoxItemNode{Slot: slot, Layout: item.Layout})
		}
		return box, nil
	case p.GridBox != nil:
		pr, err := a.propsRegistry.DeserializeProps(p.GridBox.Props)
		if err != nil {
			return nil, err
		}
		box := &widget.GridBoxNode{
			Props:     pr,
			Cols:      p.GridBox.Cols,
			Rows:      p.GridBox.Rows,
			Transform: p.GridBox.Transform,
		}
		for _, item := range p.GridBox.Items {
			slot, err := a.DeserializeNode(item.Slot)
			if err != nil {
				return nil, err
			}
			box.Items = append(box.Items, widget.GridBoxItemNode{Slot: slot, Layout: item.Layout})
		}
		return box, nil
	case p.SizeBox != nil:
		pr, err := a.propsRegistry.DeserializeProps(p.SizeBox.Props)
		if err != nil {
			return nil, err
		}
		slot, err := a.DeserializeNode(p.SizeBox.Slot)
		if err != nil {
			return nil, err
		}
		return &widget.SizeBoxNode{
			Props:     pr,
			Slot:      slot,
			Width:     p.SizeBox.Width,
			Height:    p.SizeBox.Height,
			Margin:    p.SizeBox.Margin,
			Transform: p.SizeBox.Transform,
		}, nil
	case p.AreaBox != nil:
		slot, err := a.DeserializeNode(p.AreaBox.Slot)
		if err != nil {
			return nil, err
		}
		return &widget.AreaBoxNode{Slot: slot, RendererEffect: p.AreaBox.RendererEffect}, nil
	case p.PortalBox != nil:
		owner, err := widget.ParseID(p.PortalBox.Owner)
		if err != nil {
			return nil, fmt.Errorf("%w: portal owner: %w", prefab.ErrDeserialize, err)
		}
		slot, err := a.DeserializeNode(p.PortalBox.Slot.Slot)
		if err != nil {
			return nil, err
		}
		return &widget.PortalBoxNode{
			Owner: owner,
			Slot: widget.PortalBoxSlotNode{
				Kind:          p.PortalBox.Slot.Kind,
				Slot:          slot,
				ContentLayout: p.PortalBox.Slot.ContentLayout,
				FlexLayout:    p.PortalBox.Slot.FlexLayout,
				GridLayout:    p.PortalBox.Slot.GridLayout,
			},
		}, nil
	case p.ImageBox != nil:
		pr, err := a.propsRegistry.DeserializeProps(p.ImageBox.Props)
		if err != nil {
			return nil, err
		}
		return &widget.ImageBoxNode{
			Props:           pr,
			Material:        p.ImageBox.Material,
			Tint:            p.ImageBox.Tint,
			KeepAspectRatio: p.ImageBox.KeepAspectRatio,
			Width:           p.ImageBox.Width,
			Height:          p.ImageBox.Height,
			Transform:       p.ImageBox.Transform,
		}, nil
	case p.TextBox != nil:
		pr, err := a.propsRegistry.DeserializeProps(p.TextBox.Props)
		if err != nil {
			return nil, err
		}
		return &widget.TextBoxNode{
			Props:           pr,
			Text:            p.TextBox.Text,
			Font:            p.TextBox.Font,
			Color:           p.TextBox.Color,
			HorizontalAlign: p.TextBox.HorizontalAlign,
			VerticalAlign:   p.TextBox.VerticalAlign,
			Transform:       p.TextBox.Transform,
		}, nil
	default:
		return nil, nil
	}
}
