// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/weave/basic"
	"cogentcore.org/weave/widget"
)

func hasPortals(u widget.Unit) bool {
	if u == nil {
		return false
	}
	if _, ok := u.(*widget.PortalBox); ok {
		return true
	}
	for _, c := range u.Children() {
		if hasPortals(c) {
			return true
		}
	}
	return false
}

func TestTeleportRoundTrip(t *testing.T) {
	rootID := widget.NewID("content", []string{"root"})
	payload := &widget.TextBox{ID: widget.NewID("text", []string{"root", "tip"}), Text: "tooltip"}
	root := &widget.ContentBox{
		ID: rootID,
		Items: []widget.ContentBoxItem{
			{Slot: &widget.SizeBox{
				ID: widget.NewID("size", []string{"root", "<0>"}),
				Slot: &widget.AreaBox{
					ID: widget.NewID("area", []string{"root", "<0>", "."}),
					Slot: &widget.PortalBox{
						Owner: rootID,
						Slot:  widget.PortalBoxSlot{Kind: widget.PortalSlotBare, Slot: payload},
					},
				},
			}},
		},
	}
	out := teleportPortals(root).(*widget.ContentBox)
	require.Len(t, out.Items, 2)
	assert.Same(t, payload, out.Items[1].Slot)
	assert.Equal(t, widget.DefaultContentBoxItemLayout(), out.Items[1].Layout)
	assert.False(t, hasPortals(out))

	// the portal's original position is emptied
	area := out.Items[0].Slot.(*widget.SizeBox).Slot.(*widget.AreaBox)
	assert.Nil(t, area.Slot)
}

func TestTeleportNestedPortals(t *testing.T) {
	// B is declared earlier in the tree than A; A's payload contains
	// the portal owned by B
	idA := widget.NewID("flex", []string{"root", "a"})
	idB := widget.NewID("content", []string{"root", "b"})
	inner := &widget.TextBox{ID: widget.NewID("text", []string{"inner"}), Text: "inner"}
	outerPayload := &widget.ContentBox{
		ID: widget.NewID("content", []string{"payload"}),
		Items: []widget.ContentBoxItem{
			{Slot: &widget.PortalBox{
				Owner: idB,
				Slot:  widget.PortalBoxSlot{Kind: widget.PortalSlotBare, Slot: inner},
			}},
		},
	}
	root := &widget.ContentBox{
		ID: widget.NewID("content", []string{"root"}),
		Items: []widget.ContentBoxItem{
			{Slot: &widget.ContentBox{ID: idB}},
			{Slot: &widget.FlexBox{ID: idA}},
			{Slot: &widget.PortalBox{
				Owner: idA,
				Slot:  widget.PortalBoxSlot{Kind: widget.PortalSlotBare, Slot: outerPayload},
			}},
		},
	}
	out := teleportPortals(root).(*widget.ContentBox)
	assert.False(t, hasPortals(out))

	targetB := out.Items[0].Slot.(*widget.ContentBox)
	require.Len(t, targetB.Items, 1)
	assert.Same(t, inner, targetB.Items[0].Slot)

	targetA := out.Items[1].Slot.(*widget.FlexBox)
	require.Len(t, targetA.Items, 1)
	grafted := targetA.Items[0].Slot.(*widget.ContentBox)
	// the inner portal was lifted before the outer payload moved
	assert.Nil(t, grafted.Items[0].Slot)
}

func TestTeleportLayoutConversion(t *testing.T) {
	target := widget.NewID("flex", []string{"root"})
	payload := &widget.TextBox{ID: widget.NewID("text", []string{"t"})}
	root := &widget.FlexBox{
		ID: target,
		Items: []widget.FlexBoxItem{
			{Slot: &widget.PortalBox{
				Owner: target,
				Slot: widget.PortalBoxSlot{
					Kind:       widget.PortalSlotFlexItem,
					Slot:       payload,
					FlexLayout: widget.FlexBoxItemLayout{Grow: 7},
				},
			}},
		},
	}
	out := teleportPortals(root).(*widget.FlexBox)
	require.Len(t, out.Items, 2)
	assert.Nil(t, out.Items[0].Slot)
	assert.Same(t, payload, out.Items[1].Slot)
	assert.Equal(t, float32(7), out.Items[1].Layout.Grow)
}

func TestTeleportUnmatchedOwnerDropped(t *testing.T) {
	root := &widget.ContentBox{
		ID: widget.NewID("content", []string{"root"}),
		Items: []widget.ContentBoxItem{
			{Slot: &widget.PortalBox{
				Owner: widget.NewID("ghost", []string{"nowhere"}),
				Slot: widget.PortalBoxSlot{
					Kind: widget.PortalSlotBare,
					Slot: &widget.TextBox{Text: "lost"},
				},
			}},
		},
	}
	out := teleportPortals(root).(*widget.ContentBox)
	require.Len(t, out.Items, 1)
	assert.Nil(t, out.Items[0].Slot)
	assert.False(t, hasPortals(out))
}

func TestTeleportNoSlotOwnerDropsPayload(t *testing.T) {
	target := widget.NewID("text", []string{"root", "<0>"})
	root := &widget.ContentBox{
		ID: widget.NewID("content", []string{"root"}),
		Items: []widget.ContentBoxItem{
			{Slot: &widget.TextBox{ID: target, Text: "leaf"}},
			{Slot: &widget.PortalBox{
				Owner: target,
				Slot: widget.PortalBoxSlot{
					Kind: widget.PortalSlotBare,
					Slot: &widget.TextBox{Text: "homeless"},
				},
			}},
		},
	}
	out := teleportPortals(root).(*widget.ContentBox)
	require.Len(t, out.Items, 2)
	leaf := out.Items[0].Slot.(*widget.TextBox)
	assert.Equal(t, "leaf", leaf.Text)
	assert.Nil(t, out.Items[1].Slot)
}

func TestTeleportEndToEnd(t *testing.T) {
	rootRef := &widget.Ref{}
	tip := &widget.Component{
		TypeName: "tip",
		Key:      "tip",
		Processor: func(ctx *widget.Context) widget.Node {
			return &widget.PortalBoxNode{
				ID:    ctx.ID,
				Owner: rootRef.Read(),
				Slot: widget.PortalBoxSlotNode{
					Kind: widget.PortalSlotBare,
					Slot: label("tooltip"),
				},
			}
		},
	}
	deep := contentBox("mid", contentBox("inner", tip))
	root := &widget.Component{
		Processor:   basic.ContentBox,
		TypeName:    "content_box",
		Key:         "root",
		IDRef:       rootRef,
		ListedSlots: []widget.Node{label("body"), deep},
	}
	a := New()
	a.Apply(root)
	require.True(t, a.Process())
	out := a.RenderedTree().(*widget.ContentBox)
	assert.False(t, hasPortals(out))
	require.Len(t, out.Items, 3)
	tipText, ok := out.Items[2].Slot.(*widget.TextBox)
	require.True(t, ok)
	assert.Equal(t, "tooltip", tipText.Text)
	assert.Equal(t, []string{"body", "tooltip"}, findTexts(out))
}
