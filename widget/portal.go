// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

// PortalSlotKind selects which layout wrapper a portal payload
// carries, so teleportation can graft it into the owner's container
// kind with the right metadata.
type PortalSlotKind int32

const (

	// PortalSlotBare is an unwrapped payload; grafting into a
	// multi-slot container uses default layout.
	PortalSlotBare PortalSlotKind = iota

	// PortalSlotContentItem carries a [ContentBoxItemLayout].
	PortalSlotContentItem

	// PortalSlotFlexItem carries a [FlexBoxItemLayout].
	PortalSlotFlexItem

	// PortalSlotGridItem carries a [GridBoxItemLayout].
	PortalSlotGridItem
)

// PortalBoxSlotNode is the declarative payload of a [PortalBoxNode]:
// a node plus the layout wrapper matching Kind. Only the layout field
// matching Kind is meaningful.
type PortalBoxSlotNode struct {
	Kind          PortalSlotKind
	Slot          Node
	ContentLayout ContentBoxItemLayout
	FlexLayout    FlexBoxItemLayout
	GridLayout    GridBoxItemLayout
}

// PortalBoxNode is the declarative portal: a payload rendered in
// place structurally but relocated during teleportation into the
// subtree of the node whose identity equals Owner.
type PortalBoxNode struct {
	ID    ID
	Owner ID
	Slot  PortalBoxSlotNode
}

func (*PortalBoxNode) isNode() {}

func (n *PortalBoxNode) WidgetID() ID      { return n.ID }
func (n *PortalBoxNode) SetWidgetID(id ID) { n.ID = id }

func (n *PortalBoxNode) freeze() (Unit, error) {
	slot, err := Freeze(n.Slot.Slot)
	if err != nil {
		return nil, err
	}
	return &PortalBox{
		ID:    n.ID,
		Owner: n.Owner,
		Slot: PortalBoxSlot{
			Kind:          n.Slot.Kind,
			Slot:          slot,
			ContentLayout: n.Slot.ContentLayout,
			FlexLayout:    n.Slot.FlexLayout,
			GridLayout:    n.Slot.GridLayout,
		},
	}, nil
}

// PortalBoxSlot is the frozen payload of a [PortalBox].
type PortalBoxSlot struct {
	Kind          PortalSlotKind
	Slot          Unit
	ContentLayout ContentBoxItemLayout
	FlexLayout    FlexBoxItemLayout
	GridLayout    GridBoxItemLayout
}

// AsContentItem converts the payload to a content-box item. A payload
// of another kind gets the default content layout.
func (s PortalBoxSlot) AsContentItem() ContentBoxItem {
	layout := DefaultContentBoxItemLayout()
	if s.Kind == PortalSlotContentItem {
		layout = s.ContentLayout
	}
	return ContentBoxItem{Slot: s.Slot, Layout: layout}
}

// AsFlexItem converts the payload to a flex-box item. A payload of
// another kind gets the default flex layout.
func (s PortalBoxSlot) AsFlexItem() FlexBoxItem {
	layout := DefaultFlexBoxItemLayout()
	if s.Kind == PortalSlotFlexItem {
		layout = s.FlexLayout
	}
	return FlexBoxItem{Slot: s.Slot, Layout: layout}
}

// AsGridItem converts the payload to a grid-box item. A payload of
// another kind gets the zero grid layout.
func (s PortalBoxSlot) AsGridItem() GridBoxItem {
	var layout GridBoxItemLayout
	if s.Kind == PortalSlotGridItem {
		layout = s.GridLayout
	}
	return GridBoxItem{Slot: s.Slot, Layout: layout}
}

// PortalBox is the frozen portal, present only in trees that have not
// yet been through teleportation.
type PortalBox struct {
	ID    ID
	Owner ID
	Slot  PortalBoxSlot
}

func (b *PortalBox) WidgetID() ID { return b.ID }

func (b *PortalBox) Children() []Unit {
	if b.Slot.Slot == nil {
		return nil
	}
	return []Unit{b.Slot.Slot}
}
