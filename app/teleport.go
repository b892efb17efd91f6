// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"log/slog"

	"cogentcore.org/weave/widget"
)

// portalEntry is one lifted portal payload awaiting injection into
// the subtree of the unit whose identity equals owner.
type portalEntry struct {
	owner widget.ID
	slot  widget.PortalBoxSlot
}

// teleportPortals lifts every portal box out of its structural
// position and grafts its payload onto the unit owning it. Ownership
// is a lookup by identity, not a structural pointer, so relocation
// cannot form cycles. Payloads whose owner does not appear anywhere
// in the tree are dropped.
func teleportPortals(root widget.Unit) widget.Unit {
	if estimatePortals(root) == 0 {
		return root
	}
	var portals []portalEntry
	root = consumePortals(root, &portals)
	injectPortals(root, &portals)
	for _, e := range portals {
		slog.Debug("weave: dropping portal payload without a matching owner", "owner", e.owner.String())
	}
	return root
}

func estimatePortals(u widget.Unit) int {
	count := 0
	switch u := u.(type) {
	case *widget.PortalBox:
		count += estimatePortals(u.Slot.Slot) + 1
	case *widget.AreaBox:
		count += estimatePortals(u.Slot)
	case *widget.SizeBox:
		count += estimatePortals(u.Slot)
	case *widget.ContentBox:
		for _, item := range u.Items {
			count += estimatePortals(item.Slot)
		}
	case *widget.FlexBox:
		for _, item := range u.Items {
			count += estimatePortals(item.Slot)
		}
	case *widget.GridBox:
		for _, item := range u.Items {
			count += estimatePortals(item.Slot)
		}
	}
	return count
}

// consumePortals removes every portal box from the tree, collecting
// (owner, payload) pairs. A portal's own payload is consumed first,
// so nested portals are lifted bottom-up and an outer payload never
// carries an unresolved portal into injection.
func consumePortals(u widget.Unit, bucket *[]portalEntry) widget.Unit {
	switch u := u.(type) {
	case *widget.PortalBox:
		slot := u.Slot
		slot.Slot = consumePortals(slot.Slot, bucket)
		*bucket = append(*bucket, portalEntry{owner: u.Owner, slot: slot})
		return nil
	case *widget.AreaBox:
		u.Slot = consumePortals(u.Slot, bucket)
	case *widget.SizeBox:
		u.Slot = consumePortals(u.Slot, bucket)
	case *widget.ContentBox:
		for i := range u.Items {
			u.Items[i].Slot = consumePortals(u.Items[i].Slot, bucket)
		}
	case *widget.FlexBox:
		for i := range u.Items {
			u.Items[i].Slot = consumePortals(u.Items[i].Slot, bucket)
		}
	case *widget.GridBox:
		for i := range u.Items {
			u.Items[i].Slot = consumePortals(u.Items[i].Slot, bucket)
		}
	}
	return u
}

// injectPortals walks the portal-stripped tree grafting payloads onto
// their owners. After a graft the same unit is re-checked, since
// multiple payloads may share an owner and a grafted payload may
// itself be an owner. It reports false once the bucket is empty, to
// short-circuit the remaining walk.
func injectPortals(u widget.Unit, bucket *[]portalEntry) bool {
	if len(*bucket) == 0 {
		return false
	}
	if u == nil {
		return true
	}
	for {
		idx := -1
		for i, e := range *bucket {
			if e.owner == u.WidgetID() {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		slot := (*bucket)[idx].slot
		last := len(*bucket) - 1
		(*bucket)[idx] = (*bucket)[last]
		*bucket = (*bucket)[:last]
		switch u := u.(type) {
		case *widget.AreaBox:
			u.Slot = slot.Slot
		case *widget.SizeBox:
			u.Slot = slot.Slot
		case *widget.ContentBox:
			u.Items = append(u.Items, slot.AsContentItem())
		case *widget.FlexBox:
			u.Items = append(u.Items, slot.AsFlexItem())
		case *widget.GridBox:
			u.Items = append(u.Items, slot.AsGridItem())
		default:
			// image and text boxes have no slot to graft into
			slog.Debug("weave: dropping portal payload; owner cannot hold children", "owner", u.WidgetID().String())
		}
		if len(*bucket) == 0 {
			return false
		}
	}
	switch u := u.(type) {
	case *widget.AreaBox:
		return injectPortals(u.Slot, bucket)
	case *widget.SizeBox:
		return injectPortals(u.Slot, bucket)
	case *widget.ContentBox:
		for _, item := range u.Items {
			if !injectPortals(item.Slot, bucket) {
				return false
			}
		}
	case *widget.FlexBox:
		for _, item := range u.Items {
			if !injectPortals(item.Slot, bucket) {
				return false
			}
		}
	case *widget.GridBox:
		for _, item := range u.Items {
			if !injectPortals(item.Slot, bucket) {
				return false
			}
		}
	}
	return true
}
