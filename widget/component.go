// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"sync"

	"cogentcore.org/weave/props"
)

// Processor expands a [Component] into the node tree it stands for.
// Processors must be pure with respect to the engine's stores: all
// side effects go through the sinks the [Context] exposes.
type Processor func(ctx *Context) Node

// Component is a composite declarative node: a processor plus the
// data it is invoked with. Its identity is derived from TypeName and
// the path of keys leading to it, so TypeName plus Key must be stable
// across passes for the same logical widget.
type Component struct {

	// Processor produces this component's expansion.
	Processor Processor

	// TypeName is the type tag of the component, the first part of
	// its [ID].
	TypeName string

	// Key is the optional explicit key. If empty, a placeholder key
	// derived from the component's slot position is used instead.
	Key string

	// IDRef, if non-nil, receives the component's [ID] during
	// reconciliation, so external code and the component itself can
	// address messages to it.
	IDRef *Ref

	// Props is the component's own property payload.
	Props props.Props

	// SharedProps is the property payload inherited by every
	// descendant component. It is merged onto the shared payload this
	// component itself inherited, with this component's keys winning
	// on conflict.
	SharedProps props.Props

	// NamedSlots are the named child slots.
	NamedSlots map[string]Node

	// ListedSlots are the ordered child slots.
	ListedSlots []Node
}

func (*Component) isNode() {}

// Ref is an identity sink: reconciliation writes the owning
// component's [ID] into it each pass, and anyone holding the Ref can
// read the last written value. Safe for concurrent reads between
// passes.
type Ref struct {
	mu sync.RWMutex
	id ID
}

// Write records the given identity.
func (r *Ref) Write(id ID) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.id = id
	r.mu.Unlock()
}

// Read returns the last recorded identity; the zero [ID] if the Ref
// has not been written yet.
func (r *Ref) Read() ID {
	if r == nil {
		return ID{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id
}
