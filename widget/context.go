// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"reflect"

	"cogentcore.org/weave/anim"
	"cogentcore.org/weave/props"
)

// Context is what a [Processor] is invoked with: the component's
// identity and data, capability views over the engine's stores, and
// the pass-scoped [ProcessContext] side channel. All store access
// goes through the sinks; processors never touch the stores directly.
type Context struct {

	// ID is the component's stable identity this pass.
	ID ID

	// Key is the key segment the identity was derived with: the
	// explicit key if one was given, the positional placeholder
	// otherwise.
	Key string

	// Props is the component's own property payload. Mutations are
	// visible to this invocation only.
	Props props.Props

	// SharedProps is the merged inherited payload: this component's
	// own shared payload merged onto its ancestors', own keys winning.
	SharedProps props.Props

	// State is the per-identity state snapshot and write sink.
	State State

	// Animator is a read view of the identity's animations plus a
	// start/stop sink.
	Animator anim.Animator

	// LifeCycle registers mount, change, and unmount callbacks.
	LifeCycle *LifeCycle

	// Messages are the payloads addressed to this identity since its
	// processor last ran, drained from the store.
	Messages []any

	// NamedSlots are the component's named child slots.
	NamedSlots map[string]Node

	// ListedSlots are the component's ordered child slots.
	ListedSlots []Node

	// Process is the pass-scoped side channel for host-provided
	// external data.
	Process *ProcessContext
}

// NamedSlot returns the named child slot, or nil if absent.
func (c *Context) NamedSlot(name string) Node {
	return c.NamedSlots[name]
}

// MountContext is what mount and change callbacks are invoked with.
// For change callbacks, State is bound to the identity's prior state
// snapshot.
type MountContext struct {
	ID          ID
	Props       props.Props
	SharedProps props.Props
	State       State
	Messenger   Messenger
	Signals     SignalSender
	Animator    anim.Animator
}

// UnmountContext is what unmount callbacks are invoked with: the
// pruned identity and its last-known state snapshot. The state is
// read-only; there is no longer anything to write to.
type UnmountContext struct {
	ID        ID
	State     props.Props
	Messenger Messenger
	Signals   SignalSender
}

// ProcessContext carries host-provided external data through one
// pass, keyed by type. Owned values are stored in the context itself;
// mutable and immutable entries are pointers borrowed from the host
// for the duration of the pass.
type ProcessContext struct {
	owned     map[reflect.Type]any
	mutable   map[reflect.Type]any
	immutable map[reflect.Type]any
}

// NewProcessContext returns an empty [ProcessContext].
func NewProcessContext() *ProcessContext {
	return &ProcessContext{
		owned:     map[reflect.Type]any{},
		mutable:   map[reflect.Type]any{},
		immutable: map[reflect.Type]any{},
	}
}

// InsertOwned stores a value owned by the context.
func (p *ProcessContext) InsertOwned(value any) *ProcessContext {
	p.owned[reflect.TypeOf(value)] = value
	return p
}

// InsertMutable lends a mutable pointer to the context. The pointee
// type is the lookup key.
func (p *ProcessContext) InsertMutable(ptr any) *ProcessContext {
	p.mutable[reflect.TypeOf(ptr).Elem()] = ptr
	return p
}

// InsertImmutable lends a read-only pointer to the context. The
// pointee type is the lookup key.
func (p *ProcessContext) InsertImmutable(ptr any) *ProcessContext {
	p.immutable[reflect.TypeOf(ptr).Elem()] = ptr
	return p
}

// Owned returns the owned value of type T, if present.
func Owned[T any](p *ProcessContext) (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	v, ok := p.owned[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Mutable returns the lent mutable pointer to a value of type T,
// if present.
func Mutable[T any](p *ProcessContext) (*T, bool) {
	var zero T
	if p == nil {
		return nil, false
	}
	v, ok := p.mutable[reflect.TypeOf(zero)]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Immutable returns the lent read-only pointer to a value of type T,
// if present.
func Immutable[T any](p *ProcessContext) (*T, bool) {
	var zero T
	if p == nil {
		return nil, false
	}
	v, ok := p.immutable[reflect.TypeOf(zero)]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}
