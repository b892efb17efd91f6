// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app implements the reconciliation orchestrator: it owns the
// declarative tree, the per-identity stores, and the pass loop that
// expands composites into the frozen primitive tree renderers consume.
// A driver applies a tree with [Application.Apply] and then calls
// [Application.Process] each frame; passes only run when something
// can have changed.
package app

import (
	"sync/atomic"

	"cogentcore.org/weave/anim"
	"cogentcore.org/weave/prefab"
	"cogentcore.org/weave/props"
	"cogentcore.org/weave/widget"
)

// InvalidationKind says what kind of change caused the last pass.
type InvalidationKind int32

const (

	// CauseNone means no pass has run, or the last Process call
	// determined nothing needed to run.
	CauseNone InvalidationKind = iota

	// CauseForced means the pass was forced by [Application.Apply],
	// [Application.MarkDirty], or a forced process call.
	CauseForced

	// CauseAnimationInProgress means an animation was still running.
	CauseAnimationInProgress

	// CauseMessageReceived means a widget had queued messages.
	CauseMessageReceived

	// CauseStateChange means a widget had a pending state write.
	CauseStateChange
)

// InvalidationCause is why the last pass ran. ID carries the widget
// whose animation, message, or state change triggered it; it is the
// zero [widget.ID] for [CauseNone] and [CauseForced].
type InvalidationCause struct {
	Kind InvalidationKind
	ID   widget.ID
}

// ChangeNotifier is a thread-safe dirty flag handed to external data
// sources: notifying it makes the owning [Application]'s next Process
// call run a pass. It is the only part of the engine safe to touch
// from other goroutines.
type ChangeNotifier struct {
	changed atomic.Bool
}

// Notify marks the application dirty.
func (n *ChangeNotifier) Notify() {
	n.changed.Store(true)
}

func (n *ChangeNotifier) consume() bool {
	return n.changed.Swap(false)
}

// Application is the orchestrator. It is not safe for concurrent use;
// all methods must be called from the driving goroutine, and the
// per-identity stores must not be mutated while a pass is executing.
type Application struct {
	tree         widget.Node
	renderedTree widget.Unit
	layout       *Layout

	states          map[widget.ID]props.Props
	stateChanges    map[widget.ID]props.Props
	animators       map[widget.ID]*anim.States
	messages        map[widget.ID][]any
	unmountClosures map[widget.ID][]func(widget.UnmountContext)
	signals         []widget.Signal

	componentMappings map[string]widget.Processor
	propsRegistry     *prefab.Registry

	dirty                 bool
	renderChanged         bool
	lastInvalidationCause InvalidationCause
	animationsDeltaTime   float32
	changeNotifier        ChangeNotifier
}

// New returns an empty [Application].
func New() *Application {
	return &Application{
		states:            map[widget.ID]props.Props{},
		stateChanges:      map[widget.ID]props.Props{},
		animators:         map[widget.ID]*anim.States{},
		messages:          map[widget.ID][]any{},
		unmountClosures:   map[widget.ID][]func(widget.UnmountContext){},
		componentMappings: map[string]widget.Processor{},
		propsRegistry:     prefab.NewRegistry(),
	}
}

// Apply replaces the declarative tree and marks a pass required.
func (a *Application) Apply(tree widget.Node) {
	a.tree = tree
	a.dirty = true
}

// Tree returns the current declarative tree.
func (a *Application) Tree() widget.Node {
	return a.tree
}

// RenderedTree returns the frozen primitive tree produced by the last
// successful pass. Read-only; nil before the first pass.
func (a *Application) RenderedTree() widget.Unit {
	return a.renderedTree
}

// MarkDirty forces the next [Application.Process] call to run a pass.
func (a *Application) MarkDirty() {
	a.dirty = true
}

// IsDirty returns whether a pass is currently forced.
func (a *Application) IsDirty() bool {
	return a.dirty
}

// RenderChanged returns whether the last Process call published a new
// rendered tree.
func (a *Application) RenderChanged() bool {
	return a.renderChanged
}

// LastInvalidationCause returns why the last pass ran.
func (a *Application) LastInvalidationCause() InvalidationCause {
	return a.lastInvalidationCause
}

// SetDeltaTime sets the time in seconds to advance animations by on
// the next pass. Negative values are treated as zero.
func (a *Application) SetDeltaTime(delta float32) {
	a.animationsDeltaTime = delta
}

// ChangeNotifier returns the application's [ChangeNotifier].
func (a *Application) ChangeNotifier() *ChangeNotifier {
	return &a.changeNotifier
}

// SendMessage queues an opaque message for the widget with the given
// identity, delivered the next time its processor runs.
func (a *Application) SendMessage(to widget.ID, message any) {
	a.messages[to] = append(a.messages[to], message)
}

// Signals returns the signals raised during the last pass. The list
// is replaced wholesale each pass.
func (a *Application) Signals() []widget.Signal {
	return a.signals
}

// ConsumeSignals returns the signals raised during the last pass and
// clears the list.
func (a *Application) ConsumeSignals() []widget.Signal {
	s := a.signals
	a.signals = nil
	return s
}

// StateRead returns the persisted state of the given identity.
func (a *Application) StateRead(id widget.ID) (props.Props, bool) {
	p, ok := a.states[id]
	return p, ok
}

// StateWrite stages a wholesale state replacement for the given
// identity, applied at the start of the next pass. Writes to unknown
// identities are ignored; state exists only for mounted widgets.
func (a *Application) StateWrite(id widget.ID, state props.Props) {
	if _, ok := a.states[id]; ok {
		a.stateChanges[id] = state
	}
}

// StateMutate reads the given identity's state, applies f, and stages
// the result as a state replacement for the next pass.
func (a *Application) StateMutate(id widget.ID, f func(props.Props) props.Props) {
	if state, ok := a.states[id]; ok {
		a.stateChanges[id] = f(state)
	}
}

// RegisterComponent maps a component type name to its processor, for
// instantiating serialized trees.
func (a *Application) RegisterComponent(typeName string, processor widget.Processor) {
	a.componentMappings[typeName] = processor
}

// UnregisterComponent removes a component mapping.
func (a *Application) UnregisterComponent(typeName string) {
	delete(a.componentMappings, typeName)
}

// RegisterProps maps a property type to a prefab name, for
// serializing and deserializing property payloads.
func (a *Application) RegisterProps(name string, prototype any) {
	a.propsRegistry.Register(name, prototype)
}

// PropsRegistry returns the application's property type registry.
func (a *Application) PropsRegistry() *prefab.Registry {
	return a.propsRegistry
}
