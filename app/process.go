// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/weave/anim"
	"cogentcore.org/weave/props"
	"cogentcore.org/weave/widget"
)

// Process runs a reconciliation pass if anything can have changed
// since the last one, and reports whether a new rendered tree was
// published.
func (a *Application) Process() bool {
	return a.ProcessWithContext(nil)
}

// ProcessForced runs a pass even if no changes have been detected.
func (a *Application) ProcessForced() bool {
	a.dirty = true
	return a.Process()
}

// ProcessForcedWithContext runs a pass even if no changes have been
// detected, with the given pass-scoped side channel.
func (a *Application) ProcessForcedWithContext(pctx *widget.ProcessContext) bool {
	a.dirty = true
	return a.ProcessWithContext(pctx)
}

// ProcessWithContext is [Application.Process] with a pass-scoped side
// channel that widget processors can read host data from.
//
// The engine has no way to know when data reached through the side
// channel changes, so drivers relying on it must call
// [Application.MarkDirty] themselves when it does.
func (a *Application) ProcessWithContext(pctx *widget.ProcessContext) bool {
	if a.changeNotifier.consume() {
		a.dirty = true
	}
	if a.animationsDeltaTime < 0 {
		a.animationsDeltaTime = 0
	}
	a.lastInvalidationCause = InvalidationCause{}
	a.renderChanged = false

	var animID widget.ID
	animInProgress := false
	for id, st := range a.animators {
		if st.InProgress() {
			animID = id
			animInProgress = true
			break
		}
	}
	if !a.dirty && len(a.stateChanges) == 0 && len(a.messages) == 0 && !animInProgress {
		return false
	}

	switch {
	case a.dirty:
		a.lastInvalidationCause = InvalidationCause{Kind: CauseForced}
	case animInProgress:
		a.lastInvalidationCause = InvalidationCause{Kind: CauseAnimationInProgress, ID: animID}
	case len(a.messages) > 0:
		for id := range a.messages {
			a.lastInvalidationCause = InvalidationCause{Kind: CauseMessageReceived, ID: id}
			break
		}
	default:
		for id := range a.stateChanges {
			a.lastInvalidationCause = InvalidationCause{Kind: CauseStateChange, ID: id}
			break
		}
	}
	a.dirty = false

	changedStates := a.stateChanges
	a.stateChanges = map[widget.ID]props.Props{}
	messages := a.messages
	a.messages = map[widget.ID][]any{}

	// pass-start snapshot: pending writes merged over persisted state
	states := make(map[widget.ID]props.Props, len(a.states))
	for id, st := range a.states {
		states[id] = st
	}
	for id, st := range changedStates {
		states[id] = st
	}

	p := &pass{
		app:       a,
		states:    states,
		messages:  messages,
		newStates: map[widget.ID]props.Props{},
		usedIDs:   map[widget.ID]bool{},
		process:   pctx,
	}

	// advance animations before the walk so processors observe the
	// new progress; timeline messages are delivered next pass
	for id, st := range a.animators {
		st.Process(a.animationsDeltaTime, func(message string) {
			p.outMessages.Send(id, message)
		})
	}

	root := p.node(a.tree, []string{}, "<*>", props.Props{})

	// prune identities that did not reappear this pass
	for id, st := range p.newStates {
		states[id] = st
	}
	for id, st := range states {
		if p.usedIDs[id] {
			continue
		}
		delete(states, id)
		closures := a.unmountClosures[id]
		delete(a.unmountClosures, id)
		for _, fn := range closures {
			fn(widget.UnmountContext{
				ID:        id,
				State:     st,
				Messenger: widget.NewMessenger(&p.outMessages),
				Signals:   widget.NewSignalSender(id, &p.outSignals),
			})
		}
	}
	a.states = states

	// animations keep running for pruned widgets until they complete
	for id, st := range a.animators {
		if !st.InProgress() && !p.usedIDs[id] {
			delete(a.animators, id)
		}
	}

	// undelivered messages stay queued for future passes
	for id, list := range messages {
		a.messages[id] = append(a.messages[id], list...)
	}
	for _, m := range p.outMessages.Drain() {
		a.messages[m.To] = append(a.messages[m.To], m.Message)
	}
	a.signals = p.outSignals.Drain()

	unit, err := widget.Freeze(root)
	if err != nil {
		// the previous rendered tree stays published
		slog.Error("weave: reconciled tree could not be frozen", "err", err)
		return false
	}
	a.renderedTree = teleportPortals(unit)
	a.renderChanged = true
	return true
}

// pass holds the transient collectors of one reconciliation pass.
// Side effects produced during the walk land here and are merged into
// the application's stores only after the walk completes, so every
// widget observes a consistent pass-start snapshot.
type pass struct {
	app         *Application
	states      map[widget.ID]props.Props
	messages    map[widget.ID][]any
	newStates   map[widget.ID]props.Props
	usedIDs     map[widget.ID]bool
	outMessages widget.MessageSink
	outSignals  widget.SignalSink
	process     *widget.ProcessContext
}

// node reconciles one declarative node at the given path. possibleKey
// is the placeholder key an unkeyed component at this position
// assumes; sharedProps is the inherited shared payload.
func (p *pass) node(n widget.Node, path []string, possibleKey string, sharedProps props.Props) widget.Node {
	switch n := n.(type) {
	case nil:
		return nil
	case widget.Tuple:
		return n
	case *widget.Component:
		return p.component(n, path, possibleKey, sharedProps)
	case widget.UnitNode:
		return p.unit(n, path, sharedProps)
	default:
		return n
	}
}

func (p *pass) component(c *widget.Component, path []string, possibleKey string, sharedProps props.Props) widget.Node {
	shared := sharedProps.Merge(c.SharedProps)
	key := c.Key
	if key == "" {
		key = possibleKey
	}
	path = append(path, key)
	id := widget.NewID(c.TypeName, path)
	if p.usedIDs[id] {
		slog.Error("weave: duplicate widget identity; later sibling overwrites earlier bookkeeping", "id", id.String())
	}
	p.usedIDs[id] = true
	c.IDRef.Write(id)

	msgs := p.messages[id]
	delete(p.messages, id)

	var stateWrites []props.Props
	writeSink := func(v props.Props) {
		stateWrites = append(stateWrites, v)
	}

	animUpdate := &anim.Update{}
	animator := anim.NewAnimator(p.app.animators[id], animUpdate)

	stateSnapshot, ok := p.states[id]
	mounted := !ok
	if mounted {
		stateSnapshot = props.Props{}
		p.newStates[id] = stateSnapshot
	}
	state := widget.NewState(stateSnapshot, writeSink)

	lifeCycle := &widget.LifeCycle{}
	ctx := &widget.Context{
		ID:          id,
		Key:         key,
		Props:       c.Props,
		SharedProps: shared,
		State:       state,
		Animator:    animator,
		LifeCycle:   lifeCycle,
		Messages:    msgs,
		NamedSlots:  c.NamedSlots,
		ListedSlots: c.ListedSlots,
		Process:     p.process,
	}
	var newNode widget.Node
	if c.Processor != nil {
		newNode = c.Processor(ctx)
	}

	mount, change, unmount := lifeCycle.Unwrap()
	closures := change
	if mounted {
		closures = mount
	}
	if len(closures) > 0 {
		mctx := widget.MountContext{
			ID:          id,
			Props:       c.Props,
			SharedProps: shared,
			State:       state,
			Messenger:   widget.NewMessenger(&p.outMessages),
			Signals:     widget.NewSignalSender(id, &p.outSignals),
			Animator:    animator,
		}
		for _, fn := range closures {
			fn(mctx)
		}
	}
	if len(unmount) > 0 {
		p.app.unmountClosures[id] = unmount
	}

	// animation changes apply immediately so the recursion below
	// already observes them
	for _, e := range animUpdate.Drain() {
		if st, ok := p.app.animators[id]; ok {
			st.Change(e.Name, e.Animation)
		} else if e.Animation != nil {
			p.app.animators[id] = anim.NewStates(e.Name, *e.Animation)
		}
	}

	// an unkeyed expansion assumes this component's key, not a
	// derived one
	out := p.node(newNode, path, possibleKey, shared)

	// staged after recursion; applied at the start of the next pass
	for _, w := range stateWrites {
		p.app.stateChanges[id] = w
	}
	return out
}

// unit reconciles the child slots of a primitive declarative node,
// returning a copy so the applied tree is never mutated. Single-slot
// containers extend the path with a fixed "." placeholder; multi-slot
// containers extend it with the item index, cloning the path so
// sibling recursions stay isolated.
func (p *pass) unit(n widget.UnitNode, path []string, sharedProps props.Props) widget.Node {
	switch n := n.(type) {
	case *widget.AreaBoxNode:
		nn := *n
		nn.Slot = p.node(n.Slot, path, ".", sharedProps)
		return &nn
	case *widget.SizeBoxNode:
		nn := *n
		nn.Slot = p.node(n.Slot, path, ".", sharedProps)
		return &nn
	case *widget.PortalBoxNode:
		nn := *n
		nn.Slot.Slot = p.node(n.Slot.Slot, path, ".", sharedProps)
		return &nn
	case *widget.ContentBoxNode:
		nn := *n
		nn.Items = make([]widget.ContentBoxItemNode, len(n.Items))
		for i, item := range n.Items {
			item.Slot = p.node(item.Slot, slices.Clone(path), fmt.Sprintf("<%d>", i), sharedProps)
			nn.Items[i] = item
		}
		return &nn
	case *widget.FlexBoxNode:
		nn := *n
		nn.Items = make([]widget.FlexBoxItemNode, len(n.Items))
		for i, item := range n.Items {
			item.Slot = p.node(item.Slot, slices.Clone(path), fmt.Sprintf("<%d>", i), sharedProps)
			nn.Items[i] = item
		}
		return &nn
	case *widget.GridBoxNode:
		nn := *n
		nn.Items = make([]widget.GridBoxItemNode, len(n.Items))
		for i, item := range n.Items {
			item.Slot = p.node(item.Slot, slices.Clone(path), fmt.Sprintf("<%d>", i), sharedProps)
			nn.Items[i] = item
		}
		return &nn
	default:
		// image and text boxes are leaves
		return n
	}
}
