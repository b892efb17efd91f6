// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// UpdateEntry is one queued animation change: a nil Animation stops
// the named animation, a non-nil one (re)starts it.
type UpdateEntry struct {
	Name      string
	Animation *Animation
}

// Update collects animation changes emitted by widget lifecycle
// callbacks during one reconciliation pass. The orchestrator drains
// it after the callbacks run and applies the entries to the owning
// widget's [States].
type Update struct {
	entries []UpdateEntry
}

// Change queues a change of the named animation.
func (u *Update) Change(name string, a *Animation) {
	u.entries = append(u.entries, UpdateEntry{Name: name, Animation: a})
}

// Drain returns and clears the queued entries.
func (u *Update) Drain() []UpdateEntry {
	e := u.entries
	u.entries = nil
	return e
}

// Animator is the animation capability handed to widget mount and
// change callbacks: a read view of the widget's current [States]
// plus an [Update] sink for starting and stopping animations.
type Animator struct {
	states *States
	update *Update
}

// NewAnimator returns an [Animator] over the given states and sink.
func NewAnimator(states *States, update *Update) Animator {
	return Animator{states: states, update: update}
}

// Has returns whether the named animation currently exists.
func (a Animator) Has(name string) bool {
	return a.states.Has(name)
}

// InProgress returns whether any animation of this widget is
// still running.
func (a Animator) InProgress() bool {
	return a.states.InProgress()
}

// Value returns the sampled progress of the given value phase in the
// given named animation, or nil if either does not exist.
func (a Animator) Value(name, value string) *ValueProgress {
	return a.states.Value(name, value)
}

// Factor returns the eased factor of the given value phase in the
// given named animation, or 0 if either does not exist.
func (a Animator) Factor(name, value string) float32 {
	return a.states.Factor(name, value)
}

// Start queues the named animation to play from the beginning.
func (a Animator) Start(name string, an Animation) {
	if a.update != nil {
		a.update.Change(name, &an)
	}
}

// Stop queues removal of the named animation.
func (a Animator) Stop(name string) {
	if a.update != nil {
		a.update.Change(name, nil)
	}
}
