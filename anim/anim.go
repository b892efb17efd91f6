// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim implements per-widget animations for the weave
// reconciliation engine. An [Animation] describes a tree of named
// value phases, sequences, parallels, time shifts, and message
// phases; [States] holds the running per-widget instances and
// reports whether anything is still in progress, which is what
// gates reconciliation passes. Easing of progress factors is
// delegated to [github.com/tanema/gween/ease].
package anim

import (
	"github.com/chewxy/math32"
	"github.com/tanema/gween/ease"
)

// AnimatedValue is a single named value phase of an [Animation].
// While the phase is active, its eased progress factor can be read
// from the widget context via [States.Value].
type AnimatedValue struct {

	// Name identifies this value within its animation.
	Name string

	// Duration is the phase length in seconds.
	Duration float32

	// Ease shapes the progress factor. If nil, [ease.Linear] is used.
	Ease ease.TweenFunc
}

// Animation describes one named animation as a tagged variant:
// exactly one of the fields should be set. A zero Animation is an
// empty time shift and does nothing.
type Animation struct {

	// Value plays a single named value phase.
	Value *AnimatedValue

	// Sequence plays the given animations one after another.
	Sequence []Animation

	// Parallel plays the given animations simultaneously.
	Parallel []Animation

	// TimeShift moves the cursor forward (or, negative, backward)
	// by the given number of seconds without animating anything.
	TimeShift float32

	// Message delivers the given message string to the owning widget
	// when the cursor reaches this phase.
	Message string
}

// ValueProgress is the sampled state of one [AnimatedValue].
type ValueProgress struct {

	// Progress is the linear progress of the phase in [0, 1].
	Progress float32

	// Factor is the eased progress factor.
	Factor float32

	start    float32
	duration float32
	ease     ease.TweenFunc
}

type messagePhase struct {
	at      float32
	message string
	fired   bool
}

// State is one running animation instance: a flattened timeline of
// value and message phases.
type State struct {
	sheet    map[string]*ValueProgress
	messages []*messagePhase
	time     float32
	duration float32
}

// NewState returns a new [State] playing the given animation
// from the beginning.
func NewState(a Animation) *State {
	s := &State{sheet: map[string]*ValueProgress{}}
	end := s.flatten(a, 0)
	s.duration = math32.Max(s.duration, end)
	s.sample()
	return s
}

// flatten lays the animation out on the timeline starting at the
// given cursor and returns the cursor after the animation.
func (s *State) flatten(a Animation, cursor float32) float32 {
	switch {
	case a.Value != nil:
		v := a.Value
		fn := v.Ease
		if fn == nil {
			fn = ease.Linear
		}
		s.sheet[v.Name] = &ValueProgress{start: cursor, duration: v.Duration, ease: fn}
		cursor += v.Duration
	case len(a.Sequence) > 0:
		for _, c := range a.Sequence {
			cursor = s.flatten(c, cursor)
		}
	case len(a.Parallel) > 0:
		end := cursor
		for _, c := range a.Parallel {
			end = math32.Max(end, s.flatten(c, cursor))
		}
		cursor = end
	case a.Message != "":
		s.messages = append(s.messages, &messagePhase{at: cursor, message: a.Message})
	default:
		cursor = math32.Max(0, cursor+a.TimeShift)
	}
	s.duration = math32.Max(s.duration, cursor)
	return cursor
}

// InProgress returns whether the animation has not yet run
// to completion.
func (s *State) InProgress() bool {
	if s == nil {
		return false
	}
	return s.time < s.duration
}

// sample recomputes the progress and factor of every value phase
// for the current time.
func (s *State) sample() {
	for _, v := range s.sheet {
		el := math32.Min(math32.Max(s.time-v.start, 0), v.duration)
		if v.duration > 0 {
			v.Progress = el / v.duration
		} else {
			v.Progress = 1
		}
		v.Factor = v.ease(el, 0, 1, math32.Max(v.duration, 1e-6))
	}
}

// Process advances the animation by delta seconds, firing any
// message phases whose time has been reached through send.
func (s *State) Process(delta float32, send func(message string)) {
	if s == nil {
		return
	}
	s.time += delta
	s.sample()
	for _, m := range s.messages {
		if !m.fired && s.time >= m.at {
			m.fired = true
			if send != nil {
				send(m.message)
			}
		}
	}
}

// Value returns the sampled progress of the value phase with the
// given name, or nil if there is none.
func (s *State) Value(name string) *ValueProgress {
	if s == nil {
		return nil
	}
	return s.sheet[name]
}

// States holds the named animation instances of one widget identity.
// The zero value and a nil pointer are both usable read-only.
type States struct {
	anims map[string]*State
}

// NewStates returns a new [States] with the given named animation
// started.
func NewStates(name string, a Animation) *States {
	ss := &States{}
	ss.Change(name, &a)
	return ss
}

// Has returns whether the named animation exists.
func (ss *States) Has(name string) bool {
	if ss == nil {
		return false
	}
	_, ok := ss.anims[name]
	return ok
}

// InProgress returns whether any named animation is still running.
func (ss *States) InProgress() bool {
	if ss == nil {
		return false
	}
	for _, s := range ss.anims {
		if s.InProgress() {
			return true
		}
	}
	return false
}

// Change replaces the named animation with the given one,
// restarting it from the beginning. A nil animation removes
// the named animation.
func (ss *States) Change(name string, a *Animation) {
	if a == nil {
		delete(ss.anims, name)
		return
	}
	if ss.anims == nil {
		ss.anims = map[string]*State{}
	}
	ss.anims[name] = NewState(*a)
}

// Process advances all named animations by delta seconds.
// Message phases are delivered through send.
func (ss *States) Process(delta float32, send func(message string)) {
	if ss == nil {
		return
	}
	for _, s := range ss.anims {
		s.Process(delta, send)
	}
}

// Value returns the sampled progress of the given value phase in the
// given named animation, or nil if either does not exist.
func (ss *States) Value(name, value string) *ValueProgress {
	if ss == nil {
		return nil
	}
	return ss.anims[name].Value(value)
}

// Factor returns the eased factor of the given value phase in the
// given named animation, or 0 if either does not exist.
func (ss *States) Factor(name, value string) float32 {
	if v := ss.Value(name, value); v != nil {
		return v.Factor
	}
	return 0
}
