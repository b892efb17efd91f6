// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "cogentcore.org/weave/props"

// State is the per-identity state capability handed to processors and
// lifecycle callbacks: a snapshot of the identity's persisted payload
// plus a write sink. Writes do not mutate the snapshot; they are
// staged by the engine and applied at the start of the next pass, so
// every widget in one pass observes a consistent view.
type State struct {
	value props.Props
	write func(props.Props)
}

// NewState returns a [State] over the given snapshot and write sink.
func NewState(value props.Props, write func(props.Props)) State {
	return State{value: value, write: write}
}

// Read returns the state snapshot as of pass start.
func (s State) Read() props.Props {
	return s.value
}

// Write stages a wholesale replacement of the state payload, applied
// at the start of the next pass.
func (s State) Write(value props.Props) {
	if s.write != nil {
		s.write(value)
	}
}

// Mutate reads the typed value from the state snapshot, applies f to
// it, and stages the result back. The zero value of T is passed to f
// when the snapshot has no value of that type yet.
func Mutate[T any](s State, f func(T) T) {
	v, _ := props.Read[T](s.value)
	s.Write(s.value.With(f(v)))
}
