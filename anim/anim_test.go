// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSequence(t *testing.T) {
	s := NewState(Animation{Sequence: []Animation{
		{Value: &AnimatedValue{Name: "fade", Duration: 1}},
		{Value: &AnimatedValue{Name: "slide", Duration: 2}},
	}})
	assert.True(t, s.InProgress())

	s.Process(0.5, nil)
	fade := s.Value("fade")
	require.NotNil(t, fade)
	assert.InDelta(t, 0.5, fade.Progress, 1e-5)
	assert.InDelta(t, 0.5, fade.Factor, 1e-5) // linear by default
	slide := s.Value("slide")
	require.NotNil(t, slide)
	assert.InDelta(t, 0, slide.Progress, 1e-5)

	s.Process(1.0, nil)
	assert.InDelta(t, 1, s.Value("fade").Progress, 1e-5)
	assert.InDelta(t, 0.25, s.Value("slide").Progress, 1e-5)

	s.Process(2.0, nil)
	assert.False(t, s.InProgress())
	assert.InDelta(t, 1, s.Value("slide").Progress, 1e-5)
}

func TestStateParallel(t *testing.T) {
	s := NewState(Animation{Parallel: []Animation{
		{Value: &AnimatedValue{Name: "a", Duration: 1}},
		{Value: &AnimatedValue{Name: "b", Duration: 3}},
	}})
	s.Process(1, nil)
	assert.InDelta(t, 1, s.Value("a").Progress, 1e-5)
	assert.InDelta(t, 1.0/3.0, s.Value("b").Progress, 1e-5)
	assert.True(t, s.InProgress())
	s.Process(2, nil)
	assert.False(t, s.InProgress())
}

func TestStateMessage(t *testing.T) {
	s := NewState(Animation{Sequence: []Animation{
		{Value: &AnimatedValue{Name: "a", Duration: 1}},
		{Message: "done"},
	}})
	var got []string
	send := func(m string) { got = append(got, m) }
	s.Process(0.5, send)
	assert.Empty(t, got)
	s.Process(0.6, send)
	assert.Equal(t, []string{"done"}, got)
	s.Process(1, send) // fires only once
	assert.Equal(t, []string{"done"}, got)
}

func TestStatesChange(t *testing.T) {
	ss := NewStates("intro", Animation{Value: &AnimatedValue{Name: "x", Duration: 1}})
	assert.True(t, ss.Has("intro"))
	assert.True(t, ss.InProgress())

	ss.Process(2, nil)
	assert.False(t, ss.InProgress())

	ss.Change("intro", &Animation{Value: &AnimatedValue{Name: "x", Duration: 1}})
	assert.True(t, ss.InProgress()) // restarted

	ss.Change("intro", nil)
	assert.False(t, ss.Has("intro"))

	var nilStates *States
	assert.False(t, nilStates.InProgress())
	assert.False(t, nilStates.Has("intro"))
	assert.Zero(t, nilStates.Factor("intro", "x"))
}

func TestAnimatorSink(t *testing.T) {
	u := &Update{}
	a := NewAnimator(nil, u)
	a.Start("intro", Animation{Value: &AnimatedValue{Name: "x", Duration: 1}})
	a.Stop("outro")
	entries := u.Drain()
	require.Len(t, entries, 2)
	assert.Equal(t, "intro", entries[0].Name)
	require.NotNil(t, entries[0].Animation)
	assert.Nil(t, entries[1].Animation)
	assert.Empty(t, u.Drain())
}
