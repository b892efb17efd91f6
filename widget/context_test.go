// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/weave/props"
)

type count struct {
	N int
}

func TestStateWriteAndMutate(t *testing.T) {
	var writes []props.Props
	s := NewState(props.New(count{N: 1}), func(p props.Props) {
		writes = append(writes, p)
	})

	got, ok := props.Read[count](s.Read())
	require.True(t, ok)
	assert.Equal(t, 1, got.N)

	Mutate(s, func(c count) count {
		c.N++
		return c
	})
	require.Len(t, writes, 1)
	assert.Equal(t, count{N: 2}, props.ReadOrDefault[count](writes[0]))

	// the snapshot never changes under writes
	assert.Equal(t, count{N: 1}, props.ReadOrDefault[count](s.Read()))
}

func TestLifeCycleUnwrap(t *testing.T) {
	l := &LifeCycle{}
	l.Mount(func(MountContext) {})
	l.Change(func(MountContext) {})
	l.Change(func(MountContext) {})
	l.Unmount(func(UnmountContext) {})

	mount, change, unmount := l.Unwrap()
	assert.Len(t, mount, 1)
	assert.Len(t, change, 2)
	assert.Len(t, unmount, 1)

	mount, change, unmount = l.Unwrap()
	assert.Empty(t, mount)
	assert.Empty(t, change)
	assert.Empty(t, unmount)
}

func TestSinks(t *testing.T) {
	var msgs MessageSink
	m := NewMessenger(&msgs)
	to := NewID("x", []string{"a"})
	m.Send(to, 42)
	entries := msgs.Drain()
	require.Len(t, entries, 1)
	assert.Equal(t, to, entries[0].To)
	assert.Equal(t, 42, entries[0].Message)
	assert.Empty(t, msgs.Drain())

	var sigs SignalSink
	s := NewSignalSender(to, &sigs)
	s.Raise("hello")
	signals := sigs.Drain()
	require.Len(t, signals, 1)
	assert.Equal(t, Signal{Sender: to, Message: "hello"}, signals[0])
}

type hostData struct {
	Frames int
}

func TestProcessContext(t *testing.T) {
	host := hostData{Frames: 1}
	p := NewProcessContext().
		InsertOwned("pass-tag").
		InsertMutable(&host).
		InsertImmutable(&host)

	tag, ok := Owned[string](p)
	require.True(t, ok)
	assert.Equal(t, "pass-tag", tag)

	mut, ok := Mutable[hostData](p)
	require.True(t, ok)
	mut.Frames++
	assert.Equal(t, 2, host.Frames)

	imm, ok := Immutable[hostData](p)
	require.True(t, ok)
	assert.Equal(t, 2, imm.Frames)

	_, ok = Owned[int](p)
	assert.False(t, ok)
}

func TestRef(t *testing.T) {
	var r *Ref
	r.Write(NewID("x", []string{"a"})) // nil-safe
	assert.False(t, r.Read().IsValid())

	r = &Ref{}
	id := NewID("x", []string{"a"})
	r.Write(id)
	assert.Equal(t, id, r.Read())
}
