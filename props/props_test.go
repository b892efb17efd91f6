// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testColor struct {
	Name string
}

type testSize struct {
	W, H float32
}

type testTags struct {
	Tags []string
}

func TestPropsWithRead(t *testing.T) {
	p := New(testColor{Name: "red"}, testSize{W: 2, H: 3})
	c, ok := Read[testColor](p)
	assert.True(t, ok)
	assert.Equal(t, "red", c.Name)
	s := ReadOrDefault[testSize](p)
	assert.Equal(t, float32(2), s.W)
	assert.False(t, Has[testTags](p))

	p2 := p.With(testColor{Name: "blue"})
	assert.Equal(t, "blue", ReadOrDefault[testColor](p2).Name)
	assert.Equal(t, "red", ReadOrDefault[testColor](p).Name) // original untouched
}

func TestPropsMerge(t *testing.T) {
	parent := New(testColor{Name: "red"}, testSize{W: 1, H: 1})
	child := New(testColor{Name: "green"})
	m := parent.Merge(child)
	assert.Equal(t, "green", ReadOrDefault[testColor](m).Name)
	assert.Equal(t, float32(1), ReadOrDefault[testSize](m).W)

	assert.Equal(t, parent.Len(), parent.Merge(Props{}).Len())
	assert.Equal(t, child, Props{}.Merge(child))
}

func TestPropsClone(t *testing.T) {
	p := New(testTags{Tags: []string{"a", "b"}})
	c := p.Clone()
	ct := ReadOrDefault[testTags](c)
	ct.Tags[0] = "z"
	assert.Equal(t, "a", ReadOrDefault[testTags](p).Tags[0])
}

func TestPropsWithout(t *testing.T) {
	p := New(testColor{Name: "red"}, testSize{W: 1, H: 1})
	w := Without[testColor](p)
	assert.False(t, Has[testColor](w))
	assert.True(t, Has[testSize](w))
	assert.True(t, Has[testColor](p))
	assert.Equal(t, 1, w.Len())
}
