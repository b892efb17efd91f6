// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package props implements the opaque, copyable, mergeable property
// bags carried by widgets. A [Props] holds at most one value per Go
// type; values are read back by type using the generic [Read] and
// [ReadOrDefault] functions. Props values have copy-on-write
// semantics: [Props.With], [Props.Merge], and friends return new bags
// and never mutate their receiver, so bags can be shared freely
// between passes.
package props

import (
	"reflect"

	"github.com/jinzhu/copier"
)

// Props is a bag of typed property values, keyed by value type.
// The zero value is an empty, usable bag.
type Props struct {
	data map[reflect.Type]any
}

// New returns a [Props] containing the given values.
// Later values of the same type replace earlier ones.
func New(values ...any) Props {
	p := Props{}
	for _, v := range values {
		p = p.With(v)
	}
	return p
}

// IsEmpty returns whether the bag contains no values.
func (p Props) IsEmpty() bool {
	return len(p.data) == 0
}

// Len returns the number of values in the bag.
func (p Props) Len() int {
	return len(p.data)
}

// With returns a new bag with the given value added,
// replacing any existing value of the same type.
func (p Props) With(value any) Props {
	if value == nil {
		return p
	}
	nd := make(map[reflect.Type]any, len(p.data)+1)
	for t, v := range p.data {
		nd[t] = v
	}
	nd[reflect.TypeOf(value)] = value
	return Props{data: nd}
}

// Merge returns a new bag containing the values of both bags.
// Values from other replace values of the same type from p.
func (p Props) Merge(other Props) Props {
	if other.IsEmpty() {
		return p
	}
	if p.IsEmpty() {
		return other
	}
	nd := make(map[reflect.Type]any, len(p.data)+len(other.data))
	for t, v := range p.data {
		nd[t] = v
	}
	for t, v := range other.data {
		nd[t] = v
	}
	return Props{data: nd}
}

// Clone returns a deep copy of the bag, so that mutations of
// reference-typed fields in the copy do not affect the original.
func (p Props) Clone() Props {
	if p.IsEmpty() {
		return Props{}
	}
	nd := make(map[reflect.Type]any, len(p.data))
	for t, v := range p.data {
		nv := reflect.New(t)
		if err := copier.CopyWithOption(nv.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			nd[t] = v // not copyable; fall back to sharing
			continue
		}
		nd[t] = nv.Elem().Interface()
	}
	return Props{data: nd}
}

// Each calls the given function for every value in the bag,
// in unspecified order.
func (p Props) Each(fun func(value any)) {
	for _, v := range p.data {
		fun(v)
	}
}

// Read returns the value of the given type and whether it is present.
func Read[T any](p Props) (T, bool) {
	var zv T
	v, ok := p.data[reflect.TypeOf(zv)]
	if !ok {
		return zv, false
	}
	return v.(T), true
}

// ReadOrDefault returns the value of the given type,
// or the zero value if it is not present.
func ReadOrDefault[T any](p Props) T {
	v, _ := Read[T](p)
	return v
}

// Has returns whether the bag contains a value of the given type.
func Has[T any](p Props) bool {
	_, ok := Read[T](p)
	return ok
}

// Without returns a new bag with any value of the given type removed.
func Without[T any](p Props) Props {
	var zv T
	t := reflect.TypeOf(zv)
	if _, ok := p.data[t]; !ok {
		return p
	}
	nd := make(map[reflect.Type]any, len(p.data)-1)
	for dt, v := range p.data {
		if dt != t {
			nd[dt] = v
		}
	}
	return Props{data: nd}
}
