// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefab implements the structural mirror format of the
// declarative widget tree, used to persist and load trees and their
// property payloads. Prefabs carry property values as generic
// name-keyed maps; a [Registry] maps the names back to concrete Go
// types. Files are written and read in YAML, JSON, or TOML.
package prefab

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	"cogentcore.org/weave/props"
)

// ErrSerialize is wrapped by all failures to turn in-memory values
// into their prefab form.
var ErrSerialize = errors.New("prefab serialize")

// ErrDeserialize is wrapped by all failures to turn prefab data back
// into in-memory values.
var ErrDeserialize = errors.New("prefab deserialize")

// Registry maps prefab property names to concrete Go types and back.
// Property types must be registered on both the writing and the
// reading side under the same name.
type Registry struct {
	types map[string]reflect.Type
	names map[reflect.Type]string
}

// NewRegistry returns an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		types: map[string]reflect.Type{},
		names: map[reflect.Type]string{},
	}
}

// Register maps the prototype's type to the given name, replacing any
// previous mapping for either.
func (r *Registry) Register(name string, prototype any) {
	t := reflect.TypeOf(prototype)
	r.types[name] = t
	r.names[t] = name
}

// Unregister removes the mapping with the given name.
func (r *Registry) Unregister(name string) {
	if t, ok := r.types[name]; ok {
		delete(r.names, t)
		delete(r.types, name)
	}
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SerializeProps converts a property bag into its prefab form: a map
// from registered name to a generic value representation. It fails if
// any value's type is not registered.
func (r *Registry) SerializeProps(p props.Props) (map[string]any, error) {
	out := make(map[string]any, p.Len())
	var err error
	p.Each(func(v any) {
		if err != nil {
			return
		}
		name, ok := r.names[reflect.TypeOf(v)]
		if !ok {
			err = fmt.Errorf("%w: property type %T is not registered", ErrSerialize, v)
			return
		}
		generic, gerr := toGeneric(v)
		if gerr != nil {
			err = fmt.Errorf("%w: property %q: %w", ErrSerialize, name, gerr)
			return
		}
		out[name] = generic
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeserializeProps converts prefab property data back into a typed
// bag. It fails if any name is not registered or a value does not fit
// its registered type.
func (r *Registry) DeserializeProps(data map[string]any) (props.Props, error) {
	p := props.Props{}
	for name, generic := range data {
		t, ok := r.types[name]
		if !ok {
			return props.Props{}, fmt.Errorf("%w: property name %q is not registered", ErrDeserialize, name)
		}
		pv := reflect.New(t)
		if err := fromGeneric(generic, pv.Interface()); err != nil {
			return props.Props{}, fmt.Errorf("%w: property %q: %w", ErrDeserialize, name, err)
		}
		p = p.With(pv.Elem().Interface())
	}
	return p, nil
}

// toGeneric and fromGeneric round-trip a typed value through yaml to
// move between concrete structs and generic maps, so the same
// representation feeds every output format.

func toGeneric(v any) (any, error) {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return generic, nil
}

func fromGeneric(generic any, out any) error {
	raw, err := yaml.Marshal(generic)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, out)
}
