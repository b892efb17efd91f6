// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widget defines the node models of the weave reconciliation
// engine: the stable path-derived [ID], the declarative [Node] tree
// that drivers apply, the primitive box node types that composites
// expand into, and the frozen [Unit] tree that renderers consume.
package widget

import (
	"fmt"
	"strings"
)

// ID is the stable identity of a tree position: a type tag plus the
// ordered path of keys from the root to the node, packed into a
// single string of the form "type:/seg/seg". It is a pure function
// of (type tag, path), so identical tree shape across passes yields
// identical IDs, which is what carries widget state between passes.
// IDs are comparable and usable as map keys; equality is by the full
// composed value.
type ID struct {
	id          string
	typeNameLen uint8
	keyLen      uint8
	depth       int
}

// NewID returns the [ID] for the given type tag and path. The type
// tag and every path segment must be shorter than 256 bytes; a
// violation is a logic error and panics.
func NewID(typeName string, path []string) ID {
	if len(typeName) >= 256 {
		panic(fmt.Sprintf("widget.NewID: type name %q cannot be longer than 255 bytes", typeName))
	}
	keyLen := 0
	if len(path) > 0 {
		keyLen = len(path[len(path)-1])
	}
	var sb strings.Builder
	sb.WriteString(typeName)
	sb.WriteByte(':')
	for i, part := range path {
		if len(part) >= 256 {
			panic(fmt.Sprintf("widget.NewID: path[%d] (%q) cannot be longer than 255 bytes", i, part))
		}
		sb.WriteByte('/')
		sb.WriteString(part)
	}
	return ID{
		id:          sb.String(),
		typeNameLen: uint8(len(typeName)),
		keyLen:      uint8(keyLen),
		depth:       len(path),
	}
}

// ParseID parses an [ID] from its string form "type:/seg/seg".
// The "type:" form with no path is the string form of a pathless ID.
func ParseID(s string) (ID, error) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return ID{}, fmt.Errorf("widget.ParseID: %q is not a valid widget id", s)
	}
	rest := s[i+1:]
	if rest == "" {
		return NewID(s[:i], nil), nil
	}
	if rest[0] != '/' {
		return ID{}, fmt.Errorf("widget.ParseID: %q is not a valid widget id: path must start with '/'", s)
	}
	return NewID(s[:i], strings.Split(rest[1:], "/")), nil
}

// String returns the full composed value.
func (id ID) String() string {
	return id.id
}

// IsValid returns whether the ID has been composed (a zero ID is
// not valid).
func (id ID) IsValid() bool {
	return id.id != ""
}

// Depth returns the number of path segments.
func (id ID) Depth() int {
	return id.depth
}

// TypeName returns the type tag.
func (id ID) TypeName() string {
	return id.id[:id.typeNameLen]
}

// Path returns the path portion, without the leading separator; it is
// empty for the zero ID and for an ID with no path segments.
func (id ID) Path() string {
	if id.depth == 0 {
		return ""
	}
	return id.id[int(id.typeNameLen)+2:]
}

// Key returns the last path segment.
func (id ID) Key() string {
	return id.id[len(id.id)-int(id.keyLen):]
}

// Parts returns the path segments; nil when there are none.
func (id ID) Parts() []string {
	if id.depth == 0 {
		return nil
	}
	return strings.Split(id.Path(), "/")
}

// MarshalText implements [encoding.TextMarshaler].
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.id), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (id *ID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = ID{}
		return nil
	}
	nid, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = nid
	return nil
}
