// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefab

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SaveYAML writes the given prefab value to w as YAML.
func SaveYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: yaml: %w", ErrSerialize, err)
	}
	return enc.Close()
}

// OpenYAML reads a prefab value from YAML in r into v.
func OpenYAML(r io.Reader, v any) error {
	if err := yaml.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%w: yaml: %w", ErrDeserialize, err)
	}
	return nil
}

// SaveJSON writes the given prefab value to w as indented JSON.
func SaveJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: json: %w", ErrSerialize, err)
	}
	return nil
}

// OpenJSON reads a prefab value from JSON in r into v.
func OpenJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%w: json: %w", ErrDeserialize, err)
	}
	return nil
}

// SaveTOML writes the given prefab value to w as TOML.
func SaveTOML(w io.Writer, v any) error {
	if err := toml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("%w: toml: %w", ErrSerialize, err)
	}
	return nil
}

// OpenTOML reads a prefab value from TOML in r into v.
func OpenTOML(r io.Reader, v any) error {
	if err := toml.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%w: toml: %w", ErrDeserialize, err)
	}
	return nil
}
