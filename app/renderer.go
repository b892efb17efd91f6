// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "cogentcore.org/weave/widget"

// Renderer turns a frozen tree plus its geometry into backend-specific
// output. Rendering is an external collaborator; the engine only hands
// it read-only data.
type Renderer[T any] interface {
	Render(tree widget.Unit, mapping CoordsMapping, layout *Layout) (T, error)
}

// Render renders the application's current frozen tree with the given
// renderer and the stored geometry map.
func Render[T any](a *Application, mapping CoordsMapping, r Renderer[T]) (T, error) {
	return r.Render(a.renderedTree, mapping, a.layout)
}

// RenderChange renders only if the last Process call published a new
// tree; ok reports whether it did.
func RenderChange[T any](a *Application, mapping CoordsMapping, r Renderer[T]) (out T, ok bool, err error) {
	if !a.renderChanged {
		return out, false, nil
	}
	out, err = r.Render(a.renderedTree, mapping, a.layout)
	return out, err == nil, err
}
