// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

// InteractionsEngine translates pointer, keyboard, and gamepad input
// into engine effects. It receives mutable access to the application
// so it can write state and send messages between passes; it must not
// be invoked while a pass is executing.
type InteractionsEngine[T any] interface {
	Interact(a *Application) (T, error)
}

// Interact runs the given interactions engine against the
// application.
func Interact[T any](a *Application, e InteractionsEngine[T]) (T, error) {
	return e.Interact(a)
}
