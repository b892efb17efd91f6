// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

// LifeCycle is the lifecycle registration sink a processor writes to.
// Mount callbacks run after the processor on the identity's first
// appearance, change callbacks on every later appearance, and unmount
// callbacks are stored against the identity and fired once when it
// disappears from the tree.
type LifeCycle struct {
	mount   []func(MountContext)
	change  []func(MountContext)
	unmount []func(UnmountContext)
}

// Mount registers a first-appearance callback.
func (l *LifeCycle) Mount(fn func(MountContext)) {
	l.mount = append(l.mount, fn)
}

// Change registers a re-appearance callback.
func (l *LifeCycle) Change(fn func(MountContext)) {
	l.change = append(l.change, fn)
}

// Unmount registers a disappearance callback.
func (l *LifeCycle) Unmount(fn func(UnmountContext)) {
	l.unmount = append(l.unmount, fn)
}

// Unwrap returns the registered callback lists and resets the sink.
func (l *LifeCycle) Unwrap() (mount, change []func(MountContext), unmount []func(UnmountContext)) {
	mount, change, unmount = l.mount, l.change, l.unmount
	l.mount, l.change, l.unmount = nil, nil, nil
	return
}
