// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/weave/anim"
	"cogentcore.org/weave/basic"
	"cogentcore.org/weave/props"
	"cogentcore.org/weave/widget"
)

func label(text string) *widget.Component {
	return &widget.Component{
		Processor: basic.TextBox,
		TypeName:  "text_box",
		Props:     props.New(basic.TextBoxProps{Text: text}),
	}
}

func contentBox(key string, slots ...widget.Node) *widget.Component {
	return &widget.Component{
		Processor:   basic.ContentBox,
		TypeName:    "content_box",
		Key:         key,
		ListedSlots: slots,
	}
}

// findTexts collects the text of every text box in the tree, in
// depth-first order.
func findTexts(u widget.Unit) []string {
	if u == nil {
		return nil
	}
	if t, ok := u.(*widget.TextBox); ok {
		return []string{t.Text}
	}
	var out []string
	for _, c := range u.Children() {
		out = append(out, findTexts(c)...)
	}
	return out
}

type counterState struct {
	Count int
}

func counter(mounts *int) widget.Processor {
	return func(ctx *widget.Context) widget.Node {
		st := props.ReadOrDefault[counterState](ctx.State.Read())
		if mounts != nil {
			ctx.LifeCycle.Mount(func(widget.MountContext) { *mounts++ })
		}
		return label(strconv.Itoa(st.Count))
	}
}

func TestIdentityStability(t *testing.T) {
	mounts := 0
	tree := contentBox("root",
		label("hello"),
		&widget.Component{Processor: counter(&mounts), TypeName: "counter"},
	)
	a := New()
	a.Apply(tree)
	require.True(t, a.Process())
	first := widget.Inspect(a.RenderedTree())
	assert.Equal(t, 1, mounts)

	require.True(t, a.ProcessForced())
	second := widget.Inspect(a.RenderedTree())
	assert.Empty(t, cmp.Diff(first, second, cmpopts.EquateComparable(widget.ID{})))
	assert.Equal(t, 1, mounts) // second pass resolves to change, not mount
}

func TestCounterScenario(t *testing.T) {
	ref := &widget.Ref{}
	tree := contentBox("root",
		label("hello"),
		&widget.Component{Processor: counter(nil), TypeName: "counter", IDRef: ref},
	)
	a := New()
	a.Apply(tree)
	require.True(t, a.Process())
	assert.Equal(t, []string{"hello", "0"}, findTexts(a.RenderedTree()))
	require.True(t, ref.Read().IsValid())

	first := widget.Inspect(a.RenderedTree())
	state, ok := a.StateRead(ref.Read())
	require.True(t, ok)
	assert.Equal(t, counterState{}, props.ReadOrDefault[counterState](state))

	a.StateWrite(ref.Read(), props.New(counterState{Count: 1}))
	require.True(t, a.Process())
	assert.Equal(t, InvalidationCause{Kind: CauseStateChange, ID: ref.Read()}, a.LastInvalidationCause())
	assert.Equal(t, []string{"hello", "1"}, findTexts(a.RenderedTree()))
	assert.Empty(t, cmp.Diff(first, widget.Inspect(a.RenderedTree()), cmpopts.EquateComparable(widget.ID{})))
}

func TestPassGatingIdempotence(t *testing.T) {
	a := New()
	a.Apply(contentBox("root", label("x")))
	require.True(t, a.Process())
	for i := 0; i < 3; i++ {
		assert.False(t, a.Process())
		assert.False(t, a.RenderChanged())
		assert.Equal(t, InvalidationCause{}, a.LastInvalidationCause())
	}
	a.MarkDirty()
	assert.True(t, a.Process())
	assert.Equal(t, InvalidationCause{Kind: CauseForced}, a.LastInvalidationCause())
}

func TestChangeNotifier(t *testing.T) {
	a := New()
	a.Apply(contentBox("root", label("x")))
	require.True(t, a.Process())
	assert.False(t, a.Process())
	a.ChangeNotifier().Notify()
	assert.True(t, a.Process())
}

func TestPruningAndUnmountPairing(t *testing.T) {
	var unmounted []widget.ID
	mounts := 0
	ref := &widget.Ref{}
	transient := &widget.Component{
		TypeName: "transient",
		Key:      "a",
		IDRef:    ref,
		Processor: func(ctx *widget.Context) widget.Node {
			ctx.LifeCycle.Mount(func(widget.MountContext) { mounts++ })
			ctx.LifeCycle.Unmount(func(uctx widget.UnmountContext) {
				unmounted = append(unmounted, uctx.ID)
			})
			return label("transient")
		},
	}
	a := New()
	a.Apply(contentBox("root", label("keep"), transient))
	require.True(t, a.Process())
	assert.Equal(t, 1, mounts)
	assert.Empty(t, unmounted)
	_, ok := a.StateRead(ref.Read())
	assert.True(t, ok)

	a.Apply(contentBox("root", label("keep")))
	require.True(t, a.Process())
	assert.Equal(t, []widget.ID{ref.Read()}, unmounted)
	_, ok = a.StateRead(ref.Read())
	assert.False(t, ok)

	// a later pass must not fire the teardown again
	require.True(t, a.ProcessForced())
	assert.Len(t, unmounted, 1)
}

type themeCfg struct {
	Name string
}

type fontCfg struct {
	Size int
}

func TestSharedPropsMerge(t *testing.T) {
	var theme themeCfg
	var font fontCfg
	leaf := &widget.Component{
		TypeName: "leaf",
		Processor: func(ctx *widget.Context) widget.Node {
			theme = props.ReadOrDefault[themeCfg](ctx.SharedProps)
			font = props.ReadOrDefault[fontCfg](ctx.SharedProps)
			return nil
		},
	}
	child := &widget.Component{
		TypeName:    "child",
		SharedProps: props.New(themeCfg{Name: "dark"}),
		Processor: func(ctx *widget.Context) widget.Node {
			return leaf
		},
	}
	parent := &widget.Component{
		TypeName:    "parent",
		Key:         "root",
		SharedProps: props.New(themeCfg{Name: "light"}, fontCfg{Size: 12}),
		Processor: func(ctx *widget.Context) widget.Node {
			return child
		},
	}
	a := New()
	a.Apply(parent)
	require.True(t, a.Process())
	// the child's entry wins on conflict; parent-only entries remain
	// visible below it
	assert.Equal(t, themeCfg{Name: "dark"}, theme)
	assert.Equal(t, fontCfg{Size: 12}, font)
}

func TestMessageDelivery(t *testing.T) {
	var received []any
	ref := &widget.Ref{}
	listener := &widget.Component{
		TypeName: "listener",
		Key:      "l",
		IDRef:    ref,
		Processor: func(ctx *widget.Context) widget.Node {
			received = append(received, ctx.Messages...)
			return nil
		},
	}
	a := New()
	a.Apply(contentBox("root", listener))
	require.True(t, a.Process())
	assert.Empty(t, received)

	a.SendMessage(ref.Read(), "ping")
	require.True(t, a.Process())
	assert.Equal(t, InvalidationCause{Kind: CauseMessageReceived, ID: ref.Read()}, a.LastInvalidationCause())
	assert.Equal(t, []any{"ping"}, received)

	// drained messages do not re-trigger passes
	assert.False(t, a.Process())
}

func TestUndeliveredMessagesPersist(t *testing.T) {
	a := New()
	a.Apply(contentBox("root", label("x")))
	require.True(t, a.Process())

	ghost := widget.NewID("ghost", []string{"nowhere"})
	a.SendMessage(ghost, "boo")
	require.True(t, a.Process())
	assert.Equal(t, []any{"boo"}, a.messages[ghost])
	// still queued, so the gate keeps passing until delivered
	assert.True(t, a.Process())
}

func TestSignals(t *testing.T) {
	ref := &widget.Ref{}
	emitter := &widget.Component{
		TypeName: "emitter",
		Key:      "e",
		IDRef:    ref,
		Processor: func(ctx *widget.Context) widget.Node {
			ctx.LifeCycle.Mount(func(mctx widget.MountContext) {
				mctx.Signals.Raise("ready")
			})
			return nil
		},
	}
	a := New()
	a.Apply(contentBox("root", emitter))
	require.True(t, a.Process())
	signals := a.ConsumeSignals()
	require.Len(t, signals, 1)
	assert.Equal(t, ref.Read(), signals[0].Sender)
	assert.Equal(t, "ready", signals[0].Message)
	assert.Empty(t, a.Signals())

	// the signal list is replaced wholesale each pass
	require.True(t, a.ProcessForced())
	assert.Empty(t, a.Signals())
}

func TestStateWriteFromProcessor(t *testing.T) {
	passes := 0
	stepper := &widget.Component{
		TypeName: "stepper",
		Key:      "s",
		Processor: func(ctx *widget.Context) widget.Node {
			passes++
			st := props.ReadOrDefault[counterState](ctx.State.Read())
			if st.Count < 2 {
				ctx.State.Write(ctx.State.Read().With(counterState{Count: st.Count + 1}))
			}
			return label(strconv.Itoa(st.Count))
		},
	}
	a := New()
	a.Apply(contentBox("root", stepper))
	require.True(t, a.Process())
	assert.Equal(t, []string{"0"}, findTexts(a.RenderedTree()))

	// the staged write lands at the start of the next pass
	require.True(t, a.Process())
	assert.Equal(t, []string{"1"}, findTexts(a.RenderedTree()))
	require.True(t, a.Process())
	assert.Equal(t, []string{"2"}, findTexts(a.RenderedTree()))
	assert.False(t, a.Process())
	assert.Equal(t, 3, passes)
}

func TestAnimationLifetime(t *testing.T) {
	var factors []float32
	var messages []any
	ref := &widget.Ref{}
	fader := &widget.Component{
		TypeName: "fader",
		Key:      "f",
		IDRef:    ref,
		Processor: func(ctx *widget.Context) widget.Node {
			factors = append(factors, ctx.Animator.Factor("intro", "fade"))
			messages = append(messages, ctx.Messages...)
			ctx.LifeCycle.Mount(func(mctx widget.MountContext) {
				mctx.Animator.Start("intro", anim.Animation{Sequence: []anim.Animation{
					{Value: &anim.AnimatedValue{Name: "fade", Duration: 1}},
					{Message: "finished"},
				}})
			})
			return nil
		},
	}
	a := New()
	a.Apply(contentBox("root", fader))
	require.True(t, a.Process())
	assert.Equal(t, []float32{0}, factors)

	a.SetDeltaTime(0.5)
	require.True(t, a.Process())
	assert.Equal(t, InvalidationCause{Kind: CauseAnimationInProgress, ID: ref.Read()}, a.LastInvalidationCause())
	assert.InDelta(t, 0.5, factors[1], 1e-5)

	require.True(t, a.Process())
	assert.InDelta(t, 1, factors[2], 1e-5)

	// the timeline message lands one pass after completion
	require.True(t, a.Process())
	assert.Equal(t, []any{"finished"}, messages)
	assert.False(t, a.Process())
}

func TestFreezeFailureKeepsPreviousTree(t *testing.T) {
	stuck := &widget.Component{
		TypeName: "stuck",
		Key:      "root",
		Processor: func(ctx *widget.Context) widget.Node {
			return widget.Tuple{&widget.Component{TypeName: "never"}}
		},
	}
	a := New()
	a.Apply(contentBox("root", label("ok")))
	require.True(t, a.Process())
	previous := a.RenderedTree()

	a.Apply(stuck)
	assert.False(t, a.Process())
	assert.False(t, a.RenderChanged())
	assert.Same(t, previous, a.RenderedTree())
}

func TestAppliedTreeSurvivesPasses(t *testing.T) {
	// a declarative tree rooted in a primitive node must reconcile
	// identically on every pass
	tree := &widget.ContentBoxNode{Items: []widget.ContentBoxItemNode{
		{Slot: label("a")},
		{Slot: &widget.Component{Processor: counter(nil), TypeName: "counter"}},
	}}
	a := New()
	a.Apply(tree)
	require.True(t, a.Process())
	first := widget.Inspect(a.RenderedTree())
	require.True(t, a.ProcessForced())
	assert.Empty(t, cmp.Diff(first, widget.Inspect(a.RenderedTree()), cmpopts.EquateComparable(widget.ID{})))
	// the applied tree itself is untouched
	_, ok := tree.Items[1].Slot.(*widget.Component)
	assert.True(t, ok)
}
