/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package testutil holds small UI-like fixtures: controls that wire their
// callbacks internally and only expose them through a key/value probe or
// through their debug rendering.
package testutil

import (
	"fmt"
	"strings"

	"dirpx.dev/pry/apis"
	"dirpx.dev/pry/invoker"
	"dirpx.dev/pry/registry"
)

// targetAction is a callback registration. Its fields are private; the
// only public view of it is String.
type targetAction struct {
	target any
	action string
}

func (t targetAction) String() string {
	return fmt.Sprintf("(action=Optional(%s)), target=<%T: %p>)", t.action, t.target, t.target)
}

// send delivers action to target the way the control's own event path
// does: selector-style actions ending in ':' receive the sender.
func (t targetAction) send(sender any) {
	if strings.HasSuffix(t.action, ":") {
		_ = invoker.Default().Invoke(t.target, t.action, sender)
		return
	}
	_ = invoker.Default().Invoke(t.target, t.action)
}

// Button keeps its registrations private and answers ValueForKey("targets").
type Button struct {
	title   string
	targets []targetAction
}

// NewButton returns a button without registrations.
func NewButton(title string) *Button {
	return &Button{title: title}
}

// AddTarget registers action on target for taps.
func (b *Button) AddTarget(target any, action string) {
	b.targets = append(b.targets, targetAction{target: target, action: action})
}

// ValueForKey implements apis.Prober.
func (b *Button) ValueForKey(key string) (any, bool) {
	if key != "targets" {
		return nil, false
	}
	out := make([]any, 0, len(b.targets))
	for _, t := range b.targets {
		out = append(out, t)
	}
	return out, true
}

// Tap simulates a physical activation.
func (b *Button) Tap() {
	for _, t := range b.targets {
		t.send(b)
	}
}

// TapGesture stores its registrations under "_targets" and has no probe;
// reading it relies on key/value coding over the walker.
type TapGesture struct {
	_targets []targetAction
}

// NewTapGesture returns a tap recognizer wired to action on target.
func NewTapGesture(target any, action string) *TapGesture {
	return &TapGesture{_targets: []targetAction{{target: target, action: action}}}
}

// Fire simulates a recognized tap.
func (g *TapGesture) Fire() {
	for _, t := range g._targets {
		t.send(g)
	}
}

// SwipeGesture is another recognizer kind.
type SwipeGesture struct {
	Direction string
	_targets  []targetAction
}

// NewSwipeGesture returns a swipe recognizer wired to action on target.
func NewSwipeGesture(direction string, target any, action string) *SwipeGesture {
	return &SwipeGesture{Direction: direction, _targets: []targetAction{{target: target, action: action}}}
}

// Fire simulates a recognized swipe.
func (g *SwipeGesture) Fire() {
	for _, t := range g._targets {
		t.send(g)
	}
}

// Delegate records which callbacks reached it.
type Delegate struct {
	ButtonTapped     bool
	Swiped           bool
	BackgroundTapped bool
	Sender           any
}

// View owns a private button and private gesture recognizers.
type View struct {
	privateButton      *Button
	gestureRecognizers []any
	delegate           *Delegate
}

// NewView builds a view wired to d.
func NewView(d *Delegate) *View {
	v := &View{delegate: d}
	v.privateButton = NewButton("OK")
	v.privateButton.AddTarget(v, "didTapButton:")
	v.gestureRecognizers = []any{
		NewSwipeGesture("left", v, "didSwipe"),
		NewTapGesture(v, "didTapBackground"),
	}
	return v
}

// ValueForKey implements apis.Prober.
func (v *View) ValueForKey(key string) (any, bool) {
	if key != "gestureRecognizers" {
		return nil, false
	}
	return v.gestureRecognizers, true
}

// DidTapButton is the button's action.
func (v *View) DidTapButton(sender *Button) {
	v.delegate.ButtonTapped = true
	v.delegate.Sender = sender
}

// DidSwipe is the swipe recognizer's action.
func (v *View) DidSwipe() { v.delegate.Swiped = true }

// DidTapBackground is the tap recognizer's action.
func (v *View) DidTapBackground() { v.delegate.BackgroundTapped = true }

// Stepper exposes its bindings and behaviors explicitly.
type Stepper struct {
	Value int
	table apis.BehaviorTable
}

// NewStepper returns a stepper with "increment" and "setValue:" behaviors.
func NewStepper() *Stepper {
	s := &Stepper{table: registry.New()}
	_ = s.table.Register("increment", registry.Action(func() { s.Value++ }))
	_ = s.table.Register("setValue:", registry.ActionOf(func(n int) { s.Value = n }))
	return s
}

// Bindings implements apis.Binder.
func (s *Stepper) Bindings() []apis.Binding {
	return []apis.Binding{
		{Trigger: "plus", Action: "increment", Target: s},
		{Trigger: "reset", Action: "setValue:", Target: s},
	}
}

// Behaviors implements apis.Responder.
func (s *Stepper) Behaviors() apis.BehaviorTable { return s.table }
