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

// Package accessor wraps a subject so tests can read private state by name.
//
// Go has no dynamic member syntax, so attribute-style access is spelled as
// explicit calls:
//
//	btn, ok := accessor.Get[*Button](accessor.New(view), "privateButton")
//	rate, ok := accessor.Get[int](accessor.New(screen).Child("presenter").Child("rules"), "rate")
//
// Every access walks the subject again; nothing is cached.
package accessor

import (
	"dirpx.dev/pry/apis"
	"dirpx.dev/pry/config"
	"dirpx.dev/pry/lookup"
	"dirpx.dev/pry/walker"
)

// Accessor forwards named reads to lookup.Find with exact matching.
type Accessor struct {
	subject any
	walker  apis.Walker
	cfg     apis.Config
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithWalker overrides the walker.
func WithWalker(w apis.Walker) Option {
	return func(a *Accessor) {
		if w != nil {
			a.walker = w
		}
	}
}

// WithConfig overrides the walk configuration.
func WithConfig(cfg apis.Config) Option {
	return func(a *Accessor) {
		a.cfg = cfg
	}
}

// New wraps subject. The subject is borrowed, never copied or mutated.
func New(subject any, opts ...Option) *Accessor {
	a := &Accessor{
		subject: subject,
		walker:  walker.New(),
		cfg:     config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Subject returns the wrapped subject.
func (a *Accessor) Subject() any {
	return a.subject
}

// Value returns the raw value stored under name.
func (a *Accessor) Value(name string) (any, bool) {
	return lookup.Value(a.walker, a.subject, name, apis.MatchExact, a.cfg)
}

// Has reports whether name is a stored attribute of the subject.
func (a *Accessor) Has(name string) bool {
	_, ok := a.Value(name)
	return ok
}

// Child wraps the value stored under name. A missing name yields an
// Accessor over nil, on which every read is absent.
func (a *Accessor) Child(name string) *Accessor {
	v, _ := a.Value(name)
	return &Accessor{subject: v, walker: a.walker, cfg: a.cfg}
}

// Get reads name from a and downcasts it to T.
func Get[T any](a *Accessor, name string) (T, bool) {
	if a == nil {
		var zero T
		return zero, false
	}
	return lookup.Find[T](a.walker, a.subject, name, apis.MatchExact, a.cfg)
}
