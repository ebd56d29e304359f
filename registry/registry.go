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

package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"dirpx.dev/pry/apis"
)

var (
	// ErrEmptyName is returned when an empty identifier is provided.
	ErrEmptyName = errors.New("pry(registry): empty behavior identifier provided")
	// ErrNilBehavior is returned when a behavior without a function is provided.
	ErrNilBehavior = errors.New("pry(registry): nil behavior provided")
	// ErrBadArity is returned when a behavior declares an arity other than 0 or 1.
	ErrBadArity = errors.New("pry(registry): behavior arity must be 0 or 1")
	// ErrConflictingRegistration indicates an attempt to re-register an identifier.
	ErrConflictingRegistration = errors.New("pry(registry): conflicting behavior registration")
	// ErrArgType is returned by ActionOf behaviors called with an argument of the wrong type.
	ErrArgType = apis.ErrArgType
)

// New constructs an empty apis.BehaviorTable backed by sync.Map.
func New() apis.BehaviorTable {
	return &registry{}
}

// registry is a simple BehaviorTable implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps identifier to apis.Behavior.
	m sync.Map // map[string]apis.Behavior
	// count tracks the number of registered entries.
	count int
}

// Register associates id with b. Identifiers are unique per table.
func (r *registry) Register(id string, b apis.Behavior) error {
	// Validate inputs early.
	if id == "" {
		return ErrEmptyName
	}
	if b.Fn == nil {
		return ErrNilBehavior
	}
	if b.Arity < 0 || b.Arity > 1 {
		return ErrBadArity
	}

	// Fast read path: conflict check without locking.
	if _, ok := r.m.Load(id); ok {
		return fmt.Errorf("%w: %q", ErrConflictingRegistration, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := r.m.Load(id); ok {
		return fmt.Errorf("%w: %q", ErrConflictingRegistration, id)
	}

	r.m.Store(id, b)
	r.count++
	return nil
}

// Lookup returns the behavior for id if present.
func (r *registry) Lookup(id string) (apis.Behavior, bool) {
	if v, ok := r.m.Load(id); ok {
		return v.(apis.Behavior), true
	}
	return apis.Behavior{}, false
}

// Entries returns a snapshot for diagnostics/docs, sorted by id.
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			ID:       key.(string),
			Behavior: value.(apis.Behavior),
		})
		return true
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}

// Action adapts a zero-argument function.
func Action(fn func()) apis.Behavior {
	if fn == nil {
		return apis.Behavior{}
	}
	return apis.Behavior{Arity: 0, Fn: func([]any) error {
		fn()
		return nil
	}}
}

// ActionErr adapts a zero-argument function that can fail.
func ActionErr(fn func() error) apis.Behavior {
	if fn == nil {
		return apis.Behavior{}
	}
	return apis.Behavior{Arity: 0, Fn: func([]any) error {
		return fn()
	}}
}

// ActionOf adapts a one-argument function. The argument type is checked
// at call time; a mismatch returns ErrArgType without calling fn.
func ActionOf[A any](fn func(A)) apis.Behavior {
	if fn == nil {
		return apis.Behavior{}
	}
	return apis.Behavior{Arity: 1, Fn: func(args []any) error {
		if len(args) != 1 {
			return ErrArgType
		}
		var a A
		if args[0] != nil {
			v, ok := args[0].(A)
			if !ok {
				return fmt.Errorf("%w: got %T, want %T", ErrArgType, args[0], a)
			}
			a = v
		}
		fn(a)
		return nil
	}}
}
