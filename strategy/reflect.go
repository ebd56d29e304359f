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

package strategy

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/pry/apis"
)

// NewReflectStrategy creates an apis.Strategy that dispatches to exported
// methods by name. Selector-style identifiers are accepted: "didTap:" and
// "didTapWithSender:" resolve to DidTap and DidTapWithSender.
// Colons only end the method name; the arity is the method's own, so
// "fire:" reaches a zero-parameter Fire.
//
// The strategy is inert unless cfg.ReflectInvoke is set.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback over the target's method set.
// Only methods taking zero or one argument are callable.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey memoizes method resolution per (type, identifier).
type cacheKey struct {
	t  reflect.Type
	id string
}

// methodCache caches resolved method indices; -1 marks a miss.
var methodCache sync.Map // key: cacheKey, val: int

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// TryInvoke calls the method id resolves to.
func (reflectStrategy) TryInvoke(target any, id string, args []any, cfg apis.Config) (bool, error) {
	if !cfg.ReflectInvoke || target == nil || id == "" {
		return false, nil
	}
	rv := reflect.ValueOf(target)
	idx := methodIndex(rv.Type(), id)
	if idx < 0 {
		return false, nil
	}
	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return false, nil
	}

	m := rv.Method(idx)
	mt := m.Type()
	if mt.NumIn() > 1 || len(args) > mt.NumIn() {
		return true, apis.ErrArity
	}

	in := make([]reflect.Value, 0, 1)
	if mt.NumIn() == 1 {
		pt := mt.In(0)
		var arg any
		if len(args) == 1 {
			arg = args[0]
		}
		av, err := argValue(arg, pt)
		if err != nil {
			return true, err
		}
		in = append(in, av)
	}

	return true, call(func() error {
		out := m.Call(in)
		if n := len(out); n > 0 && mt.Out(n-1) == errorType && !out[n-1].IsNil() {
			return out[n-1].Interface().(error)
		}
		return nil
	})
}

// argValue converts arg to a value assignable to pt. nil yields the zero value.
func argValue(arg any, pt reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(pt), nil
	}
	av := reflect.ValueOf(arg)
	if !av.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%w: got %T, want %v", apis.ErrArgType, arg, pt)
	}
	return av, nil
}

// methodIndex resolves id on t with memoization.
func methodIndex(t reflect.Type, id string) int {
	key := cacheKey{t: t, id: id}
	if v, ok := methodCache.Load(key); ok {
		return v.(int)
	}
	idx := -1
	for _, name := range candidates(id) {
		if m, ok := t.MethodByName(name); ok {
			idx = m.Index
			break
		}
	}
	methodCache.Store(key, idx)
	return idx
}

// candidates returns the method names id may refer to, most literal first.
func candidates(id string) []string {
	name, _, _ := strings.Cut(id, ":")
	if name == "" {
		return nil
	}
	out := []string{name}
	if r, size := utf8.DecodeRuneInString(name); unicode.IsLower(r) {
		out = append(out, string(unicode.ToUpper(r))+name[size:])
	}
	return out
}

// SelectorName returns the Go method name the reflect strategy tries last
// for id, e.g. "didTap:" -> "DidTap". It returns "" for an empty selector.
func SelectorName(id string) string {
	c := candidates(id)
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1]
}
