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

// Package lookup finds a named attribute of a subject and downcasts it.
//
// Absence is a first-class outcome: a missing attribute and an attribute
// of another type both yield (zero, false). Callers cannot tell them apart.
package lookup

import (
	"strings"

	"dirpx.dev/pry/apis"
)

// PathSeparator separates hops in Path queries.
const PathSeparator = "."

// Match reports whether name satisfies query under mode.
func Match(name, query string, mode apis.MatchMode) bool {
	switch mode {
	case apis.MatchContains:
		return strings.Contains(name, query)
	default:
		return name == query
	}
}

// Value returns the value of the first attribute, in walk order, whose
// name matches query.
func Value(w apis.Walker, subject any, query string, mode apis.MatchMode, cfg apis.Config) (any, bool) {
	if w == nil || subject == nil {
		return nil, false
	}
	for _, a := range w.Walk(subject, cfg) {
		if Match(a.Name, query, mode) {
			return a.Value, true
		}
	}
	return nil, false
}

// Find returns the first matching attribute downcast to T.
func Find[T any](w apis.Walker, subject any, query string, mode apis.MatchMode, cfg apis.Config) (T, bool) {
	var zero T
	v, ok := Value(w, subject, query, mode, cfg)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Path resolves a dotted path ("presenter.view.privateButton") with exact
// matching at every hop and downcasts the last value to T.
func Path[T any](w apis.Walker, subject any, path string, cfg apis.Config) (T, bool) {
	var zero T
	if path == "" {
		return zero, false
	}
	cur := subject
	for _, hop := range strings.Split(path, PathSeparator) {
		v, ok := Value(w, cur, hop, apis.MatchExact, cfg)
		if !ok {
			return zero, false
		}
		cur = v
	}
	t, ok := cur.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
