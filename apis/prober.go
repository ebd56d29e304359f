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

package apis

//go:generate mockgen -destination=../internal/mocks/mocks.go -package=mocks dirpx.dev/pry/apis Prober,Performer

// Prober is the generic key/value probe. A subject returns the value
// stored under key, or false when the key is unsupported.
//
// Keys are conventions of the subject's own event wiring, not a public
// contract; treat every key as fragile.
type Prober interface {
	ValueForKey(key string) (any, bool)
}

// Binding is a structured trigger -> behavior association.
type Binding struct {
	// Trigger names the external interaction (e.g. "tap").
	Trigger string
	// Action is the behavior identifier invoked on Target.
	Action string
	// Target receives the behavior. May be nil when the subject itself is the receiver.
	Target any
}

// Binder exposes a subject's trigger bindings without any text parsing.
type Binder interface {
	Bindings() []Binding
}

// Parser recovers a behavior identifier from an opaque registration record.
type Parser interface {
	// Parse renders record to text and returns the best-effort identifier.
	Parse(record any) string
	// ParseText applies the same extraction to an already rendered record.
	ParseText(s string) string
}
