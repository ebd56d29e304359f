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

// MatchMode selects how a lookup query is compared with attribute names.
type MatchMode uint8

const (
	// MatchExact selects the first attribute whose name equals the query.
	MatchExact MatchMode = iota
	// MatchContains selects the first attribute whose name contains the query.
	// Useful when the stored name is decorated (e.g. "_name" behind a wrapper).
	MatchContains
)

// String returns a short label for logs.
func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchContains:
		return "contains"
	default:
		return "unknown"
	}
}

// Config carries read-only knobs that influence walking, parsing and dispatch.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Match is the matching mode used by pry.Find. Field and the Accessor
	// always match exactly.
	Match MatchMode

	// IncludeUnexported controls whether unexported struct fields are walked.
	IncludeUnexported bool

	// FlattenEmbedded makes the walker emit the fields of an embedded struct
	// right after the embedded field itself.
	FlattenEmbedded bool

	// MaxUnwrap limits pointer/interface unwrapping depth.
	// Acts as a safety guard against pathological nesting.
	MaxUnwrap int

	// RegistrationKey is the probe key under which subjects expose their
	// callback registration records.
	RegistrationKey string

	// Tokens describe the textual shape of a registration record.
	Tokens Tokens

	// ReflectInvoke enables name-based method dispatch as the last resort
	// when a target exposes neither a Performer nor a Responder.
	ReflectInvoke bool
}

// Tokens is the fixed text pattern a registration record renders to, e.g.
//
//	(action=Optional(didTap:)), target=<View: 0x1>)
type Tokens struct {
	// Delimiter separates the action segment from the rest of the record.
	Delimiter string
	// Open is the record's leading token, trimmed once.
	Open string
	// Label precedes the behavior identifier.
	Label string
	// WrapOpen is the optional-value wrapper around the identifier.
	WrapOpen string
	// Close is the closing token introduced by Open and WrapOpen.
	Close string
}
