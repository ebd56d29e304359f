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

// Package parser recovers behavior identifiers from the debug rendering of
// registration records.
//
// The rendering is not a contract. It is whatever the record prints, e.g.
//
//	(action=Optional(didTap:)), target=<View: 0x1>)
//
// and the parser strips known tokens from it. When a token is missing the
// step is skipped and the partial result is returned; callers should check
// it with Plausible before use.
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"dirpx.dev/pry/apis"
	"dirpx.dev/pry/config"
)

// New returns an apis.Parser for the given record tokens.
func New(t apis.Tokens) apis.Parser {
	return parser{t: t}
}

type parser struct {
	t apis.Tokens
}

// Ensure parser implements apis.Parser.
var _ apis.Parser = parser{}

// Parse renders record with fmt (fmt.Stringer honoured) and extracts the identifier.
func (p parser) Parse(record any) string {
	if record == nil {
		return ""
	}
	return p.ParseText(fmt.Sprint(record))
}

// ParseText extracts the identifier from an already rendered record.
func (p parser) ParseText(s string) string {
	if p.t.Delimiter != "" {
		s, _, _ = strings.Cut(s, p.t.Delimiter)
	}
	if p.t.Open != "" {
		s = strings.TrimPrefix(s, p.t.Open)
	}
	if p.t.Label != "" {
		s = strings.Replace(s, p.t.Label, "", 1)
	}
	if p.t.WrapOpen != "" {
		s = strings.Replace(s, p.t.WrapOpen, "", 1)
	}
	if p.t.Close != "" {
		for strings.HasSuffix(s, p.t.Close) {
			s = strings.TrimSuffix(s, p.t.Close)
		}
	}
	return strings.TrimSpace(s)
}

// Degraded reports whether s lacks the delimiter or the label t expects,
// in which case ParseText skipped a step and its result is a guess.
func Degraded(s string, t apis.Tokens) bool {
	for _, tok := range []string{t.Delimiter, t.Label} {
		if tok != "" && !strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// Plausible reports whether id looks like a behavior identifier: non-empty,
// no whitespace and no longer than config.DefaultMaxIdentifierLen.
func Plausible(id string) bool {
	if id == "" || len(id) > config.DefaultMaxIdentifierLen {
		return false
	}
	return strings.IndexFunc(id, unicode.IsSpace) < 0
}
