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

package parser_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/pry/apis"
	"dirpx.dev/pry/config"
	"dirpx.dev/pry/parser"
)

type record struct {
	action string
	target any
}

func (r record) String() string {
	return fmt.Sprintf("(action=Optional(%s)), target=<%T: %p>)", r.action, r.target, r.target)
}

type view struct{}

func TestParseText(t *testing.T) {
	p := parser.New(config.DefaultTokens())

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "(action=sel:1:, target=<Obj: 0x1>)", "sel:1:"},
		{"optional wrapper", "(action=Optional(didTap:)), target=<View: 0x600>)", "didTap:"},
		{"no arguments", "(action=Optional(refresh)), target=<View: 0x600>)", "refresh"},
		{"no delimiter", "(action=Optional(didTap:)))", "didTap:"},
		{"no label", "(sel:1:, target=<Obj: 0x1>)", "sel:1:"},
		{"garbage", "garbage", "garbage"},
		{"empty", "", ""},
		{"only tokens", "(action=Optional()), target=<Obj: 0x1>)", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.ParseText(tc.in))
		})
	}
}

func TestParse_Stringer(t *testing.T) {
	p := parser.New(config.DefaultTokens())
	r := record{action: "didTapButton", target: &view{}}

	assert.Equal(t, "didTapButton", p.Parse(r))
	assert.Equal(t, "", p.Parse(nil))
}

func TestParse_CustomTokens(t *testing.T) {
	p := parser.New(apis.Tokens{Delimiter: ";", Label: "sel=", Close: "]", Open: "["})
	assert.Equal(t, "onSwipe", p.ParseText("[sel=onSwipe];target=x]"))
}

func TestDegraded(t *testing.T) {
	tok := config.DefaultTokens()
	assert.False(t, parser.Degraded("(action=sel:1:, target=<Obj: 0x1>)", tok))
	assert.True(t, parser.Degraded("(sel:1:, target=<Obj: 0x1>)", tok))
	assert.True(t, parser.Degraded("(action=sel:1:)", tok))
}

func TestPlausible(t *testing.T) {
	assert.True(t, parser.Plausible("sel:1:"))
	assert.False(t, parser.Plausible(""))
	assert.False(t, parser.Plausible("two words"))
	long := make([]byte, config.DefaultMaxIdentifierLen+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, parser.Plausible(string(long)))
}
