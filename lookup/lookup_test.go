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

package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/pry/apis"
	"dirpx.dev/pry/config"
	"dirpx.dev/pry/lookup"
	"dirpx.dev/pry/walker"
)

type clock interface{ Now() int }

type fixedClock struct{ at int }

func (c fixedClock) Now() int { return c.at }

type pricing struct {
	rate int
}

type validator struct {
	clock    clock
	_expires int
	rules    *pricing
	label    string
}

type screen struct {
	presenter *presenter
}

type presenter struct {
	validator *validator
}

func subject() *validator {
	return &validator{
		clock:    fixedClock{at: 10},
		_expires: 99,
		rules:    &pricing{rate: 3},
		label:    "weekday",
	}
}

func TestFind_Exact(t *testing.T) {
	w, cfg := walker.New(), config.DefaultConfig()
	v := subject()

	rules, ok := lookup.Find[*pricing](w, v, "rules", apis.MatchExact, cfg)
	require.True(t, ok)
	assert.Same(t, v.rules, rules)

	label, ok := lookup.Find[string](w, v, "label", apis.MatchExact, cfg)
	require.True(t, ok)
	assert.Equal(t, "weekday", label)
}

func TestFind_InterfaceTarget(t *testing.T) {
	w, cfg := walker.New(), config.DefaultConfig()

	c, ok := lookup.Find[clock](w, subject(), "clock", apis.MatchExact, cfg)
	require.True(t, ok)
	assert.Equal(t, 10, c.Now())
}

func TestFind_WrongTypeIsAbsent(t *testing.T) {
	w, cfg := walker.New(), config.DefaultConfig()

	got, ok := lookup.Find[int](w, subject(), "label", apis.MatchExact, cfg)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestFind_MissingIsAbsent(t *testing.T) {
	w, cfg := walker.New(), config.DefaultConfig()

	_, ok := lookup.Find[string](w, subject(), "doesNotExist", apis.MatchExact, cfg)
	assert.False(t, ok)
	_, ok = lookup.Find[any](w, subject(), "doesNotExist", apis.MatchExact, cfg)
	assert.False(t, ok)
	_, ok = lookup.Find[string](w, nil, "label", apis.MatchExact, cfg)
	assert.False(t, ok)
}

func TestFind_Contains(t *testing.T) {
	w, cfg := walker.New(), config.DefaultConfig()

	// Exact misses the decorated name, contains finds it.
	_, ok := lookup.Find[int](w, subject(), "expires", apis.MatchExact, cfg)
	assert.False(t, ok)

	got, ok := lookup.Find[int](w, subject(), "expires", apis.MatchContains, cfg)
	require.True(t, ok)
	assert.Equal(t, 99, got)
}

func TestFind_FirstMatchWins(t *testing.T) {
	w, cfg := walker.New(), config.DefaultConfig()

	// "l" is contained in both "clock" and "rules"; clock is declared first.
	got, ok := lookup.Find[clock](w, subject(), "l", apis.MatchContains, cfg)
	require.True(t, ok)
	assert.Equal(t, 10, got.Now())

	// First match has the wrong type: absent, no fallthrough to later matches.
	_, ok = lookup.Find[string](w, subject(), "l", apis.MatchContains, cfg)
	assert.False(t, ok)
}

func TestPath(t *testing.T) {
	w, cfg := walker.New(), config.DefaultConfig()
	s := &screen{presenter: &presenter{validator: subject()}}

	rate, ok := lookup.Path[int](w, s, "presenter.validator.rules.rate", cfg)
	require.True(t, ok)
	assert.Equal(t, 3, rate)

	_, ok = lookup.Path[int](w, s, "presenter.missing.rate", cfg)
	assert.False(t, ok)
	_, ok = lookup.Path[int](w, s, "", cfg)
	assert.False(t, ok)
}

func TestMatch(t *testing.T) {
	assert.True(t, lookup.Match("name", "name", apis.MatchExact))
	assert.False(t, lookup.Match("_name", "name", apis.MatchExact))
	assert.True(t, lookup.Match("_name", "name", apis.MatchContains))
	assert.False(t, lookup.Match("nam", "name", apis.MatchContains))
}
