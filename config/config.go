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

package config

import (
	"dirpx.dev/pry/apis"
)

const (
	// DefaultMatch represents the default for Match.
	DefaultMatch = apis.MatchExact
	// DefaultIncludeUnexported represents the default for IncludeUnexported.
	// Private state is the whole point of the walker, so it is on.
	DefaultIncludeUnexported = true
	// DefaultFlattenEmbedded represents the default for FlattenEmbedded.
	DefaultFlattenEmbedded = false
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultRegistrationKey is the probe key for callback registrations.
	DefaultRegistrationKey = "targets"
	// DefaultReflectInvoke represents the default for ReflectInvoke.
	DefaultReflectInvoke = true
	// DefaultMaxIdentifierLen bounds what parser.Plausible accepts.
	DefaultMaxIdentifierLen = 128
)

// Default registration record tokens.
const (
	DefaultDelimiter = ", "
	DefaultOpen      = "("
	DefaultLabel     = "action="
	DefaultWrapOpen  = "Optional("
	DefaultClose     = ")"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.RegistrationKey == "" {
		cfg.RegistrationKey = DefaultRegistrationKey
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Match:             DefaultMatch,
		IncludeUnexported: DefaultIncludeUnexported,
		FlattenEmbedded:   DefaultFlattenEmbedded,
		MaxUnwrap:         DefaultMaxUnwrap,
		RegistrationKey:   DefaultRegistrationKey,
		Tokens:            DefaultTokens(),
		ReflectInvoke:     DefaultReflectInvoke,
	}
}

// DefaultTokens returns the record shape
//
//	(action=Optional(didTap:)), target=<View: 0x1>)
func DefaultTokens() apis.Tokens {
	return apis.Tokens{
		Delimiter: DefaultDelimiter,
		Open:      DefaultOpen,
		Label:     DefaultLabel,
		WrapOpen:  DefaultWrapOpen,
		Close:     DefaultClose,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMatch sets the Match option.
func WithMatch(m apis.MatchMode) Option {
	return func(c *apis.Config) {
		c.Match = m
	}
}

// WithIncludeUnexported sets the IncludeUnexported option.
func WithIncludeUnexported(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeUnexported = include
	}
}

// WithFlattenEmbedded sets the FlattenEmbedded option.
func WithFlattenEmbedded(flatten bool) Option {
	return func(c *apis.Config) {
		c.FlattenEmbedded = flatten
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithRegistrationKey sets the RegistrationKey option.
// An empty key resets to the default.
func WithRegistrationKey(key string) Option {
	return func(c *apis.Config) {
		if key == "" {
			key = DefaultRegistrationKey
		}
		c.RegistrationKey = key
	}
}

// WithTokens replaces the registration record tokens.
func WithTokens(t apis.Tokens) Option {
	return func(c *apis.Config) {
		c.Tokens = t
	}
}

// WithReflectInvoke sets the ReflectInvoke option.
func WithReflectInvoke(enabled bool) Option {
	return func(c *apis.Config) {
		c.ReflectInvoke = enabled
	}
}
