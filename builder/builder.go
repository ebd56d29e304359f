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

package builder

import (
	"dirpx.dev/pry/apis"
	"dirpx.dev/pry/invoker"
	"dirpx.dev/pry/parser"
	"dirpx.dev/pry/strategy"
	"dirpx.dev/pry/walker"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildWalker returns the reflect-backed walker. The walker reads cfg on
// every call, so nothing is baked in here.
func (b *builder) BuildWalker(_ apis.Config, _ any) apis.Walker {
	return walker.New()
}

// BuildParser returns a parser for cfg.Tokens.
func (b *builder) BuildParser(cfg apis.Config, _ any) apis.Parser {
	return parser.New(cfg.Tokens)
}

// BuildInvoker returns the Performer -> Table -> Reflect chain bound to cfg.
// The previous invoker holds no state worth migrating.
func (b *builder) BuildInvoker(cfg apis.Config, _ apis.Invoker, _ any) apis.Invoker {
	return invoker.New(
		cfg,
		strategy.NewPerformerStrategy(),
		strategy.NewTableStrategy(),
		strategy.NewReflectStrategy(),
	)
}
