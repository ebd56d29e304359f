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

package invoker

import (
	"fmt"

	"dirpx.dev/pry/apis"
	"dirpx.dev/pry/config"
	"dirpx.dev/pry/strategy"
)

// New constructs an apis.Invoker that tries the given strategies in order.
// Nil strategies are ignored. The returned invoker is safe for concurrent use
// provided strategies themselves are safe for concurrent TryInvoke calls.
func New(cfg apis.Config, strategies ...apis.Strategy) apis.Invoker {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{cfg: cfg, strats: out}
}

// Default returns the standard Performer -> Table -> Reflect chain over the
// default configuration.
func Default() apis.Invoker {
	return New(
		config.DefaultConfig(),
		strategy.NewPerformerStrategy(),
		strategy.NewTableStrategy(),
		strategy.NewReflectStrategy(),
	)
}

// chain is an immutable, order-preserving invoker over a set of strategies.
type chain struct {
	cfg    apis.Config
	strats []apis.Strategy
}

// Invoke runs strategies in order until one handles the identifier.
// Returns apis.ErrUnresolved if none did.
func (c chain) Invoke(target any, id string, args ...any) error {
	if len(args) > 1 {
		return apis.ErrTooManyArgs
	}
	for _, s := range c.strats {
		handled, err := s.TryInvoke(target, id, args, c.cfg)
		if !handled {
			continue
		}
		if err != nil {
			return fmt.Errorf("invoke %q on %T: %w", id, target, err)
		}
		return nil
	}
	return fmt.Errorf("invoke %q on %T: %w", id, target, apis.ErrUnresolved)
}
