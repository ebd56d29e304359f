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

// Behavior is a named, invokable unit registered on a target.
type Behavior struct {
	// Arity is the number of arguments the behavior accepts (0 or 1).
	Arity int
	// Fn runs the behavior. len(args) == Arity is guaranteed by callers.
	Fn func(args []any) error
}

// Invoker calls a behavior on a target by identifier.
type Invoker interface {
	// Invoke resolves id on target and calls it synchronously with args.
	// It returns nil on success and never panics.
	Invoke(target any, id string, args ...any) error
}

// Strategy is a pluggable dispatch step. An Invoker chains multiple
// strategies in order (e.g., Performer -> Table -> Reflect).
type Strategy interface {
	// TryInvoke attempts to dispatch id on target according to cfg.
	// handled reports whether this strategy owns the target/id pair;
	// err is meaningful only when handled is true.
	TryInvoke(target any, id string, args []any, cfg Config) (handled bool, err error)
}

// Performer is the custom dispatch fast path: the target decides by itself.
// Perform returns false when id is not a behavior of the target.
type Performer interface {
	Perform(id string, args ...any) bool
}

// Responder exposes an explicit behavior table.
type Responder interface {
	Behaviors() BehaviorTable
}
