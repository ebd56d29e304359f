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

import "errors"

var (
	// ErrUnresolved is returned when no strategy resolves an identifier on a target.
	ErrUnresolved = errors.New("pry: behavior not resolvable on target")
	// ErrTooManyArgs is returned when more than one argument is forwarded.
	ErrTooManyArgs = errors.New("pry: at most one argument can be forwarded")
	// ErrArity is returned when the argument count does not fit the behavior.
	ErrArity = errors.New("pry: argument count does not match behavior")
	// ErrArgType is returned when the argument cannot be passed to the behavior.
	ErrArgType = errors.New("pry: argument type mismatch")
	// ErrBehaviorPanicked is returned when the invoked behavior panicked.
	ErrBehaviorPanicked = errors.New("pry: behavior panicked")
)
