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

package strategy

import (
	"dirpx.dev/pry/apis"
)

// NewTableStrategy creates an apis.Strategy that consults the behavior
// table of apis.Responder targets.
func NewTableStrategy() apis.Strategy {
	return &tableStrategy{}
}

// tableStrategy dispatches through an explicit, registration-time checked table.
type tableStrategy struct{}

// Ensure tableStrategy implements apis.Strategy.
var _ apis.Strategy = (*tableStrategy)(nil)

// TryInvoke looks id up in the target's table. Unknown ids fall through.
func (*tableStrategy) TryInvoke(target any, id string, args []any, _ apis.Config) (bool, error) {
	r, ok := target.(apis.Responder)
	if !ok || target == nil {
		return false, nil
	}
	var table apis.BehaviorTable
	if err := call(func() error { table = r.Behaviors(); return nil }); err != nil || table == nil {
		return false, nil
	}
	b, ok := table.Lookup(id)
	if !ok {
		return false, nil
	}
	if len(args) > b.Arity {
		return true, apis.ErrArity
	}
	if len(args) < b.Arity {
		args = []any{nil}
	}
	return true, call(func() error { return b.Fn(args) })
}
