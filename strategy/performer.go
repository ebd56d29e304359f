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
	"reflect"

	"dirpx.dev/pry/apis"
)

// NewPerformerStrategy creates an apis.Strategy that uses apis.Performer.
func NewPerformerStrategy() apis.Strategy {
	return &performerStrategy{}
}

// performerStrategy is the fast path: if the target implements
// apis.Performer, let it dispatch the identifier itself.
type performerStrategy struct{}

// Ensure performerStrategy implements apis.Strategy.
var _ apis.Strategy = (*performerStrategy)(nil)

// TryInvoke hands id to the target's Perform. A false result falls through.
func (*performerStrategy) TryInvoke(target any, id string, args []any, _ apis.Config) (bool, error) {
	if target == nil {
		return false, nil
	}
	p, ok := target.(apis.Performer)
	if !ok {
		return false, nil
	}
	if rv := reflect.ValueOf(target); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return false, nil
	}
	var performed bool
	err := call(func() error {
		performed = p.Perform(id, args...)
		return nil
	})
	if err != nil {
		return true, err
	}
	return performed, nil
}
