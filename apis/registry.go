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

// BehaviorTable maps behavior identifiers to behaviors.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type BehaviorTable interface {
	// Register associates id with b. Re-registering the same id fails.
	Register(id string, b Behavior) error
	// Lookup returns the behavior for id if present.
	Lookup(id string) (Behavior, bool)
	// Entries returns a snapshot for diagnostics/docs, sorted by id.
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (id, behavior) association in a BehaviorTable snapshot.
type Entry struct {
	// ID is the registered identifier.
	ID string
	// Behavior is the associated behavior.
	Behavior Behavior
}
