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

// Package pry reaches into the private state of objects under test and
// simulates externally triggered behaviors without a runtime host.
//
// It answers two questions a test keeps asking:
//
//   - "What does this object hold under that name?" (Field, Wrap)
//   - "What would happen if the user performed gesture X?" (Registrations,
//     ParseIdentifier, Invoke)
//
// # Design
//
// The core of pry is a read-mostly global snapshot (state). The snapshot
// holds:
//
//   - Config: knobs for walking (unexported fields, embedded structs,
//     unwrap depth), the registration probe key, the registration record
//     tokens and whether name-based reflection dispatch is allowed.
//
//   - Walker: turns any value into an ordered list of (name, value)
//     attributes. Subjects may opt in through apis.AttributeLister;
//     everything else is walked with reflect, unexported fields included.
//
//   - Parser: recovers a behavior identifier from the debug rendering of
//     an opaque registration record.
//
//   - Invoker: calls a behavior on a target by identifier. It tries, in
//     priority order:
//     1. apis.Performer, if the target dispatches by itself.
//     2. apis.Responder, if the target exposes a behavior table.
//     3. An exported method resolved by name (selector forms accepted).
//
//   - Builder: constructs Walker, Parser and Invoker for a Config.
//
// Readers load the current snapshot atomically; writers build a new one
// under a mutex and swap it in.
//
// # Lookups
//
//	btn, ok := pry.Field[*Button](view, "privateButton")
//	exp, ok := pry.FieldContaining[time.Time](validator, "expires")
//	rate, ok := pry.FieldPath[int](screen, "presenter.rules.rate")
//	btn, ok = accessor.Get[*Button](pry.Wrap(view), "privateButton")
//
// A missing attribute and an attribute of another type both report
// ok == false. The two cases are deliberately not told apart.
//
// # Triggers
//
//	rec, _ := pry.SelectFirst(pry.Registrations(btn), nil)
//	id := pry.ParseIdentifier(rec) // "didTapButton:"
//	ok := pry.Invoke(view, id, btn)
//
// Registration records are read through apis.Prober (or key/value coding
// over the walker) and parsed from text. That text is not a contract;
// ParseIdentifier is best effort and callers should check parser.Plausible.
// Subjects that can be changed should implement apis.Binder so Identifier
// and Trigger never parse anything.
//
// # Errors
//
// Nothing in pry panics or fails across its boundary for the expected
// misses: lookups return (zero, false), empty probes return an empty
// slice, degraded parses return a partial string and Invoke returns false.
// Dispatch exposes the reason as an error (apis.ErrUnresolved,
// apis.ErrArity, apis.ErrArgType, apis.ErrBehaviorPanicked). Every miss is
// logged at Debug on the logger installed with SetLogger.
//
// # Threads
//
// Every operation runs synchronously on the caller's goroutine. When a
// behavior must run on a specific goroutine, hand it over with InvokeOn
// and a queue.Serial.
package pry
