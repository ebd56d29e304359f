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

package pry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/pry/accessor"
	"dirpx.dev/pry/apis"
	"dirpx.dev/pry/builder"
	"dirpx.dev/pry/config"
	"dirpx.dev/pry/internal/ctxlog"
	"dirpx.dev/pry/lookup"
	"dirpx.dev/pry/parser"
	"dirpx.dev/pry/registration"
)

// init initializes the global pry state.
func init() {
	// Initialize state with default cfg, walker, parser and invoker.
	s := &state{cfg: config.DefaultConfig(), logger: ctxlog.Discard(), bld: builder.New()}
	s.build(nil)
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilWalker is returned when a builder returns a nil walker.
	ErrNilWalker = errors.New("pry: builder returned nil walker")
	// ErrNilParser is returned when a builder returns a nil parser.
	ErrNilParser = errors.New("pry: builder returned nil parser")
	// ErrNilInvoker is returned when a builder returns a nil invoker.
	ErrNilInvoker = errors.New("pry: builder returned nil invoker")
)

// Syncer hands a function over to another execution context and waits for
// it to complete. *queue.Serial implements it.
type Syncer interface {
	Sync(ctx context.Context, fn func(context.Context)) error
}

// Fields returns the stored attributes of v in declaration order.
func Fields(v any) []apis.Attribute {
	s := st.Load()
	return s.walker.Walk(v, s.cfg)
}

// Field returns the attribute of v named exactly name, downcast to T.
// A missing attribute and one of another type both yield (zero, false).
func Field[T any](v any, name string) (T, bool) {
	return find[T](v, name, apis.MatchExact)
}

// FieldContaining returns the first attribute of v whose name contains
// fragment, downcast to T.
func FieldContaining[T any](v any, fragment string) (T, bool) {
	return find[T](v, fragment, apis.MatchContains)
}

// Find returns the first attribute of v matching query under the
// configured match mode (Config.Match), downcast to T.
func Find[T any](v any, query string) (T, bool) {
	return find[T](v, query, st.Load().cfg.Match)
}

// FieldMatching is Field with an explicit match mode.
func FieldMatching[T any](v any, query string, mode apis.MatchMode) (T, bool) {
	return find[T](v, query, mode)
}

func find[T any](v any, query string, mode apis.MatchMode) (T, bool) {
	s := st.Load()
	t, ok := lookup.Find[T](s.walker, v, query, mode, s.cfg)
	if !ok {
		s.logger.Debug("lookup miss",
			slog.String("subject", typeName(v)),
			slog.String("query", query),
			slog.String("mode", mode.String()),
			slog.String("want", reflect.TypeFor[T]().String()),
		)
	}
	return t, ok
}

// FieldPath resolves a dotted path of exact names through nested values.
func FieldPath[T any](v any, path string) (T, bool) {
	s := st.Load()
	t, ok := lookup.Path[T](s.walker, v, path, s.cfg)
	if !ok {
		s.logger.Debug("path lookup miss", slog.String("subject", typeName(v)), slog.String("path", path))
	}
	return t, ok
}

// Wrap returns an Accessor over v bound to the current walker and config.
func Wrap(v any) *accessor.Accessor {
	s := st.Load()
	return accessor.New(v, accessor.WithWalker(s.walker), accessor.WithConfig(s.cfg))
}

// Registrations returns v's callback registration records, probed under
// the configured RegistrationKey.
func Registrations(v any) []any {
	return RegistrationsFor(v, st.Load().cfg.RegistrationKey)
}

// RegistrationsFor returns the records v exposes under key.
func RegistrationsFor(v any, key string) []any {
	s := st.Load()
	recs := registration.Extract(v, key, s.walker, s.cfg)
	if len(recs) == 0 {
		s.logger.Debug("probe yielded nothing", slog.String("subject", typeName(v)), slog.String("key", key))
	}
	return recs
}

// SelectFirst returns the first record satisfying pred (nil matches all).
func SelectFirst(records []any, pred func(any) bool) (any, bool) {
	return registration.SelectFirst(records, pred)
}

// ParseIdentifier recovers the behavior identifier from record's rendering.
// The result is best effort; check it with parser.Plausible.
func ParseIdentifier(record any) string {
	if record == nil {
		return ""
	}
	s := st.Load()
	text := fmt.Sprint(record)
	id := s.parser.ParseText(text)
	if parser.Degraded(text, s.cfg.Tokens) || !parser.Plausible(id) {
		s.logger.Debug("identifier parse degraded",
			slog.String("record", typeName(record)),
			slog.String("text", text),
			slog.String("id", id),
		)
	}
	return id
}

// Identifier returns the behavior a trigger of v would invoke.
//
// Subjects implementing apis.Binder are answered from their bindings
// (pred sees apis.Binding values). Otherwise v's registrations are
// probed, the first record satisfying pred is parsed, and the result is
// returned only when it is plausible.
func Identifier(v any, pred func(any) bool) (string, bool) {
	if bs, ok := registration.Bindings(v); ok {
		for _, b := range bs {
			if pred == nil || pred(b) {
				return b.Action, b.Action != ""
			}
		}
		return "", false
	}
	rec, ok := SelectFirst(Registrations(v), pred)
	if !ok {
		return "", false
	}
	id := ParseIdentifier(rec)
	return id, parser.Plausible(id)
}

// Dispatch invokes id on target and reports why it failed, if it did.
func Dispatch(target any, id string, args ...any) error {
	s := st.Load()
	return dispatch(s, s.logger, target, id, args)
}

func dispatch(s *state, logger *slog.Logger, target any, id string, args []any) error {
	err := s.invoker.Invoke(target, id, args...)
	if err != nil {
		logger.Debug("invocation failed",
			slog.String("target", typeName(target)),
			slog.String("id", id),
			slog.Any("error", err),
		)
	}
	return err
}

// Invoke calls the behavior id on target, forwarding at most one argument,
// and reports whether it was resolved and ran without error.
func Invoke(target any, id string, args ...any) bool {
	return Dispatch(target, id, args...) == nil
}

// InvokeOn runs Invoke on q and waits for it. Records about the
// invocation go to the logger q hands over through its context (see
// ctxlog), and records about the hand-off to the logger carried by ctx.
// Both fall back to the global logger.
func InvokeOn(ctx context.Context, q Syncer, target any, id string, args ...any) bool {
	if q == nil {
		return Invoke(target, id, args...)
	}
	s := st.Load()
	var ok bool
	err := q.Sync(ctx, func(qctx context.Context) {
		ok = dispatch(s, ctxlog.FromContext(qctx, s.logger), target, id, args) == nil
	})
	if err != nil {
		ctxlog.FromContext(ctx, s.logger).Debug("hand-off failed",
			slog.String("target", typeName(target)),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return false
	}
	return ok
}

// Trigger simulates the interaction of v selected by pred: it recovers the
// identifier from v and invokes it on target. A nil target means the
// binding's own target (Binder subjects only), or v itself when the
// binding leaves Target unset.
func Trigger(v any, target any, pred func(any) bool, args ...any) bool {
	if target == nil {
		if bs, ok := registration.Bindings(v); ok {
			for _, b := range bs {
				if pred == nil || pred(b) {
					recv := b.Target
					if recv == nil {
						recv = v
					}
					return Invoke(recv, b.Action, args...)
				}
			}
			return false
		}
	}
	id, ok := Identifier(v, pred)
	if !ok {
		return false
	}
	return Invoke(target, id, args...)
}

// Config returns the global pry configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global pry configuration to cfg and rebuilds the
// walker, parser and invoker.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	n := old.clone()
	n.cfg = cfg
	n.build(old.invoker)
	st.Store(n)
}

// Builder returns the global pry builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global pry builder to b and rebuilds every layer.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	n := old.clone()
	n.bld = b
	n.build(old.invoker)
	st.Store(n)
}

// SetExt replaces extension config and rebuilds every layer via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	n := old.clone()
	n.ext = ext
	n.build(old.invoker)
	st.Store(n)
}

// ExtAs returns the global pry extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// Logger returns the global pry logger.
func Logger() *slog.Logger {
	return st.Load().logger
}

// SetLogger sets the logger used for non-fatal degradations (lookup
// misses, empty probes, degraded parses, unresolved invocations).
// A nil logger discards.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = ctxlog.Discard()
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	n := st.Load().clone()
	n.logger = l
	st.Store(n)
}

// SetAll explicitly sets all global pry state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
// Mainly used by tests to get a clean deterministic state between cases.
func SetAll(cfg *apis.Config, ext any, bld apis.Builder, logger *slog.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	n := old.clone()
	if cfg != nil {
		n.cfg = *cfg
	}
	n.ext = ext
	if bld != nil {
		n.bld = bld
	}
	if logger != nil {
		n.logger = logger
	}
	n.build(old.invoker)
	st.Store(n)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global pry state.
var st atomic.Pointer[state]

// state is the global pry state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global pry configuration.
	cfg apis.Config
	// ext is the global pry extension configuration.
	ext any
	// bld builds the layers below.
	bld apis.Builder
	// walker enumerates attributes.
	walker apis.Walker
	// parser recovers identifiers.
	parser apis.Parser
	// invoker dispatches behaviors.
	invoker apis.Invoker
	// logger receives Debug records for non-fatal degradations.
	logger *slog.Logger
}

// clone returns an unpublished copy of s.
func (s *state) clone() *state {
	c := *s
	return &c
}

// build (re)creates every layer of an unpublished state with its builder.
func (s *state) build(prev apis.Invoker) {
	s.walker = s.bld.BuildWalker(s.cfg, s.ext)
	s.parser = s.bld.BuildParser(s.cfg, s.ext)
	s.invoker = s.bld.BuildInvoker(s.cfg, prev, s.ext)

	// Ensure non-nil layers.
	if s.walker == nil {
		panic(ErrNilWalker)
	}
	if s.parser == nil {
		panic(ErrNilParser)
	}
	if s.invoker == nil {
		panic(ErrNilInvoker)
	}
}

// typeName renders v's dynamic type for logs.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
