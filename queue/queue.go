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

// Package queue provides a serial executor that stands in for a thread
// owning UI state. Behaviors that are only safe on that thread are handed
// over with Sync, which blocks until they complete.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"dirpx.dev/pry/internal/ctxlog"
)

var (
	// ErrClosed is returned by Sync after Close.
	ErrClosed = errors.New("pry(queue): queue closed")
	// ErrPanicked is returned by Sync when the handed-over function panicked.
	ErrPanicked = errors.New("pry(queue): function panicked")
)

// Serial runs handed-over functions one at a time on its own goroutine.
type Serial struct {
	name   string
	logger *slog.Logger

	tasks   chan *task
	quit    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// Option configures a Serial queue.
type Option func(*Serial)

// WithName sets the queue name used in logs.
func WithName(name string) Option {
	return func(q *Serial) {
		q.name = name
	}
}

// WithLogger sets the queue logger.
func WithLogger(logger *slog.Logger) Option {
	return func(q *Serial) {
		if logger != nil {
			q.logger = logger
		}
	}
}

type task struct {
	ctx  context.Context
	fn   func(context.Context)
	done chan struct{}
	err  error
}

// onQueueKey marks contexts of functions running on a given queue.
type onQueueKey struct{}

// New starts a serial queue. Call Close to stop it.
func New(opts ...Option) *Serial {
	q := &Serial{
		name:    "main",
		logger:  ctxlog.Discard(),
		tasks:   make(chan *task),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	go q.loop()
	return q
}

// Sync runs fn on the queue and waits for it to return.
//
// Calls made from a function already running on q (recognised through the
// ctx it was given) run inline, so nested hand-offs do not deadlock.
// ctx only bounds the wait for the queue to accept fn; once accepted, fn
// always runs to completion.
func (q *Serial) Sync(ctx context.Context, fn func(context.Context)) error {
	if fn == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if owner, _ := ctx.Value(onQueueKey{}).(*Serial); owner == q {
		return q.run(ctx, fn)
	}

	t := &task{ctx: ctx, fn: fn, done: make(chan struct{})}
	select {
	case q.tasks <- t:
	case <-q.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-t.done
	return t.err
}

// Close stops the queue after the running function, if any, returns.
// It is safe to call more than once.
func (q *Serial) Close() {
	q.once.Do(func() { close(q.quit) })
	<-q.stopped
}

func (q *Serial) loop() {
	defer close(q.stopped)
	for {
		select {
		case <-q.quit:
			return
		case t := <-q.tasks:
			t.err = q.run(context.WithValue(t.ctx, onQueueKey{}, q), t.fn)
			close(t.done)
		}
	}
}

// run calls fn with a queue-aware context and recovers panics.
func (q *Serial) run(ctx context.Context, fn func(context.Context)) (err error) {
	if _, ok := ctxlog.Lookup(ctx); !ok {
		ctx = ctxlog.WithLogger(ctx, q.logger)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
			q.logger.Error("queue function panicked", "queue", q.name, "panic", r)
		}
	}()
	fn(ctx)
	return nil
}
