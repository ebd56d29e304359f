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
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"dirpx.dev/pry/apis"
	"dirpx.dev/pry/builder"
	"dirpx.dev/pry/config"
	"dirpx.dev/pry/internal/ctxlog"
	"dirpx.dev/pry/queue"
)

// reset restores a clean default snapshot when the test ends.
func reset(tb testing.TB) {
	tb.Helper()
	tb.Cleanup(func() {
		cfg := config.DefaultConfig()
		SetAll(&cfg, nil, builder.New(), ctxlog.Discard())
	})
}

// ---------------------- Test doubles (mocks) ----------------------

type mockBuilder struct {
	inner apis.Builder

	mu       sync.Mutex
	walkers  int
	parsers  int
	invokers int
	lastExt  any
	nilLayer string
}

func newMockBuilder() *mockBuilder {
	return &mockBuilder{inner: builder.New()}
}

func (m *mockBuilder) BuildWalker(cfg apis.Config, ext any) apis.Walker {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.walkers++
	m.lastExt = ext
	if m.nilLayer == "walker" {
		return nil
	}
	return m.inner.BuildWalker(cfg, ext)
}

func (m *mockBuilder) BuildParser(cfg apis.Config, ext any) apis.Parser {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parsers++
	if m.nilLayer == "parser" {
		return nil
	}
	return m.inner.BuildParser(cfg, ext)
}

func (m *mockBuilder) BuildInvoker(cfg apis.Config, prev apis.Invoker, ext any) apis.Invoker {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invokers++
	if m.nilLayer == "invoker" {
		return nil
	}
	return m.inner.BuildInvoker(cfg, prev, ext)
}

type probe struct {
	hidden int
}

type decorated struct {
	_basePrice int
}

// ---------------------- Tests ----------------------

func TestSetBuilder_RebuildsAllLayers(t *testing.T) {
	reset(t)
	b := newMockBuilder()

	SetBuilder(b)
	if Builder() != b {
		t.Fatal("Builder() did not return the installed builder")
	}
	if b.walkers != 1 || b.parsers != 1 || b.invokers != 1 {
		t.Fatalf("builds = (%d,%d,%d), want (1,1,1)", b.walkers, b.parsers, b.invokers)
	}

	SetConfig(config.NewConfig(config.WithMatch(apis.MatchContains)))
	if b.walkers != 2 || b.parsers != 2 || b.invokers != 2 {
		t.Fatalf("builds after SetConfig = (%d,%d,%d), want (2,2,2)", b.walkers, b.parsers, b.invokers)
	}
	if Config().Match != apis.MatchContains {
		t.Fatalf("Config().Match = %v, want contains", Config().Match)
	}

	SetBuilder(nil)
	if Builder() != b {
		t.Fatal("SetBuilder(nil) must be a no-op")
	}
}

func TestSetExt_PassedToBuilder(t *testing.T) {
	reset(t)
	b := newMockBuilder()
	SetBuilder(b)

	type policy struct{ strict bool }
	SetExt(policy{strict: true})

	if got, ok := b.lastExt.(policy); !ok || !got.strict {
		t.Fatalf("builder ext = %#v, want policy{strict:true}", b.lastExt)
	}
	if got, ok := ExtAs[policy](); !ok || !got.strict {
		t.Fatalf("ExtAs = (%#v,%v), want (policy{true},true)", got, ok)
	}
	if _, ok := ExtAs[int](); ok {
		t.Fatal("ExtAs[int] = ok, want false")
	}
}

func TestSetConfig_AffectsLookups(t *testing.T) {
	reset(t)
	p := &probe{hidden: 5}

	if _, ok := Field[int](p, "hidden"); !ok {
		t.Fatal("default config: hidden not found")
	}
	SetConfig(config.NewConfig(config.WithIncludeUnexported(false)))
	if _, ok := Field[int](p, "hidden"); ok {
		t.Fatal("IncludeUnexported=false: hidden found")
	}
}

func TestSetConfig_MatchDrivesFind(t *testing.T) {
	reset(t)
	d := &decorated{_basePrice: 5}

	if _, ok := Find[int](d, "basePrice"); ok {
		t.Fatal("exact match: basePrice found")
	}
	if got, ok := Find[int](d, "_basePrice"); !ok || got != 5 {
		t.Fatalf("exact match: Find(_basePrice) = (%d,%v), want (5,true)", got, ok)
	}

	SetConfig(config.NewConfig(config.WithMatch(apis.MatchContains)))
	if got, ok := Find[int](d, "basePrice"); !ok || got != 5 {
		t.Fatalf("contains match: Find(basePrice) = (%d,%v), want (5,true)", got, ok)
	}
	// Field stays exact regardless of the configured mode.
	if _, ok := Field[int](d, "basePrice"); ok {
		t.Fatal("Field must keep exact matching")
	}
}

func TestInvokeOn_UsesQueueLogger(t *testing.T) {
	reset(t)
	var buf bytes.Buffer
	q := queue.New(queue.WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	defer q.Close()

	if InvokeOn(context.Background(), q, &probe{}, "doesNotExist") {
		t.Fatal("InvokeOn(doesNotExist) succeeded")
	}
	q.Close()
	if !bytes.Contains(buf.Bytes(), []byte("invocation failed")) {
		t.Fatalf("queue logger missed the record, got %q", buf.String())
	}
}

func TestSetConfig_ReflectInvoke(t *testing.T) {
	reset(t)
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	SetConfig(config.NewConfig(config.WithReflectInvoke(false)))
	if Invoke(&buf, "reset") {
		t.Fatal("ReflectInvoke=false: Invoke succeeded")
	}
	if !bytes.Contains(buf.Bytes(), []byte("invocation failed")) {
		t.Fatalf("missing debug record, got %q", buf.String())
	}
}

func TestSetAll_NilLayersPanic(t *testing.T) {
	for _, layer := range []string{"walker", "parser", "invoker"} {
		t.Run(layer, func(t *testing.T) {
			reset(t)
			b := newMockBuilder()
			b.nilLayer = layer
			before := st.Load()

			defer func() {
				if recover() == nil {
					t.Fatalf("nil %s: expected panic", layer)
				}
				if st.Load() != before {
					t.Fatal("a failed build must not publish a snapshot")
				}
			}()
			SetAll(nil, nil, b, nil)
		})
	}
}

func TestSetLogger_DebugRecords(t *testing.T) {
	reset(t)
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, _ = Field[string](&probe{}, "hidden")
	_ = Registrations(&probe{})
	_ = ParseIdentifier("two words")

	out := buf.String()
	for _, msg := range []string{"lookup miss", "probe yielded nothing", "identifier parse degraded"} {
		if !bytes.Contains([]byte(out), []byte(msg)) {
			t.Fatalf("missing %q in %q", msg, out)
		}
	}

	SetLogger(nil)
	if Logger() != ctxlog.Discard() {
		t.Fatal("SetLogger(nil) must install the discard logger")
	}
}

// Readers run lock-free against concurrent writers.
func TestConcurrentReadersAndWriters(t *testing.T) {
	reset(t)
	p := &probe{hidden: 1}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_, _ = Field[int](p, "hidden")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				SetConfig(config.DefaultConfig())
			}
		}()
	}
	wg.Wait()
}
