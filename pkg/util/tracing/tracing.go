// Copyright 2025 PelicanDB, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tracing provides the stopwatch side channel wrapped around each
// rule invocation of the rewrite phase. Tracers only collect timing and
// counters; they must never influence matching or rewriting outcomes.
package tracing

import "time"

// Scope finishes a watched scope. It must be called exactly once.
type Scope func()

// Tracer opens timing scopes around named optimizer steps.
type Tracer interface {
	// WatchScope starts watching a named scope and returns its closer.
	WatchScope(name string) Scope
}

type noopTracer struct{}

func (noopTracer) WatchScope(string) Scope { return func() {} }

// NewNoopTracer returns a tracer that records nothing.
func NewNoopTracer() Tracer {
	return noopTracer{}
}

// DurationTracer accumulates wall time and invocation counts per scope name.
// It is owned by a single optimization session and is not goroutine-safe.
type DurationTracer struct {
	totals map[string]time.Duration
	counts map[string]int
}

// NewDurationTracer creates an empty DurationTracer.
func NewDurationTracer() *DurationTracer {
	return &DurationTracer{
		totals: make(map[string]time.Duration),
		counts: make(map[string]int),
	}
}

// WatchScope implements the Tracer interface.
func (t *DurationTracer) WatchScope(name string) Scope {
	start := time.Now()
	return func() {
		t.totals[name] += time.Since(start)
		t.counts[name]++
	}
}

// Total returns the accumulated wall time of the named scope.
func (t *DurationTracer) Total(name string) time.Duration {
	return t.totals[name]
}

// Count returns how many times the named scope was watched.
func (t *DurationTracer) Count(name string) int {
	return t.counts[name]
}
