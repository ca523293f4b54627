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

package planctx

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/pelicandb/pelican/pkg/util/tracing"
)

// Context carries the per-optimization-session state of the rewrite phase.
// It is created when an optimization attempt starts and discarded when the
// attempt ends; it is owned by exactly one session and must not be shared.
//
// Rules are addressed by their numeric type so this package stays independent
// of the rule definitions.
type Context struct {
	// disabledRules holds the rule types switched off for this session.
	disabledRules *bitset.BitSet
	// exhaustedRules holds the rule types that signaled they must not be
	// retried again within this session.
	exhaustedRules *bitset.BitSet
	// notNullCols caches the column unique IDs proven not-null by filters
	// seen during the current rewrite pass. The cache is bound to one pass
	// over the tree and is reset before the next pass starts.
	notNullCols map[int64]struct{}

	tracer tracing.Tracer
}

// NewContext creates a fresh session context with nothing disabled.
func NewContext() *Context {
	return &Context{
		disabledRules:  bitset.New(64),
		exhaustedRules: bitset.New(64),
		notNullCols:    make(map[int64]struct{}),
		tracer:         tracing.NewNoopTracer(),
	}
}

// DisableRule switches the given rule type off for this session.
func (ctx *Context) DisableRule(ruleType uint) {
	ctx.disabledRules.Set(ruleType)
}

// IsRuleDisabled checks whether the given rule type is switched off.
func (ctx *Context) IsRuleDisabled(ruleType uint) bool {
	return ctx.disabledRules.Test(ruleType)
}

// MarkRuleExhausted records that the given rule type gave up for the rest of
// this session.
func (ctx *Context) MarkRuleExhausted(ruleType uint) {
	ctx.exhaustedRules.Set(ruleType)
}

// IsRuleExhausted checks whether the given rule type has given up.
func (ctx *Context) IsRuleExhausted(ruleType uint) bool {
	return ctx.exhaustedRules.Test(ruleType)
}

// AddNotNullColumn records a column proven not-null during the current pass.
func (ctx *Context) AddNotNullColumn(uniqueID int64) {
	ctx.notNullCols[uniqueID] = struct{}{}
}

// IsColumnNotNull checks whether the column was proven not-null during the
// current pass.
func (ctx *Context) IsColumnNotNull(uniqueID int64) bool {
	_, ok := ctx.notNullCols[uniqueID]
	return ok
}

// ClearNotNullColumns drops the pass-scoped not-null facts. The rewrite task
// calls it after every full pass so facts derived against an old tree shape
// never leak into the next pass.
func (ctx *Context) ClearNotNullColumns() {
	clear(ctx.notNullCols)
}

// Tracer returns the session tracer, never nil.
func (ctx *Context) Tracer() tracing.Tracer {
	return ctx.tracer
}

// SetTracer replaces the session tracer. A nil tracer resets to no-op.
func (ctx *Context) SetTracer(tracer tracing.Tracer) {
	if tracer == nil {
		tracer = tracing.NewNoopTracer()
	}
	ctx.tracer = tracer
}
