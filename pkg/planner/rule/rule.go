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

package rule

import (
	"github.com/pelicandb/pelican/pkg/planner/core"
	"github.com/pelicandb/pelican/pkg/planner/pattern"
	"github.com/pelicandb/pelican/pkg/planner/planctx"
)

// Type identifies a rewrite rule. The numeric value is what the session
// context keys its disable and exhaustion state on.
type Type int

// Rule types.
const (
	TypeNone Type = iota
	TypeCollectNotNullPredicates
	TypeMergeAdjacentSelection
	TypeMergeAdjacentProjection
	TypeEliminateProjection
	TypeMergeAdjacentLimit
	TypeEliminateLimitZero
	TypePruneUnionAllDualChildren
	TypeConvertOuterToInnerJoin
)

// String implements the fmt.Stringer interface.
func (tp Type) String() string {
	switch tp {
	case TypeCollectNotNullPredicates:
		return "collect_not_null_predicates"
	case TypeMergeAdjacentSelection:
		return "merge_adjacent_selection"
	case TypeMergeAdjacentProjection:
		return "merge_adjacent_projection"
	case TypeEliminateProjection:
		return "eliminate_projection"
	case TypeMergeAdjacentLimit:
		return "merge_adjacent_limit"
	case TypeEliminateLimitZero:
		return "eliminate_limit_zero"
	case TypePruneUnionAllDualChildren:
		return "prune_union_all_dual_children"
	case TypeConvertOuterToInnerJoin:
		return "convert_outer_to_inner_join"
	}
	return "none"
}

// Rule is a rewrite rule applied by the rewrite tree task. A rule matches a
// tree shape through its pattern, guards the match with a precondition check
// and produces at most one replacement for the matched node. Producing more
// than one replacement is a contract violation that aborts the whole pass.
type Rule interface {
	// Type returns the identity of the rule.
	Type() Type
	// Pattern returns the tree shape this rule matches.
	Pattern() *pattern.Pattern
	// Check is the precondition evaluated after the pattern matched.
	Check(expr *core.PlanExpression, ctx *planctx.Context) bool
	// Transform rewrites the matched node, yielding zero or one replacement.
	Transform(expr *core.PlanExpression, ctx *planctx.Context) ([]*core.PlanExpression, error)
	// Predecessors returns the rules applied to the matched node right
	// before this rule's own transform.
	Predecessors() []Rule
	// Successors returns the rules applied to the replacement right after
	// this rule's transform fired.
	Successors() []Rule
	// Exhausted reports whether the rule gave up for the rest of the
	// session; an exhausted rule is never tried again.
	Exhausted(ctx *planctx.Context) bool
}

// baseRule carries the defaults shared by the concrete rules: no chained
// rules, no extra precondition and no exhaustion.
type baseRule struct {
	tp  Type
	pat *pattern.Pattern
}

// Type implements the Rule interface.
func (r *baseRule) Type() Type {
	return r.tp
}

// Pattern implements the Rule interface.
func (r *baseRule) Pattern() *pattern.Pattern {
	return r.pat
}

// Check implements the Rule interface.
func (*baseRule) Check(*core.PlanExpression, *planctx.Context) bool {
	return true
}

// Predecessors implements the Rule interface.
func (*baseRule) Predecessors() []Rule {
	return nil
}

// Successors implements the Rule interface.
func (*baseRule) Successors() []Rule {
	return nil
}

// Exhausted implements the Rule interface.
func (r *baseRule) Exhausted(ctx *planctx.Context) bool {
	return ctx.IsRuleExhausted(uint(r.tp))
}
