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
	"github.com/pelicandb/pelican/pkg/expression"
	"github.com/pelicandb/pelican/pkg/planner/core"
	"github.com/pelicandb/pelican/pkg/planner/pattern"
	"github.com/pelicandb/pelican/pkg/planner/planctx"
)

// CollectNotNullPredicates derives pass-scoped not-null facts from filters.
// A null-rejecting condition in a Selection proves its columns not-null for
// everything underneath, and the traversal visits ancestors first, so the
// facts are already cached when deeper nodes are rewritten. The rule never
// produces a replacement; it only feeds the session context, which resets
// the cache after each pass.
type CollectNotNullPredicates struct {
	baseRule
}

// NewCollectNotNullPredicates creates the rule.
// The pattern of this rule is `Selection`.
func NewCollectNotNullPredicates() Rule {
	r := &CollectNotNullPredicates{}
	r.tp = TypeCollectNotNullPredicates
	r.pat = pattern.BuildPattern(pattern.OperandSelection)
	return r
}

// Check implements the Rule interface.
func (*CollectNotNullPredicates) Check(expr *core.PlanExpression, ctx *planctx.Context) bool {
	sel := expr.Op().(*core.LogicalSelection)
	for _, cond := range sel.Conditions {
		for _, col := range expression.IsNullRejecting(cond) {
			if !ctx.IsColumnNotNull(col.UniqueID) {
				return true
			}
		}
	}
	return false
}

// Transform implements the Rule interface.
func (*CollectNotNullPredicates) Transform(expr *core.PlanExpression, ctx *planctx.Context) ([]*core.PlanExpression, error) {
	sel := expr.Op().(*core.LogicalSelection)
	for _, cond := range sel.Conditions {
		for _, col := range expression.IsNullRejecting(cond) {
			ctx.AddNotNullColumn(col.UniqueID)
		}
	}
	return nil, nil
}

// ConvertOuterToInnerJoin rewrites an outer join to an inner join when a
// filter above it was proven to reject NULLs of the null-extended side: the
// null-extended rows cannot survive that filter anyway.
type ConvertOuterToInnerJoin struct {
	baseRule
}

// NewConvertOuterToInnerJoin creates the rule.
// The pattern of this rule is `Join`.
func NewConvertOuterToInnerJoin() Rule {
	r := &ConvertOuterToInnerJoin{}
	r.tp = TypeConvertOuterToInnerJoin
	r.pat = pattern.BuildPattern(pattern.OperandJoin)
	return r
}

// Check implements the Rule interface.
func (*ConvertOuterToInnerJoin) Check(expr *core.PlanExpression, ctx *planctx.Context) bool {
	join := expr.Op().(*core.LogicalJoin)
	if !join.JoinType.IsOuter() {
		return false
	}
	innerProp := expr.Child(join.InnerChildIdx()).LogicalProp()
	if innerProp == nil {
		return false
	}
	for _, col := range innerProp.Schema.Columns {
		if ctx.IsColumnNotNull(col.UniqueID) {
			return true
		}
	}
	return false
}

// Transform implements the Rule interface.
func (*ConvertOuterToInnerJoin) Transform(expr *core.PlanExpression, _ *planctx.Context) ([]*core.PlanExpression, error) {
	join := expr.Op().(*core.LogicalJoin)
	converted := core.NewPlanExpression(
		&core.LogicalJoin{JoinType: core.InnerJoin, Conditions: join.Conditions},
		expr.Children()...)
	return []*core.PlanExpression{converted}, nil
}
