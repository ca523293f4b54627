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

// maxMergedConditions bounds the size of a merged condition list. A plan with
// absurdly deep filter stacks would otherwise make the merge quadratic; when
// the bound is hit the rule gives up for the rest of the session.
const maxMergedConditions = 256

// MergeAdjacentSelection merges Selection(Selection(X)) into a single
// Selection carrying both condition lists.
type MergeAdjacentSelection struct {
	baseRule
}

// NewMergeAdjacentSelection creates the rule.
// The pattern of this rule is `Selection -> Selection`.
func NewMergeAdjacentSelection() Rule {
	r := &MergeAdjacentSelection{}
	r.tp = TypeMergeAdjacentSelection
	r.pat = pattern.BuildPattern(pattern.OperandSelection, pattern.NewPattern(pattern.OperandSelection))
	return r
}

// Check implements the Rule interface.
func (r *MergeAdjacentSelection) Check(expr *core.PlanExpression, ctx *planctx.Context) bool {
	outer := expr.Op().(*core.LogicalSelection)
	inner := expr.Child(0).Op().(*core.LogicalSelection)
	if len(outer.Conditions)+len(inner.Conditions) > maxMergedConditions {
		ctx.MarkRuleExhausted(uint(r.tp))
		return false
	}
	return true
}

// Transform implements the Rule interface.
func (*MergeAdjacentSelection) Transform(expr *core.PlanExpression, _ *planctx.Context) ([]*core.PlanExpression, error) {
	outer := expr.Op().(*core.LogicalSelection)
	innerExpr := expr.Child(0)
	inner := innerExpr.Op().(*core.LogicalSelection)

	conditions := make([]expression.Expression, 0, len(inner.Conditions)+len(outer.Conditions))
	conditions = append(conditions, inner.Conditions...)
	conditions = append(conditions, outer.Conditions...)
	merged := core.NewPlanExpression(&core.LogicalSelection{Conditions: conditions}, innerExpr.Children()...)
	return []*core.PlanExpression{merged}, nil
}
