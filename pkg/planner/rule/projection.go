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

// MergeAdjacentProjection merges Projection(Projection(X)) into a single
// Projection by substituting the lower projection's expressions into the
// upper one.
type MergeAdjacentProjection struct {
	baseRule
}

// NewMergeAdjacentProjection creates the rule.
// The pattern of this rule is `Projection -> Projection`.
func NewMergeAdjacentProjection() Rule {
	r := &MergeAdjacentProjection{}
	r.tp = TypeMergeAdjacentProjection
	r.pat = pattern.BuildPattern(pattern.OperandProjection, pattern.NewPattern(pattern.OperandProjection))
	return r
}

// Transform implements the Rule interface.
func (*MergeAdjacentProjection) Transform(expr *core.PlanExpression, _ *planctx.Context) ([]*core.PlanExpression, error) {
	upper := expr.Op().(*core.LogicalProjection)
	lowerExpr := expr.Child(0)
	lower := lowerExpr.Op().(*core.LogicalProjection)

	lowerSchema := expression.NewSchema(lower.Cols...)
	newExprs := make([]expression.Expression, 0, len(upper.Exprs))
	for _, e := range upper.Exprs {
		newExprs = append(newExprs, expression.ColumnSubstitute(e, lowerSchema, lower.Exprs))
	}
	merged := core.NewPlanExpression(
		&core.LogicalProjection{Exprs: newExprs, Cols: upper.Cols},
		lowerExpr.Children()...)
	return []*core.PlanExpression{merged}, nil
}

// EliminateProjection removes a projection that forwards its child's output
// unchanged, replacing it by the child.
type EliminateProjection struct {
	baseRule
}

// NewEliminateProjection creates the rule.
// The pattern of this rule is `Projection -> Any`.
func NewEliminateProjection() Rule {
	r := &EliminateProjection{}
	r.tp = TypeEliminateProjection
	r.pat = pattern.BuildPattern(pattern.OperandProjection, pattern.NewPattern(pattern.OperandAny))
	return r
}

// Check implements the Rule interface. The projection is removable only when
// it outputs exactly the child's columns, in order and under the same unique
// IDs, so no ancestor reference can dangle.
func (*EliminateProjection) Check(expr *core.PlanExpression, _ *planctx.Context) bool {
	proj := expr.Op().(*core.LogicalProjection)
	childProp := expr.Child(0).LogicalProp()
	if childProp == nil || len(proj.Exprs) != childProp.Schema.Len() {
		return false
	}
	for i, e := range proj.Exprs {
		col, ok := e.(*expression.Column)
		if !ok {
			return false
		}
		if !col.Equal(childProp.Schema.Columns[i]) || !proj.Cols[i].Equal(col) {
			return false
		}
	}
	return true
}

// Transform implements the Rule interface.
func (*EliminateProjection) Transform(expr *core.PlanExpression, _ *planctx.Context) ([]*core.PlanExpression, error) {
	return []*core.PlanExpression{expr.Child(0)}, nil
}
