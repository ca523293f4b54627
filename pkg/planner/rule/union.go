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

// PruneUnionAllDualChildren drops empty TableDual children from a UnionAll:
// they contribute no rows. When every child is empty the whole union
// collapses to a single empty dual. The union wrapper itself is kept even
// for a sole survivor so the output column IDs stay stable for ancestors.
type PruneUnionAllDualChildren struct {
	baseRule
}

// NewPruneUnionAllDualChildren creates the rule.
// The pattern of this rule is `UnionAll -> [multi leaf]`.
func NewPruneUnionAllDualChildren() Rule {
	r := &PruneUnionAllDualChildren{}
	r.tp = TypePruneUnionAllDualChildren
	r.pat = pattern.BuildPattern(pattern.OperandUnionAll, pattern.NewPattern(pattern.OperandMultiLeaf))
	return r
}

func isEmptyDual(expr *core.PlanExpression) bool {
	dual, ok := expr.Op().(*core.LogicalTableDual)
	return ok && dual.RowCount == 0
}

// Check implements the Rule interface.
func (*PruneUnionAllDualChildren) Check(expr *core.PlanExpression, _ *planctx.Context) bool {
	for _, child := range expr.Children() {
		if isEmptyDual(child) {
			return true
		}
	}
	return false
}

// Transform implements the Rule interface.
func (*PruneUnionAllDualChildren) Transform(expr *core.PlanExpression, _ *planctx.Context) ([]*core.PlanExpression, error) {
	survivors := make([]*core.PlanExpression, 0, expr.ChildrenLen())
	for _, child := range expr.Children() {
		if !isEmptyDual(child) {
			survivors = append(survivors, child)
		}
	}
	if len(survivors) == 0 {
		dual := &core.LogicalTableDual{RowCount: 0}
		if prop := expr.LogicalProp(); prop != nil {
			dual.Columns = prop.Schema.Columns
		}
		return []*core.PlanExpression{core.NewPlanExpression(dual)}, nil
	}
	pruned := core.NewPlanExpression(&core.LogicalUnionAll{}, survivors...)
	return []*core.PlanExpression{pruned}, nil
}
