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

// MergeAdjacentLimit merges Limit(Limit(X)) into a single Limit. Merging can
// tighten the count down to zero, so EliminateLimitZero runs as successor to
// collapse the result right away.
type MergeAdjacentLimit struct {
	baseRule
}

// NewMergeAdjacentLimit creates the rule.
// The pattern of this rule is `Limit -> Limit`.
func NewMergeAdjacentLimit() Rule {
	r := &MergeAdjacentLimit{}
	r.tp = TypeMergeAdjacentLimit
	r.pat = pattern.BuildPattern(pattern.OperandLimit, pattern.NewPattern(pattern.OperandLimit))
	return r
}

// Successors implements the Rule interface.
func (*MergeAdjacentLimit) Successors() []Rule {
	return []Rule{newEliminateLimitZeroLeaf()}
}

// Transform implements the Rule interface.
func (*MergeAdjacentLimit) Transform(expr *core.PlanExpression, _ *planctx.Context) ([]*core.PlanExpression, error) {
	outer := expr.Op().(*core.LogicalLimit)
	innerExpr := expr.Child(0)
	inner := innerExpr.Op().(*core.LogicalLimit)

	// The inner limit is applied first; the outer offset then eats into the
	// rows the inner one lets through.
	remaining := uint64(0)
	if inner.Count > outer.Offset {
		remaining = inner.Count - outer.Offset
	}
	count := outer.Count
	if remaining < count {
		count = remaining
	}
	merged := core.NewPlanExpression(
		&core.LogicalLimit{Offset: inner.Offset + outer.Offset, Count: count},
		innerExpr.Children()...)
	return []*core.PlanExpression{merged}, nil
}

// EliminateLimitZero replaces a Limit that lets no row through by an empty
// TableDual with the same output columns. MergeAdjacentLimit runs first as
// predecessor, so a stack of limits is collapsed before the zero test.
type EliminateLimitZero struct {
	baseRule
	// withPredecessor is false for the instance chained as successor of
	// MergeAdjacentLimit, which otherwise would recurse into itself.
	withPredecessor bool
}

// NewEliminateLimitZero creates the rule.
// The pattern of this rule is `Limit`.
func NewEliminateLimitZero() Rule {
	r := newEliminateLimitZeroLeaf().(*EliminateLimitZero)
	r.withPredecessor = true
	return r
}

func newEliminateLimitZeroLeaf() Rule {
	r := &EliminateLimitZero{}
	r.tp = TypeEliminateLimitZero
	r.pat = pattern.BuildPattern(pattern.OperandLimit)
	return r
}

// Predecessors implements the Rule interface.
func (r *EliminateLimitZero) Predecessors() []Rule {
	if !r.withPredecessor {
		return nil
	}
	return []Rule{NewMergeAdjacentLimit()}
}

// Check implements the Rule interface.
func (*EliminateLimitZero) Check(expr *core.PlanExpression, _ *planctx.Context) bool {
	return expr.Op().(*core.LogicalLimit).Count == 0
}

// Transform implements the Rule interface. The predecessor may have replaced
// the node: either by a merged limit that no longer has count zero, or, when
// the merge tightened the count to zero, already by an empty dual through the
// merge rule's own successor. Only a limit with count zero is rewritten here.
func (*EliminateLimitZero) Transform(expr *core.PlanExpression, _ *planctx.Context) ([]*core.PlanExpression, error) {
	limit, ok := expr.Op().(*core.LogicalLimit)
	if !ok || limit.Count != 0 {
		return nil, nil
	}
	dual := &core.LogicalTableDual{RowCount: 0}
	if prop := expr.LogicalProp(); prop != nil {
		dual.Columns = prop.Schema.Columns
	}
	return []*core.PlanExpression{core.NewPlanExpression(dual)}, nil
}
