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

package rule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pelicandb/pelican/pkg/expression"
	"github.com/pelicandb/pelican/pkg/planner/core"
	"github.com/pelicandb/pelican/pkg/planner/rule"
)

func limitPlan(outer, inner *core.LogicalLimit, cols ...*expression.Column) *core.PlanExpression {
	return core.NewPlanExpression(outer,
		core.NewPlanExpression(inner, scan("t", cols...)))
}

func TestMergeAdjacentLimit(t *testing.T) {
	a := col(1, "a")
	plan := limitPlan(&core.LogicalLimit{Offset: 1, Count: 5}, &core.LogicalLimit{Offset: 2, Count: 3}, a)

	result := runRules(t, plan, rule.NewMergeAdjacentLimit())
	merged, ok := result.Op().(*core.LogicalLimit)
	require.True(t, ok)
	// The inner limit lets rows 2..4 through; the outer offset 1 drops one
	// more, leaving 2 rows starting at offset 3.
	require.EqualValues(t, 3, merged.Offset)
	require.EqualValues(t, 2, merged.Count)
	require.IsType(t, &core.DataSource{}, result.Child(0).Op())
}

func TestMergeAdjacentLimitToZero(t *testing.T) {
	a := col(1, "a")
	// The outer offset skips more rows than the inner limit lets through, so
	// the merged count is zero and the successor collapses it to a dual.
	plan := limitPlan(&core.LogicalLimit{Offset: 3, Count: 4}, &core.LogicalLimit{Count: 2}, a)

	result := runRules(t, plan, rule.NewMergeAdjacentLimit())
	dual, ok := result.Op().(*core.LogicalTableDual)
	require.True(t, ok)
	require.Zero(t, dual.RowCount)
	require.Equal(t, []*expression.Column{a}, dual.Columns)
	require.Zero(t, result.ChildrenLen())
}

func TestEliminateLimitZero(t *testing.T) {
	a := col(1, "a")
	plan := core.NewPlanExpression(&core.LogicalLimit{Count: 0}, scan("t", a))

	result := runRules(t, plan, rule.NewEliminateLimitZero())
	dual, ok := result.Op().(*core.LogicalTableDual)
	require.True(t, ok)
	require.Zero(t, dual.RowCount)
	require.Equal(t, []*expression.Column{a}, dual.Columns)
}

func TestEliminateLimitZeroMergesStackFirst(t *testing.T) {
	a := col(1, "a")
	// The top limit has count zero, so the rule fires; its predecessor merges
	// the stack, and the merge's own successor already collapses the merged
	// limit to a dual. The outer transform must then step aside instead of
	// treating the dual as a limit.
	plan := limitPlan(&core.LogicalLimit{Count: 0}, &core.LogicalLimit{Offset: 7, Count: 9}, a)

	result := runRules(t, plan, rule.NewEliminateLimitZero())
	dual, ok := result.Op().(*core.LogicalTableDual)
	require.True(t, ok)
	require.Zero(t, dual.RowCount)
	require.Equal(t, []*expression.Column{a}, dual.Columns)
	require.Zero(t, result.ChildrenLen())
}

func TestLimitWithRowsIsKept(t *testing.T) {
	a := col(1, "a")
	plan := core.NewPlanExpression(&core.LogicalLimit{Offset: 1, Count: 10}, scan("t", a))

	result := runRules(t, plan, rule.NewEliminateLimitZero(), rule.NewMergeAdjacentLimit())
	require.IsType(t, &core.LogicalLimit{}, result.Op())
	require.IsType(t, &core.DataSource{}, result.Child(0).Op())
}
