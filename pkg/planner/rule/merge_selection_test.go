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
	"github.com/pelicandb/pelican/pkg/planner/planctx"
	"github.com/pelicandb/pelican/pkg/planner/rewrite"
	"github.com/pelicandb/pelican/pkg/planner/rule"
)

func TestMergeAdjacentSelection(t *testing.T) {
	a := col(1, "a")
	b := col(2, "b")
	c1 := expression.NewFunction(expression.FuncEQ, a, &expression.Constant{Value: 1})
	c2 := expression.NewFunction(expression.FuncEQ, b, &expression.Constant{Value: 2})
	plan := core.NewPlanExpression(&core.LogicalSelection{Conditions: []expression.Expression{c1}},
		core.NewPlanExpression(&core.LogicalSelection{Conditions: []expression.Expression{c2}},
			scan("t", a, b)))

	result := runRules(t, plan, rule.NewMergeAdjacentSelection())
	sel, ok := result.Op().(*core.LogicalSelection)
	require.True(t, ok)
	// Inner conditions come first.
	require.Equal(t, []expression.Expression{c2, c1}, sel.Conditions)
	require.IsType(t, &core.DataSource{}, result.Child(0).Op())
}

func TestMergeAdjacentSelectionGivesUpOnHugeFilters(t *testing.T) {
	a := col(1, "a")
	huge := make([]expression.Expression, 300)
	for i := range huge {
		huge[i] = expression.NewFunction(expression.FuncEQ, a, &expression.Constant{Value: i})
	}
	small := expression.NewFunction(expression.FuncIsNotNull, a)
	plan := core.NewPlanExpression(&core.LogicalSelection{Conditions: []expression.Expression{small}},
		core.NewPlanExpression(&core.LogicalSelection{Conditions: huge},
			scan("t", a)))

	ctx := planctx.NewContext()
	result, err := rewrite.Rewrite(ctx, plan, []rule.Rule{rule.NewMergeAdjacentSelection()}, false)
	require.NoError(t, err)

	// Nothing merged, and the rule is out of the game for this session.
	require.Len(t, result.Op().(*core.LogicalSelection).Conditions, 1)
	require.True(t, ctx.IsRuleExhausted(uint(rule.TypeMergeAdjacentSelection)))

	// Even a trivially mergeable stack is skipped now.
	b := col(2, "b")
	cond := expression.NewFunction(expression.FuncIsNotNull, b)
	trivial := core.NewPlanExpression(&core.LogicalSelection{Conditions: []expression.Expression{cond}},
		core.NewPlanExpression(&core.LogicalSelection{Conditions: []expression.Expression{cond}},
			scan("u", b)))
	result, err = rewrite.Rewrite(ctx, trivial, []rule.Rule{rule.NewMergeAdjacentSelection()}, false)
	require.NoError(t, err)
	require.IsType(t, &core.LogicalSelection{}, result.Child(0).Op())
}
