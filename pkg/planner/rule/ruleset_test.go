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

	"github.com/pelicandb/pelican/pkg/planner/planctx"
	"github.com/pelicandb/pelican/pkg/planner/rule"
)

func TestDefaultRewriteRules(t *testing.T) {
	rules := rule.DefaultRewriteRules()
	require.Len(t, rules, 8)
	// Fact collection runs before any rule that may consume or destroy the
	// collected filters.
	require.Equal(t, rule.TypeCollectNotNullPredicates, rules[0].Type())

	seen := make(map[rule.Type]struct{}, len(rules))
	for _, r := range rules {
		require.NotEqual(t, rule.TypeNone, r.Type())
		require.NotNil(t, r.Pattern())
		_, dup := seen[r.Type()]
		require.False(t, dup, "duplicate rule %s", r.Type())
		seen[r.Type()] = struct{}{}
	}
}

func TestDisableRules(t *testing.T) {
	ctx := planctx.NewContext()
	err := rule.DisableRules(ctx, []string{"merge_adjacent_selection", "eliminate_limit_zero"})
	require.NoError(t, err)
	require.True(t, ctx.IsRuleDisabled(uint(rule.TypeMergeAdjacentSelection)))
	require.True(t, ctx.IsRuleDisabled(uint(rule.TypeEliminateLimitZero)))
	require.False(t, ctx.IsRuleDisabled(uint(rule.TypeMergeAdjacentLimit)))
}

func TestDisableUnknownRule(t *testing.T) {
	err := rule.DisableRules(planctx.NewContext(), []string{"no_such_rule"})
	require.ErrorContains(t, err, `unknown rewrite rule "no_such_rule"`)
}

func TestRuleTypeNames(t *testing.T) {
	require.Equal(t, "merge_adjacent_selection", rule.TypeMergeAdjacentSelection.String())
	require.Equal(t, "convert_outer_to_inner_join", rule.TypeConvertOuterToInnerJoin.String())
	require.Equal(t, "none", rule.TypeNone.String())
}
