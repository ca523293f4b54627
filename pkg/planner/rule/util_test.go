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

func col(id int64, name string) *expression.Column {
	return &expression.Column{UniqueID: id, Name: name, Nullable: true}
}

func scan(table string, cols ...*expression.Column) *core.PlanExpression {
	return core.NewPlanExpression(&core.DataSource{Table: table, Columns: cols})
}

func emptyDual(cols ...*expression.Column) *core.PlanExpression {
	return core.NewPlanExpression(&core.LogicalTableDual{Columns: cols, RowCount: 0})
}

// runRules rewrites plan to fixpoint with the given rules in a fresh session.
func runRules(t *testing.T, plan *core.PlanExpression, rules ...rule.Rule) *core.PlanExpression {
	t.Helper()
	result, err := rewrite.Rewrite(planctx.NewContext(), plan, rules, false)
	require.NoError(t, err)
	return result
}
