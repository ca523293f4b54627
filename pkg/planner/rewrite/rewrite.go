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

// Package rewrite implements the rule-based rewrite phase of the query
// optimizer: it repeatedly transforms a logical plan tree in place by
// matching rule patterns against nodes, until no rule fires anywhere.
package rewrite

import (
	"time"

	"github.com/pelicandb/pelican/pkg/metrics"
	"github.com/pelicandb/pelican/pkg/planner/core"
	"github.com/pelicandb/pelican/pkg/planner/planctx"
	"github.com/pelicandb/pelican/pkg/planner/rule"
)

// Rewrite runs the rewrite phase over plan with the given rules and returns
// the rewritten tree. Unless onlyOnce is set, passes repeat until one of
// them leaves the tree unchanged. Any rule error aborts the whole phase; no
// partially rewritten plan is ever returned.
func Rewrite(ctx *planctx.Context, plan *core.PlanExpression, rules []rule.Rule, onlyOnce bool) (*core.PlanExpression, error) {
	start := time.Now()
	defer func() {
		metrics.RewriteDurationHistogram.Observe(time.Since(start).Seconds())
	}()

	// Rule preconditions may inspect any node's property, so the initial
	// tree must be fully derived before the first pass.
	core.DeriveLogicalProperty(plan)
	anchor := core.NewPlanExpression(&core.LogicalRewriteAnchor{}, plan)

	sched := NewSimpleTaskScheduler()
	defer sched.Destroy()
	task, err := NewRewriteTreeTask(ctx, sched, anchor, rules, onlyOnce)
	if err != nil {
		return nil, err
	}
	sched.PushTask(task)
	if err := sched.ExecuteTasks(); err != nil {
		return nil, err
	}
	return anchor.Child(0), nil
}
