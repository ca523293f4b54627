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

package rewrite

import (
	"fmt"

	"github.com/pingcap/errors"
	"github.com/pingcap/failpoint"
	"go.uber.org/zap"

	"github.com/pelicandb/pelican/pkg/metrics"
	"github.com/pelicandb/pelican/pkg/planner/core"
	"github.com/pelicandb/pelican/pkg/planner/pattern"
	"github.com/pelicandb/pelican/pkg/planner/planctx"
	"github.com/pelicandb/pelican/pkg/planner/rule"
	"github.com/pelicandb/pelican/pkg/util/logutil"
)

// fpMockRuleTransformError is addressed by its full package path, which is
// what failpoint.Enable expects. It is evaluated through failpoint.Eval so
// no failpoint-ctl source rewrite is needed.
const fpMockRuleTransformError = "github.com/pelicandb/pelican/pkg/planner/rewrite/mockRuleTransformError"

// RewriteTreeTask rewrites a whole plan tree top-down: the rules are applied
// to every node starting from the root, and when the tree changed and the
// task is not restricted to a single pass, an equivalent task is pushed to
// run again, until a full pass leaves the tree unchanged.
type RewriteTreeTask struct {
	ctx   *planctx.Context
	sched Scheduler
	// planTree is the synthetic anchor whose sole child is the subtree
	// being rewritten; the anchor provides the parent slot for replacing
	// the real root.
	planTree *core.PlanExpression
	rules    []rule.Rule
	onlyOnce bool
	change   int64
}

// NewRewriteTreeTask creates a rewrite task over the anchor-wrapped tree.
// The real subtree's top operator must be a logical-stage operator.
func NewRewriteTreeTask(ctx *planctx.Context, sched Scheduler, root *core.PlanExpression,
	rules []rule.Rule, onlyOnce bool) (*RewriteTreeTask, error) {
	if root.ChildrenLen() != 1 {
		return nil, errors.Errorf("rewrite anchor must hold exactly one subtree, got %d", root.ChildrenLen())
	}
	if phase := root.Child(0).Op().Phase(); phase != core.PhaseLogical {
		return nil, errors.Errorf("rewrite expects a logical plan on top, got operator %s", root.Child(0).Op().Name())
	}
	return &RewriteTreeTask{
		ctx:      ctx,
		sched:    sched,
		planTree: root,
		rules:    rules,
		onlyOnce: onlyOnce,
	}, nil
}

// GetResult returns the rewritten subtree under the anchor.
func (t *RewriteTreeTask) GetResult() *core.PlanExpression {
	return t.planTree.Child(0)
}

// HasChange reports whether this task's pass replaced any node.
func (t *RewriteTreeTask) HasChange() bool {
	return t.change > 0
}

// Desc implements the Task interface.
func (t *RewriteTreeTask) Desc() string {
	return fmt.Sprintf("RewriteTreeTask{rules:%d, onlyOnce:%v}", len(t.rules), t.onlyOnce)
}

// Execute implements the Task interface. It performs one full rewrite pass
// and reschedules an equivalent task when the tree changed.
func (t *RewriteTreeTask) Execute() error {
	allDisabled := true
	for _, r := range t.rules {
		if !t.ctx.IsRuleDisabled(uint(r.Type())) {
			allDisabled = false
			break
		}
	}
	if allDisabled {
		return nil
	}
	metrics.RewriteTaskCounter.Inc()

	err := t.rewrite(t.planTree, 0, t.planTree.Child(0))
	// The not-null facts are bound to the tree shape of this pass; drop them
	// before another task runs, error or not.
	t.ctx.ClearNotNullColumns()
	if err != nil {
		return err
	}

	if t.change > 0 && !t.onlyOnce {
		next, err := NewRewriteTreeTask(t.ctx, t.sched, t.planTree, t.rules, false)
		if err != nil {
			return err
		}
		t.sched.PushTask(next)
	}
	return nil
}

// rewrite applies the rules to root, then recurses into the children of the
// possibly replaced node. Children are visited from the last index to the
// first: pruning rules rely on the right siblings having been rewritten
// already, so this order must not be normalized to forward order.
func (t *RewriteTreeTask) rewrite(parent *core.PlanExpression, childIdx int, root *core.PlanExpression) error {
	root, err := t.applyRules(parent, childIdx, root, t.rules)
	if err != nil {
		return err
	}
	for i := root.ChildrenLen() - 1; i >= 0; i-- {
		if err := t.rewrite(root, i, root.Child(i)); err != nil {
			return err
		}
	}
	return nil
}

// applyRules tries every rule of the list against root in order. A firing
// rule replaces the parent's child slot, and the replacement is what the
// remaining rules are tried against. Predecessor rules run on the matched
// node before the main transform; successor rules run on the replacement
// after it.
func (t *RewriteTreeTask) applyRules(parent *core.PlanExpression, childIdx int,
	root *core.PlanExpression, rules []rule.Rule) (*core.PlanExpression, error) {
	for _, r := range rules {
		if t.ctx.IsRuleDisabled(uint(r.Type())) {
			continue
		}
		if r.Exhausted(t.ctx) {
			continue
		}
		if !pattern.Match(r.Pattern(), root) || !r.Check(root, t.ctx) {
			continue
		}

		if preds := r.Predecessors(); len(preds) > 0 {
			var err error
			root, err = t.applyRules(parent, childIdx, root, preds)
			if err != nil {
				return nil, err
			}
		}

		logApplyRuleBefore(r, root)
		done := t.ctx.Tracer().WatchScope(r.Type().String())
		result, err := r.Transform(root, t.ctx)
		done()
		if _, ferr := failpoint.Eval(fpMockRuleTransformError); ferr == nil {
			err = errors.New("mock rule transform error")
		}
		if err != nil {
			return nil, errors.Trace(err)
		}
		if len(result) > 1 {
			return nil, errors.Errorf("rewrite rule %s should provide at most 1 plan, got %d", r.Type(), len(result))
		}
		logApplyRuleAfter(r, result)

		if len(result) == 0 {
			continue
		}

		parent.SetChild(childIdx, result[0])
		root = result[0]
		t.change++
		metrics.RewriteRuleCounter.WithLabelValues(r.Type().String()).Inc()
		core.DeriveLogicalProperty(root)

		if succs := r.Successors(); len(succs) > 0 {
			var err error
			root, err = t.applyRules(parent, childIdx, root, succs)
			if err != nil {
				return nil, err
			}
		}
	}
	return root, nil
}

func logApplyRuleBefore(r rule.Rule, root *core.PlanExpression) {
	logutil.BgLogger().Debug("apply rewrite rule",
		zap.Stringer("rule", r.Type()),
		zap.Stringer("plan", root))
}

func logApplyRuleAfter(r rule.Rule, result []*core.PlanExpression) {
	if len(result) == 0 {
		return
	}
	logutil.BgLogger().Debug("rewrite rule fired",
		zap.Stringer("rule", r.Type()),
		zap.Stringer("plan", result[0]))
}
