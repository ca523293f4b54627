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
	"github.com/pingcap/errors"

	"github.com/pelicandb/pelican/pkg/planner/planctx"
)

// DefaultRewriteRules returns the standard rule list of the rewrite phase in
// application order. CollectNotNullPredicates comes first so the not-null
// facts of a node's own filters are cached before any rule rewrites it.
func DefaultRewriteRules() []Rule {
	return []Rule{
		NewCollectNotNullPredicates(),
		NewMergeAdjacentSelection(),
		NewMergeAdjacentProjection(),
		NewEliminateProjection(),
		NewMergeAdjacentLimit(),
		NewEliminateLimitZero(),
		NewPruneUnionAllDualChildren(),
		NewConvertOuterToInnerJoin(),
	}
}

// typeByName maps a rule name back to its type, for the configuration's rule
// blacklist.
var typeByName = map[string]Type{}

func init() {
	for tp := TypeCollectNotNullPredicates; tp <= TypeConvertOuterToInnerJoin; tp++ {
		typeByName[tp.String()] = tp
	}
}

// DisableRules switches off the named rules in the session context. Unknown
// names are rejected, matching the config loader's strictness.
func DisableRules(ctx *planctx.Context, names []string) error {
	for _, name := range names {
		tp, ok := typeByName[name]
		if !ok {
			return errors.Errorf("unknown rewrite rule %q", name)
		}
		ctx.DisableRule(uint(tp))
	}
	return nil
}
