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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Planner metrics.
var (
	// RewriteRuleCounter counts rewrite rule firings by rule name.
	RewriteRuleCounter = NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pelican",
			Subsystem: "planner",
			Name:      "rewrite_rule_total",
			Help:      "Counter of fired rewrite rules.",
		}, []string{LblRule})

	// RewriteTaskCounter counts executed rewrite passes.
	RewriteTaskCounter = NewCounter(
		prometheus.CounterOpts{
			Namespace: "pelican",
			Subsystem: "planner",
			Name:      "rewrite_task_total",
			Help:      "Counter of executed rewrite tree tasks.",
		})

	// RewriteDurationHistogram records the wall time of a whole rewrite
	// invocation, fixpoint iteration included.
	RewriteDurationHistogram = NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pelican",
			Subsystem: "planner",
			Name:      "rewrite_duration_seconds",
			Help:      "Bucketed histogram of processing time (s) of the rewrite phase.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20), // 0.1ms ~ 52s
		})
)
