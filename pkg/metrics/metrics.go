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

// Label constants.
const (
	// LblRule labels metrics by rewrite rule name.
	LblRule = "rule"
)

// NewCounter creates a new prometheus counter.
func NewCounter(opts prometheus.CounterOpts) prometheus.Counter {
	return prometheus.NewCounter(opts)
}

// NewCounterVec creates a new prometheus counter vector.
func NewCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(opts, labelNames)
}

// NewHistogram creates a new prometheus histogram.
func NewHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	return prometheus.NewHistogram(opts)
}

// RegisterMetrics registers all the metrics of this repository to the default
// prometheus registry. It must be called at most once per process.
func RegisterMetrics() {
	prometheus.MustRegister(RewriteRuleCounter)
	prometheus.MustRegister(RewriteTaskCounter)
	prometheus.MustRegister(RewriteDurationHistogram)
}
