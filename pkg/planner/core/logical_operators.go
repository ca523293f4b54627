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

package core

import (
	"fmt"
	"strings"

	"github.com/pelicandb/pelican/pkg/expression"
	"github.com/pelicandb/pelican/pkg/planner/property"
)

// Phase tells which optimization stage an operator belongs to. The rewrite
// phase only ever sees logical operators; physical operators are introduced
// by the later cost-based phase.
type Phase int

const (
	// PhaseLogical marks relational-algebra operators before a physical
	// execution strategy is chosen.
	PhaseLogical Phase = iota
	// PhasePhysical marks operators carrying an execution strategy.
	PhasePhysical
)

// LogicalOperator is the operator payload of a PlanExpression.
type LogicalOperator interface {
	// Name returns the operator name used in explain output.
	Name() string
	// ExplainInfo returns the operator detail used in explain output.
	ExplainInfo() string
	// Phase returns the optimization stage this operator belongs to.
	Phase() Phase
	// DeriveLogicalProp computes this operator's logical property from the
	// already-derived properties of its children.
	DeriveLogicalProp(children []*property.LogicalProperty) *property.LogicalProperty
}

// baseOperator provides the defaults shared by all logical operators.
type baseOperator struct{}

func (baseOperator) ExplainInfo() string { return "" }
func (baseOperator) Phase() Phase        { return PhaseLogical }

// LogicalRewriteAnchor is the synthetic root the rewrite phase puts above the
// real plan so that the top operator has a parent slot to be replaced in.
type LogicalRewriteAnchor struct {
	baseOperator
}

// Name implements the LogicalOperator interface.
func (*LogicalRewriteAnchor) Name() string { return "RewriteAnchor" }

// DeriveLogicalProp implements the LogicalOperator interface.
func (*LogicalRewriteAnchor) DeriveLogicalProp(children []*property.LogicalProperty) *property.LogicalProperty {
	if len(children) == 0 {
		return property.NewLogicalProperty(expression.NewSchema(), false)
	}
	return children[0]
}

// DataSource is a scan of a base table.
type DataSource struct {
	baseOperator
	Table   string
	Columns []*expression.Column
}

// Name implements the LogicalOperator interface.
func (*DataSource) Name() string { return "DataSource" }

// ExplainInfo implements the LogicalOperator interface.
func (ds *DataSource) ExplainInfo() string { return "table:" + ds.Table }

// DeriveLogicalProp implements the LogicalOperator interface.
func (ds *DataSource) DeriveLogicalProp([]*property.LogicalProperty) *property.LogicalProperty {
	return property.NewLogicalProperty(expression.NewSchema(ds.Columns...), false)
}

// LogicalSelection filters rows by a conjunction of conditions.
type LogicalSelection struct {
	baseOperator
	Conditions []expression.Expression
}

// Name implements the LogicalOperator interface.
func (*LogicalSelection) Name() string { return "Selection" }

// ExplainInfo implements the LogicalOperator interface.
func (sel *LogicalSelection) ExplainInfo() string { return exprListString(sel.Conditions) }

// DeriveLogicalProp implements the LogicalOperator interface.
func (*LogicalSelection) DeriveLogicalProp(children []*property.LogicalProperty) *property.LogicalProperty {
	return property.NewLogicalProperty(children[0].Schema.Clone(), children[0].MaxOneRow)
}

// LogicalProjection evaluates one expression per output column.
type LogicalProjection struct {
	baseOperator
	// Exprs are evaluated against the child's output.
	Exprs []expression.Expression
	// Cols are the output columns, one per expression, assigned when the
	// projection is built.
	Cols []*expression.Column
}

// Name implements the LogicalOperator interface.
func (*LogicalProjection) Name() string { return "Projection" }

// ExplainInfo implements the LogicalOperator interface.
func (proj *LogicalProjection) ExplainInfo() string { return exprListString(proj.Exprs) }

// DeriveLogicalProp implements the LogicalOperator interface.
func (proj *LogicalProjection) DeriveLogicalProp(children []*property.LogicalProperty) *property.LogicalProperty {
	return property.NewLogicalProperty(expression.NewSchema(proj.Cols...), children[0].MaxOneRow)
}

// JoinType tells the semantics of a join operator.
type JoinType int

const (
	// InnerJoin keeps only matched row pairs.
	InnerJoin JoinType = iota
	// LeftOuterJoin keeps unmatched left rows, null-extending the right side.
	LeftOuterJoin
	// RightOuterJoin keeps unmatched right rows, null-extending the left side.
	RightOuterJoin
)

// String implements the fmt.Stringer interface.
func (tp JoinType) String() string {
	switch tp {
	case InnerJoin:
		return "inner join"
	case LeftOuterJoin:
		return "left outer join"
	case RightOuterJoin:
		return "right outer join"
	}
	return "unsupported join type"
}

// IsOuter reports whether the join null-extends one side.
func (tp JoinType) IsOuter() bool {
	return tp == LeftOuterJoin || tp == RightOuterJoin
}

// LogicalJoin joins two children on a conjunction of conditions.
type LogicalJoin struct {
	baseOperator
	JoinType   JoinType
	Conditions []expression.Expression
}

// Name implements the LogicalOperator interface.
func (*LogicalJoin) Name() string { return "Join" }

// ExplainInfo implements the LogicalOperator interface.
func (join *LogicalJoin) ExplainInfo() string {
	if len(join.Conditions) == 0 {
		return join.JoinType.String()
	}
	return join.JoinType.String() + ", " + exprListString(join.Conditions)
}

// InnerChildIdx returns the index of the null-extended child of an outer
// join, -1 for other join types.
func (join *LogicalJoin) InnerChildIdx() int {
	switch join.JoinType {
	case LeftOuterJoin:
		return 1
	case RightOuterJoin:
		return 0
	}
	return -1
}

// DeriveLogicalProp implements the LogicalOperator interface.
func (*LogicalJoin) DeriveLogicalProp(children []*property.LogicalProperty) *property.LogicalProperty {
	schema := expression.MergeSchema(children[0].Schema, children[1].Schema)
	return property.NewLogicalProperty(schema, children[0].MaxOneRow && children[1].MaxOneRow)
}

// AggregateFunc is an aggregate call inside a LogicalAggregation.
type AggregateFunc struct {
	FuncName string
	Arg      expression.Expression
	// Output is the column this aggregate produces.
	Output *expression.Column
}

// String implements the fmt.Stringer interface.
func (af *AggregateFunc) String() string {
	if af.Arg == nil {
		return af.FuncName + "()"
	}
	return fmt.Sprintf("%s(%s)", af.FuncName, af.Arg)
}

// LogicalAggregation groups rows and evaluates aggregate functions.
type LogicalAggregation struct {
	baseOperator
	GroupByCols []*expression.Column
	AggFuncs    []*AggregateFunc
}

// Name implements the LogicalOperator interface.
func (*LogicalAggregation) Name() string { return "Aggregation" }

// ExplainInfo implements the LogicalOperator interface.
func (agg *LogicalAggregation) ExplainInfo() string {
	parts := make([]string, 0, len(agg.AggFuncs))
	for _, af := range agg.AggFuncs {
		parts = append(parts, af.String())
	}
	return strings.Join(parts, ", ")
}

// DeriveLogicalProp implements the LogicalOperator interface.
func (agg *LogicalAggregation) DeriveLogicalProp([]*property.LogicalProperty) *property.LogicalProperty {
	cols := make([]*expression.Column, 0, len(agg.GroupByCols)+len(agg.AggFuncs))
	cols = append(cols, agg.GroupByCols...)
	for _, af := range agg.AggFuncs {
		cols = append(cols, af.Output)
	}
	// A scalar aggregation always yields exactly one row.
	return property.NewLogicalProperty(expression.NewSchema(cols...), len(agg.GroupByCols) == 0)
}

// LogicalLimit skips Offset rows and keeps at most Count rows.
type LogicalLimit struct {
	baseOperator
	Offset uint64
	Count  uint64
}

// Name implements the LogicalOperator interface.
func (*LogicalLimit) Name() string { return "Limit" }

// ExplainInfo implements the LogicalOperator interface.
func (lt *LogicalLimit) ExplainInfo() string {
	return fmt.Sprintf("offset:%d, count:%d", lt.Offset, lt.Count)
}

// DeriveLogicalProp implements the LogicalOperator interface.
func (lt *LogicalLimit) DeriveLogicalProp(children []*property.LogicalProperty) *property.LogicalProperty {
	return property.NewLogicalProperty(children[0].Schema.Clone(), lt.Count <= 1 || children[0].MaxOneRow)
}

// ByItem is a sort key with direction.
type ByItem struct {
	Expr expression.Expression
	Desc bool
}

// String implements the fmt.Stringer interface.
func (bi *ByItem) String() string {
	if bi.Desc {
		return bi.Expr.String() + " desc"
	}
	return bi.Expr.String()
}

// LogicalSort sorts rows by the given keys.
type LogicalSort struct {
	baseOperator
	ByItems []*ByItem
}

// Name implements the LogicalOperator interface.
func (*LogicalSort) Name() string { return "Sort" }

// ExplainInfo implements the LogicalOperator interface.
func (sort *LogicalSort) ExplainInfo() string { return byItemsString(sort.ByItems) }

// DeriveLogicalProp implements the LogicalOperator interface.
func (*LogicalSort) DeriveLogicalProp(children []*property.LogicalProperty) *property.LogicalProperty {
	return property.NewLogicalProperty(children[0].Schema.Clone(), children[0].MaxOneRow)
}

// LogicalTopN sorts rows and keeps the first Count after Offset.
type LogicalTopN struct {
	baseOperator
	ByItems []*ByItem
	Offset  uint64
	Count   uint64
}

// Name implements the LogicalOperator interface.
func (*LogicalTopN) Name() string { return "TopN" }

// ExplainInfo implements the LogicalOperator interface.
func (topN *LogicalTopN) ExplainInfo() string {
	return fmt.Sprintf("%s, offset:%d, count:%d", byItemsString(topN.ByItems), topN.Offset, topN.Count)
}

// DeriveLogicalProp implements the LogicalOperator interface.
func (topN *LogicalTopN) DeriveLogicalProp(children []*property.LogicalProperty) *property.LogicalProperty {
	return property.NewLogicalProperty(children[0].Schema.Clone(), topN.Count <= 1 || children[0].MaxOneRow)
}

// LogicalUnionAll concatenates the outputs of all its children. All children
// produce column lists of the same shape; the output schema is taken from the
// first child.
type LogicalUnionAll struct {
	baseOperator
}

// Name implements the LogicalOperator interface.
func (*LogicalUnionAll) Name() string { return "UnionAll" }

// DeriveLogicalProp implements the LogicalOperator interface.
func (*LogicalUnionAll) DeriveLogicalProp(children []*property.LogicalProperty) *property.LogicalProperty {
	if len(children) == 0 {
		return property.NewLogicalProperty(expression.NewSchema(), true)
	}
	return property.NewLogicalProperty(children[0].Schema.Clone(), false)
}

// LogicalTableDual produces RowCount rows with the given columns without
// reading any table. RowCount 0 is the canonical empty result.
type LogicalTableDual struct {
	baseOperator
	Columns  []*expression.Column
	RowCount int
}

// Name implements the LogicalOperator interface.
func (*LogicalTableDual) Name() string { return "TableDual" }

// ExplainInfo implements the LogicalOperator interface.
func (dual *LogicalTableDual) ExplainInfo() string {
	return fmt.Sprintf("rows:%d", dual.RowCount)
}

// DeriveLogicalProp implements the LogicalOperator interface.
func (dual *LogicalTableDual) DeriveLogicalProp([]*property.LogicalProperty) *property.LogicalProperty {
	return property.NewLogicalProperty(expression.NewSchema(dual.Columns...), dual.RowCount <= 1)
}

func exprListString(exprs []expression.Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		parts = append(parts, expr.String())
	}
	return strings.Join(parts, ", ")
}

func byItemsString(items []*ByItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.String())
	}
	return strings.Join(parts, ", ")
}
