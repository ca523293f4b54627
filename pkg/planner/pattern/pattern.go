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

package pattern

import (
	"github.com/pelicandb/pelican/pkg/planner/core"
)

// Operand is the node of a pattern tree, it represents a logical operator
// kind. Different from a plan operator which holds the full information about
// an expression operator, Operand only stores the type information.
// An Operand may correspond to a concrete logical operator, or it can have a
// special meaning, e.g. a placeholder for any logical operator.
type Operand int

const (
	// OperandAny is a placeholder for any single operator.
	OperandAny Operand = iota
	// OperandMultiLeaf is a placeholder absorbing a variable-length run of
	// children, usable once inside a pattern's child list.
	OperandMultiLeaf
	// OperandDataSource is the operand for DataSource.
	OperandDataSource
	// OperandSelection is the operand for LogicalSelection.
	OperandSelection
	// OperandProjection is the operand for LogicalProjection.
	OperandProjection
	// OperandJoin is the operand for LogicalJoin.
	OperandJoin
	// OperandAggregation is the operand for LogicalAggregation.
	OperandAggregation
	// OperandLimit is the operand for LogicalLimit.
	OperandLimit
	// OperandSort is the operand for LogicalSort.
	OperandSort
	// OperandTopN is the operand for LogicalTopN.
	OperandTopN
	// OperandUnionAll is the operand for LogicalUnionAll.
	OperandUnionAll
	// OperandTableDual is the operand for LogicalTableDual.
	OperandTableDual
	// OperandUnsupported is the operand for operators no rule matches on.
	OperandUnsupported
)

// GetOperand maps a logical operator to its Operand.
func GetOperand(op core.LogicalOperator) Operand {
	switch op.(type) {
	case *core.DataSource:
		return OperandDataSource
	case *core.LogicalSelection:
		return OperandSelection
	case *core.LogicalProjection:
		return OperandProjection
	case *core.LogicalJoin:
		return OperandJoin
	case *core.LogicalAggregation:
		return OperandAggregation
	case *core.LogicalLimit:
		return OperandLimit
	case *core.LogicalSort:
		return OperandSort
	case *core.LogicalTopN:
		return OperandTopN
	case *core.LogicalUnionAll:
		return OperandUnionAll
	case *core.LogicalTableDual:
		return OperandTableDual
	}
	return OperandUnsupported
}

// Match checks whether the Operand matches the required one.
func (o Operand) Match(t Operand) bool {
	if o == OperandAny || t == OperandAny {
		return true
	}
	return o == t
}

// Pattern defines the shape a rewrite rule is willing to match: an operand
// for the node itself plus an ordered list of child patterns. A nil child
// list matches any node of the operand regardless of its actual child count.
type Pattern struct {
	Operand  Operand
	Children []*Pattern
}

// NewPattern creates a leaf pattern node for the operand.
func NewPattern(operand Operand) *Pattern {
	return &Pattern{Operand: operand}
}

// BuildPattern builds a pattern from an operand and child patterns.
func BuildPattern(operand Operand, children ...*Pattern) *Pattern {
	return &Pattern{Operand: operand, Children: children}
}

// SetChildren sets the child patterns.
func (p *Pattern) SetChildren(children ...*Pattern) {
	p.Children = children
}

// IsMultiLeaf reports whether this pattern node is the variable-arity
// wildcard.
func (p *Pattern) IsMultiLeaf() bool {
	return p.Operand == OperandMultiLeaf
}

// matchOperand checks the node's own operator against the pattern's operand,
// ignoring children. The multi-leaf wildcard matches any operator.
func (p *Pattern) matchOperand(expr *core.PlanExpression) bool {
	if p.IsMultiLeaf() {
		return true
	}
	return GetOperand(expr.Op()).Match(p.Operand)
}

func (p *Pattern) hasMultiLeafChild() bool {
	for _, child := range p.Children {
		if child.IsMultiLeaf() {
			return true
		}
	}
	return false
}

// Match checks whether the subtree rooted at expr satisfies the pattern. A
// pattern cursor and a child cursor walk together: the child cursor advances
// every step, while the pattern cursor stays on a multi-leaf wildcard as long
// as more unmatched children remain than unconsumed pattern nodes, which lets
// the wildcard absorb a run of children and still leaves the tail for the
// fixed patterns behind it.
func Match(p *Pattern, expr *core.PlanExpression) bool {
	if !p.matchOperand(expr) {
		return false
	}
	if len(p.Children) > 0 && len(p.Children) != expr.ChildrenLen() && !p.hasMultiLeafChild() {
		return false
	}
	patternIdx, childIdx := 0, 0
	for patternIdx < len(p.Children) && childIdx < expr.ChildrenLen() {
		childPattern := p.Children[patternIdx]
		if !Match(childPattern, expr.Child(childIdx)) {
			return false
		}
		if !(childPattern.IsMultiLeaf() &&
			expr.ChildrenLen()-childIdx > len(p.Children)-patternIdx) {
			patternIdx++
		}
		childIdx++
	}
	return true
}
