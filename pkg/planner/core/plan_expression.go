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
	"strings"

	"github.com/pelicandb/pelican/pkg/planner/property"
)

// PlanExpression is a node of the plan tree: an operator plus its ordered
// child slots and a lazily derived logical property. The parent exclusively
// owns the child slots; replacing a slot through SetChild releases the old
// occupant, which is the only structural mutation performed by the rewrite
// phase.
type PlanExpression struct {
	op       LogicalOperator
	children []*PlanExpression
	prop     *property.LogicalProperty
}

// NewPlanExpression creates a plan expression from an operator and children.
func NewPlanExpression(op LogicalOperator, children ...*PlanExpression) *PlanExpression {
	return &PlanExpression{op: op, children: children}
}

// Op returns the operator of this node.
func (e *PlanExpression) Op() LogicalOperator {
	return e.op
}

// Children returns the ordered child list.
func (e *PlanExpression) Children() []*PlanExpression {
	return e.children
}

// Child returns the i-th child.
func (e *PlanExpression) Child(i int) *PlanExpression {
	return e.children[i]
}

// ChildrenLen returns the number of children.
func (e *PlanExpression) ChildrenLen() int {
	return len(e.children)
}

// SetChild overwrites the i-th child slot with a replacement node. The old
// child is unreferenced afterwards unless the replacement still holds it.
func (e *PlanExpression) SetChild(i int, child *PlanExpression) {
	e.children[i] = child
}

// LogicalProp returns the cached logical property, nil if not derived yet.
func (e *PlanExpression) LogicalProp() *property.LogicalProperty {
	return e.prop
}

// SetLogicalProp caches the logical property on this node.
func (e *PlanExpression) SetLogicalProp(prop *property.LogicalProperty) {
	e.prop = prop
}

// String implements the fmt.Stringer interface, printing the tree shape for
// logs and tests, e.g. Selection(Join(DataSource(t1),DataSource(t2))).
func (e *PlanExpression) String() string {
	var sb strings.Builder
	e.format(&sb)
	return sb.String()
}

func (e *PlanExpression) format(sb *strings.Builder) {
	sb.WriteString(e.op.Name())
	if info := e.op.ExplainInfo(); info != "" {
		sb.WriteString("{")
		sb.WriteString(info)
		sb.WriteString("}")
	}
	if len(e.children) == 0 {
		return
	}
	sb.WriteString("(")
	for i, child := range e.children {
		if i > 0 {
			sb.WriteString(",")
		}
		child.format(sb)
	}
	sb.WriteString(")")
}

// DeriveLogicalProperty makes sure every node in the subtree rooted at root
// carries a valid logical property, children before parents. A node that
// already has a cached property is not recomputed, but its children are still
// visited so the whole subtree ends up consistent. The rewrite phase calls
// this right after splicing a replacement node, seeded at the replacement.
func DeriveLogicalProperty(root *PlanExpression) {
	for _, child := range root.children {
		DeriveLogicalProperty(child)
	}
	if root.prop != nil {
		return
	}
	childProps := make([]*property.LogicalProperty, 0, len(root.children))
	for _, child := range root.children {
		childProps = append(childProps, child.prop)
	}
	root.prop = root.op.DeriveLogicalProp(childProps)
}
