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

package expression

import (
	"fmt"
	"strings"
)

// Function names understood by the rewrite rules.
const (
	// FuncEQ is the name of the equality function.
	FuncEQ = "eq"
	// FuncIsNotNull is the name of the isnotnull function.
	FuncIsNotNull = "isnotnull"
	// FuncAnd is the name of the logical and function.
	FuncAnd = "and"
)

// Expression is the scalar expression surface the rewrite phase works with.
// It is deliberately small: the rewrite rules only need to recognize columns,
// constants and a handful of scalar functions.
type Expression interface {
	fmt.Stringer
}

// Constant is a literal value.
type Constant struct {
	Value any
}

// String implements the fmt.Stringer interface.
func (c *Constant) String() string {
	return fmt.Sprintf("%v", c.Value)
}

// ScalarFunction is a named function applied to argument expressions.
type ScalarFunction struct {
	FuncName string
	Args     []Expression
}

// NewFunction builds a ScalarFunction from a function name and arguments.
func NewFunction(name string, args ...Expression) *ScalarFunction {
	return &ScalarFunction{FuncName: name, Args: args}
}

// String implements the fmt.Stringer interface.
func (sf *ScalarFunction) String() string {
	args := make([]string, 0, len(sf.Args))
	for _, arg := range sf.Args {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s(%s)", sf.FuncName, strings.Join(args, ", "))
}

// ColumnSubstitute substitutes the columns in expr which appear in schema by
// the expression at the same position in newExprs. Columns outside the schema
// are kept as is.
func ColumnSubstitute(expr Expression, schema *Schema, newExprs []Expression) Expression {
	switch x := expr.(type) {
	case *Column:
		idx := schema.ColumnIndex(x)
		if idx == -1 {
			return x
		}
		return newExprs[idx]
	case *ScalarFunction:
		substituted := false
		args := make([]Expression, len(x.Args))
		for i, arg := range x.Args {
			args[i] = ColumnSubstitute(arg, schema, newExprs)
			if args[i] != arg {
				substituted = true
			}
		}
		if !substituted {
			return x
		}
		return &ScalarFunction{FuncName: x.FuncName, Args: args}
	}
	return expr
}

// IsNullRejecting reports whether cond filters out NULL values of some column,
// and returns the columns it rejects NULLs for. Only the shapes produced by
// the planner are recognized: isnotnull(col) and eq with a column argument.
func IsNullRejecting(cond Expression) []*Column {
	sf, ok := cond.(*ScalarFunction)
	if !ok {
		return nil
	}
	switch sf.FuncName {
	case FuncIsNotNull, FuncEQ:
		return ExtractColumns(sf)
	}
	return nil
}
