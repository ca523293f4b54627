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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpressionString(t *testing.T) {
	a := &Column{UniqueID: 1, Name: "a"}
	anonymous := &Column{UniqueID: 42}
	require.Equal(t, "a", a.String())
	require.Equal(t, "Column#42", anonymous.String())
	require.Equal(t, "1", (&Constant{Value: 1}).String())

	eq := NewFunction(FuncEQ, a, &Constant{Value: 1})
	require.Equal(t, "eq(a, 1)", eq.String())
	require.Equal(t, "and(eq(a, 1), isnotnull(a))",
		NewFunction(FuncAnd, eq, NewFunction(FuncIsNotNull, a)).String())
}

func TestColumnEqual(t *testing.T) {
	a := &Column{UniqueID: 1, Name: "a"}
	require.True(t, a.Equal(&Column{UniqueID: 1, Name: "renamed"}))
	require.False(t, a.Equal(&Column{UniqueID: 2, Name: "a"}))
	require.False(t, a.Equal(nil))
}

func TestExtractColumns(t *testing.T) {
	a := &Column{UniqueID: 1, Name: "a"}
	b := &Column{UniqueID: 2, Name: "b"}
	expr := NewFunction(FuncAnd,
		NewFunction(FuncEQ, a, &Constant{Value: 1}),
		NewFunction(FuncEQ, b, a))

	require.Equal(t, []*Column{a, b, a}, ExtractColumns(expr))
	require.Empty(t, ExtractColumns(&Constant{Value: 1}))
	require.Equal(t, []*Column{a}, ExtractColumns(a))
}

func TestColumnSubstitute(t *testing.T) {
	a := &Column{UniqueID: 1, Name: "a"}
	b := &Column{UniqueID: 2, Name: "b"}
	x := &Column{UniqueID: 10, Name: "x"}
	schema := NewSchema(x)
	replacement := []Expression{NewFunction(FuncEQ, a, b)}

	// A bare column in the schema becomes its source expression.
	require.Equal(t, "eq(a, b)", ColumnSubstitute(x, schema, replacement).String())
	// A column outside the schema is untouched.
	require.Same(t, b, ColumnSubstitute(b, schema, replacement))

	// Substitution recurses into function arguments.
	substituted := ColumnSubstitute(NewFunction(FuncIsNotNull, x), schema, replacement)
	require.Equal(t, "isnotnull(eq(a, b))", substituted.String())

	// A function with no substituted argument is returned as is.
	untouched := NewFunction(FuncIsNotNull, b)
	require.Same(t, untouched, ColumnSubstitute(untouched, schema, replacement).(*ScalarFunction))
}

func TestIsNullRejecting(t *testing.T) {
	a := &Column{UniqueID: 1, Name: "a"}
	b := &Column{UniqueID: 2, Name: "b"}

	require.Equal(t, []*Column{a}, IsNullRejecting(NewFunction(FuncIsNotNull, a)))
	require.Equal(t, []*Column{a, b}, IsNullRejecting(NewFunction(FuncEQ, a, b)))
	// Conjunctions are handled conjunct by conjunct by the callers.
	require.Nil(t, IsNullRejecting(NewFunction(FuncAnd, a, b)))
	require.Nil(t, IsNullRejecting(a))
	require.Nil(t, IsNullRejecting(&Constant{Value: nil}))
}
