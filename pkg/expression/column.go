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

import "fmt"

// Column represents a column produced by some plan operator. Every column
// instance inside one plan tree carries a globally unique ID, so identity
// comparison is done on UniqueID rather than on name.
type Column struct {
	// UniqueID is the unique id of this column.
	UniqueID int64
	// Name is the display name, only used in explain output.
	Name string
	// Nullable reports whether this column may produce NULL values.
	Nullable bool
}

// String implements the fmt.Stringer interface.
func (col *Column) String() string {
	if col.Name != "" {
		return col.Name
	}
	return fmt.Sprintf("Column#%d", col.UniqueID)
}

// Equal checks whether two columns are identical.
func (col *Column) Equal(other *Column) bool {
	if other == nil {
		return false
	}
	return col.UniqueID == other.UniqueID
}

// ExtractColumns extracts all columns referenced by an expression.
func ExtractColumns(expr Expression) []*Column {
	return extractColumns(nil, expr)
}

func extractColumns(result []*Column, expr Expression) []*Column {
	switch x := expr.(type) {
	case *Column:
		result = append(result, x)
	case *ScalarFunction:
		for _, arg := range x.Args {
			result = extractColumns(result, arg)
		}
	}
	return result
}
