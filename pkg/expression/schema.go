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
	"strings"
)

// Schema is an ordered list of output columns of a plan operator.
type Schema struct {
	Columns []*Column
}

// NewSchema returns a schema made by the given columns.
func NewSchema(cols ...*Column) *Schema {
	return &Schema{Columns: cols}
}

// Len returns the number of columns in the schema.
func (s *Schema) Len() int {
	return len(s.Columns)
}

// ColumnIndex finds the index of a column in the schema, -1 for not found.
func (s *Schema) ColumnIndex(col *Column) int {
	for i, c := range s.Columns {
		if c.UniqueID == col.UniqueID {
			return i
		}
	}
	return -1
}

// Contains checks whether the schema contains the column.
func (s *Schema) Contains(col *Column) bool {
	return s.ColumnIndex(col) != -1
}

// Clone makes a shallow copy of the schema. Column instances are shared since
// they are immutable during the rewrite phase.
func (s *Schema) Clone() *Schema {
	cols := make([]*Column, len(s.Columns))
	copy(cols, s.Columns)
	return NewSchema(cols...)
}

// MergeSchema returns a schema that contains the left columns followed by the
// right columns.
func MergeSchema(lSchema, rSchema *Schema) *Schema {
	if lSchema == nil && rSchema == nil {
		return nil
	}
	if lSchema == nil {
		return rSchema.Clone()
	}
	if rSchema == nil {
		return lSchema.Clone()
	}
	cols := make([]*Column, 0, lSchema.Len()+rSchema.Len())
	cols = append(cols, lSchema.Columns...)
	cols = append(cols, rSchema.Columns...)
	return NewSchema(cols...)
}

// String implements the fmt.Stringer interface.
func (s *Schema) String() string {
	colStrs := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		colStrs = append(colStrs, col.String())
	}
	return "[" + strings.Join(colStrs, ",") + "]"
}
