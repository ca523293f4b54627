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

package property

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/pelicandb/pelican/pkg/expression"
)

// LogicalProperty stores the statically derivable facts about the output of a
// plan operator. It is computed bottom-up and cached on the plan node: a node
// created by a rewrite rule starts without a property and gets one derived
// right after it is spliced into the tree.
type LogicalProperty struct {
	// Schema is the ordered output column list.
	Schema *expression.Schema
	// OutputCols indexes the schema's column unique IDs for fast membership
	// tests in rule preconditions.
	OutputCols *bitset.BitSet
	// MaxOneRow reports whether the operator produces at most one row.
	MaxOneRow bool
}

// NewLogicalProperty builds a property from an output schema.
func NewLogicalProperty(schema *expression.Schema, maxOneRow bool) *LogicalProperty {
	p := &LogicalProperty{
		Schema:     schema,
		OutputCols: bitset.New(uint(schema.Len())),
		MaxOneRow:  maxOneRow,
	}
	for _, col := range schema.Columns {
		p.OutputCols.Set(uint(col.UniqueID))
	}
	return p
}

// HasColumn checks whether the output contains the column with the unique id.
func (p *LogicalProperty) HasColumn(uniqueID int64) bool {
	return p.OutputCols.Test(uint(uniqueID))
}
