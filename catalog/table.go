// Copyright 2021-present StarRocks, Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package catalog holds the engine-side table metadata consulted
// during scan planning: tables, columns, engine types, and the
// shared partition-key constructor.
package catalog

import (
	"strings"
	"sync/atomic"
)

// Reserved metadata column names. Columns with these names are not
// physically stored in data files; the planner synthesizes their
// values per file from file-level metadata.
const (
	// DataSequenceNumber is the row-ordering sequence number column.
	DataSequenceNumber = "$data_sequence_number"
	// SpecID is the partition-spec identifier column.
	SpecID = "$spec_id"
)

// Column is one column of a table.
type Column struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Table is the engine-side metadata object for one lakehouse table.
// A Table outlives the individual scan plans compiled against it.
type Table struct {
	// Name and Database identify the table in the remote catalog.
	Name     string `json:"name"`
	Database string `json:"database,omitempty"`
	// Location is the table's root location; data file paths
	// beneath it are stored relative to it in scan ranges.
	Location string `json:"location,omitempty"`
	// Columns is the table's engine-visible column set,
	// including reserved metadata columns if projected.
	Columns []Column `json:"columns,omitempty"`

	// partition ids are allocated from here by every plan
	// concurrently compiling against this table; ids are never
	// reused and never rolled back, so discarded plans just
	// leave gaps in the sequence
	partitionID atomic.Int64
}

// Column returns the column with the given name, matched
// case-insensitively.
func (t *Table) Column(name string) (Column, bool) {
	for i := range t.Columns {
		if strings.EqualFold(t.Columns[i].Name, name) {
			return t.Columns[i], true
		}
	}
	return Column{}, false
}

// NextPartitionID allocates a new dense partition id.
// It is safe to call from concurrently compiling plans.
func (t *Table) NextPartitionID() int64 {
	return t.partitionID.Add(1)
}
