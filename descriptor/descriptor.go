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

// Package descriptor models the projected-column metadata of a query:
// tuple and slot descriptors, plus the referenced-partition registry
// that scan planning appends to.
package descriptor

import (
	"strings"

	"github.com/jenwitteng/starrocks/catalog"
)

// SlotID identifies one projected column slot within a query.
type SlotID int32

// Slot is the descriptor of one projected column.
type Slot struct {
	ID     SlotID
	Column catalog.Column
}

// Tuple is the descriptor of one row shape produced by a plan node.
// Slots holds the columns actually projected by the query; columns
// of the table that the query never touches have no slot.
type Tuple struct {
	ID    int
	Table *catalog.Table
	Slots []*Slot
}

// ColumnSlot returns the slot backed by the named column, matched
// case-insensitively, or nil if the column is not projected.
func (t *Tuple) ColumnSlot(name string) *Slot {
	for _, slot := range t.Slots {
		if strings.EqualFold(slot.Column.Name, name) {
			return slot
		}
	}
	return nil
}
