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

package descriptor

import (
	"sync"

	"golang.org/x/exp/slices"

	"github.com/jenwitteng/starrocks/catalog"
)

// ReferencedPartition associates a partition id allocated during scan
// planning with its reconstructed key. Entries are consumed later for
// partition-level literal substitution and plan explanation.
type ReferencedPartition struct {
	Table       string
	PartitionID int64
	Key         *catalog.PartitionKey
}

// Table issues slot ids and collects the referenced partitions of one
// query compile. The partition registry is append-only.
type Table struct {
	mu         sync.Mutex
	nextSlot   SlotID
	nextTuple  int
	partitions []ReferencedPartition
}

// NewTuple creates a tuple descriptor for tbl.
func (d *Table) NewTuple(tbl *catalog.Table) *Tuple {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := &Tuple{ID: d.nextTuple, Table: tbl}
	d.nextTuple++
	return t
}

// NewSlot adds a slot for col to tuple and returns it.
func (d *Table) NewSlot(tuple *Tuple, col catalog.Column) *Slot {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := &Slot{ID: d.nextSlot, Column: col}
	d.nextSlot++
	tuple.Slots = append(tuple.Slots, s)
	return s
}

// AddReferencedPartition registers the key reconstructed for one
// partition id of tbl.
func (d *Table) AddReferencedPartition(tbl *catalog.Table, id int64, key *catalog.PartitionKey) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.partitions = append(d.partitions, ReferencedPartition{
		Table:       tbl.Name,
		PartitionID: id,
		Key:         key,
	})
}

// ReferencedPartitions returns a copy of the registered partitions.
func (d *Table) ReferencedPartitions() []ReferencedPartition {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.partitions)
}
