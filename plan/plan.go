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

// Package plan compiles the snapshot-scoped, predicate-filtered file
// scan tasks of one lakehouse table scan into a canonical,
// execution-ready scan plan: a flat ordered list of scan ranges plus
// a deduplicated partition registry.
package plan

import (
	"golang.org/x/exp/slices"

	"github.com/google/uuid"

	"github.com/jenwitteng/starrocks/descriptor"
)

// ScanPlan is the output of one plan-build invocation for one scan
// node. It is consumed once for serialization into the physical plan
// and then discarded; it owns no resources.
type ScanPlan struct {
	// ID identifies this compile invocation.
	ID uuid.UUID `json:"id"`
	// Table names the scanned table.
	Table string `json:"table"`
	// Ranges is the ordered list of scan ranges.
	Ranges []ScanRange `json:"ranges,omitempty"`
	// ExtendedColumnSlotIDs lists every extended-column slot id
	// used anywhere in the plan, deduplicated.
	ExtendedColumnSlotIDs []descriptor.SlotID `json:"extended_slot_ids,omitempty"`
}

// Empty reports whether the plan contains no scan ranges.
func (p *ScanPlan) Empty() bool { return len(p.Ranges) == 0 }

// ScanPredicates carries partition-selection statistics accumulated
// during plan construction. The statistics feed plan explanation only
// and are not used for correctness.
type ScanPredicates struct {
	selected               []int64
	skippedEqualityDeletes int
}

// SelectedPartitionIDs returns the distinct partition ids assigned
// during plan construction, in ascending order.
func (p *ScanPredicates) SelectedPartitionIDs() []int64 {
	return slices.Clone(p.selected)
}

// NumSelectedPartitions returns the number of distinct partitions
// selected by the plan.
func (p *ScanPredicates) NumSelectedPartitions() int {
	return len(p.selected)
}

// SkippedEqualityDeletes returns how many equality-delete files were
// dropped during plan construction. Equality deletes are a documented
// capability gap, not an error; the count makes the gap visible.
func (p *ScanPredicates) SkippedEqualityDeletes() int {
	return p.skippedEqualityDeletes
}
