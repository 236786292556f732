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
	"testing"

	"github.com/jenwitteng/starrocks/catalog"
)

func TestSlotIssuing(t *testing.T) {
	var d Table
	tbl := &catalog.Table{Name: "events"}
	tuple := d.NewTuple(tbl)
	a := d.NewSlot(tuple, catalog.Column{Name: "Region", Type: catalog.TypeVarchar})
	b := d.NewSlot(tuple, catalog.Column{Name: "id", Type: catalog.TypeBigInt})
	if a.ID == b.ID {
		t.Errorf("duplicate slot id %d", a.ID)
	}
	if got := tuple.ColumnSlot("region"); got != a {
		t.Errorf("ColumnSlot(region) = %v", got)
	}
	if got := tuple.ColumnSlot("nope"); got != nil {
		t.Errorf("ColumnSlot(nope) = %v", got)
	}
}

func TestReferencedPartitionsAppendOnly(t *testing.T) {
	var d Table
	tbl := &catalog.Table{Name: "events"}
	key, err := catalog.NewPartitionKey([]string{"us"},
		[]catalog.Column{{Name: "region", Type: catalog.TypeVarchar}})
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d.AddReferencedPartition(tbl, int64(i), key)
		}(i)
	}
	wg.Wait()

	parts := d.ReferencedPartitions()
	if len(parts) != 8 {
		t.Fatalf("got %d partitions, want 8", len(parts))
	}
	seen := make(map[int64]bool)
	for _, p := range parts {
		if p.Table != "events" {
			t.Errorf("table = %s", p.Table)
		}
		if seen[p.PartitionID] {
			t.Errorf("partition id %d registered twice", p.PartitionID)
		}
		seen[p.PartitionID] = true
	}
}
