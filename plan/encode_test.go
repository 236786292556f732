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

package plan

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jenwitteng/starrocks/descriptor"
	"github.com/jenwitteng/starrocks/expr"
)

func testPlan() *ScanPlan {
	return &ScanPlan{
		ID:    uuid.New(),
		Table: "events",
		Ranges: []ScanRange{
			{
				Path:                     Path{Mode: PathRelative, Value: "data/a.parquet"},
				Offset:                   128,
				Length:                   256,
				FileSize:                 1000,
				Format:                   FormatParquet,
				PartitionID:              1,
				IdentityPartitionSlotIDs: []descriptor.SlotID{0},
				DeleteFiles:              []DeleteFile{{Path: "s3://bucket/del.parquet", Size: 11}},
				ExtendedColumns: ExtendedColumns{
					3: expr.Integer(42),
					4: expr.Integer(3),
				},
			},
			{
				Path:        Path{Mode: PathFull, Value: "s3://elsewhere/b.parquet"},
				Length:      100,
				FileSize:    100,
				Format:      FormatOrc,
				PartitionID: SentinelPartitionID,
			},
		},
		ExtendedColumnSlotIDs: []descriptor.SlotID{3, 4},
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	p := testPlan()
	buf, err := p.Marshal()
	if err != nil {
		t.Fatal("marshal:", err)
	}
	got, err := UnmarshalScanPlan(buf)
	if err != nil {
		t.Fatal("unmarshal:", err)
	}
	if got.ID != p.ID || got.Table != p.Table {
		t.Errorf("plan header = %s %s", got.ID, got.Table)
	}
	if len(got.Ranges) != 2 {
		t.Fatalf("got %d ranges", len(got.Ranges))
	}
	r := &got.Ranges[0]
	if r.Path != p.Ranges[0].Path || r.Offset != 128 || r.Length != 256 {
		t.Errorf("range 0 = %+v", r)
	}
	if !r.ExtendedColumns[3].Equals(expr.Integer(42)) {
		t.Errorf("extended column 3 = %v", r.ExtendedColumns[3])
	}
	if !r.ExtendedColumns[4].Equals(expr.Integer(3)) {
		t.Errorf("extended column 4 = %v", r.ExtendedColumns[4])
	}
	if got.Ranges[1].PartitionID != SentinelPartitionID {
		t.Errorf("range 1 partition id = %d", got.Ranges[1].PartitionID)
	}
	if got.Ranges[1].DeleteFiles != nil {
		t.Errorf("range 1 deletes = %v", got.Ranges[1].DeleteFiles)
	}
}

func TestUnmarshalRejectsCorruption(t *testing.T) {
	buf, err := testPlan().Marshal()
	if err != nil {
		t.Fatal("marshal:", err)
	}
	// flip a byte in the compressed body
	buf[len(buf)-1] ^= 0xff
	if _, err := UnmarshalScanPlan(buf); !errors.Is(err, ErrChecksum) {
		t.Errorf("err = %v, want ErrChecksum", err)
	}

	if _, err := UnmarshalScanPlan([]byte("XXXX")); !errors.Is(err, ErrBadEnvelope) {
		t.Errorf("err = %v, want ErrBadEnvelope", err)
	}
}
