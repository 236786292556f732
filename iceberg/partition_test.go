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

package iceberg

import "testing"

func TestPartitionKeyEquality(t *testing.T) {
	a := PartitionOf("us", 7)
	b := PartitionOf("us", 7)
	c := PartitionOf("us", 8)
	if a.Key() != b.Key() {
		t.Error("equal tuples should share a key")
	}
	if a.Key() == c.Key() {
		t.Error("distinct tuples should not share a key")
	}
	// values of different dynamic type never collide
	if PartitionOf(7).Key() == PartitionOf("7").Key() {
		t.Error("int 7 and string \"7\" collide")
	}
	if PartitionOf().Key() != PartitionOf().Key() {
		t.Error("empty tuples should share a key")
	}
}

func TestTransformHumanString(t *testing.T) {
	if got := TransformIdentity.HumanString(TypeString, "us"); got != "us" {
		t.Errorf("identity string = %q", got)
	}
	if got := TransformIdentity.HumanString(TypeLong, int64(42)); got != "42" {
		t.Errorf("identity long = %q", got)
	}
	// 19723 days after the epoch is 2024-01-01
	if got := TransformIdentity.HumanString(TypeDate, 19723); got != "2024-01-01" {
		t.Errorf("identity date = %q", got)
	}
	if got := TransformIdentity.HumanString(TypeTimestamp, int64(1700000000000000)); got != "2023-11-14T22:13:20" {
		t.Errorf("identity timestamp = %q", got)
	}
	if got := TransformBucket.HumanString(TypeLong, 7); got != "7" {
		t.Errorf("bucket = %q", got)
	}
	if got := TransformIdentity.HumanString(TypeString, nil); got != "null" {
		t.Errorf("null = %q", got)
	}
}

func TestSchemaFindType(t *testing.T) {
	s := &Schema{Fields: []NestedField{
		{ID: 1, Name: "region", Type: TypeString},
		{ID: 2, Name: "ts", Type: TypeTimestampTZ},
	}}
	typ, ok := s.FindType(2)
	if !ok || typ != TypeTimestampTZ {
		t.Errorf("FindType(2) = %s, %v", typ, ok)
	}
	if _, ok := s.FindType(9); ok {
		t.Error("unexpected field 9")
	}
}

func TestIsIdentity(t *testing.T) {
	if !TransformIdentity.IsIdentity() {
		t.Error("identity transform should be identity")
	}
	for _, tr := range []Transform{TransformBucket, TransformTruncate, TransformYear, TransformMonth, TransformDay, TransformHour, TransformVoid} {
		if tr.IsIdentity() {
			t.Errorf("%s should not be identity", tr)
		}
	}
}
