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

import (
	"fmt"
	"strings"
)

// Partition is an opaque ordered tuple of raw partition field values.
// Partitions compare by structural equality; Key returns a canonical
// encoding usable as a map key for deduplication.
type Partition struct {
	values []interface{}
}

// PartitionOf constructs a Partition from raw field values.
func PartitionOf(values ...interface{}) Partition {
	return Partition{values: values}
}

// Len returns the number of fields in the tuple.
func (p Partition) Len() int { return len(p.values) }

// Get returns the raw value of the field at position i.
func (p Partition) Get(i int) interface{} { return p.values[i] }

// Key returns a canonical encoding of the tuple. Two partitions have
// equal keys exactly when their tuples are structurally equal.
func (p Partition) Key() string {
	var b strings.Builder
	for _, v := range p.values {
		fmt.Fprintf(&b, "%T\x00%v\x1e", v, v)
	}
	return b.String()
}

// Int64Value coerces a raw partition value to int64.
// The table format surfaces integral values as int, int32, or int64
// depending on the source column type.
func Int64Value(v interface{}) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

// Transform is a partition transform.
type Transform uint8

const (
	TransformIdentity Transform = iota
	TransformBucket
	TransformTruncate
	TransformYear
	TransformMonth
	TransformDay
	TransformHour
	TransformVoid
)

// IsIdentity returns whether t stores the source column's value
// unchanged. Only identity transforms are invertible back to a typed
// literal.
func (t Transform) IsIdentity() bool { return t == TransformIdentity }

func (t Transform) String() string {
	switch t {
	case TransformIdentity:
		return "identity"
	case TransformBucket:
		return "bucket"
	case TransformTruncate:
		return "truncate"
	case TransformYear:
		return "year"
	case TransformMonth:
		return "month"
	case TransformDay:
		return "day"
	case TransformHour:
		return "hour"
	case TransformVoid:
		return "void"
	default:
		return "unknown"
	}
}

// HumanString formats a raw partition value of the given source type
// the way the table format renders it for humans. For the identity
// transform this is the canonical textual form of the value itself.
func (t Transform) HumanString(typ Type, v interface{}) string {
	if v == nil {
		return "null"
	}
	if t.IsIdentity() {
		return typ.HumanString(v)
	}
	return fmt.Sprint(v)
}

// PartitionField is one field of a partition spec.
type PartitionField struct {
	// SourceID is the id of the source column in the spec's schema.
	SourceID int
	// FieldID is the id of the partition field itself.
	FieldID int
	// Name is the partition field name; for identity transforms it
	// matches the source column name.
	Name string
	// Transform maps source values to partition values.
	Transform Transform
}

// PartitionSpec describes how one table version maps rows to
// partition tuples.
type PartitionSpec struct {
	ID     int
	Schema *Schema
	Fields []PartitionField
}
