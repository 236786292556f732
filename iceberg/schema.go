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
	"time"
)

// Type is the table format's primitive type of a column.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeBoolean
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeDate
	TypeTime
	// TypeTimestamp is a timezone-naive timestamp in microseconds.
	TypeTimestamp
	// TypeTimestampTZ is a UTC-adjusted timestamp in microseconds.
	TypeTimestampTZ
	TypeString
	TypeUUID
	TypeBinary
)

func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	case TypeTimestamp:
		return "timestamp"
	case TypeTimestampTZ:
		return "timestamptz"
	case TypeString:
		return "string"
	case TypeUUID:
		return "uuid"
	case TypeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// HumanString renders a raw value of this type in the table format's
// canonical human-readable form. Dates are stored as days since the
// epoch and timestamps as microseconds since the epoch.
func (t Type) HumanString(v interface{}) string {
	switch t {
	case TypeDate:
		if days, ok := Int64Value(v); ok {
			return time.Unix(days*86400, 0).UTC().Format("2006-01-02")
		}
	case TypeTimestamp, TypeTimestampTZ:
		if micros, ok := Int64Value(v); ok {
			return time.UnixMicro(micros).UTC().Format("2006-01-02T15:04:05.999999")
		}
	}
	return fmt.Sprint(v)
}

// NestedField is one column of a schema.
type NestedField struct {
	ID   int
	Name string
	Type Type
}

// Schema is the column set of one table version.
type Schema struct {
	Fields []NestedField
}

// FindType returns the type of the column with the given id.
func (s *Schema) FindType(id int) (Type, bool) {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return s.Fields[i].Type, true
		}
	}
	return TypeUnknown, false
}
