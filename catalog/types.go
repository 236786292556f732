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

package catalog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jenwitteng/starrocks/expr"
)

// Type is the engine-side type of a column.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeBoolean
	TypeInt
	TypeBigInt
	TypeFloat
	TypeDouble
	TypeVarchar
	TypeDate
	TypeDatetime
)

func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "BOOLEAN"
	case TypeInt:
		return "INT"
	case TypeBigInt:
		return "BIGINT"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	case TypeVarchar:
		return "VARCHAR"
	case TypeDate:
		return "DATE"
	case TypeDatetime:
		return "DATETIME"
	default:
		return "UNKNOWN"
	}
}

// date-time literals are timezone-naive local date-times;
// values may or may not carry fractional seconds
var datetimeLayouts = []string{
	expr.TimeLayout,
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Literal converts the canonical textual representation of a value
// into a typed constant. It returns an error if the type has no
// known literal mapping or if text cannot be parsed as t.
func (t Type) Literal(text string) (expr.Constant, error) {
	switch t {
	case TypeBoolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("catalog: bad BOOLEAN literal %q: %w", text, err)
		}
		return expr.Bool(b), nil
	case TypeInt, TypeBigInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("catalog: bad %s literal %q: %w", t, text, err)
		}
		return expr.Integer(i), nil
	case TypeFloat, TypeDouble:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("catalog: bad %s literal %q: %w", t, text, err)
		}
		return expr.Float(f), nil
	case TypeVarchar:
		return expr.String(text), nil
	case TypeDate:
		v, err := time.Parse("2006-01-02", text)
		if err != nil {
			return nil, fmt.Errorf("catalog: bad DATE literal %q: %w", text, err)
		}
		return &expr.Timestamp{Value: v}, nil
	case TypeDatetime:
		for _, layout := range datetimeLayouts {
			if v, err := time.Parse(layout, text); err == nil {
				return &expr.Timestamp{Value: v}, nil
			}
		}
		return nil, fmt.Errorf("catalog: bad DATETIME literal %q", text)
	default:
		return nil, fmt.Errorf("catalog: no literal mapping for type %s", t)
	}
}
