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
	"testing"

	"github.com/jenwitteng/starrocks/expr"
)

func TestTypeLiteral(t *testing.T) {
	good := func(typ Type, text string, want expr.Constant) {
		t.Helper()
		got, err := typ.Literal(text)
		if err != nil {
			t.Error("literal:", err)
			return
		}
		if !got.Equals(want) {
			t.Errorf("%s literal %q = %v, want %v", typ, text, got, want)
		}
	}
	bad := func(typ Type, text string) {
		t.Helper()
		if _, err := typ.Literal(text); err == nil {
			t.Errorf("%s literal %q: expected error", typ, text)
		}
	}

	good(TypeBoolean, "true", expr.Bool(true))
	good(TypeInt, "3", expr.Integer(3))
	good(TypeBigInt, "42", expr.Integer(42))
	good(TypeDouble, "2.5", expr.Float(2.5))
	good(TypeVarchar, "us-east", expr.String("us-east"))

	bad(TypeInt, "3.5")
	bad(TypeDate, "not-a-date")
	bad(TypeUnknown, "anything")
}

func TestTypeLiteralDatetime(t *testing.T) {
	for _, text := range []string{
		"2023-11-14T12:13:20",
		"2023-11-14 12:13:20",
		"2023-11-14T12:13:20.5",
	} {
		c, err := TypeDatetime.Literal(text)
		if err != nil {
			t.Errorf("datetime %q: %v", text, err)
			continue
		}
		if _, ok := c.(*expr.Timestamp); !ok {
			t.Errorf("datetime %q: got %T", text, c)
		}
	}
}

func TestNewPartitionKey(t *testing.T) {
	cols := []Column{
		{Name: "region", Type: TypeVarchar},
		{Name: "bucket_id", Type: TypeInt},
	}
	key, err := NewPartitionKey([]string{"us", "7"}, cols)
	if err != nil {
		t.Fatal(err)
	}
	if got := key.String(); got != "region='us'/bucket_id=7" {
		t.Errorf("key = %s", got)
	}

	if _, err := NewPartitionKey([]string{"us"}, cols); err == nil {
		t.Error("expected arity error")
	}
	if _, err := NewPartitionKey([]string{"us", "x"}, cols); err == nil {
		t.Error("expected parse error")
	}
}

func TestTableColumnLookup(t *testing.T) {
	tbl := &Table{
		Name:    "events",
		Columns: []Column{{Name: "Region", Type: TypeVarchar}},
	}
	if _, ok := tbl.Column("region"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	if _, ok := tbl.Column("missing"); ok {
		t.Error("unexpected column")
	}
}

func TestNextPartitionID(t *testing.T) {
	tbl := &Table{Name: "events"}
	a := tbl.NextPartitionID()
	b := tbl.NextPartitionID()
	if b <= a {
		t.Errorf("ids not increasing: %d then %d", a, b)
	}
}
