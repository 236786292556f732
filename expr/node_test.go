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

package expr

import (
	"testing"
	"time"
)

func TestToString(t *testing.T) {
	check := func(e Node, want string) {
		t.Helper()
		if got := ToString(e); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
	check(nil, "")
	check(String("us"), "'us'")
	check(Integer(42), "42")
	check(Float(2.5), "2.5")
	check(Bool(true), "TRUE")
	check(Null{}, "NULL")
	check(Compare(LessEquals, Ident("id"), Integer(10)), "id <= 10")
	check(&And{
		Left:  Compare(Equals, Ident("region"), String("us")),
		Right: Compare(Greater, Ident("id"), Integer(0)),
	}, "region = 'us' AND id > 0")

	ts := &Timestamp{Value: time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)}
	check(ts, "`2023-11-14T22:13:20`")
}

func TestEquals(t *testing.T) {
	if !Equal(nil, nil) {
		t.Error("nil should equal nil")
	}
	if Equal(Integer(1), nil) || Equal(nil, Integer(1)) {
		t.Error("nil should not equal a constant")
	}
	if !Integer(42).Equals(Integer(42)) {
		t.Error("42 != 42")
	}
	if Integer(42).Equals(Float(42)) {
		t.Error("integer should not equal float")
	}
	a := Compare(Equals, Ident("x"), Integer(3))
	b := Compare(Equals, Ident("x"), Integer(3))
	c := Compare(Equals, Ident("x"), Integer(4))
	if !a.Equals(b) || a.Equals(c) {
		t.Error("comparison equality broken")
	}
}

func TestConstantDatum(t *testing.T) {
	if d := Integer(42).Datum(); d.(int64) != 42 {
		t.Errorf("datum = %v", d)
	}
	if d := String("us").Datum(); d.(string) != "us" {
		t.Errorf("datum = %v", d)
	}
	if d := (Null{}).Datum(); d != nil {
		t.Errorf("datum = %v", d)
	}
}
