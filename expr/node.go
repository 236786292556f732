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

// Package expr provides the scalar expression nodes used by the
// scan planner: opaque predicate trees that are handed through to
// the table format's planning layer unmodified, plus the constant
// values that the planner synthesizes for partition keys and
// extended metadata columns.
package expr

import (
	"strconv"
	"strings"
	"time"
)

// Node is a single node of a scalar expression tree.
type Node interface {
	// Equals returns whether this node is
	// syntactically equivalent to another node.
	Equals(Node) bool

	text(dst *strings.Builder)
}

// ToString returns the canonical textual representation of e.
// A nil node produces the empty string.
func ToString(e Node) string {
	if e == nil {
		return ""
	}
	var dst strings.Builder
	e.text(&dst)
	return dst.String()
}

// Equal returns whether a and b are equivalent.
// Either argument may be nil.
func Equal(a, b Node) bool {
	if a == nil {
		return b == nil
	}
	return b != nil && a.Equals(b)
}

// Constant is a Node that is a constant value.
type Constant interface {
	Node
	// Datum returns the Go value associated with this constant.
	Datum() interface{}
}

var (
	// these are all the Constant types
	_ Constant = String("")
	_ Constant = Integer(0)
	_ Constant = Float(0)
	_ Constant = Bool(true)
	_ Constant = (*Timestamp)(nil)
	_ Constant = Null{}
)

// Ident is a reference to a top-level column by name.
type Ident string

func (i Ident) text(dst *strings.Builder) { dst.WriteString(string(i)) }

func (i Ident) Equals(e Node) bool {
	id, ok := e.(Ident)
	return ok && i == id
}

// String is a string constant.
type String string

func (s String) text(dst *strings.Builder) {
	dst.WriteByte('\'')
	dst.WriteString(string(s))
	dst.WriteByte('\'')
}

func (s String) Equals(e Node) bool {
	es, ok := e.(String)
	return ok && s == es
}

func (s String) Datum() interface{} { return string(s) }

// Integer is a 64-bit integer constant.
type Integer int64

func (i Integer) text(dst *strings.Builder) {
	dst.WriteString(strconv.FormatInt(int64(i), 10))
}

func (i Integer) Equals(e Node) bool {
	ei, ok := e.(Integer)
	return ok && i == ei
}

func (i Integer) Datum() interface{} { return int64(i) }

// Float is a 64-bit floating-point constant.
type Float float64

func (f Float) text(dst *strings.Builder) {
	dst.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 64))
}

func (f Float) Equals(e Node) bool {
	ef, ok := e.(Float)
	return ok && f == ef
}

func (f Float) Datum() interface{} { return float64(f) }

// Bool is a boolean constant.
type Bool bool

func (b Bool) text(dst *strings.Builder) {
	if b {
		dst.WriteString("TRUE")
	} else {
		dst.WriteString("FALSE")
	}
}

func (b Bool) Equals(e Node) bool {
	eb, ok := e.(Bool)
	return ok && b == eb
}

func (b Bool) Datum() interface{} { return bool(b) }

// TimeLayout is the canonical textual layout of Timestamp
// constants: a timezone-naive local date-time.
const TimeLayout = "2006-01-02T15:04:05.999999"

// Timestamp is a date-time constant. The value is always a local
// (timezone-naive) date-time; zone conversion happens before a
// Timestamp is constructed.
type Timestamp struct {
	Value time.Time
}

func (t *Timestamp) text(dst *strings.Builder) {
	dst.WriteByte('`')
	dst.WriteString(t.Value.Format(TimeLayout))
	dst.WriteByte('`')
}

func (t *Timestamp) Equals(e Node) bool {
	et, ok := e.(*Timestamp)
	return ok && t.Value.Equal(et.Value)
}

func (t *Timestamp) Datum() interface{} { return t.Value }

// Null is the SQL NULL constant.
type Null struct{}

func (n Null) text(dst *strings.Builder) { dst.WriteString("NULL") }

func (n Null) Equals(e Node) bool {
	_, ok := e.(Null)
	return ok
}

func (n Null) Datum() interface{} { return nil }

// CmpOp is a comparison operator.
type CmpOp uint8

const (
	Equals CmpOp = iota
	NotEquals
	Less
	LessEquals
	Greater
	GreaterEquals
)

func (c CmpOp) String() string {
	switch c {
	case Equals:
		return "="
	case NotEquals:
		return "!="
	case Less:
		return "<"
	case LessEquals:
		return "<="
	case Greater:
		return ">"
	case GreaterEquals:
		return ">="
	default:
		return "<unknown op>"
	}
}

// Comparison is a binary comparison of two nodes.
// The planner carries comparisons opaquely; only the
// explain surface renders them.
type Comparison struct {
	Op          CmpOp
	Left, Right Node
}

// Compare constructs a Comparison node.
func Compare(op CmpOp, left, right Node) *Comparison {
	return &Comparison{Op: op, Left: left, Right: right}
}

func (c *Comparison) text(dst *strings.Builder) {
	c.Left.text(dst)
	dst.WriteByte(' ')
	dst.WriteString(c.Op.String())
	dst.WriteByte(' ')
	c.Right.text(dst)
}

func (c *Comparison) Equals(e Node) bool {
	ec, ok := e.(*Comparison)
	return ok && c.Op == ec.Op &&
		c.Left.Equals(ec.Left) && c.Right.Equals(ec.Right)
}

// And is the conjunction of two nodes.
type And struct {
	Left, Right Node
}

func (a *And) text(dst *strings.Builder) {
	a.Left.text(dst)
	dst.WriteString(" AND ")
	a.Right.text(dst)
}

func (a *And) Equals(e Node) bool {
	ea, ok := e.(*And)
	return ok && a.Left.Equals(ea.Left) && a.Right.Equals(ea.Right)
}
