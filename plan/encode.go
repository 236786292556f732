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
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/segmentio/encoding/json"
	"golang.org/x/crypto/blake2b"

	"github.com/jenwitteng/starrocks/descriptor"
	"github.com/jenwitteng/starrocks/expr"
)

// ExtendedColumns maps projected slot ids to literals synthesized
// from file-level metadata.
type ExtendedColumns map[descriptor.SlotID]expr.Constant

// literal is the wire form of a synthesized constant.
type literal struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

func encodeConstant(c expr.Constant) (literal, error) {
	switch c := c.(type) {
	case expr.Integer:
		return literal{Type: "int", Value: strconv.FormatInt(int64(c), 10)}, nil
	case expr.Float:
		return literal{Type: "float", Value: strconv.FormatFloat(float64(c), 'g', -1, 64)}, nil
	case expr.String:
		return literal{Type: "string", Value: string(c)}, nil
	case expr.Bool:
		return literal{Type: "bool", Value: strconv.FormatBool(bool(c))}, nil
	case *expr.Timestamp:
		return literal{Type: "timestamp", Value: c.Value.Format(expr.TimeLayout)}, nil
	case expr.Null:
		return literal{Type: "null"}, nil
	default:
		return literal{}, fmt.Errorf("plan: cannot encode constant %T", c)
	}
}

func (l literal) constant() (expr.Constant, error) {
	switch l.Type {
	case "int":
		i, err := strconv.ParseInt(l.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("plan: bad int literal %q: %w", l.Value, err)
		}
		return expr.Integer(i), nil
	case "float":
		f, err := strconv.ParseFloat(l.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("plan: bad float literal %q: %w", l.Value, err)
		}
		return expr.Float(f), nil
	case "string":
		return expr.String(l.Value), nil
	case "bool":
		b, err := strconv.ParseBool(l.Value)
		if err != nil {
			return nil, fmt.Errorf("plan: bad bool literal %q: %w", l.Value, err)
		}
		return expr.Bool(b), nil
	case "timestamp":
		v, err := time.Parse(expr.TimeLayout, l.Value)
		if err != nil {
			return nil, fmt.Errorf("plan: bad timestamp literal %q: %w", l.Value, err)
		}
		return &expr.Timestamp{Value: v}, nil
	case "null":
		return expr.Null{}, nil
	default:
		return nil, fmt.Errorf("plan: unknown literal type %q", l.Type)
	}
}

// MarshalJSON implements json.Marshaler.
func (e ExtendedColumns) MarshalJSON() ([]byte, error) {
	out := make(map[string]literal, len(e))
	for id, c := range e {
		l, err := encodeConstant(c)
		if err != nil {
			return nil, err
		}
		out[strconv.FormatInt(int64(id), 10)] = l
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ExtendedColumns) UnmarshalJSON(buf []byte) error {
	var raw map[string]literal
	if err := json.Unmarshal(buf, &raw); err != nil {
		return err
	}
	out := make(ExtendedColumns, len(raw))
	for id, l := range raw {
		n, err := strconv.ParseInt(id, 10, 32)
		if err != nil {
			return fmt.Errorf("plan: bad slot id %q: %w", id, err)
		}
		c, err := l.constant()
		if err != nil {
			return err
		}
		out[descriptor.SlotID(n)] = c
	}
	*e = out
	return nil
}

// The encoded plan becomes the payload of one scan-node description
// inside the engine's physical-plan message. The envelope is a
// 4-byte magic, a blake2b-256 sum of the compressed body, and the
// zstd-compressed JSON body itself.
var planMagic = []byte("SPL1")

const sumSize = blake2b.Size256

var (
	planEncoder *zstd.Encoder
	planDecoder *zstd.Decoder
)

func init() {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		panic(err)
	}
	planEncoder = enc
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
	if err != nil {
		panic(err)
	}
	planDecoder = dec
}

var (
	// ErrBadEnvelope indicates a payload that is not an encoded plan.
	ErrBadEnvelope = errors.New("plan: bad envelope")
	// ErrChecksum indicates an encoded plan whose body does not
	// match its content hash.
	ErrChecksum = errors.New("plan: payload checksum mismatch")
)

// Marshal encodes the plan into its wire envelope.
func (p *ScanPlan) Marshal() ([]byte, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("plan: encoding: %w", err)
	}
	out := make([]byte, 0, len(planMagic)+sumSize+len(body)/2+64)
	out = append(out, planMagic...)
	out = out[:len(planMagic)+sumSize] // sum filled in below
	out = planEncoder.EncodeAll(body, out)
	sum := blake2b.Sum256(out[len(planMagic)+sumSize:])
	copy(out[len(planMagic):], sum[:])
	return out, nil
}

// UnmarshalScanPlan decodes a plan from its wire envelope.
func UnmarshalScanPlan(buf []byte) (*ScanPlan, error) {
	if len(buf) < len(planMagic)+sumSize || !bytes.Equal(buf[:len(planMagic)], planMagic) {
		return nil, ErrBadEnvelope
	}
	packed := buf[len(planMagic)+sumSize:]
	sum := blake2b.Sum256(packed)
	if !bytes.Equal(sum[:], buf[len(planMagic):len(planMagic)+sumSize]) {
		return nil, ErrChecksum
	}
	body, err := planDecoder.DecodeAll(packed, nil)
	if err != nil {
		return nil, fmt.Errorf("plan: decompressing: %w", err)
	}
	p := new(ScanPlan)
	if err := json.Unmarshal(body, p); err != nil {
		return nil, fmt.Errorf("plan: decoding: %w", err)
	}
	return p, nil
}
