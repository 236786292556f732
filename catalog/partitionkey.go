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
	"strings"

	"github.com/jenwitteng/starrocks/expr"
)

// PartitionKey is the typed reconstruction of the identity-transform
// subset of a raw partition tuple, paired with the originating columns.
type PartitionKey struct {
	Values  []expr.Constant
	Columns []Column
}

// NewPartitionKey builds a PartitionKey from canonical textual
// partition values and their originating columns. It is the shared,
// format-agnostic constructor used by every external table format.
// It fails if a column's type has no literal mapping for its value.
func NewPartitionKey(values []string, cols []Column) (*PartitionKey, error) {
	if len(values) != len(cols) {
		return nil, fmt.Errorf("catalog: %d partition values for %d columns", len(values), len(cols))
	}
	key := &PartitionKey{
		Values:  make([]expr.Constant, 0, len(values)),
		Columns: cols,
	}
	for i := range values {
		lit, err := cols[i].Type.Literal(values[i])
		if err != nil {
			return nil, fmt.Errorf("partition column %q: %w", cols[i].Name, err)
		}
		key.Values = append(key.Values, lit)
	}
	return key, nil
}

// String renders the key as col=value segments, hive-style.
func (k *PartitionKey) String() string {
	var out strings.Builder
	for i := range k.Values {
		if i > 0 {
			out.WriteByte('/')
		}
		out.WriteString(k.Columns[i].Name)
		out.WriteByte('=')
		out.WriteString(expr.ToString(k.Values[i]))
	}
	return out.String()
}
