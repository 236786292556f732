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
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jenwitteng/starrocks/expr"
)

// Explain renders the scan node for plan-explanation text.
func (s *ScanNode) Explain(prefix string) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%sTABLE: %s.%s\n", prefix, s.table.Database, s.table.Name)
	if s.predicate != nil {
		fmt.Fprintf(&out, "%sPREDICATES: %s\n", prefix, expr.ToString(s.predicate))
	}
	total := s.totalPartitions
	if total == 0 {
		total = 1
	}
	fmt.Fprintf(&out, "%spartitions=%d/%d\n", prefix, s.predicates.NumSelectedPartitions(), total)
	if n := s.predicates.SkippedEqualityDeletes(); n > 0 {
		fmt.Fprintf(&out, "%sskipped equality delete files: %d\n", prefix, n)
	}
	return out.String()
}

// ExplainVerbose renders the scan node plus a per-range listing of
// the given plan.
func (s *ScanNode) ExplainVerbose(p *ScanPlan, prefix string) string {
	var out strings.Builder
	out.WriteString(s.Explain(prefix))

	w := tablewriter.NewWriter(&out)
	w.SetHeader([]string{"path", "offset", "length", "format", "partition", "deletes"})
	for i := range p.Ranges {
		r := &p.Ranges[i]
		w.Append([]string{
			r.Path.Value,
			strconv.FormatInt(r.Offset, 10),
			strconv.FormatInt(r.Length, 10),
			r.Format.String(),
			strconv.FormatInt(r.PartitionID, 10),
			strconv.Itoa(len(r.DeleteFiles)),
		})
	}
	w.Render()
	return out.String()
}
