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
	"encoding/binary"

	"github.com/dchest/siphash"
)

// HashSplit splits the plan's scan ranges into n groups
// deterministically based on file path and byte offset, so that
// repeated compiles of the same plan assign the same ranges to the
// same execution workers. Groups with no ranges are nil.
func (p *ScanPlan) HashSplit(n int) []*ScanPlan {
	const (
		k0    = 0x5d1ec810febed702
		k1    = 0x40fd7fee17262f71
		clamp = ^uint64(0)
	)

	ret := make([]*ScanPlan, n)
	var tmp []byte
	for i := range p.Ranges {
		r := &p.Ranges[i]
		tmp = append(tmp[:0], r.Path.Value...)
		tmp = binary.LittleEndian.AppendUint64(tmp, uint64(r.Offset))
		h := siphash.Hash(k0, k1, tmp)
		j := int(h / (clamp / uint64(n)))
		if j >= n {
			j = n - 1
		}
		if ret[j] == nil {
			ret[j] = &ScanPlan{
				ID:                    p.ID,
				Table:                 p.Table,
				ExtendedColumnSlotIDs: p.ExtendedColumnSlotIDs,
			}
		}
		ret[j].Ranges = append(ret[j].Ranges, *r)
	}
	return ret
}
