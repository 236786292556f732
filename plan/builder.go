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
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/google/uuid"

	"github.com/jenwitteng/starrocks/catalog"
	"github.com/jenwitteng/starrocks/descriptor"
	"github.com/jenwitteng/starrocks/expr"
	"github.com/jenwitteng/starrocks/iceberg"
)

// ScanNode compiles the file scan tasks of one table scan into an
// execution-ready scan plan. A ScanNode is built for one query
// compile invocation and runs on the single thread performing that
// compile; the only state it shares with concurrent compiles is the
// table's partition-id counter.
type ScanNode struct {
	table   *catalog.Table
	desc    *descriptor.Tuple
	session *Session
	source  iceberg.FileSource

	snapshotID *int64
	predicate  expr.Node

	extendedSlotIDs []descriptor.SlotID
	predicates      ScanPredicates

	// totalPartitions is the table's total partition count,
	// provided externally for explain output; zero means unknown
	totalPartitions int
}

// NewScanNode constructs a scan node for one table scan. A nil
// session means DefaultSession.
func NewScanNode(table *catalog.Table, desc *descriptor.Tuple, session *Session, source iceberg.FileSource) *ScanNode {
	if session == nil {
		session = DefaultSession()
	}
	return &ScanNode{
		table:   table,
		desc:    desc,
		session: session,
		source:  source,
	}
}

// SetSnapshotID sets the resolved snapshot id to plan against.
// A nil id means the table has no committed snapshot.
func (s *ScanNode) SetSnapshotID(id *int64) { s.snapshotID = id }

// SetPredicate sets the opaque predicate handed through to the
// external planning layer.
func (s *ScanNode) SetPredicate(e expr.Node) { s.predicate = e }

// Predicate returns the planning predicate.
func (s *ScanNode) Predicate() expr.Node { return s.predicate }

// SetTotalPartitions records the table's total partition count for
// explain output.
func (s *ScanNode) SetTotalPartitions(n int) { s.totalPartitions = n }

// ExtendedColumnSlotIDs returns the deduplicated list of extended
// column slot ids used anywhere in the plan.
func (s *ScanNode) ExtendedColumnSlotIDs() []descriptor.SlotID {
	return slices.Clone(s.extendedSlotIDs)
}

// Predicates returns the partition-selection statistics.
func (s *ScanNode) Predicates() *ScanPredicates { return &s.predicates }

// String implements fmt.Stringer.
func (s *ScanNode) String() string {
	return fmt.Sprintf("ScanNode{table=%s}", s.table.Name)
}

// identityIndex is a two-way view of the identity-transform subset of
// a partition spec. The reverse direction is only ever queried by
// partition-field id, so two one-directional maps built once per spec
// replace a general-purpose bimap.
type identityIndex struct {
	byIndex map[int]iceberg.PartitionField
	byField map[int]int // partition-field id -> position in spec.Fields
}

func (ix *identityIndex) empty() bool { return len(ix.byIndex) == 0 }

// identityPartitions resolves the identity-transform subset of spec.
// Bucket, truncate, and time-bucketing transforms have no generally
// invertible mapping back to a typed literal, so they are excluded.
// The session flag forces an empty result, disabling partition-key
// reconstruction entirely.
func (s *ScanNode) identityPartitions(spec *iceberg.PartitionSpec) *identityIndex {
	ix := &identityIndex{
		byIndex: make(map[int]iceberg.PartitionField),
		byField: make(map[int]int),
	}
	if !s.session.EnableIdentityColumnOptimize {
		return ix
	}
	for i, field := range spec.Fields {
		if field.Transform.IsIdentity() {
			ix.byIndex[i] = field
			ix.byField[field.FieldID] = i
		}
	}
	return ix
}

// partitionKey reconstructs typed, human-readable key values for the
// identity subset of a raw partition tuple. indexes selects the tuple
// positions to reconstruct; each must be present in ix.
func (s *ScanNode) partitionKey(partition iceberg.Partition, spec *iceberg.PartitionSpec, indexes []int, ix *identityIndex) (*catalog.PartitionKey, error) {
	values := make([]string, 0, len(indexes))
	cols := make([]catalog.Column, 0, len(indexes))
	for _, index := range indexes {
		field := ix.byIndex[index]
		typ, ok := spec.Schema.FindType(field.SourceID)
		if !ok {
			return nil, fmt.Errorf("plan: partition field %q: no column %d in schema", field.Name, field.SourceID)
		}
		raw := partition.Get(index)
		value := field.Transform.HumanString(typ, raw)
		if typ == iceberg.TypeTimestampTZ {
			// the engine's date literals only understand local
			// date-times: convert to the session zone and drop
			// the offset
			micros, ok := iceberg.Int64Value(raw)
			if !ok {
				return nil, fmt.Errorf("plan: partition field %q: %T is not a timestamp value", field.Name, raw)
			}
			value = time.UnixMicro(micros).In(s.session.Location()).Format(expr.TimeLayout)
		}
		col, ok := s.table.Column(field.Name)
		if !ok {
			return nil, fmt.Errorf("plan: table %s has no column %q", s.table.Name, field.Name)
		}
		values = append(values, value)
		cols = append(cols, col)
	}
	return catalog.NewPartitionKey(values, cols)
}

// classifyDeletes converts a task's delete files into position-delete
// descriptors. Equality deletes are not supported and are dropped
// without error; the drop is counted for explain output. Delete-file
// paths are never relativized.
func (s *ScanNode) classifyDeletes(deletes []*iceberg.ContentFile) []DeleteFile {
	var out []DeleteFile
	for _, df := range deletes {
		if df.Content == iceberg.ContentEqualityDeletes {
			s.predicates.skippedEqualityDeletes++
			continue
		}
		out = append(out, DeleteFile{Path: df.Path, Size: df.Size})
	}
	return out
}

// extendedColumns synthesizes literal values for the reserved
// metadata columns bound to projected slots. Slots backed by ordinary
// columns are untouched; they resolve through normal projection.
func (s *ScanNode) extendedColumns(file *iceberg.ContentFile) ExtendedColumns {
	var cols ExtendedColumns
	for _, slot := range s.desc.Slots {
		var value expr.Constant
		switch name := slot.Column.Name; {
		case strings.EqualFold(name, catalog.DataSequenceNumber):
			value = expr.Integer(file.DataSequenceNumber)
		case strings.EqualFold(name, catalog.SpecID):
			value = expr.Integer(int64(file.SpecID))
		default:
			continue
		}
		if cols == nil {
			cols = make(ExtendedColumns)
		}
		cols[slot.ID] = value
		if !slices.Contains(s.extendedSlotIDs, slot.ID) {
			s.extendedSlotIDs = append(s.extendedSlotIDs, slot.ID)
		}
	}
	return cols
}

// buildScanRange assembles one scan range for (task, file), assigning
// a partition id and registering the partition key on first sight of
// the file's partition tuple.
func (s *ScanNode) buildScanRange(task *iceberg.FileScanTask, file *iceberg.ContentFile,
	partitionToID map[string]int64, idToPartitionSlots map[int64][]descriptor.SlotID,
	descTbl *descriptor.Table) (*ScanRange, error) {
	structKey := file.Partition.Key()
	id, seen := partitionToID[structKey]
	if !seen {
		id = s.table.NextPartitionID()
		partitionToID[structKey] = id
		ix := s.identityPartitions(task.Spec)
		if !ix.empty() {
			var slotIDs []descriptor.SlotID
			var indexes []int
			for _, field := range task.Spec.Fields {
				index, ok := ix.byField[field.FieldID]
				if !ok {
					continue
				}
				slot := s.desc.ColumnSlot(field.Name)
				if slot == nil {
					// column not projected
					continue
				}
				indexes = append(indexes, index)
				slotIDs = append(slotIDs, slot.ID)
			}
			key, err := s.partitionKey(file.Partition, task.Spec, indexes, ix)
			if err != nil {
				return nil, err
			}
			descTbl.AddReferencedPartition(s.table, id, key)
			idToPartitionSlots[id] = slotIDs
		}
	}

	format, err := fileFormat(file.Format)
	if err != nil {
		return nil, err
	}

	r := &ScanRange{
		FileSize:    file.Size,
		Format:      format,
		PartitionID: SentinelPartitionID,
		// data files are immutable, so there is nothing to
		// track for incremental refresh
		ModificationTime: 0,
	}

	if root := s.table.Location; root != "" && len(file.Path) > len(root) && strings.HasPrefix(file.Path, root) {
		r.Path = Path{Mode: PathRelative, Value: file.Path[len(root):]}
	} else {
		r.Path = Path{Mode: PathFull, Value: file.Path}
	}

	if file.Content == iceberg.ContentData {
		r.Offset, r.Length = task.Start, task.Length
	} else {
		r.Offset, r.Length = 0, file.Size
	}

	if slots, ok := idToPartitionSlots[id]; ok {
		r.PartitionID = id
		r.IdentityPartitionSlotIDs = slots
	}

	r.ExtendedColumns = s.extendedColumns(file)
	return r, nil
}

// buildScanRanges builds the scan range for one task, attaching its
// classified delete files, and appends it to the plan.
func (s *ScanNode) buildScanRanges(task *iceberg.FileScanTask, p *ScanPlan,
	partitionToID map[string]int64, idToPartitionSlots map[int64][]descriptor.SlotID,
	descTbl *descriptor.Table) error {
	r, err := s.buildScanRange(task, task.File, partitionToID, idToPartitionSlots, descTbl)
	if err != nil {
		return err
	}
	if deletes := s.classifyDeletes(task.Deletes); len(deletes) > 0 {
		r.DeleteFiles = deletes
	}
	p.Ranges = append(p.Ranges, *r)
	return nil
}

// SetupScanRangeLocations retrieves the table's file scan tasks for
// the resolved snapshot and compiles them into a scan plan. A table
// with no committed snapshot, or a predicate matching no files,
// yields an empty plan rather than an error. Any fatal condition
// aborts the build; no partial plan is returned.
func (s *ScanNode) SetupScanRangeLocations(descTbl *descriptor.Table) (*ScanPlan, error) {
	p := &ScanPlan{ID: uuid.New(), Table: s.table.Name}
	if s.snapshotID == nil {
		s.session.logf("table %s has no snapshot", s.table.Name)
		return p, nil
	}

	tasks, err := s.source.FileScanTasks(s.table, *s.snapshotID, s.predicate)
	if err != nil {
		return nil, fmt.Errorf("plan: retrieving scan tasks for %s.%s: %w", s.table.Database, s.table.Name, err)
	}
	if len(tasks) == 0 {
		s.session.logf("no scan tasks on %s.%s with predicate [%s]",
			s.table.Database, s.table.Name, expr.ToString(s.predicate))
		return p, nil
	}

	partitionToID := make(map[string]int64)
	idToPartitionSlots := make(map[int64][]descriptor.SlotID)
	for _, task := range tasks {
		if err := s.buildScanRanges(task, p, partitionToID, idToPartitionSlots, descTbl); err != nil {
			return nil, err
		}
	}

	selected := maps.Values(partitionToID)
	slices.Sort(selected)
	s.predicates.selected = selected
	p.ExtendedColumnSlotIDs = slices.Clone(s.extendedSlotIDs)
	return p, nil
}
