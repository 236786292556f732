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

	"github.com/jenwitteng/starrocks/descriptor"
	"github.com/jenwitteng/starrocks/iceberg"
)

// FileFormat is the execution engine's storage-format enum.
type FileFormat uint8

const (
	FormatUnknown FileFormat = iota
	FormatParquet
	FormatOrc
)

func (f FileFormat) String() string {
	switch f {
	case FormatParquet:
		return "PARQUET"
	case FormatOrc:
		return "ORC"
	default:
		return "UNKNOWN"
	}
}

// fileFormat maps the table format's storage-format enum onto the
// engine's. Formats the engine cannot scan are a fatal error.
func fileFormat(f iceberg.FileFormat) (FileFormat, error) {
	switch f {
	case iceberg.FormatParquet:
		return FormatParquet, nil
	case iceberg.FormatOrc:
		return FormatOrc, nil
	default:
		return FormatUnknown, fmt.Errorf("plan: unsupported file format %s", f)
	}
}

// PathMode says how a scan-range path is stored.
type PathMode uint8

const (
	// PathRelative paths are relative to the table root location.
	PathRelative PathMode = iota + 1
	// PathFull paths are stored verbatim.
	PathFull
)

// Path is a scan-range file path, either relative to the table root
// or absolute; never both.
type Path struct {
	Mode  PathMode `json:"mode"`
	Value string   `json:"value"`
}

// Resolve returns the full path given the table root location.
func (p Path) Resolve(root string) string {
	if p.Mode == PathRelative {
		return root + p.Value
	}
	return p.Value
}

// DeleteFile is one position-delete descriptor attached to a scan
// range. The byte range of a delete file is always the whole file.
type DeleteFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// SentinelPartitionID is emitted instead of a real partition id when
// no identity-slot mapping was recorded for a partition, signaling
// that no partition-level constant folding is available.
const SentinelPartitionID = -1

// ScanRange is one unit of file work dispatched to the execution
// engine.
type ScanRange struct {
	// Path locates the data file, relative to the table root when
	// the root is a true prefix of the full path.
	Path Path `json:"path"`
	// Offset and Length bound the bytes to scan: the task's
	// assigned sub-range for data files, the whole file otherwise.
	Offset int64 `json:"offset"`
	Length int64 `json:"length"`
	// FileSize is the data file's total size in bytes.
	FileSize int64 `json:"file_size"`
	// Format is the engine-side storage format.
	Format FileFormat `json:"format"`
	// PartitionID is the table-scoped dense partition id, or
	// SentinelPartitionID when no identity mapping exists.
	PartitionID int64 `json:"partition_id"`
	// IdentityPartitionSlotIDs are the projected slots backed by
	// identity partition columns, set only with a real PartitionID.
	IdentityPartitionSlotIDs []descriptor.SlotID `json:"identity_partition_slot_ids,omitempty"`
	// ModificationTime is fixed to the epoch: lakehouse data files
	// are immutable, so no refresh tracking is needed.
	ModificationTime int64 `json:"modification_time"`
	// DeleteFiles are the position deletes applying to this range.
	// Absent entirely when no deletes apply.
	DeleteFiles []DeleteFile `json:"delete_files,omitempty"`
	// ExtendedColumns maps projected slot ids to literals
	// synthesized from file-level metadata.
	ExtendedColumns ExtendedColumns `json:"extended_columns,omitempty"`
}
