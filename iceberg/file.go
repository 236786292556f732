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

// Package iceberg models the external table format at its planning
// interface: content files, file scan tasks, partition specs, and
// schemas. Manifest and snapshot scanning live behind the FileSource
// interface and are not implemented here.
package iceberg

// FileContent is the content kind of a file tracked by table metadata.
type FileContent uint8

const (
	ContentData FileContent = iota
	ContentPositionDeletes
	ContentEqualityDeletes
)

func (c FileContent) String() string {
	switch c {
	case ContentData:
		return "data"
	case ContentPositionDeletes:
		return "position-deletes"
	case ContentEqualityDeletes:
		return "equality-deletes"
	default:
		return "unknown"
	}
}

// FileFormat is the storage format of a data or delete file.
type FileFormat uint8

const (
	FormatUnknown FileFormat = iota
	FormatParquet
	FormatOrc
	FormatAvro
	FormatMetadata
)

func (f FileFormat) String() string {
	switch f {
	case FormatParquet:
		return "parquet"
	case FormatOrc:
		return "orc"
	case FormatAvro:
		return "avro"
	case FormatMetadata:
		return "metadata"
	default:
		return "unknown"
	}
}

// ContentFile describes one data or delete file recorded in table
// metadata.
type ContentFile struct {
	// Path is the file's full path, including the scheme.
	Path string
	// Size is the file size in bytes.
	Size int64
	// Content is the file's content kind.
	Content FileContent
	// Format is the file's storage format.
	Format FileFormat
	// SpecID identifies the partition spec the file was written under.
	SpecID int
	// DataSequenceNumber orders the file against delete files.
	DataSequenceNumber int64
	// Partition is the file's raw partition tuple.
	Partition Partition
}

// FileScanTask is one planning unit produced by the table format's
// own scan planning: a data file, an optional byte sub-range within
// it, and the delete files that apply to it.
type FileScanTask struct {
	// File is the data file to scan.
	File *ContentFile
	// Start and Length bound the byte sub-range of File assigned
	// to this task; several tasks may split one physical file.
	Start  int64
	Length int64
	// Deletes are the delete files applying to File.
	Deletes []*ContentFile
	// Spec is the partition spec File was written under.
	Spec *PartitionSpec
}
