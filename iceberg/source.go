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

package iceberg

import (
	"github.com/jenwitteng/starrocks/catalog"
	"github.com/jenwitteng/starrocks/expr"
)

// FileSource retrieves snapshot-scoped, predicate-filtered file scan
// tasks from the table format's own planning layer. Implementations
// may perform blocking I/O and internal parallel manifest scanning;
// the call is synchronous from the planner's point of view.
type FileSource interface {
	// FileScanTasks returns the tasks selected by the predicate at
	// the given snapshot. An empty result is a valid, non-error
	// outcome; a transport or metadata failure is an error and is
	// fatal to plan construction. The predicate is passed through
	// unmodified and never interpreted by the caller.
	FileScanTasks(table *catalog.Table, snapshotID int64, predicate expr.Node) ([]*FileScanTask, error)
}
