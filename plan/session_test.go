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
	"testing"
	"time"
)

func TestDecodeSession(t *testing.T) {
	s, err := DecodeSession([]byte("time_zone: Asia/Tokyo\n"))
	if err != nil {
		t.Fatal(err)
	}
	// absent keys keep their defaults
	if !s.EnableIdentityColumnOptimize {
		t.Error("identity optimization should default to enabled")
	}
	want, _ := time.LoadLocation("Asia/Tokyo")
	if s.Location().String() != want.String() {
		t.Errorf("location = %s", s.Location())
	}

	s, err = DecodeSession([]byte(`{"enable_identity_column_optimize": false}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.EnableIdentityColumnOptimize {
		t.Error("flag should be disabled")
	}
	if s.Location() != time.UTC {
		t.Errorf("default location = %s", s.Location())
	}

	if _, err := DecodeSession([]byte("time_zone: Mars/Olympus\n")); err == nil {
		t.Error("expected error for unknown zone")
	}
}
