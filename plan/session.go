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
	"sync"
	"time"

	"sigs.k8s.io/yaml"
)

// Session carries the per-session settings that influence plan
// construction.
type Session struct {
	// EnableIdentityColumnOptimize toggles identity partition-key
	// reconstruction. When false, no partition keys are registered
	// and every scan range carries the -1 partition-id sentinel;
	// scan ranges are still produced.
	EnableIdentityColumnOptimize bool `json:"enable_identity_column_optimize"`

	// TimeZone is the IANA name of the session time zone used to
	// re-express timestamp-with-timezone partition values as local
	// date-times. Empty means UTC.
	TimeZone string `json:"time_zone,omitempty"`

	// Logf, if non-nil, is where plan construction logs
	// non-fatal conditions. Logf must be safe to call
	// from multiple goroutines.
	Logf func(f string, args ...interface{}) `json:"-"`

	once sync.Once
	loc  *time.Location
}

// DefaultSession returns a session with the identity-column
// optimization enabled and the UTC time zone.
func DefaultSession() *Session {
	return &Session{EnableIdentityColumnOptimize: true}
}

// DecodeSession decodes session settings from YAML or JSON text.
// Settings absent from the input keep their defaults.
func DecodeSession(buf []byte) (*Session, error) {
	s := DefaultSession()
	if err := yaml.Unmarshal(buf, s); err != nil {
		return nil, fmt.Errorf("plan: decoding session: %w", err)
	}
	if s.TimeZone != "" {
		if _, err := time.LoadLocation(s.TimeZone); err != nil {
			return nil, fmt.Errorf("plan: bad session time zone: %w", err)
		}
	}
	return s, nil
}

// Location resolves the session time zone. The result is cached
// after the first call; an unresolvable name falls back to UTC.
func (s *Session) Location() *time.Location {
	s.once.Do(func() {
		s.loc = time.UTC
		if s.TimeZone != "" {
			if loc, err := time.LoadLocation(s.TimeZone); err == nil {
				s.loc = loc
			}
		}
	})
	return s.loc
}

func (s *Session) logf(f string, args ...interface{}) {
	if s.Logf != nil {
		s.Logf(f, args...)
	}
}
