/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/tfx/apis"
)

func TestConstraints_IsZero(t *testing.T) {
	assert.True(t, apis.Constraints{}.IsZero())
	assert.False(t, apis.Constraints{Past: true}.IsZero())
	assert.False(t, apis.Constraints{Future: true}.IsZero())
	assert.False(t, apis.Constraints{Min: time.Unix(0, 0)}.IsZero())
	assert.False(t, apis.Constraints{Max: time.Unix(0, 0)}.IsZero())
}

func TestConstraints_Window(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	early := now.AddDate(-1, 0, 0)
	late := now.AddDate(1, 0, 0)

	cases := []struct {
		name   string
		c      apis.Constraints
		lo, hi time.Time
	}{
		{"open", apis.Constraints{}, time.Time{}, time.Time{}},
		{"explicit", apis.Constraints{Min: early, Max: late}, early, late},
		{"past", apis.Constraints{Past: true}, time.Time{}, now.Add(-time.Millisecond)},
		{"future", apis.Constraints{Future: true}, now.Add(time.Millisecond), time.Time{}},
		{"past keeps tighter max", apis.Constraints{Past: true, Max: early}, time.Time{}, early},
		{"past tightens max", apis.Constraints{Past: true, Max: late}, time.Time{}, now.Add(-time.Millisecond)},
		{"future keeps tighter min", apis.Constraints{Future: true, Min: late}, late, time.Time{}},
		{"future tightens min", apis.Constraints{Future: true, Min: early}, now.Add(time.Millisecond), time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := tc.c.Window(now)
			assert.True(t, tc.lo.Equal(lo), "lo = %v, want %v", lo, tc.lo)
			assert.True(t, tc.hi.Equal(hi), "hi = %v, want %v", hi, tc.hi)
		})
	}
}
