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

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tfx/apis"
	"dirpx.dev/tfx/config"
)

const sample = `
max_unwrap: 2
log:
  level: debug
window:
  min: 2000-01-01T00:00:00Z
  max: 2030-12-31T23:59:59Z
zones: [UTC, Europe/Berlin]
durations:
  min: 1s
  max: 1h
bounds:
  local-date:
    min: 2020-01-01T00:00:00Z
  YEAR_MONTH:
    max: 2025-01-01T00:00:00Z
`

func TestParse(t *testing.T) {
	f, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 2, f.MaxUnwrap)
	assert.Equal(t, "debug", f.Log.Level)
	require.NotNil(t, f.Window)
	assert.True(t, f.Window.Min.Equal(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"UTC", "Europe/Berlin"}, f.Zones)
	require.NotNil(t, f.Durations)
	assert.Equal(t, time.Second, f.Durations.Min)
	assert.Equal(t, time.Hour, f.Durations.Max)
	assert.Equal(t, apis.Config{MaxUnwrap: 2}, f.Config())
}

func TestParse_Defaults(t *testing.T) {
	f, err := config.Parse([]byte("zones: [UTC]\n"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultMaxUnwrap, f.MaxUnwrap)
	assert.Equal(t, "info", f.Log.Level)
	assert.Nil(t, f.Window)
	assert.Nil(t, f.Durations)
	assert.Equal(t, config.DefaultConfig(), f.Config())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		is   error
	}{
		{"inverted window", "window: {min: 2030-01-01T00:00:00Z, max: 2000-01-01T00:00:00Z}", config.ErrInvalidWindow},
		{"negative durations", "durations: {min: -1s, max: 1s}", config.ErrInvalidDurations},
		{"inverted durations", "durations: {min: 1h, max: 1s}", config.ErrInvalidDurations},
		{"unknown kind", "bounds: {date: {min: 2000-01-01T00:00:00Z}}", apis.ErrUnknownKind},
		{"inverted bounds", "bounds: {year: {min: 2030-01-01T00:00:00Z, max: 2000-01-01T00:00:00Z}}", config.ErrInvalidWindow},
		{"duplicate bounds", "bounds: {local-date: {min: 2000-01-01T00:00:00Z}, LOCAL_DATE: {min: 2010-01-01T00:00:00Z}}", config.ErrDuplicateBounds},
		{"malformed", "window: [", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestBoundsFor(t *testing.T) {
	f, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	w, ok := f.BoundsFor(apis.KindLocalDate)
	require.True(t, ok)
	assert.True(t, w.Min.Equal(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Max.IsZero())

	w, ok = f.BoundsFor(apis.KindYearMonth)
	require.True(t, ok)
	assert.True(t, w.Min.IsZero())
	assert.False(t, w.Max.IsZero())

	_, ok = f.BoundsFor(apis.KindInstant)
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tfx.yml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, f.MaxUnwrap)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	f, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	out, err := config.Marshal(f)
	require.NoError(t, err)

	back, err := config.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, f.Zones, back.Zones)
	assert.Equal(t, f.Durations, back.Durations)
	assert.True(t, f.Window.Max.Equal(back.Window.Max))
	assert.Len(t, back.Bounds, 2)
}
