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

package temporal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tfx/temporal"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func TestProjections_FromTime(t *testing.T) {
	// 2024-07-15 23:30:05.5 in Berlin is 21:30:05.5 UTC, CEST is +02:00.
	at := time.Date(2024, time.July, 15, 23, 30, 5, 500_000_000, berlin(t))

	assert.Equal(t, "2024-07-15", temporal.LocalDate{}.FromTime(at).String())
	assert.Equal(t, "2024-07-15T23:30:05.5", temporal.LocalDateTime{}.FromTime(at).String())
	assert.Equal(t, "23:30:05.5", temporal.LocalTime{}.FromTime(at).String())
	assert.Equal(t, "2024-07-15T23:30:05.5+02:00[Europe/Berlin]", temporal.ZonedDateTime{}.FromTime(at).String())
	assert.Equal(t, "2024-07-15T23:30:05.5+02:00", temporal.OffsetDateTime{}.FromTime(at).String())
	assert.Equal(t, "23:30:05.5+02:00", temporal.OffsetTime{}.FromTime(at).String())
	assert.Equal(t, temporal.MonthDay{Month: time.July, Day: 15}, temporal.MonthDay{}.FromTime(at))
	assert.Equal(t, temporal.YearMonth{Year: 2024, Month: time.July}, temporal.YearMonth{}.FromTime(at))
	assert.Equal(t, temporal.Year(2024), temporal.Year(0).FromTime(at))
	assert.Equal(t, temporal.UnixMilli(at.UnixMilli()), temporal.UnixMilli(0).FromTime(at))
	assert.Equal(t, temporal.ZoneOffset(2*3600), temporal.ZoneOffset(0).FromTime(at))
}

func TestOffsetDateTime_SameInstant(t *testing.T) {
	at := time.Date(2024, time.January, 2, 3, 4, 5, 0, berlin(t))
	o := temporal.OffsetDateTime{}.FromTime(at)
	assert.True(t, o.Time().Equal(at))

	_, off := o.Time().Zone()
	assert.Equal(t, 3600, off)
}

func TestLocalTypes_AreUTCBacked(t *testing.T) {
	d := temporal.LocalDateOf(2000, time.February, 29)
	assert.Equal(t, time.UTC, d.Time().Location())
	assert.Equal(t, "2000-02-29", d.String())

	dt := temporal.LocalDateTimeOf(1999, time.December, 31, 23, 59, 59, 0)
	assert.Equal(t, "1999-12-31T23:59:59", dt.String())

	lt := temporal.LocalTimeOf(7, 5, 0, 0)
	assert.Equal(t, "07:05:00", lt.String())
	assert.Equal(t, 0, lt.Time().Year())
}

func TestMonthDay_YearMonth_String(t *testing.T) {
	assert.Equal(t, "--02-29", temporal.MonthDay{Month: time.February, Day: 29}.String())
	assert.Equal(t, "0999-01", temporal.YearMonth{Year: 999, Month: time.January}.String())
}

func TestYear_IsLeap(t *testing.T) {
	cases := map[temporal.Year]bool{
		1900: false,
		2000: true,
		2023: false,
		2024: true,
		2100: false,
	}
	for y, want := range cases {
		assert.Equal(t, want, y.IsLeap(), y.String())
	}
}

func TestUnixMilli(t *testing.T) {
	u := temporal.UnixMilli(1_700_000_000_123)
	assert.Equal(t, time.UTC, u.Time().Location())
	assert.Equal(t, "2023-11-14T22:13:20.123Z", u.String())
}

func TestZoneOffset(t *testing.T) {
	cases := []struct {
		off  temporal.ZoneOffset
		want string
	}{
		{0, "Z"},
		{3600, "+01:00"},
		{-(5*3600 + 30*60), "-05:30"},
		{temporal.MaxZoneOffset, "+18:00"},
		{-temporal.MaxZoneOffset, "-18:00"},
		{3600 + 61, "+01:01:01"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.off.String())

			_, off := time.Date(2020, 1, 1, 0, 0, 0, 0, tc.off.Location()).Zone()
			assert.Equal(t, int(tc.off), off)
		})
	}
	assert.Same(t, time.UTC, temporal.ZoneOffset(0).Location())
}

func TestPeriod(t *testing.T) {
	assert.True(t, temporal.Period{}.IsZero())
	assert.Equal(t, "P0D", temporal.Period{}.String())
	assert.Equal(t, "P2Y3M4D", temporal.Period{Years: 2, Months: 3, Days: 4}.String())
	assert.Equal(t, "P1M", temporal.Period{Months: 1}.String())
	assert.Equal(t, "P-3D", temporal.Period{Days: -3}.String())

	start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	got := temporal.Period{Years: 1, Days: 1}.AddTo(start)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), got)
}
