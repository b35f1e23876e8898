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

// Package provider supplies the default generation strategies.
package provider

import (
	"time"

	"dirpx.dev/tfx/apis"
	"dirpx.dev/tfx/arbitrary"
	"dirpx.dev/tfx/temporal"
)

var (
	// DefaultMin is the inclusive start of the default instant window.
	DefaultMin = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	// DefaultMax is the inclusive end of the default instant window.
	DefaultMax = time.Date(2099, time.December, 31, 23, 59, 59, 999999999, time.UTC)
	// DefaultZones are the locations Locations and ZonedDateTimes pick from.
	DefaultZones = []string{
		"UTC", "Europe/London", "Europe/Berlin", "America/New_York",
		"America/Los_Angeles", "Asia/Tokyo", "Asia/Kolkata", "Australia/Sydney",
	}
)

const (
	// DefaultMaxDuration bounds generated durations.
	DefaultMaxDuration = 24 * time.Hour
	// DefaultMaxPeriodYears bounds the years component of periods.
	DefaultMaxPeriodYears = 99
)

// Default is the stock apis.Provider. It holds only its settings, so the
// same instance always returns equal strategies.
type Default struct {
	min    time.Time
	max    time.Time
	minDur time.Duration
	maxDur time.Duration
	zones  []string
}

// Ensure Default implements apis.Provider.
var _ apis.Provider = (*Default)(nil)

// Option customizes a Default provider.
type Option func(*Default)

// WithWindow sets the instant window every instant-derived kind samples from.
// Zero bounds keep the defaults.
func WithWindow(min, max time.Time) Option {
	return func(d *Default) {
		if !min.IsZero() {
			d.min = min.UTC()
		}
		if !max.IsZero() {
			d.max = max.UTC()
		}
	}
}

// WithDurations sets the duration range.
func WithDurations(min, max time.Duration) Option {
	return func(d *Default) {
		d.minDur, d.maxDur = min, max
	}
}

// WithZones sets the IANA zone names locations are drawn from.
// An empty list keeps the defaults.
func WithZones(names ...string) Option {
	return func(d *Default) {
		if len(names) > 0 {
			d.zones = append([]string(nil), names...)
		}
	}
}

// New constructs a Default provider.
func New(opts ...Option) *Default {
	d := &Default{
		min:    DefaultMin,
		max:    DefaultMax,
		maxDur: DefaultMaxDuration,
		zones:  DefaultZones,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Validate reports configuration that would make a strategy fail at sample time.
func (d *Default) Validate() error {
	return arbitrary.Locations{Names: d.zones}.Validate()
}

func (d *Default) window() arbitrary.Times {
	return arbitrary.Times{Min: d.min, Max: d.max}
}

// Instants samples instants from the provider window.
func (d *Default) Instants() apis.Arbitrary[time.Time] { return d.window() }

// Durations samples durations from the configured range.
func (d *Default) Durations() apis.Arbitrary[time.Duration] {
	return arbitrary.Durations{Min: d.minDur, Max: d.maxDur}
}

// Months samples every month of the year.
func (d *Default) Months() apis.Arbitrary[time.Month] {
	return arbitrary.Ints[time.Month]{Min: time.January, Max: time.December}
}

// Weekdays samples every day of the week.
func (d *Default) Weekdays() apis.Arbitrary[time.Weekday] {
	return arbitrary.Ints[time.Weekday]{Min: time.Sunday, Max: time.Saturday}
}

// Locations picks one of the configured zones.
func (d *Default) Locations() apis.Arbitrary[*time.Location] {
	return arbitrary.Locations{Names: d.zones}
}

// UnixMillis projects instants from the provider window onto epoch millis.
func (d *Default) UnixMillis() apis.Arbitrary[temporal.UnixMilli] {
	return arbitrary.Projected[temporal.UnixMilli]{Within: d.window()}
}

// LocalDates projects instants from the provider window onto dates.
func (d *Default) LocalDates() apis.Arbitrary[temporal.LocalDate] {
	return arbitrary.Projected[temporal.LocalDate]{Within: d.window()}
}

// LocalDateTimes projects instants from the provider window onto wall-clock date-times.
func (d *Default) LocalDateTimes() apis.Arbitrary[temporal.LocalDateTime] {
	return arbitrary.Projected[temporal.LocalDateTime]{Within: d.window()}
}

// LocalTimes projects instants onto times of day.
func (d *Default) LocalTimes() apis.Arbitrary[temporal.LocalTime] {
	return arbitrary.Projected[temporal.LocalTime]{Within: d.window()}
}

// ZonedDateTimes samples in UTC; resolvers can move the window to another zone.
func (d *Default) ZonedDateTimes() apis.Arbitrary[temporal.ZonedDateTime] {
	return arbitrary.Projected[temporal.ZonedDateTime]{Within: d.window()}
}

// OffsetDateTimes projects instants from the provider window onto offset date-times.
func (d *Default) OffsetDateTimes() apis.Arbitrary[temporal.OffsetDateTime] {
	return arbitrary.Projected[temporal.OffsetDateTime]{Within: d.window()}
}

// OffsetTimes projects instants onto offset times of day.
func (d *Default) OffsetTimes() apis.Arbitrary[temporal.OffsetTime] {
	return arbitrary.Projected[temporal.OffsetTime]{Within: d.window()}
}

// MonthDays projects instants onto month-days.
func (d *Default) MonthDays() apis.Arbitrary[temporal.MonthDay] {
	return arbitrary.Projected[temporal.MonthDay]{Within: d.window()}
}

// Years projects instants from the provider window onto years.
func (d *Default) Years() apis.Arbitrary[temporal.Year] {
	return arbitrary.Projected[temporal.Year]{Within: d.window()}
}

// YearMonths projects instants from the provider window onto year-months.
func (d *Default) YearMonths() apis.Arbitrary[temporal.YearMonth] {
	return arbitrary.Projected[temporal.YearMonth]{Within: d.window()}
}

// Periods samples periods of up to DefaultMaxPeriodYears years, 11 months and 30 days.
func (d *Default) Periods() apis.Arbitrary[temporal.Period] {
	return arbitrary.Periods{MaxYears: DefaultMaxPeriodYears, MaxMonths: 11, MaxDays: 30}
}

// ZoneOffsets samples offsets within ±MaxZoneOffset seconds.
func (d *Default) ZoneOffsets() apis.Arbitrary[temporal.ZoneOffset] {
	return arbitrary.Ints[temporal.ZoneOffset]{Min: -temporal.MaxZoneOffset, Max: temporal.MaxZoneOffset}
}
