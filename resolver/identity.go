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

package resolver

import (
	"time"

	"dirpx.dev/tfx/apis"
	"dirpx.dev/tfx/temporal"
)

// Identity is the no-customization apis.Resolver: every method returns the
// default strategy unchanged.
//
// Embed it to customize a single kind and inherit pass-through behavior for
// every other one:
//
//	type pastDates struct{ resolver.Identity }
//
//	func (pastDates) LocalDates(def apis.Arbitrary[temporal.LocalDate], ctx apis.Context) apis.Arbitrary[temporal.LocalDate] {
//		return arbitrary.Clamp(def, time.Time{}, time.Now())
//	}
type Identity struct{}

// Ensure Identity implements apis.Resolver.
var _ apis.Resolver = Identity{}

// Instants returns def unchanged.
func (Identity) Instants(def apis.Arbitrary[time.Time], _ apis.Context) apis.Arbitrary[time.Time] {
	return def
}

// Durations returns def unchanged.
func (Identity) Durations(def apis.Arbitrary[time.Duration], _ apis.Context) apis.Arbitrary[time.Duration] {
	return def
}

// Months returns def unchanged.
func (Identity) Months(def apis.Arbitrary[time.Month], _ apis.Context) apis.Arbitrary[time.Month] {
	return def
}

// Weekdays returns def unchanged.
func (Identity) Weekdays(def apis.Arbitrary[time.Weekday], _ apis.Context) apis.Arbitrary[time.Weekday] {
	return def
}

// Locations returns def unchanged.
func (Identity) Locations(def apis.Arbitrary[*time.Location], _ apis.Context) apis.Arbitrary[*time.Location] {
	return def
}

// UnixMillis returns def unchanged.
func (Identity) UnixMillis(def apis.Arbitrary[temporal.UnixMilli], _ apis.Context) apis.Arbitrary[temporal.UnixMilli] {
	return def
}

// LocalDates returns def unchanged.
func (Identity) LocalDates(def apis.Arbitrary[temporal.LocalDate], _ apis.Context) apis.Arbitrary[temporal.LocalDate] {
	return def
}

// LocalDateTimes returns def unchanged.
func (Identity) LocalDateTimes(def apis.Arbitrary[temporal.LocalDateTime], _ apis.Context) apis.Arbitrary[temporal.LocalDateTime] {
	return def
}

// LocalTimes returns def unchanged.
func (Identity) LocalTimes(def apis.Arbitrary[temporal.LocalTime], _ apis.Context) apis.Arbitrary[temporal.LocalTime] {
	return def
}

// ZonedDateTimes returns def unchanged.
func (Identity) ZonedDateTimes(def apis.Arbitrary[temporal.ZonedDateTime], _ apis.Context) apis.Arbitrary[temporal.ZonedDateTime] {
	return def
}

// OffsetDateTimes returns def unchanged.
func (Identity) OffsetDateTimes(def apis.Arbitrary[temporal.OffsetDateTime], _ apis.Context) apis.Arbitrary[temporal.OffsetDateTime] {
	return def
}

// OffsetTimes returns def unchanged.
func (Identity) OffsetTimes(def apis.Arbitrary[temporal.OffsetTime], _ apis.Context) apis.Arbitrary[temporal.OffsetTime] {
	return def
}

// MonthDays returns def unchanged.
func (Identity) MonthDays(def apis.Arbitrary[temporal.MonthDay], _ apis.Context) apis.Arbitrary[temporal.MonthDay] {
	return def
}

// Years returns def unchanged.
func (Identity) Years(def apis.Arbitrary[temporal.Year], _ apis.Context) apis.Arbitrary[temporal.Year] {
	return def
}

// YearMonths returns def unchanged.
func (Identity) YearMonths(def apis.Arbitrary[temporal.YearMonth], _ apis.Context) apis.Arbitrary[temporal.YearMonth] {
	return def
}

// Periods returns def unchanged.
func (Identity) Periods(def apis.Arbitrary[temporal.Period], _ apis.Context) apis.Arbitrary[temporal.Period] {
	return def
}

// ZoneOffsets returns def unchanged.
func (Identity) ZoneOffsets(def apis.Arbitrary[temporal.ZoneOffset], _ apis.Context) apis.Arbitrary[temporal.ZoneOffset] {
	return def
}
