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

package apis

import (
	"time"

	"dirpx.dev/tfx/temporal"
)

// Resolver adjusts a default strategy for one generation request. It has one
// method per Kind; each receives the Provider's default and the request
// Context and returns the strategy to use.
//
// Returning def unchanged is the expected behavior when nothing needs to be
// customized (see resolver.Identity). Implementations may narrow or replace
// the strategy based on ctx, and must not panic for valid inputs.
type Resolver interface {
	Instants(def Arbitrary[time.Time], ctx Context) Arbitrary[time.Time]
	Durations(def Arbitrary[time.Duration], ctx Context) Arbitrary[time.Duration]
	Months(def Arbitrary[time.Month], ctx Context) Arbitrary[time.Month]
	Weekdays(def Arbitrary[time.Weekday], ctx Context) Arbitrary[time.Weekday]
	Locations(def Arbitrary[*time.Location], ctx Context) Arbitrary[*time.Location]
	UnixMillis(def Arbitrary[temporal.UnixMilli], ctx Context) Arbitrary[temporal.UnixMilli]
	LocalDates(def Arbitrary[temporal.LocalDate], ctx Context) Arbitrary[temporal.LocalDate]
	LocalDateTimes(def Arbitrary[temporal.LocalDateTime], ctx Context) Arbitrary[temporal.LocalDateTime]
	LocalTimes(def Arbitrary[temporal.LocalTime], ctx Context) Arbitrary[temporal.LocalTime]
	ZonedDateTimes(def Arbitrary[temporal.ZonedDateTime], ctx Context) Arbitrary[temporal.ZonedDateTime]
	OffsetDateTimes(def Arbitrary[temporal.OffsetDateTime], ctx Context) Arbitrary[temporal.OffsetDateTime]
	OffsetTimes(def Arbitrary[temporal.OffsetTime], ctx Context) Arbitrary[temporal.OffsetTime]
	MonthDays(def Arbitrary[temporal.MonthDay], ctx Context) Arbitrary[temporal.MonthDay]
	Years(def Arbitrary[temporal.Year], ctx Context) Arbitrary[temporal.Year]
	YearMonths(def Arbitrary[temporal.YearMonth], ctx Context) Arbitrary[temporal.YearMonth]
	Periods(def Arbitrary[temporal.Period], ctx Context) Arbitrary[temporal.Period]
	ZoneOffsets(def Arbitrary[temporal.ZoneOffset], ctx Context) Arbitrary[temporal.ZoneOffset]
}
