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

// Provider supplies the default strategy for every supported Kind, one
// method per Kind. Methods take no arguments and must be free of side
// effects: calling one twice yields equivalent strategies.
//
// A Provider that cannot build a default is broken; the registry does not
// guard against it.
type Provider interface {
	Instants() Arbitrary[time.Time]
	Durations() Arbitrary[time.Duration]
	Months() Arbitrary[time.Month]
	Weekdays() Arbitrary[time.Weekday]
	Locations() Arbitrary[*time.Location]
	UnixMillis() Arbitrary[temporal.UnixMilli]
	LocalDates() Arbitrary[temporal.LocalDate]
	LocalDateTimes() Arbitrary[temporal.LocalDateTime]
	LocalTimes() Arbitrary[temporal.LocalTime]
	ZonedDateTimes() Arbitrary[temporal.ZonedDateTime]
	OffsetDateTimes() Arbitrary[temporal.OffsetDateTime]
	OffsetTimes() Arbitrary[temporal.OffsetTime]
	MonthDays() Arbitrary[temporal.MonthDay]
	Years() Arbitrary[temporal.Year]
	YearMonths() Arbitrary[temporal.YearMonth]
	Periods() Arbitrary[temporal.Period]
	ZoneOffsets() Arbitrary[temporal.ZoneOffset]
}
