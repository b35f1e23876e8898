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

// Package temporal defines the temporal value types that the time package
// does not model directly: dates without a zone, times of day, month-days,
// offsets and calendar periods.
//
// Types backed by time.Time are stored in UTC unless their meaning includes
// a zone (ZonedDateTime) or a fixed offset (OffsetDateTime, OffsetTime).
// Every type exposes FromTime, a projection from an instant, which lets a
// single instant sampler back every instant-derived type.
package temporal

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// DateLayout is the ISO-8601 calendar date layout.
	DateLayout = "2006-01-02"
	// DateTimeLayout is the ISO-8601 local date-time layout.
	DateTimeLayout = "2006-01-02T15:04:05.999999999"
	// TimeLayout is the ISO-8601 local time layout.
	TimeLayout = "15:04:05.999999999"
	// OffsetTimeLayout is TimeLayout followed by a zone offset.
	OffsetTimeLayout = "15:04:05.999999999Z07:00"

	// MaxZoneOffset is the largest supported offset from UTC, in seconds.
	MaxZoneOffset = 18 * 60 * 60
)

// Projection is implemented by every instant-derived type. FromTime is
// called on the zero value and must not depend on the receiver.
type Projection[T any] interface {
	FromTime(t time.Time) T
}

// LocalDate is a calendar date without time of day or zone.
type LocalDate time.Time

// LocalDateOf returns the date year-month-day.
func LocalDateOf(year int, month time.Month, day int) LocalDate {
	return LocalDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's own location.
func (LocalDate) FromTime(t time.Time) LocalDate { return LocalDateOf(t.Date()) }

// Time returns the date as midnight UTC.
func (d LocalDate) Time() time.Time { return time.Time(d) }

func (d LocalDate) String() string { return time.Time(d).Format(DateLayout) }

// LocalDateTime is a wall-clock date and time without zone.
type LocalDateTime time.Time

// LocalDateTimeOf returns the wall-clock date-time.
func LocalDateTimeOf(year int, month time.Month, day, hour, minute, sec, nsec int) LocalDateTime {
	return LocalDateTime(time.Date(year, month, day, hour, minute, sec, nsec, time.UTC))
}

// FromTime keeps the wall clock of t and drops its zone.
func (LocalDateTime) FromTime(t time.Time) LocalDateTime {
	return LocalDateTimeOf(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// Time returns the wall clock interpreted in UTC.
func (dt LocalDateTime) Time() time.Time { return time.Time(dt) }

func (dt LocalDateTime) String() string { return time.Time(dt).Format(DateTimeLayout) }

// LocalTime is a time of day without date or zone.
type LocalTime time.Time

// LocalTimeOf returns the time of day.
func LocalTimeOf(hour, minute, sec, nsec int) LocalTime {
	return LocalTime(time.Date(0, time.January, 1, hour, minute, sec, nsec, time.UTC))
}

// FromTime keeps the wall-clock time of day of t.
func (LocalTime) FromTime(t time.Time) LocalTime {
	return LocalTimeOf(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// Time returns the time of day on January 1st of year 0, UTC.
func (lt LocalTime) Time() time.Time { return time.Time(lt) }

func (lt LocalTime) String() string { return time.Time(lt).Format(TimeLayout) }

// ZonedDateTime is an instant together with the location it is observed in.
type ZonedDateTime time.Time

// FromTime returns t unchanged, location included.
func (ZonedDateTime) FromTime(t time.Time) ZonedDateTime { return ZonedDateTime(t) }

// Time returns the underlying instant.
func (z ZonedDateTime) Time() time.Time { return time.Time(z) }

func (z ZonedDateTime) String() string {
	t := time.Time(z)
	return t.Format(time.RFC3339Nano) + "[" + t.Location().String() + "]"
}

// OffsetDateTime is an instant observed at a fixed offset from UTC.
type OffsetDateTime time.Time

// FromTime pins t to the offset its location has at t.
func (OffsetDateTime) FromTime(t time.Time) OffsetDateTime {
	_, off := t.Zone()
	return OffsetDateTime(t.In(ZoneOffset(off).Location()))
}

// Time returns the underlying instant.
func (o OffsetDateTime) Time() time.Time { return time.Time(o) }

func (o OffsetDateTime) String() string { return time.Time(o).Format(time.RFC3339Nano) }

// OffsetTime is a time of day at a fixed offset from UTC.
type OffsetTime time.Time

// FromTime keeps the time of day of t and the offset its location has at t.
func (OffsetTime) FromTime(t time.Time) OffsetTime {
	_, off := t.Zone()
	return OffsetTime(time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		ZoneOffset(off).Location()))
}

// Time returns the time of day on January 1st of year 0 at the offset.
func (o OffsetTime) Time() time.Time { return time.Time(o) }

func (o OffsetTime) String() string { return time.Time(o).Format(OffsetTimeLayout) }

// MonthDay is a day of a month without a year, e.g. a birthday.
type MonthDay struct {
	Month time.Month
	Day   int
}

// FromTime returns the month and day of t.
func (MonthDay) FromTime(t time.Time) MonthDay { return MonthDay{Month: t.Month(), Day: t.Day()} }

func (md MonthDay) String() string { return fmt.Sprintf("--%02d-%02d", int(md.Month), md.Day) }

// YearMonth is a month of a specific year.
type YearMonth struct {
	Year  int
	Month time.Month
}

// FromTime returns the year and month of t.
func (YearMonth) FromTime(t time.Time) YearMonth { return YearMonth{Year: t.Year(), Month: t.Month()} }

func (ym YearMonth) String() string { return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month)) }

// Year is a proleptic Gregorian year.
type Year int

// FromTime returns the year of t.
func (Year) FromTime(t time.Time) Year { return Year(t.Year()) }

// IsLeap reports whether y has 366 days.
func (y Year) IsLeap() bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func (y Year) String() string { return strconv.Itoa(int(y)) }

// UnixMilli is an instant as milliseconds since the Unix epoch.
type UnixMilli int64

// FromTime returns the epoch milliseconds of t.
func (UnixMilli) FromTime(t time.Time) UnixMilli { return UnixMilli(t.UnixMilli()) }

// Time returns the instant in UTC.
func (u UnixMilli) Time() time.Time { return time.UnixMilli(int64(u)).UTC() }

func (u UnixMilli) String() string { return u.Time().Format(time.RFC3339Nano) }

// ZoneOffset is an offset from UTC in seconds, east positive.
type ZoneOffset int

// FromTime returns the offset t's location has at t.
func (ZoneOffset) FromTime(t time.Time) ZoneOffset {
	_, off := t.Zone()
	return ZoneOffset(off)
}

// Location returns a fixed zone named after the offset.
func (z ZoneOffset) Location() *time.Location {
	if z == 0 {
		return time.UTC
	}
	return time.FixedZone(z.String(), int(z))
}

func (z ZoneOffset) String() string {
	if z == 0 {
		return "Z"
	}
	sign := '+'
	s := int(z)
	if s < 0 {
		sign, s = '-', -s
	}
	h, m, sec := s/3600, s/60%60, s%60
	if sec != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, h, m, sec)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}

// Period is a date-based amount of time, e.g. "2 years, 3 months and 4 days".
type Period struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports whether every component is zero.
func (p Period) IsZero() bool { return p == Period{} }

// AddTo returns t shifted by p.
func (p Period) AddTo(t time.Time) time.Time { return t.AddDate(p.Years, p.Months, p.Days) }

// String formats p as an ISO-8601 period, e.g. "P2Y3M4D".
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	s := "P"
	if p.Years != 0 {
		s += strconv.Itoa(p.Years) + "Y"
	}
	if p.Months != 0 {
		s += strconv.Itoa(p.Months) + "M"
	}
	if p.Days != 0 {
		s += strconv.Itoa(p.Days) + "D"
	}
	return s
}
