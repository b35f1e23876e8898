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
	"dirpx.dev/tfx/arbitrary"
	"dirpx.dev/tfx/config"
	"dirpx.dev/tfx/temporal"
)

// WindowFunc returns the instant window kind k must be generated in for ctx.
// ok is false when k is unrestricted.
type WindowFunc func(k apis.Kind, ctx apis.Context) (lo, hi time.Time, ok bool)

// Windowed clamps every kind backed by an instant window (instants, unix
// millis, dates, date-times, zoned and offset date-times, years and
// year-months) to the window its WindowFunc reports. Time-of-day and
// calendar-cycle kinds pass through unchanged.
type Windowed struct {
	Identity
	Window WindowFunc
}

// Ensure Windowed implements apis.Resolver.
var _ apis.Resolver = Windowed{}

// Constrained returns a resolver that honors ctx.Constraints(). now supplies
// the reference time for Past and Future; nil means time.Now.
func Constrained(now func() time.Time) Windowed {
	if now == nil {
		now = time.Now
	}
	return Windowed{Window: func(_ apis.Kind, ctx apis.Context) (time.Time, time.Time, bool) {
		if ctx == nil {
			return time.Time{}, time.Time{}, false
		}
		cs := ctx.Constraints()
		if cs.IsZero() {
			return time.Time{}, time.Time{}, false
		}
		lo, hi := cs.Window(now())
		return lo, hi, true
	}}
}

// FromFile returns a resolver that applies the per-kind bounds of f.
func FromFile(f *config.File) Windowed {
	return Windowed{Window: func(k apis.Kind, _ apis.Context) (time.Time, time.Time, bool) {
		w, ok := f.BoundsFor(k)
		return w.Min, w.Max, ok
	}}
}

func clampTo[T any](w Windowed, k apis.Kind, def apis.Arbitrary[T], ctx apis.Context) apis.Arbitrary[T] {
	if w.Window == nil {
		return def
	}
	lo, hi, ok := w.Window(k, ctx)
	if !ok {
		return def
	}
	return arbitrary.Clamp(def, lo, hi)
}

// Instants clamps def to the window reported for its kind.
func (w Windowed) Instants(def apis.Arbitrary[time.Time], ctx apis.Context) apis.Arbitrary[time.Time] {
	return clampTo(w, apis.KindInstant, def, ctx)
}

// UnixMillis clamps def to the window reported for its kind.
func (w Windowed) UnixMillis(def apis.Arbitrary[temporal.UnixMilli], ctx apis.Context) apis.Arbitrary[temporal.UnixMilli] {
	return clampTo(w, apis.KindUnixMilli, def, ctx)
}

// LocalDates clamps def to the window reported for its kind.
func (w Windowed) LocalDates(def apis.Arbitrary[temporal.LocalDate], ctx apis.Context) apis.Arbitrary[temporal.LocalDate] {
	return clampTo(w, apis.KindLocalDate, def, ctx)
}

// LocalDateTimes clamps def to the window reported for its kind.
func (w Windowed) LocalDateTimes(def apis.Arbitrary[temporal.LocalDateTime], ctx apis.Context) apis.Arbitrary[temporal.LocalDateTime] {
	return clampTo(w, apis.KindLocalDateTime, def, ctx)
}

// ZonedDateTimes clamps def to the window reported for its kind.
func (w Windowed) ZonedDateTimes(def apis.Arbitrary[temporal.ZonedDateTime], ctx apis.Context) apis.Arbitrary[temporal.ZonedDateTime] {
	return clampTo(w, apis.KindZonedDateTime, def, ctx)
}

// OffsetDateTimes clamps def to the window reported for its kind.
func (w Windowed) OffsetDateTimes(def apis.Arbitrary[temporal.OffsetDateTime], ctx apis.Context) apis.Arbitrary[temporal.OffsetDateTime] {
	return clampTo(w, apis.KindOffsetDateTime, def, ctx)
}

// Years clamps def to the window reported for its kind.
func (w Windowed) Years(def apis.Arbitrary[temporal.Year], ctx apis.Context) apis.Arbitrary[temporal.Year] {
	return clampTo(w, apis.KindYear, def, ctx)
}

// YearMonths clamps def to the window reported for its kind.
func (w Windowed) YearMonths(def apis.Arbitrary[temporal.YearMonth], ctx apis.Context) apis.Arbitrary[temporal.YearMonth] {
	return clampTo(w, apis.KindYearMonth, def, ctx)
}
