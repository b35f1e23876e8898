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

// Package arbitrary holds the strategies the default provider hands out.
//
// Every strategy is a plain struct without function fields, so two
// strategies built from the same settings are reflect.DeepEqual. Tests and
// resolvers rely on that to tell a default from a replacement.
package arbitrary

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host

	"dirpx.dev/tfx/apis"
	"dirpx.dev/tfx/temporal"
)

// Clamper is implemented by strategies whose output can be restricted to an
// instant window.
type Clamper[T any] interface {
	// Clamp returns a strategy limited to [lo, hi]. A zero bound is open.
	Clamp(lo, hi time.Time) apis.Arbitrary[T]
}

// Clamp restricts a to [lo, hi] if it supports clamping, and returns it
// unchanged otherwise.
func Clamp[T any](a apis.Arbitrary[T], lo, hi time.Time) apis.Arbitrary[T] {
	if c, ok := a.(Clamper[T]); ok {
		return c.Clamp(lo, hi)
	}
	return a
}

// Times samples instants uniformly from [Min, Max] and reports them in
// Location (UTC when nil). An empty range always yields Min.
type Times struct {
	Min      time.Time
	Max      time.Time
	Location *time.Location
}

// Ensure Times implements apis.Arbitrary and Clamper.
var (
	_ apis.Arbitrary[time.Time] = Times{}
	_ Clamper[time.Time]        = Times{}
)

func (a Times) Sample(r *rand.Rand) time.Time {
	loc := a.Location
	if loc == nil {
		loc = time.UTC
	}
	if !a.Max.After(a.Min) {
		return a.Min.In(loc)
	}
	// Sub saturates at math.MaxInt64, so anything below it is exact.
	if span := a.Max.Sub(a.Min); span < math.MaxInt64 {
		return a.Min.Add(time.Duration(r.Int64N(int64(span) + 1))).In(loc)
	}
	lo, hi := a.Min.Unix(), a.Max.Unix()
	t := time.Unix(lo+r.Int64N(hi-lo+1), r.Int64N(int64(time.Second)))
	if t.Before(a.Min) {
		t = a.Min
	} else if t.After(a.Max) {
		t = a.Max
	}
	return t.In(loc)
}

// Clamp intersects [Min, Max] with [lo, hi]. When the two do not overlap,
// the given bounds win: a missing side is filled by shifting the current
// span so it ends at hi or starts at lo.
func (a Times) Clamp(lo, hi time.Time) apis.Arbitrary[time.Time] {
	return a.clamp(lo, hi)
}

func (a Times) clamp(lo, hi time.Time) Times {
	if lo.IsZero() && hi.IsZero() {
		return a
	}
	out := a
	if !lo.IsZero() && lo.After(out.Min) {
		out.Min = lo
	}
	if !hi.IsZero() && hi.Before(out.Max) {
		out.Max = hi
	}
	if !out.Min.After(out.Max) {
		return out
	}

	span := max(a.Max.Sub(a.Min), 0)
	switch {
	case !lo.IsZero() && !hi.IsZero():
		out.Min, out.Max = lo, hi
	case !hi.IsZero():
		out.Min, out.Max = hi.Add(-span), hi
	default:
		out.Min, out.Max = lo, lo.Add(span)
	}
	return out
}

// Projected samples an instant from Within and projects it onto T.
type Projected[T temporal.Projection[T]] struct {
	Within Times
}

func (a Projected[T]) Sample(r *rand.Rand) T {
	var zero T
	return zero.FromTime(a.Within.Sample(r))
}

// Clamp restricts the underlying instant window.
func (a Projected[T]) Clamp(lo, hi time.Time) apis.Arbitrary[T] {
	return Projected[T]{Within: a.Within.clamp(lo, hi)}
}

// Durations samples uniformly from [Min, Max].
type Durations struct {
	Min time.Duration
	Max time.Duration
}

func (a Durations) Sample(r *rand.Rand) time.Duration {
	if a.Max <= a.Min {
		return a.Min
	}
	return a.Min + time.Duration(r.Int64N(int64(a.Max-a.Min)+1))
}

// Integer is the set of types Ints can sample.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Ints samples uniformly from [Min, Max].
type Ints[T Integer] struct {
	Min T
	Max T
}

func (a Ints[T]) Sample(r *rand.Rand) T {
	if a.Max <= a.Min {
		return a.Min
	}
	return T(int64(a.Min) + r.Int64N(int64(a.Max)-int64(a.Min)+1))
}

// Locations picks one of the named IANA zones. With no names it yields UTC.
type Locations struct {
	Names []string
}

// Sample panics if a name is not a known zone; Validate reports that upfront.
func (a Locations) Sample(r *rand.Rand) *time.Location {
	if len(a.Names) == 0 {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.Names[r.IntN(len(a.Names))])
	if err != nil {
		panic(fmt.Errorf("tfx(arbitrary): %w", err))
	}
	return loc
}

// Validate checks that every name resolves to a zone.
func (a Locations) Validate() error {
	for _, n := range a.Names {
		if _, err := time.LoadLocation(n); err != nil {
			return fmt.Errorf("tfx(arbitrary): zone %q: %w", n, err)
		}
	}
	return nil
}

// Periods samples each component uniformly from [0, Max*].
type Periods struct {
	MaxYears  int
	MaxMonths int
	MaxDays   int
}

func (a Periods) Sample(r *rand.Rand) temporal.Period {
	return temporal.Period{
		Years:  upTo(r, a.MaxYears),
		Months: upTo(r, a.MaxMonths),
		Days:   upTo(r, a.MaxDays),
	}
}

func upTo(r *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return r.IntN(n + 1)
}

// Just always yields Value.
type Just[T any] struct {
	Value T
}

func (a Just[T]) Sample(*rand.Rand) T { return a.Value }
