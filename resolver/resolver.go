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

// Chain constructs an apis.Resolver that applies the given resolvers in
// order, each one receiving the strategy the previous one returned.
// Nil resolvers are ignored; an empty chain behaves like Identity.
// The returned resolver is safe for concurrent use provided the chained
// resolvers are.
func Chain(resolvers ...apis.Resolver) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Resolver, 0, len(resolvers))
	for _, r := range resolvers {
		if r != nil {
			out = append(out, r)
		}
	}
	return chain{links: out}
}

// chain is an immutable, order-preserving resolver over a set of resolvers.
type chain struct {
	links []apis.Resolver
}

// Ensure chain implements apis.Resolver.
var _ apis.Resolver = chain{}

// fold threads a through every link using step, the per-kind method expression.
func fold[T any](
	links []apis.Resolver,
	a apis.Arbitrary[T],
	ctx apis.Context,
	step func(apis.Resolver, apis.Arbitrary[T], apis.Context) apis.Arbitrary[T],
) apis.Arbitrary[T] {
	for _, r := range links {
		a = step(r, a, ctx)
	}
	return a
}

// Instants threads def through every link in order.
func (c chain) Instants(def apis.Arbitrary[time.Time], ctx apis.Context) apis.Arbitrary[time.Time] {
	return fold(c.links, def, ctx, apis.Resolver.Instants)
}

// Durations threads def through every link in order.
func (c chain) Durations(def apis.Arbitrary[time.Duration], ctx apis.Context) apis.Arbitrary[time.Duration] {
	return fold(c.links, def, ctx, apis.Resolver.Durations)
}

// Months threads def through every link in order.
func (c chain) Months(def apis.Arbitrary[time.Month], ctx apis.Context) apis.Arbitrary[time.Month] {
	return fold(c.links, def, ctx, apis.Resolver.Months)
}

// Weekdays threads def through every link in order.
func (c chain) Weekdays(def apis.Arbitrary[time.Weekday], ctx apis.Context) apis.Arbitrary[time.Weekday] {
	return fold(c.links, def, ctx, apis.Resolver.Weekdays)
}

// Locations threads def through every link in order.
func (c chain) Locations(def apis.Arbitrary[*time.Location], ctx apis.Context) apis.Arbitrary[*time.Location] {
	return fold(c.links, def, ctx, apis.Resolver.Locations)
}

// UnixMillis threads def through every link in order.
func (c chain) UnixMillis(def apis.Arbitrary[temporal.UnixMilli], ctx apis.Context) apis.Arbitrary[temporal.UnixMilli] {
	return fold(c.links, def, ctx, apis.Resolver.UnixMillis)
}

// LocalDates threads def through every link in order.
func (c chain) LocalDates(def apis.Arbitrary[temporal.LocalDate], ctx apis.Context) apis.Arbitrary[temporal.LocalDate] {
	return fold(c.links, def, ctx, apis.Resolver.LocalDates)
}

// LocalDateTimes threads def through every link in order.
func (c chain) LocalDateTimes(def apis.Arbitrary[temporal.LocalDateTime], ctx apis.Context) apis.Arbitrary[temporal.LocalDateTime] {
	return fold(c.links, def, ctx, apis.Resolver.LocalDateTimes)
}

// LocalTimes threads def through every link in order.
func (c chain) LocalTimes(def apis.Arbitrary[temporal.LocalTime], ctx apis.Context) apis.Arbitrary[temporal.LocalTime] {
	return fold(c.links, def, ctx, apis.Resolver.LocalTimes)
}

// ZonedDateTimes threads def through every link in order.
func (c chain) ZonedDateTimes(def apis.Arbitrary[temporal.ZonedDateTime], ctx apis.Context) apis.Arbitrary[temporal.ZonedDateTime] {
	return fold(c.links, def, ctx, apis.Resolver.ZonedDateTimes)
}

// OffsetDateTimes threads def through every link in order.
func (c chain) OffsetDateTimes(def apis.Arbitrary[temporal.OffsetDateTime], ctx apis.Context) apis.Arbitrary[temporal.OffsetDateTime] {
	return fold(c.links, def, ctx, apis.Resolver.OffsetDateTimes)
}

// OffsetTimes threads def through every link in order.
func (c chain) OffsetTimes(def apis.Arbitrary[temporal.OffsetTime], ctx apis.Context) apis.Arbitrary[temporal.OffsetTime] {
	return fold(c.links, def, ctx, apis.Resolver.OffsetTimes)
}

// MonthDays threads def through every link in order.
func (c chain) MonthDays(def apis.Arbitrary[temporal.MonthDay], ctx apis.Context) apis.Arbitrary[temporal.MonthDay] {
	return fold(c.links, def, ctx, apis.Resolver.MonthDays)
}

// Years threads def through every link in order.
func (c chain) Years(def apis.Arbitrary[temporal.Year], ctx apis.Context) apis.Arbitrary[temporal.Year] {
	return fold(c.links, def, ctx, apis.Resolver.Years)
}

// YearMonths threads def through every link in order.
func (c chain) YearMonths(def apis.Arbitrary[temporal.YearMonth], ctx apis.Context) apis.Arbitrary[temporal.YearMonth] {
	return fold(c.links, def, ctx, apis.Resolver.YearMonths)
}

// Periods threads def through every link in order.
func (c chain) Periods(def apis.Arbitrary[temporal.Period], ctx apis.Context) apis.Arbitrary[temporal.Period] {
	return fold(c.links, def, ctx, apis.Resolver.Periods)
}

// ZoneOffsets threads def through every link in order.
func (c chain) ZoneOffsets(def apis.Arbitrary[temporal.ZoneOffset], ctx apis.Context) apis.Arbitrary[temporal.ZoneOffset] {
	return fold(c.links, def, ctx, apis.Resolver.ZoneOffsets)
}
