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

package registry

import (
	"errors"
	"fmt"

	"github.com/jhunt/go-log"

	"dirpx.dev/tfx/apis"
)

var (
	// ErrNilProvider is raised when New is given a nil provider.
	ErrNilProvider = errors.New("tfx(registry): nil provider")
	// ErrNilResolver is raised when New is given a nil resolver.
	ErrNilResolver = errors.New("tfx(registry): nil resolver")
	// ErrDuplicateKind indicates two entries were bound to the same kind.
	ErrDuplicateKind = errors.New("tfx(registry): duplicate kind registration")
	// ErrMissingKind indicates a supported kind was left without an entry.
	ErrMissingKind = errors.New("tfx(registry): kind left unregistered")
)

// New composes p and r into an immutable apis.Registry.
//
// For every kind it binds, once, a function that asks p for the default
// strategy, passes it through r together with the request context and wraps
// the outcome in an apis.Result. Lookups afterwards are a single array index.
//
// New panics with ErrNilProvider or ErrNilResolver on nil collaborators and
// with ErrDuplicateKind or ErrMissingKind if the binding table is
// inconsistent; those are programming errors, not runtime conditions.
func New(p apis.Provider, r apis.Resolver) apis.Registry {
	if p == nil {
		panic(ErrNilProvider)
	}
	if r == nil {
		panic(ErrNilResolver)
	}

	var t table
	bind(&t, apis.KindInstant, p.Instants, r.Instants)
	bind(&t, apis.KindDuration, p.Durations, r.Durations)
	bind(&t, apis.KindMonth, p.Months, r.Months)
	bind(&t, apis.KindWeekday, p.Weekdays, r.Weekdays)
	bind(&t, apis.KindLocation, p.Locations, r.Locations)
	bind(&t, apis.KindUnixMilli, p.UnixMillis, r.UnixMillis)
	bind(&t, apis.KindLocalDate, p.LocalDates, r.LocalDates)
	bind(&t, apis.KindLocalDateTime, p.LocalDateTimes, r.LocalDateTimes)
	bind(&t, apis.KindLocalTime, p.LocalTimes, r.LocalTimes)
	bind(&t, apis.KindZonedDateTime, p.ZonedDateTimes, r.ZonedDateTimes)
	bind(&t, apis.KindOffsetDateTime, p.OffsetDateTimes, r.OffsetDateTimes)
	bind(&t, apis.KindOffsetTime, p.OffsetTimes, r.OffsetTimes)
	bind(&t, apis.KindMonthDay, p.MonthDays, r.MonthDays)
	bind(&t, apis.KindYear, p.Years, r.Years)
	bind(&t, apis.KindYearMonth, p.YearMonths, r.YearMonths)
	bind(&t, apis.KindPeriod, p.Periods, r.Periods)
	bind(&t, apis.KindZoneOffset, p.ZoneOffsets, r.ZoneOffsets)

	mustBeComplete(&t)

	log.Debugf("tfx(registry): composed dispatch table for %d kinds", apis.KindTotal-1)
	return &registry{fns: t}
}

// table holds one composed function per kind; index 0 stays empty.
type table [apis.KindTotal]apis.Func

// bind composes the provider method def and the resolver method res for k.
func bind[T any](
	t *table,
	k apis.Kind,
	def func() apis.Arbitrary[T],
	res func(apis.Arbitrary[T], apis.Context) apis.Arbitrary[T],
) {
	if t[k] != nil {
		panic(fmt.Errorf("%w: %s", ErrDuplicateKind, k))
	}
	t[k] = func(ctx apis.Context) apis.Result {
		return apis.NewResult(k, res(def(), ctx))
	}
}

// mustBeComplete panics with ErrMissingKind unless every declared kind has
// an entry.
func mustBeComplete(t *table) {
	for _, k := range apis.Kinds() {
		if t[k] == nil {
			panic(fmt.Errorf("%w: %s", ErrMissingKind, k))
		}
	}
}

// registry is the array-backed apis.Registry. It is never written after New
// returns, so concurrent readers need no synchronization.
type registry struct {
	fns table
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Lookup returns the composed function for k.
func (r *registry) Lookup(k apis.Kind) (apis.Func, bool) {
	if !k.IsValid() {
		return nil, false
	}
	fn := r.fns[k]
	return fn, fn != nil
}

// Kinds returns the registered kinds in declaration order.
func (r *registry) Kinds() []apis.Kind {
	out := make([]apis.Kind, 0, len(r.fns))
	for i, fn := range r.fns {
		if fn != nil {
			out = append(out, apis.Kind(i))
		}
	}
	return out
}

// Count returns the number of registered kinds.
func (r *registry) Count() int {
	n := 0
	for _, fn := range r.fns {
		if fn != nil {
			n++
		}
	}
	return n
}
