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

// Package tfx dispatches temporal types to generation strategies for
// fixture and property-based test data.
//
// Given a declared Go type, tfx answers two questions: "is this a temporal
// type I know how to generate?" and "which strategy generates it for this
// request?". Supported types are time.Time, time.Duration, time.Month,
// time.Weekday, *time.Location and the value types of package temporal
// (LocalDate, LocalDateTime, LocalTime, ZonedDateTime, OffsetDateTime,
// OffsetTime, MonthDay, Year, YearMonth, Period, ZoneOffset, UnixMilli).
//
// # Design
//
// Three collaborators meet in a dispatch registry:
//
//   - Provider: one method per kind returning the default strategy
//     (package provider has the stock one).
//
//   - Resolver: one method per kind taking the default strategy and the
//     generation context and returning the strategy to use. The stock
//     resolver.Identity returns the default unchanged; resolver.Constrained
//     honors Min/Max/Past/Future constraints; resolver.Chain composes
//     several.
//
//   - Registry: built once from a Provider and a Resolver. For every kind
//     it holds a function composed at construction time, so dispatch is one
//     array lookup and one call. It is never mutated afterwards.
//
// An introspector.Introspector wraps a registry and is what a fixture
// framework talks to:
//
//	in := introspector.New(provider.New(), resolver.Identity{})
//	in.Supports(reflect.TypeFor[temporal.LocalDate]()) // true
//	res := in.Introspect(generator.ContextFor[temporal.LocalDate]())
//	v, _ := res.Sample(rand.New(rand.NewPCG(1, 2)))
//
// Types outside the supported set are not errors: Supports returns false
// and Introspect returns the shared apis.NotIntrospected value.
//
// # Global API
//
// Like a logger, most processes want one introspector. This package keeps a
// process-wide snapshot:
//
//	tfx.Supports(t)
//	tfx.Introspect(ctx)
//	tfx.SetResolver(resolver.Constrained(nil))
//
// Reads load the current snapshot atomically and take no locks. Writers
// (SetConfig, SetProvider, SetResolver, SetBuilder, SetAll, Reset) take a
// short build mutex, compose a new introspector and publish it with an
// atomic pointer swap, so concurrent readers always see a consistent
// snapshot and "last write wins" between writers.
//
// # Scope
//
// tfx does not walk object graphs, decide which introspector applies to a
// non-temporal type, or own a random source. Callers pass a *rand.Rand when
// sampling.
package tfx
