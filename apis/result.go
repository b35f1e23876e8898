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

import "math/rand/v2"

// Result is the outcome of an introspection: either a strategy for the
// requested Kind, or NotIntrospected.
//
// Results compare equal with == only against NotIntrospected; comparing two
// introspected Results may panic if their strategies are not comparable.
type Result struct {
	kind Kind
	arb  boxedArbitrary
}

// NotIntrospected is the shared "this type is not handled here" outcome.
// It is the zero Result, not an error.
var NotIntrospected = Result{}

// boxedArbitrary erases the type parameter of an Arbitrary.
type boxedArbitrary interface {
	sample(r *rand.Rand) any
	unbox() any
}

type boxed[T any] struct {
	a Arbitrary[T]
}

func (b boxed[T]) sample(r *rand.Rand) any { return b.a.Sample(r) }
func (b boxed[T]) unbox() any              { return b.a }

// NewResult wraps a strategy for kind k.
func NewResult[T any](k Kind, a Arbitrary[T]) Result {
	return Result{kind: k, arb: boxed[T]{a: a}}
}

// Introspected reports whether r carries a strategy.
func (r Result) Introspected() bool { return r.arb != nil }

// Kind returns the Kind the strategy was resolved for, or 0.
func (r Result) Kind() Kind { return r.kind }

// Arbitrary returns the wrapped strategy as an Arbitrary[T] for the Kind's
// type, or nil for NotIntrospected.
func (r Result) Arbitrary() any {
	if r.arb == nil {
		return nil
	}
	return r.arb.unbox()
}

// Sample draws one value from the wrapped strategy. ok is false for
// NotIntrospected.
func (r Result) Sample(rnd *rand.Rand) (v any, ok bool) {
	if r.arb == nil {
		return nil, false
	}
	return r.arb.sample(rnd), true
}

// ResultAs returns the strategy in r typed as Arbitrary[T]. ok is false if r
// is NotIntrospected or holds a strategy for another type.
func ResultAs[T any](r Result) (Arbitrary[T], bool) {
	b, ok := r.arb.(boxed[T])
	if !ok {
		return nil, false
	}
	return b.a, true
}
