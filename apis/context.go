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
	"reflect"
	"time"
)

// Context describes one generation request. It is owned by the host
// framework; the core only reads from it and never retains it.
type Context interface {
	// ResolvedType returns the type of the value being generated, with any
	// generic parameters already resolved by the host. It may still carry
	// pointer wrappers.
	ResolvedType() reflect.Type
	// Constraints returns validation constraints declared on the property.
	// The zero value means unconstrained.
	Constraints() Constraints
}

// Constraints bound the instants a strategy may produce.
type Constraints struct {
	// Min is the inclusive lower bound. Zero means no lower bound.
	Min time.Time
	// Max is the inclusive upper bound. Zero means no upper bound.
	Max time.Time
	// Past requires values strictly before the reference time.
	Past bool
	// Future requires values strictly after the reference time.
	Future bool
}

// IsZero reports whether c imposes no constraint at all.
func (c Constraints) IsZero() bool {
	return c.Min.IsZero() && c.Max.IsZero() && !c.Past && !c.Future
}

// Window folds Past and Future into explicit bounds relative to now.
// Either returned bound may be zero, meaning open.
func (c Constraints) Window(now time.Time) (lo, hi time.Time) {
	lo, hi = c.Min, c.Max
	if c.Past {
		cut := now.Add(-time.Millisecond)
		if hi.IsZero() || cut.Before(hi) {
			hi = cut
		}
	}
	if c.Future {
		cut := now.Add(time.Millisecond)
		if lo.IsZero() || cut.After(lo) {
			lo = cut
		}
	}
	return lo, hi
}
