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
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"dirpx.dev/tfx/temporal"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies one supported temporal type. The set is closed: a Kind
// exists for every type the dispatch registry knows, and nothing else.
//
// The zero value is invalid and doubles as "not a temporal type" in KindOf.
type Kind int

const (
	_ Kind = iota // skip zero value, it marks unsupported types

	KindInstant        // instant
	KindDuration       // duration
	KindMonth          // month
	KindWeekday        // weekday
	KindLocation       // location
	KindUnixMilli      // unix-milli
	KindLocalDate      // local-date
	KindLocalDateTime  // local-date-time
	KindLocalTime      // local-time
	KindZonedDateTime  // zoned-date-time
	KindOffsetDateTime // offset-date-time
	KindOffsetTime     // offset-time
	KindMonthDay       // month-day
	KindYear           // year
	KindYearMonth      // year-month
	KindPeriod         // period
	KindZoneOffset     // zone-offset

	// KindTotal is one past the last valid Kind; arrays indexed by Kind use it as length.
	KindTotal = int(iota)
)

// ErrUnknownKind is returned by ParseKind for names that match no Kind.
var ErrUnknownKind = errors.New("tfx(apis): unknown kind")

// kindTypes maps every valid Kind to its exact Go type.
var kindTypes = [KindTotal]reflect.Type{
	KindInstant:        reflect.TypeFor[time.Time](),
	KindDuration:       reflect.TypeFor[time.Duration](),
	KindMonth:          reflect.TypeFor[time.Month](),
	KindWeekday:        reflect.TypeFor[time.Weekday](),
	KindLocation:       reflect.TypeFor[time.Location](),
	KindUnixMilli:      reflect.TypeFor[temporal.UnixMilli](),
	KindLocalDate:      reflect.TypeFor[temporal.LocalDate](),
	KindLocalDateTime:  reflect.TypeFor[temporal.LocalDateTime](),
	KindLocalTime:      reflect.TypeFor[temporal.LocalTime](),
	KindZonedDateTime:  reflect.TypeFor[temporal.ZonedDateTime](),
	KindOffsetDateTime: reflect.TypeFor[temporal.OffsetDateTime](),
	KindOffsetTime:     reflect.TypeFor[temporal.OffsetTime](),
	KindMonthDay:       reflect.TypeFor[temporal.MonthDay](),
	KindYear:           reflect.TypeFor[temporal.Year](),
	KindYearMonth:      reflect.TypeFor[temporal.YearMonth](),
	KindPeriod:         reflect.TypeFor[temporal.Period](),
	KindZoneOffset:     reflect.TypeFor[temporal.ZoneOffset](),
}

// typeKinds is the inverse of kindTypes.
var typeKinds = func() map[reflect.Type]Kind {
	m := make(map[reflect.Type]Kind, KindTotal)
	for _, k := range Kinds() {
		m[kindTypes[k]] = k
	}
	return m
}()

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, KindTotal-1)
	for k := Kind(1); int(k) < KindTotal; k++ {
		out = append(out, k)
	}
	return out
}

// KindOf returns the Kind whose type is exactly t, or 0 if there is none.
// Wrappers are not stripped here; see utils/reflect.ActualType.
func KindOf(t reflect.Type) Kind {
	if t == nil {
		return 0
	}
	return typeKinds[t]
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Type returns the Go type of k, or nil for an invalid Kind.
func (k Kind) Type() reflect.Type {
	if !k.IsValid() {
		return nil
	}
	return kindTypes[k]
}

// ParseKind returns the Kind named s. Matching ignores case and surrounding
// whitespace, and accepts '_' in place of '-'.
func ParseKind(s string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, k := range Kinds() {
		if k.String() == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MustParseKind is like ParseKind but panics on error.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
