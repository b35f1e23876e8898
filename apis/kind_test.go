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

package apis_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tfx/apis"
	"dirpx.dev/tfx/temporal"
)

func TestKinds_DeclarationOrder(t *testing.T) {
	ks := apis.Kinds()
	require.Len(t, ks, apis.KindTotal-1)
	assert.Equal(t, apis.KindInstant, ks[0])
	assert.Equal(t, apis.KindZoneOffset, ks[len(ks)-1])
	for i, k := range ks {
		assert.Equal(t, apis.Kind(i+1), k)
		assert.True(t, k.IsValid(), "%d", int(k))
	}
}

func TestKind_StringAndParse(t *testing.T) {
	cases := []struct {
		kind apis.Kind
		name string
	}{
		{apis.KindInstant, "instant"},
		{apis.KindDuration, "duration"},
		{apis.KindMonth, "month"},
		{apis.KindWeekday, "weekday"},
		{apis.KindLocation, "location"},
		{apis.KindUnixMilli, "unix-milli"},
		{apis.KindLocalDate, "local-date"},
		{apis.KindLocalDateTime, "local-date-time"},
		{apis.KindLocalTime, "local-time"},
		{apis.KindZonedDateTime, "zoned-date-time"},
		{apis.KindOffsetDateTime, "offset-date-time"},
		{apis.KindOffsetTime, "offset-time"},
		{apis.KindMonthDay, "month-day"},
		{apis.KindYear, "year"},
		{apis.KindYearMonth, "year-month"},
		{apis.KindPeriod, "period"},
		{apis.KindZoneOffset, "zone-offset"},
	}
	require.Len(t, cases, apis.KindTotal-1)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.kind.String())

			got, err := apis.ParseKind(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, got)
		})
	}
}

func TestParseKind_Normalizes(t *testing.T) {
	for _, in := range []string{"LOCAL_DATE", "  local-date ", "Local_Date"} {
		got, err := apis.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, apis.KindLocalDate, got, in)
	}
}

func TestParseKind_Unknown(t *testing.T) {
	for _, in := range []string{"", "date", "Kind(0)", "local date"} {
		_, err := apis.ParseKind(in)
		assert.True(t, errors.Is(err, apis.ErrUnknownKind), "%q: %v", in, err)
	}
	assert.Panics(t, func() { apis.MustParseKind("nope") })
	assert.Equal(t, apis.KindYear, apis.MustParseKind("year"))
}

func TestKind_InvalidValues(t *testing.T) {
	for _, k := range []apis.Kind{0, -1, apis.Kind(apis.KindTotal), apis.Kind(apis.KindTotal + 5)} {
		assert.False(t, k.IsValid())
		assert.Nil(t, k.Type())
		_, err := k.MarshalText()
		assert.ErrorIs(t, err, apis.ErrUnknownKind)
	}
	assert.Equal(t, "Kind(0)", apis.Kind(0).String())
}

func TestKindOf_ExactTypesOnly(t *testing.T) {
	assert.Equal(t, apis.KindInstant, apis.KindOf(reflect.TypeFor[time.Time]()))
	assert.Equal(t, apis.KindLocation, apis.KindOf(reflect.TypeFor[time.Location]()))
	assert.Equal(t, apis.KindLocalDate, apis.KindOf(reflect.TypeFor[temporal.LocalDate]()))
	assert.Equal(t, apis.KindPeriod, apis.KindOf(reflect.TypeFor[temporal.Period]()))

	type myTime time.Time
	for _, typ := range []reflect.Type{
		nil,
		reflect.TypeFor[*time.Time](),
		reflect.TypeFor[[]time.Time](),
		reflect.TypeFor[myTime](),
		reflect.TypeFor[string](),
		reflect.TypeFor[int64](),
	} {
		assert.Equal(t, apis.Kind(0), apis.KindOf(typ), "%v", typ)
	}
}

func TestKind_TypeRoundTrip(t *testing.T) {
	seen := map[reflect.Type]bool{}
	for _, k := range apis.Kinds() {
		typ := k.Type()
		require.NotNil(t, typ, k.String())
		assert.False(t, seen[typ], "type %v bound twice", typ)
		seen[typ] = true
		assert.Equal(t, k, apis.KindOf(typ))
	}
}

func TestKind_Text(t *testing.T) {
	b, err := apis.KindOffsetTime.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "offset-time", string(b))

	var k apis.Kind
	require.NoError(t, k.UnmarshalText([]byte("zoned_date_time")))
	assert.Equal(t, apis.KindZonedDateTime, k)

	assert.Error(t, k.UnmarshalText([]byte("zoned")))
	assert.Equal(t, apis.KindZonedDateTime, k, "failed unmarshal must not modify the receiver")
}
