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

package registry_test

import (
	"math/rand/v2"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tfx/apis"
	"dirpx.dev/tfx/arbitrary"
	"dirpx.dev/tfx/provider"
	"dirpx.dev/tfx/registry"
	"dirpx.dev/tfx/resolver"
	"dirpx.dev/tfx/temporal"
)

type stubContext struct{ typ reflect.Type }

func (c stubContext) ResolvedType() reflect.Type    { return c.typ }
func (c stubContext) Constraints() apis.Constraints { return apis.Constraints{} }

// countingProvider counts how often the year default is requested.
type countingProvider struct {
	*provider.Default
	years atomic.Int64
}

func (p *countingProvider) Years() apis.Arbitrary[temporal.Year] {
	p.years.Add(1)
	return p.Default.Years()
}

// spyResolver records the context handed to Years.
type spyResolver struct {
	resolver.Identity
	seen *apis.Context
}

func (s spyResolver) Years(def apis.Arbitrary[temporal.Year], ctx apis.Context) apis.Arbitrary[temporal.Year] {
	*s.seen = ctx
	return def
}

func TestNew_BindsEveryKind(t *testing.T) {
	reg := registry.New(provider.New(), resolver.Identity{})

	assert.Equal(t, apis.KindTotal-1, reg.Count())
	assert.Equal(t, apis.Kinds(), reg.Kinds())

	for _, k := range apis.Kinds() {
		fn, ok := reg.Lookup(k)
		require.True(t, ok, k.String())
		require.NotNil(t, fn, k.String())

		res := fn(stubContext{typ: k.Type()})
		assert.True(t, res.Introspected(), k.String())
		assert.Equal(t, k, res.Kind())
	}
}

func TestLookup_InvalidKinds(t *testing.T) {
	reg := registry.New(provider.New(), resolver.Identity{})
	for _, k := range []apis.Kind{0, -1, apis.Kind(apis.KindTotal)} {
		fn, ok := reg.Lookup(k)
		assert.False(t, ok)
		assert.Nil(t, fn)
	}
}

func TestNew_NilCollaboratorsPanic(t *testing.T) {
	assert.PanicsWithValue(t, registry.ErrNilProvider, func() {
		registry.New(nil, resolver.Identity{})
	})
	assert.PanicsWithValue(t, registry.ErrNilResolver, func() {
		registry.New(provider.New(), nil)
	})
}

func TestComposedFunc_CallsProviderPerInvocation(t *testing.T) {
	p := &countingProvider{Default: provider.New()}
	reg := registry.New(p, resolver.Identity{})
	assert.Zero(t, p.years.Load(), "composition must not call the provider")

	fn, ok := reg.Lookup(apis.KindYear)
	require.True(t, ok)
	for range 3 {
		fn(stubContext{typ: reflect.TypeFor[temporal.Year]()})
	}
	assert.EqualValues(t, 3, p.years.Load())
}

func TestComposedFunc_PassesContextToResolver(t *testing.T) {
	var seen apis.Context
	reg := registry.New(provider.New(), spyResolver{seen: &seen})

	ctx := stubContext{typ: reflect.TypeFor[temporal.Year]()}
	fn, _ := reg.Lookup(apis.KindYear)
	fn(ctx)
	assert.Equal(t, ctx, seen)
}

func TestComposedFunc_WrapsResolverOutput(t *testing.T) {
	r := struct{ resolver.Identity }{}
	reg := registry.New(provider.New(), r)

	fn, _ := reg.Lookup(apis.KindMonth)
	res := fn(stubContext{typ: reflect.TypeFor[time.Month]()})

	a, ok := apis.ResultAs[time.Month](res)
	require.True(t, ok)
	assert.Equal(t, arbitrary.Ints[time.Month]{Min: time.January, Max: time.December}, a)

	v, ok := res.Sample(rand.New(rand.NewPCG(1, 1)))
	require.True(t, ok)
	assert.IsType(t, time.Month(0), v)
}

func BenchmarkLookup(b *testing.B) {
	reg := registry.New(provider.New(), resolver.Identity{})
	ctx := stubContext{typ: reflect.TypeFor[temporal.LocalDateTime]()}
	b.ReportAllocs()
	for b.Loop() {
		fn, _ := reg.Lookup(apis.KindLocalDateTime)
		_ = fn(ctx)
	}
}
