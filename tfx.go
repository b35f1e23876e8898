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

package tfx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/tfx/apis"
	"dirpx.dev/tfx/builder"
	"dirpx.dev/tfx/config"
	"dirpx.dev/tfx/introspector"
	"dirpx.dev/tfx/provider"
	"dirpx.dev/tfx/resolver"
)

// init initializes the global state with the stock provider and the
// identity resolver.
func init() {
	st.Store(build(config.DefaultConfig(), provider.New(), resolver.Identity{}, builder.New()))
}

var (
	// ErrNilProvider is raised when a nil provider would be published.
	ErrNilProvider = errors.New("tfx: nil provider")
	// ErrNilResolver is raised when a nil resolver would be published.
	ErrNilResolver = errors.New("tfx: nil resolver")
)

// Supports reports whether t is a supported temporal type using the global
// introspector.
func Supports(t reflect.Type) bool {
	return st.Load().in.Supports(t)
}

// Introspect resolves the strategy for ctx using the global introspector.
func Introspect(ctx apis.Context) apis.Result {
	return st.Load().in.Introspect(ctx)
}

// Introspector returns the global introspector.
func Introspector() apis.Introspector {
	return st.Load().in
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds the introspector.
func SetConfig(cfg apis.Config) {
	update(func(s *state) { s.cfg = cfg })
}

// Provider returns the global provider.
func Provider() apis.Provider {
	return st.Load().prv
}

// SetProvider replaces the global provider and rebuilds the introspector.
// A nil provider is ignored.
func SetProvider(p apis.Provider) {
	if p == nil {
		return
	}
	update(func(s *state) { s.prv = p })
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver replaces the global resolver and rebuilds the introspector.
// A nil resolver is ignored.
func SetResolver(r apis.Resolver) {
	if r == nil {
		return
	}
	update(func(s *state) { s.res = r })
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder and rebuilds the introspector.
// A nil builder is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(s *state) { s.bld = b })
}

// SetAll explicitly sets all global components in one rebuild.
// Nil arguments leave the corresponding component unchanged.
//
// This is mainly used by tests to get a clean deterministic state.
func SetAll(cfg *apis.Config, p apis.Provider, r apis.Resolver, b apis.Builder) {
	update(func(s *state) {
		if cfg != nil {
			s.cfg = *cfg
		}
		if p != nil {
			s.prv = p
		}
		if r != nil {
			s.res = r
		}
		if b != nil {
			s.bld = b
		}
	})
}

// Reset restores the defaults installed at init.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(build(config.DefaultConfig(), provider.New(), resolver.Identity{}, builder.New()))
}

// update derives a new snapshot from the current one and publishes it.
func update(mutate func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Copy the old state; the published one is never mutated.
	next := *st.Load()
	mutate(&next)
	st.Store(build(next.cfg, next.prv, next.res, next.bld))
}

// build assembles a snapshot. It panics on nil collaborators so a broken
// snapshot is never published.
func build(cfg apis.Config, p apis.Provider, r apis.Resolver, b apis.Builder) *state {
	if p == nil {
		panic(ErrNilProvider)
	}
	if r == nil {
		panic(ErrNilResolver)
	}
	return &state{
		cfg: cfg,
		prv: p,
		res: r,
		bld: b,
		in:  introspector.New(p, r, introspector.WithConfig(cfg), introspector.WithBuilder(b)),
	}
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global tfx state.
var st atomic.Pointer[state]

// state is the global tfx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// prv is the global provider.
	prv apis.Provider
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// in is the introspector composed from the fields above.
	in *introspector.Introspector
}
