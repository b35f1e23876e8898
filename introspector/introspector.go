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

// Package introspector is the entry point a fixture framework uses to
// generate temporal values: it answers whether a declared type is a
// supported temporal type and, for a generation context, returns the
// strategy to use.
//
// An Introspector is built once from a Provider and a Resolver, composes
// them into an immutable dispatch registry at construction and holds no
// other state. It is safe for concurrent use.
package introspector

import (
	"errors"
	"reflect"

	"github.com/jhunt/go-log"

	"dirpx.dev/tfx/apis"
	"dirpx.dev/tfx/builder"
	"dirpx.dev/tfx/config"
	"dirpx.dev/tfx/provider"
	"dirpx.dev/tfx/resolver"
	uref "dirpx.dev/tfx/utils/reflect"
)

// ErrNilRegistry is raised when a builder returns a nil registry.
var ErrNilRegistry = errors.New("tfx(introspector): builder returned nil registry")

// Recorder observes dispatch outcomes. metrics.Recorder implements it.
type Recorder interface {
	ObserveHit(k apis.Kind)
	ObserveMiss()
}

// Option customizes New.
type Option func(*options)

type options struct {
	cfg apis.Config
	bld apis.Builder
	rec Recorder
}

// WithConfig sets the type resolution knobs.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithBuilder replaces the registry builder. Nil keeps the default.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.bld = b
		}
	}
}

// WithRecorder attaches a Recorder notified on every Introspect call.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.rec = r }
}

// Introspector implements apis.Introspector over an immutable registry.
type Introspector struct {
	cfg apis.Config
	reg apis.Registry
	rec Recorder
}

// Ensure Introspector implements apis.Introspector.
var _ apis.Introspector = (*Introspector)(nil)

// New builds the dispatch registry from p and r and returns an Introspector
// over it. Both collaborators are required; use resolver.Identity when no
// customization is wanted.
func New(p apis.Provider, r apis.Resolver, opts ...Option) *Introspector {
	o := options{cfg: config.DefaultConfig(), bld: builder.New()}
	for _, opt := range opts {
		opt(&o)
	}

	reg := o.bld.BuildRegistry(o.cfg, p, r)
	if reg == nil {
		panic(ErrNilRegistry)
	}
	return &Introspector{cfg: o.cfg, reg: reg, rec: o.rec}
}

// Default returns an Introspector over the stock provider and the identity
// resolver.
func Default(opts ...Option) *Introspector {
	return New(provider.New(), resolver.Identity{}, opts...)
}

// Supports reports whether declared, once pointer wrappers are stripped, is
// one of the supported temporal types.
func (i *Introspector) Supports(declared reflect.Type) bool {
	_, ok := i.reg.Lookup(i.kindOf(declared))
	return ok
}

// Introspect returns the strategy for the context's resolved type, or
// apis.NotIntrospected when the type is not supported or ctx is nil, typed
// nil pointers included. Panics raised by the provider or resolver propagate
// unchanged.
func (i *Introspector) Introspect(ctx apis.Context) apis.Result {
	var declared reflect.Type
	if !isNil(ctx) {
		declared = ctx.ResolvedType()
	}

	k := i.kindOf(declared)
	fn, ok := i.reg.Lookup(k)
	if !ok {
		log.Debugf("tfx(introspector): %v is not a supported temporal type", declared)
		if i.rec != nil {
			i.rec.ObserveMiss()
		}
		return apis.NotIntrospected
	}

	if i.rec != nil {
		i.rec.ObserveHit(k)
	}
	return fn(ctx)
}

// Registry returns the dispatch registry.
func (i *Introspector) Registry() apis.Registry {
	return i.reg
}

// Config returns the configuration the Introspector was built with.
func (i *Introspector) Config() apis.Config {
	return i.cfg
}

// kindOf resolves the Kind of t, or 0 if t is nil, too deeply wrapped or
// not a temporal type.
func (i *Introspector) kindOf(t reflect.Type) apis.Kind {
	at, err := uref.ActualType(t, i.cfg)
	if err != nil {
		return 0
	}
	return apis.KindOf(at)
}

// isNil reports whether ctx is nil or wraps a nil pointer, map, slice,
// func or channel.
func isNil(ctx apis.Context) bool {
	if ctx == nil {
		return true
	}
	switch v := reflect.ValueOf(ctx); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
