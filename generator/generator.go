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

// Package generator holds host-side helpers around an apis.Introspector: a
// concrete generation context and typed sampling.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"

	"dirpx.dev/tfx/apis"
)

var (
	// ErrNotIntrospected is returned by Sample when the type is not supported.
	ErrNotIntrospected = errors.New("tfx(generator): type is not introspected")
	// ErrTypeMismatch is returned by Sample when the strategy produces another
	// type than requested, e.g. Sample[time.Location] instead of *time.Location.
	ErrTypeMismatch = errors.New("tfx(generator): strategy produces a different type")
)

// Context is a plain apis.Context.
type Context struct {
	typ         reflect.Type
	constraints apis.Constraints
}

// Ensure Context implements apis.Context.
var _ apis.Context = (*Context)(nil)

// ContextOption customizes a Context.
type ContextOption func(*Context)

// WithConstraints attaches validation constraints.
func WithConstraints(c apis.Constraints) ContextOption {
	return func(ctx *Context) { ctx.constraints = c }
}

// NewContext returns a context requesting a value of type t.
func NewContext(t reflect.Type, opts ...ContextOption) *Context {
	ctx := &Context{typ: t}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// ContextFor returns a context requesting a value of type T.
func ContextFor[T any](opts ...ContextOption) *Context {
	return NewContext(reflect.TypeFor[T](), opts...)
}

// ResolvedType returns the requested type.
func (c *Context) ResolvedType() reflect.Type { return c.typ }

// Constraints returns the attached constraints.
func (c *Context) Constraints() apis.Constraints { return c.constraints }

// Sample introspects T through in and draws one value with r.
//
// T must be the type the strategy produces: the Kind's own type, or
// *time.Location for locations.
func Sample[T any](in apis.Introspector, r *rand.Rand, opts ...ContextOption) (T, error) {
	var zero T

	ctx := ContextFor[T](opts...)
	res := in.Introspect(ctx)
	if !res.Introspected() {
		return zero, fmt.Errorf("%w: %v", ErrNotIntrospected, ctx.ResolvedType())
	}

	a, ok := apis.ResultAs[T](res)
	if !ok {
		return zero, fmt.Errorf("%w: %v resolved to %s", ErrTypeMismatch, ctx.ResolvedType(), res.Kind())
	}
	return a.Sample(r), nil
}
