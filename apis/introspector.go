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

import "reflect"

// Introspector is the entry point a host framework talks to.
type Introspector interface {
	// Supports reports whether declared resolves to a handled type.
	Supports(declared reflect.Type) bool
	// Introspect returns the strategy for ctx.ResolvedType(), or
	// NotIntrospected. It never reports unsupported types as errors.
	Introspect(ctx Context) Result
}
