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

// Func is a composed dispatch entry: it resolves and wraps the strategy for
// one Kind.
type Func func(ctx Context) Result

// Registry is the read-only Kind -> Func mapping built once from a Provider
// and a Resolver. It has no mutation methods; implementations must be safe
// for concurrent reads.
type Registry interface {
	// Lookup returns the composed function for k.
	Lookup(k Kind) (fn Func, ok bool)
	// Kinds returns the registered kinds in declaration order.
	Kinds() []Kind
	// Count returns the number of registered kinds.
	Count() int
}
