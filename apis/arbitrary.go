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

// Arbitrary is a generation strategy: it knows how to produce values of one
// temporal type. The dispatch registry never looks inside an Arbitrary; it
// only hands it from the Provider to the Resolver and wraps the outcome.
//
// Implementations must be safe for concurrent use when given distinct
// *rand.Rand instances. A *rand.Rand itself is not safe for concurrent use.
type Arbitrary[T any] interface {
	// Sample draws one value using r as the only source of randomness.
	Sample(r *rand.Rand) T
}
