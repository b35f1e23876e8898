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

// Config carries read-only knobs for type resolution.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxUnwrap limits how many pointer levels are stripped from a declared
	// type before it is matched against the supported kinds. **time.Time
	// needs MaxUnwrap >= 2.
	MaxUnwrap int
}
