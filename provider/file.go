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

package provider

import "dirpx.dev/tfx/config"

// FromFile builds a Default provider from the window, zones and durations in f.
func FromFile(f *config.File) *Default {
	var opts []Option
	if f.Window != nil {
		opts = append(opts, WithWindow(f.Window.Min, f.Window.Max))
	}
	if len(f.Zones) > 0 {
		opts = append(opts, WithZones(f.Zones...))
	}
	if f.Durations != nil {
		opts = append(opts, WithDurations(f.Durations.Min, f.Durations.Max))
	}
	return New(opts...)
}
