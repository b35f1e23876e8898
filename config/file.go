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

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"dirpx.dev/tfx/apis"
)

var (
	// ErrInvalidWindow is returned when a window's min is after its max.
	ErrInvalidWindow = errors.New("tfx(config): window min is after max")
	// ErrInvalidDurations is returned when a duration range is inverted or negative.
	ErrInvalidDurations = errors.New("tfx(config): invalid duration range")
	// ErrDuplicateBounds is returned when two bounds keys name the same kind.
	ErrDuplicateBounds = errors.New("tfx(config): duplicate bounds for kind")
)

// File is the on-disk configuration, e.g.
//
//	max_unwrap: 2
//	log:
//	  level: debug
//	window:
//	  min: 2000-01-01T00:00:00Z
//	  max: 2030-12-31T23:59:59Z
//	zones: [UTC, Europe/Berlin]
//	durations:
//	  min: 1s
//	  max: 1h
//	bounds:
//	  local-date:
//	    min: 2020-01-01T00:00:00Z
type File struct {
	MaxUnwrap int            `yaml:"max_unwrap"`
	Log       LogSection     `yaml:"log"`
	Window    *Window        `yaml:"window,omitempty"`
	Zones     []string       `yaml:"zones,omitempty"`
	Durations *DurationRange `yaml:"durations,omitempty"`
	// Bounds narrows individual kinds after the provider's default is built.
	// Keys are kind names as printed by apis.Kind.String.
	Bounds map[string]Window `yaml:"bounds,omitempty"`
}

// LogSection configures logging.
type LogSection struct {
	Level string `yaml:"level"`
}

// Window is an inclusive instant range. Zero bounds are open.
type Window struct {
	Min time.Time `yaml:"min,omitempty"`
	Max time.Time `yaml:"max,omitempty"`
}

// DurationRange is an inclusive duration range.
type DurationRange struct {
	Min time.Duration `yaml:"min"`
	Max time.Duration `yaml:"max"`
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.MaxUnwrap <= 0 {
		f.MaxUnwrap = DefaultMaxUnwrap
	}
	if f.Log.Level == "" {
		f.Log.Level = "info"
	}
}

func (f *File) validate() error {
	if f.Window != nil {
		if err := f.Window.validate(); err != nil {
			return fmt.Errorf("window: %w", err)
		}
	}
	if d := f.Durations; d != nil && (d.Min < 0 || d.Max < d.Min) {
		return fmt.Errorf("%w: [%s, %s]", ErrInvalidDurations, d.Min, d.Max)
	}

	seen := make(map[apis.Kind]string, len(f.Bounds))
	for name, w := range f.Bounds {
		k, err := apis.ParseKind(name)
		if err != nil {
			return fmt.Errorf("bounds: %w", err)
		}
		if prev, ok := seen[k]; ok {
			return fmt.Errorf("%w %s: %q and %q", ErrDuplicateBounds, k, prev, name)
		}
		seen[k] = name
		if err := w.validate(); err != nil {
			return fmt.Errorf("bounds %s: %w", k, err)
		}
	}
	return nil
}

func (w Window) validate() error {
	if !w.Min.IsZero() && !w.Max.IsZero() && w.Min.After(w.Max) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidWindow, w.Min, w.Max)
	}
	return nil
}

// Config returns the apis.Config the file describes.
func (f *File) Config() apis.Config {
	return NewConfig(WithMaxUnwrap(f.MaxUnwrap))
}

// BoundsFor returns the per-kind window configured for k.
func (f *File) BoundsFor(k apis.Kind) (Window, bool) {
	for name, w := range f.Bounds {
		if pk, err := apis.ParseKind(name); err == nil && pk == k {
			return w, true
		}
	}
	return Window{}, false
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
