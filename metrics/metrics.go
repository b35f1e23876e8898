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

// Package metrics exports introspection counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/tfx/apis"
)

const (
	introspectionsTotal = "introspections_total"

	resultIntrospected    = "introspected"
	resultNotIntrospected = "not_introspected"

	// kindUnsupported labels misses, whose declared type has no Kind.
	kindUnsupported = "unsupported"
)

// Recorder counts introspections by kind and outcome.
type Recorder struct {
	Namespace string

	introspections *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors on reg
// (prometheus.DefaultRegisterer when nil). An empty namespace becomes "tfx".
func New(namespace string, reg prometheus.Registerer) (*Recorder, error) {
	if namespace == "" {
		namespace = "tfx"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{Namespace: namespace}
	r.introspections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      introspectionsTotal,
			Help:      "How many introspections were dispatched, by kind and result",
		}, []string{"kind", "result"})

	if err := reg.Register(r.introspections); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNew is like New but panics on registration errors.
func MustNew(namespace string, reg prometheus.Registerer) *Recorder {
	r, err := New(namespace, reg)
	if err != nil {
		panic(err)
	}
	return r
}

// ObserveHit counts a dispatched introspection for k.
func (r *Recorder) ObserveHit(k apis.Kind) {
	r.introspections.WithLabelValues(k.String(), resultIntrospected).Inc()
}

// ObserveMiss counts an introspection for an unsupported type.
func (r *Recorder) ObserveMiss() {
	r.introspections.WithLabelValues(kindUnsupported, resultNotIntrospected).Inc()
}

// Introspections returns the underlying collector, mainly for tests.
func (r *Recorder) Introspections() *prometheus.CounterVec {
	return r.introspections
}
