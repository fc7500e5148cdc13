// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspects

import (
	"fmt"
	"time"

	"code.hybscloud.com/aspect"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors shared by measuring aspects.
// All collectors are labeled by op.
type Metrics struct {
	started   *prometheus.CounterVec
	completed *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors under namespace and registers them with
// reg. A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		started: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls_started_total",
				Help:      "Number of intercepted calls that entered Before.",
			},
			[]string{"op"},
		),
		completed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls_completed_total",
				Help:      "Number of intercepted calls that reached After.",
			},
			[]string{"op"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "call_duration_seconds",
				Help:      "Duration of completed intercepted calls.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
	for _, c := range []prometheus.Collector{m.started, m.completed, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("aspects: register metrics: %w", err)
		}
	}
	return m, nil
}

// measurement holds the state of one measured invocation.
type measurement struct {
	m     *Metrics
	op    string
	start time.Time
}

func (s *measurement) begin() {
	s.m.started.WithLabelValues(s.op).Inc()
	s.start = time.Now()
}

func (s *measurement) end() {
	s.m.duration.WithLabelValues(s.op).Observe(time.Since(s.start).Seconds())
	s.m.completed.WithLabelValues(s.op).Inc()
}

var (
	_ aspect.Aspect[int, int] = (*measure[int, int])(nil)
	_ aspect.VoidAspect[int]  = (*voidMeasure[int])(nil)
)

type measure[A, R any] struct {
	measurement
}

func (s *measure[A, R]) Before(A) error {
	s.begin()
	return nil
}

func (s *measure[A, R]) After(A, R) error {
	s.end()
	return nil
}

type voidMeasure[A any] struct {
	measurement
}

func (s *voidMeasure[A]) Before(A) error {
	s.begin()
	return nil
}

func (s *voidMeasure[A]) After(A) error {
	s.end()
	return nil
}

// Measure returns a factory for an aspect that counts started calls in
// Before, and completed calls plus duration in After.
// Failed calls are started minus completed.
// A nil m measures nothing.
func Measure[A, R any](m *Metrics, op string) aspect.Factory[A, R] {
	if m == nil {
		return aspect.Nop[A, R]()
	}
	return func() aspect.Aspect[A, R] {
		return &measure[A, R]{measurement{m: m, op: op}}
	}
}

// VoidMeasure is [Measure] for void calls.
func VoidMeasure[A any](m *Metrics, op string) aspect.VoidFactory[A] {
	if m == nil {
		return aspect.VoidNop[A]()
	}
	return func() aspect.VoidAspect[A] {
		return &voidMeasure[A]{measurement{m: m, op: op}}
	}
}
