// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the server and the
// handler that exposes them.
//
// Collectors live in a private registry so tests can build as many
// [Metrics] values as they need without clashing on the default registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "userkeeper"

// MethodOther is the method label of requests whose method is not a
// standard HTTP method.
const MethodOther = "other"

// knownMethods bounds the method label; dispatched methods are lower-cased.
var knownMethods = map[string]struct{}{
	"get": {}, "head": {}, "post": {}, "put": {}, "patch": {},
	"delete": {}, "connect": {}, "options": {}, "trace": {},
}

// GC outcome label values.
const (
	GCResultOK    = "ok"
	GCResultError = "error"
)

// Metrics records request and maintenance statistics.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	gcRuns          *prometheus.CounterVec
	lastGC          prometheus.Gauge
}

// New builds the collectors and registers them together with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Dispatched requests by route, method and response status",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Handler latency by route and method",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		gcRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "gc_runs_total",
			Help:      "Record store garbage collection runs by result",
		}, []string{"result"}),
		lastGC: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "last_gc_timestamp_seconds",
			Help:      "Unix timestamp of the last successful record store GC run",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.gcRuns,
		m.lastGC,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Observe records one dispatched request.
func (m *Metrics) Observe(route, method string, status int, elapsed time.Duration) {
	method = methodLabel(method)
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func methodLabel(method string) string {
	if _, ok := knownMethods[method]; ok {
		return method
	}
	return MethodOther
}

// ObserveGC records one garbage collection run.
func (m *Metrics) ObserveGC(err error) {
	if err != nil {
		m.gcRuns.WithLabelValues(GCResultError).Inc()
		return
	}

	m.gcRuns.WithLabelValues(GCResultOK).Inc()
	m.lastGC.SetToCurrentTime()
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
