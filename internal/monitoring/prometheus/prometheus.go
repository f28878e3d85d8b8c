// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	inviteTransitions      *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(m.labels(tags, "route", "status")).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailability.With(m.labels(tags, "component")).Set(value)

	return nil
}

func (m *Monitor) IncInviteTransition(tags map[string]string) error {
	if m.inviteTransitions == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.inviteTransitions.With(m.labels(tags, "scope", "status")).Inc()

	return nil
}

// labels only keeps the declared label names, missing ones are left empty
func (m *Monitor) labels(tags map[string]string, names ...string) prometheus.Labels {
	l := prometheus.Labels{"service": m.service}

	for _, name := range names {
		l[name] = tags[name]
	}

	return l
}

func (m *Monitor) register(c prometheus.Collector) prometheus.Collector {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}

		m.logger.Errorf("failed to register collector: %v", err)
	}

	return c
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.responseTime = m.register(
		prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_response_time_seconds",
				Help: "http response time of the fluzz tenancy service",
			},
			[]string{"service", "route", "status"},
		),
	).(*prometheus.HistogramVec)

	m.dependencyAvailability = m.register(
		prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dependency_available",
				Help: "availability of the dependencies of the fluzz tenancy service",
			},
			[]string{"service", "component"},
		),
	).(*prometheus.GaugeVec)

	m.inviteTransitions = m.register(
		prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invite_transitions_total",
				Help: "invites entering a lifecycle status, by scope",
			},
			[]string{"service", "scope", "status"},
		),
	).(*prometheus.CounterVec)

	return m
}

var _ monitoring.MonitorInterface = (*Monitor)(nil)
