// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics registers the two finality-lag gauges the selector
// updates on every finality_target call (§6), following the teacher's
// metrics package convention of wrapping prometheus.Registerer behind
// a small constructor that returns a no-op-safe value on registration
// failure rather than panicking.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the two finality-lag gauges. The zero value is safe
// to use and simply discards observations, matching the teacher's
// averager fallback in metrics/metric.go.
type Metrics struct {
	approvalCheckingFinalityLag prometheus.Gauge
	disputesFinalityLag         prometheus.Gauge
}

// New registers both gauges against reg. Registration failure is
// non-fatal, since a missing metric must never block consensus logic:
// on a name collision (e.g. registering twice against the same
// registry) the already-registered gauge is reused, and on any other
// error the gauge stays unregistered, so its observations are not
// exported.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		approvalCheckingFinalityLag: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "approval_checking_finality_lag",
			Help: "How far behind the head of the chain the approval-checking protocol wants to vote",
		}),
		disputesFinalityLag: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "disputes_finality_lag",
			Help: "How far behind the head of the chain the disputes protocol wants to vote",
		}),
	}
	if reg == nil {
		return m
	}
	if err := reg.Register(m.approvalCheckingFinalityLag); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			m.approvalCheckingFinalityLag = already.ExistingCollector.(prometheus.Gauge)
		}
	}
	if err := reg.Register(m.disputesFinalityLag); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			m.disputesFinalityLag = already.ExistingCollector.(prometheus.Gauge)
		}
	}
	return m
}

// NoteApprovalCheckingFinalityLag records the height gap introduced
// by the approved-ancestor constraint (§4.3 stage 3).
func (m *Metrics) NoteApprovalCheckingFinalityLag(lag uint64) {
	if m == nil || m.approvalCheckingFinalityLag == nil {
		return
	}
	m.approvalCheckingFinalityLag.Set(float64(lag))
}

// NoteDisputesFinalityLag records the height gap after the
// undisputed-chain constraint (§4.3 stage 4).
func (m *Metrics) NoteDisputesFinalityLag(lag uint64) {
	if m == nil || m.disputesFinalityLag == nil {
		return
	}
	m.disputesFinalityLag.Set(float64(lag))
}
