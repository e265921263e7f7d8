package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClockIns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffhub_clock_ins_total",
		Help: "Number of successful clock-ins.",
	})
	ClockOuts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffhub_clock_outs_total",
		Help: "Number of successful clock-outs.",
	})
	AutoClockOuts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffhub_auto_clock_outs_total",
		Help: "Number of entries force-closed by the auto-clock-out sweep.",
	})
	EditApprovals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffhub_time_edit_reviews_total",
		Help: "Time entry edit reviews by outcome.",
	}, []string{"outcome"})
	AuditDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffhub_audit_dropped_total",
		Help: "Audit records dropped because the write queue was full.",
	})
)
