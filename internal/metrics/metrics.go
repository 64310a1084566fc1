package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petrescue_reports_submitted_total",
		Help: "Pet reports submitted, by request type.",
	}, []string{"request_type"})

	ModerationTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petrescue_moderation_transitions_total",
		Help: "Moderation status transitions, by resulting status.",
	}, []string{"to_status"})

	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petrescue_notifications_created_total",
		Help: "Admin notifications created, by type.",
	}, []string{"notification_type"})
)
