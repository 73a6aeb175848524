package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_notifications_created_total",
		Help: "Total number of notifications created, by type.",
	}, []string{"type"})

	EmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_emails_sent_total",
		Help: "Total number of transactional emails handed to the provider.",
	})

	EmailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_emails_failed_total",
		Help: "Total number of transactional emails the provider rejected.",
	})

	RepliesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_replies_sent_total",
		Help: "Total number of admin replies delivered.",
	})
)
