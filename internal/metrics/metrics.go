package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_classified_total",
			Help: "Total number of persisted assessments by assigned tier and matching rule",
		},
		[]string{"tier", "rule"},
	)

	AssessmentsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_rejected_total",
			Help: "Total number of assessment submissions rejected before classification",
		},
		[]string{"reason"},
	)

	FollowUpJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "followup_jobs_completed_total",
			Help: "Total number of follow-up jobs by final notification status",
		},
		[]string{"status"},
	)

	FollowUpJobDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "followup_job_duration_seconds",
			Help: "Duration of follow-up job processing in seconds",
		},
	)

	FollowUpQueueDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "followup_queue_dropped_total",
			Help: "Jobs not enqueued because the queue was full; the poller picks them up later",
		},
	)

	StatsCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_cache_requests_total",
			Help: "Dashboard statistics cache lookups by result",
		},
		[]string{"result"},
	)
)
