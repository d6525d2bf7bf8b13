// Package metrics defines and registers all custom Prometheus metrics for
// the ElevateU API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "elevateu"

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "seeker" or "recruiter"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (validation, bad credentials and
//     throttling all count as failure; the split is deliberately coarse so
//     the metric cannot be used to probe which part of a credential tuple
//     was wrong)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// JobsCreatedTotal counts job postings.
// Label:
//   - job_type: free-form posting type (e.g. "full-time")
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created, by job type.",
	},
	[]string{"job_type"},
)

// ApplicationsSubmittedTotal counts filed applications.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of job applications submitted.",
	},
)

// MediaUploadsTotal counts proxied uploads to the media host.
// Labels:
//   - kind: "profile_photos", "resumes" or "company_logos"
//   - result: "ok" or "error"
var MediaUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_uploads_total",
		Help:      "Total number of media uploads, by kind and result.",
	},
	[]string{"kind", "result"},
)
