// Package metrics declares the Prometheus collectors of the portal.
// All collectors register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
)

const namespace = "hrportal"

// HTTPRequestsTotal counts served requests.
// Labels: method, route (the gin route template, not the raw path), status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures handler latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// AuthFailuresTotal counts rejected requests at the auth gate.
// Label reason: missing_header, expired, malformed, unknown_user, forbidden.
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// SignupsTotal counts signup attempts by result.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by result.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EnrollmentsTotal counts enrollment attempts by result.
var EnrollmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_total",
		Help:      "Total number of course enrollment attempts, by result.",
	},
	[]string{"result"},
)

// ApplicationsTotal counts job application attempts by result.
var ApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of job application attempts, by result.",
	},
	[]string{"result"},
)

// Result label values
const (
	ResultOK           = "ok"
	ResultConflict     = "conflict"
	ResultNotFound     = "not_found"
	ResultInvalid      = "invalid"
	ResultUnauthorized = "unauthorized"
	ResultError        = "error"
)

// Result maps an operation outcome to a low-cardinality label value
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case apperrors.Is(err, apperrors.ErrConflict):
		return ResultConflict
	case apperrors.Is(err, apperrors.ErrResourceNotFound):
		return ResultNotFound
	case apperrors.Is(err, apperrors.ErrValidationFailed):
		return ResultInvalid
	case apperrors.Is(err, apperrors.ErrInvalidCredentials, apperrors.ErrUnauthorized):
		return ResultUnauthorized
	default:
		return ResultError
	}
}
