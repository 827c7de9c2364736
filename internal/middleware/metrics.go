package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collabhub_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ProposalTransitions counts proposal status transitions by outcome.
	ProposalTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collabhub_proposal_transitions_total",
		Help: "Total number of proposal status transitions by target status",
	}, []string{"status"})

	// DeliverableReviews counts deliverable reviews by outcome.
	DeliverableReviews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collabhub_deliverable_reviews_total",
		Help: "Total number of deliverable reviews by target status",
	}, []string{"status"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
