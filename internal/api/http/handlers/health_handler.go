package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel-service/internal/observability"
)

// HealthHandler serves liveness/readiness probes and the metrics snapshot.
type HealthHandler struct {
	metrics *observability.Metrics
}

// NewHealthHandler constructs handler.
func NewHealthHandler(metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{metrics: metrics}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready. The store is process memory, so the
// service is ready as soon as it is serving.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ready"})
}

// Metrics handles GET /metrics.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Collect())
}
