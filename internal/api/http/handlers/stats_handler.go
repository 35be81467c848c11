package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel-service/internal/api/dto"
	"github.com/spec-kit/admin-panel-service/internal/domain"
	"github.com/spec-kit/admin-panel-service/internal/store"
)

// lowStockThreshold marks products the dashboard flags as running out.
const lowStockThreshold = 20

// StatsHandler computes the dashboard aggregates.
type StatsHandler struct {
	store *store.Store
}

// NewStatsHandler constructs handler.
func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

// Stats handles GET /dashboard/stats.
func (h *StatsHandler) Stats(c *fiber.Ctx) error {
	users := h.store.Users.GetAll()
	products := h.store.Products.GetAll()
	orders := h.store.Orders.GetAll()

	stats := dto.StatsResponse{
		TotalUsers:    len(users),
		TotalProducts: len(products),
		TotalOrders:   len(orders),
	}
	for _, u := range users {
		if u.Status == domain.UserStatusActive {
			stats.ActiveUsers++
		}
	}
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			stats.LowStockProducts++
		}
	}
	for _, o := range orders {
		stats.TotalRevenue += o.Total
		if o.Status == domain.OrderStatusPending {
			stats.PendingOrders++
		}
	}

	return c.JSON(stats)
}
