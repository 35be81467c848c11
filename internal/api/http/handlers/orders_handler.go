package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel-service/internal/api/dto"
	"github.com/spec-kit/admin-panel-service/internal/store"
	"github.com/spec-kit/admin-panel-service/pkg/util"
)

// OrdersHandler exposes CRUD endpoints over the orders collection.
type OrdersHandler struct {
	store *store.Store
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(st *store.Store) *OrdersHandler {
	return &OrdersHandler{store: st}
}

// List handles GET /orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"orders": h.store.Orders.GetAll()})
}

// Create handles POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInternal("Failed to create order", err)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidation("Missing required fields")
	}

	order := h.store.Orders.Create(req.ToDomain())
	return c.Status(http.StatusCreated).JSON(fiber.Map{"order": order})
}

// Get handles GET /orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	order, ok := h.store.Orders.GetByID(c.Params("id"))
	if !ok {
		return util.NewNotFound("Order")
	}
	return c.JSON(fiber.Map{"order": order})
}

// Update handles PUT /orders/:id.
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInternal("Failed to update order", err)
	}

	order, ok := h.store.Orders.Update(c.Params("id"), req.ApplyTo)
	if !ok {
		return util.NewNotFound("Order")
	}
	return c.JSON(fiber.Map{"order": order})
}

// Delete handles DELETE /orders/:id.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	if !h.store.Orders.Delete(c.Params("id")) {
		return util.NewNotFound("Order")
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}
