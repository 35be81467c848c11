package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel-service/internal/api/dto"
	"github.com/spec-kit/admin-panel-service/internal/store"
	"github.com/spec-kit/admin-panel-service/pkg/util"
)

// ProductsHandler exposes CRUD endpoints over the products collection.
type ProductsHandler struct {
	store *store.Store
}

// NewProductsHandler constructs handler.
func NewProductsHandler(st *store.Store) *ProductsHandler {
	return &ProductsHandler{store: st}
}

// List handles GET /products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"products": h.store.Products.GetAll()})
}

// Create handles POST /products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInternal("Failed to create product", err)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidation("Missing required fields")
	}

	product := h.store.Products.Create(req.ToDomain())
	return c.Status(http.StatusCreated).JSON(fiber.Map{"product": product})
}

// Get handles GET /products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, ok := h.store.Products.GetByID(c.Params("id"))
	if !ok {
		return util.NewNotFound("Product")
	}
	return c.JSON(fiber.Map{"product": product})
}

// Update handles PUT /products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInternal("Failed to update product", err)
	}

	product, ok := h.store.Products.Update(c.Params("id"), req.ApplyTo)
	if !ok {
		return util.NewNotFound("Product")
	}
	return c.JSON(fiber.Map{"product": product})
}

// Delete handles DELETE /products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	if !h.store.Products.Delete(c.Params("id")) {
		return util.NewNotFound("Product")
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
