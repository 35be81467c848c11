package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel-service/internal/api/dto"
	"github.com/spec-kit/admin-panel-service/internal/store"
	"github.com/spec-kit/admin-panel-service/pkg/util"
)

// UsersHandler exposes CRUD endpoints over the users collection.
type UsersHandler struct {
	store *store.Store
}

// NewUsersHandler constructs handler.
func NewUsersHandler(st *store.Store) *UsersHandler {
	return &UsersHandler{store: st}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"users": h.store.Users.GetAll()})
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInternal("Failed to create user", err)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidation("Missing required fields")
	}

	user := h.store.Users.Create(req.ToDomain())
	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": user})
}

// Get handles GET /users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, ok := h.store.Users.GetByID(c.Params("id"))
	if !ok {
		return util.NewNotFound("User")
	}
	return c.JSON(fiber.Map{"user": user})
}

// Update handles PUT /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInternal("Failed to update user", err)
	}

	user, ok := h.store.Users.Update(c.Params("id"), req.ApplyTo)
	if !ok {
		return util.NewNotFound("User")
	}
	return c.JSON(fiber.Map{"user": user})
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if !h.store.Users.Delete(c.Params("id")) {
		return util.NewNotFound("User")
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
