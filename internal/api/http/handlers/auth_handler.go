package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel-service/internal/api/dto"
	"github.com/spec-kit/admin-panel-service/internal/session"
	"github.com/spec-kit/admin-panel-service/pkg/util"
)

// AuthHandler exposes the mock session over HTTP. These endpoints gate
// nothing else; the CRUD routes stay open by design.
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewInternal("Failed to create session", err)
	}

	sess, err := h.sessions.Create(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return util.NewUnauthorized("Invalid email or password")
		}
		return util.NewInternal("Failed to create session", err)
	}
	return c.JSON(fiber.Map{"session": sess})
}

// Session handles GET /auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess, err := h.sessions.Get()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return util.NewUnauthorized("No active session")
		}
		return util.NewInternal("Failed to fetch session", err)
	}
	return c.JSON(fiber.Map{"session": sess})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Destroy(); err != nil {
		return util.NewInternal("Failed to destroy session", err)
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
