package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/spec-kit/admin-panel-service/internal/domain"
)

// CreateUserRequest payload for POST /users.
type CreateUserRequest struct {
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Role   domain.UserRole   `json:"role"`
	Status domain.UserStatus `json:"status"`
}

// Validate checks the required create fields.
func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Role, validation.Required),
		validation.Field(&r.Status, validation.Required),
	)
}

// ToDomain builds the record to insert; id and createdAt are assigned by the
// store.
func (r CreateUserRequest) ToDomain() domain.User {
	return domain.User{
		Name:   r.Name,
		Email:  r.Email,
		Role:   r.Role,
		Status: r.Status,
	}
}

// UpdateUserRequest payload for PUT /users/:id. Every field is optional;
// present fields overwrite, absent fields are preserved. That includes id
// and createdAt, matching the panel's blind shallow merge.
type UpdateUserRequest struct {
	ID        *string            `json:"id"`
	Name      *string            `json:"name"`
	Email     *string            `json:"email"`
	Role      *domain.UserRole   `json:"role"`
	Status    *domain.UserStatus `json:"status"`
	CreatedAt *time.Time         `json:"createdAt"`
	Avatar    *string            `json:"avatar"`
}

// ApplyTo merges the supplied fields onto the existing record.
func (r UpdateUserRequest) ApplyTo(u domain.User) domain.User {
	if r.ID != nil {
		u.ID = *r.ID
	}
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.Status != nil {
		u.Status = *r.Status
	}
	if r.CreatedAt != nil {
		u.CreatedAt = *r.CreatedAt
	}
	if r.Avatar != nil {
		u.Avatar = *r.Avatar
	}
	return u
}
