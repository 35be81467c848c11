package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/spec-kit/admin-panel-service/internal/domain"
)

// CreateOrderRequest payload for POST /orders. The user fields and line
// items are denormalized snapshots supplied by the caller, and the total is
// taken as-is rather than recomputed. A zero total is rejected while an
// empty (but present) line-item list is accepted.
type CreateOrderRequest struct {
	UserID    string             `json:"userId"`
	UserName  string             `json:"userName"`
	UserEmail string             `json:"userEmail"`
	Products  []domain.OrderItem `json:"products"`
	Total     float64            `json:"total"`
	Status    domain.OrderStatus `json:"status"`
}

// Validate checks the required create fields.
func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.UserName, validation.Required),
		validation.Field(&r.UserEmail, validation.Required),
		validation.Field(&r.Products, validation.NotNil),
		validation.Field(&r.Total, validation.Required),
		validation.Field(&r.Status, validation.Required),
	)
}

// ToDomain builds the record to insert; id and createdAt are assigned by the
// store.
func (r CreateOrderRequest) ToDomain() domain.Order {
	return domain.Order{
		UserID:    r.UserID,
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
		Products:  r.Products,
		Total:     r.Total,
		Status:    r.Status,
	}
}

// UpdateOrderRequest payload for PUT /orders/:id. Same blind-merge semantics
// as the other update payloads; a supplied products list replaces the whole
// list.
type UpdateOrderRequest struct {
	ID        *string             `json:"id"`
	UserID    *string             `json:"userId"`
	UserName  *string             `json:"userName"`
	UserEmail *string             `json:"userEmail"`
	Products  *[]domain.OrderItem `json:"products"`
	Total     *float64            `json:"total"`
	Status    *domain.OrderStatus `json:"status"`
	CreatedAt *time.Time          `json:"createdAt"`
}

// ApplyTo merges the supplied fields onto the existing record.
func (r UpdateOrderRequest) ApplyTo(o domain.Order) domain.Order {
	if r.ID != nil {
		o.ID = *r.ID
	}
	if r.UserID != nil {
		o.UserID = *r.UserID
	}
	if r.UserName != nil {
		o.UserName = *r.UserName
	}
	if r.UserEmail != nil {
		o.UserEmail = *r.UserEmail
	}
	if r.Products != nil {
		o.Products = *r.Products
	}
	if r.Total != nil {
		o.Total = *r.Total
	}
	if r.Status != nil {
		o.Status = *r.Status
	}
	if r.CreatedAt != nil {
		o.CreatedAt = *r.CreatedAt
	}
	return o
}
