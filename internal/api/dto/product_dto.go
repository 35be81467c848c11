package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/spec-kit/admin-panel-service/internal/domain"
)

// CreateProductRequest payload for POST /products. Price and stock are
// pointers so that an explicit zero passes the presence check while a
// missing field fails it.
type CreateProductRequest struct {
	Name     string               `json:"name"`
	Price    *float64             `json:"price"`
	Category string               `json:"category"`
	Stock    *int                 `json:"stock"`
	Status   domain.ProductStatus `json:"status"`
}

// Validate checks the required create fields.
func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Price, validation.NotNil),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Stock, validation.NotNil),
		validation.Field(&r.Status, validation.Required),
	)
}

// ToDomain builds the record to insert; id and createdAt are assigned by the
// store.
func (r CreateProductRequest) ToDomain() domain.Product {
	p := domain.Product{
		Name:     r.Name,
		Category: r.Category,
		Status:   r.Status,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	return p
}

// UpdateProductRequest payload for PUT /products/:id. Same blind-merge
// semantics as UpdateUserRequest.
type UpdateProductRequest struct {
	ID        *string               `json:"id"`
	Name      *string               `json:"name"`
	Price     *float64              `json:"price"`
	Category  *string               `json:"category"`
	Stock     *int                  `json:"stock"`
	Status    *domain.ProductStatus `json:"status"`
	CreatedAt *time.Time            `json:"createdAt"`
	Image     *string               `json:"image"`
}

// ApplyTo merges the supplied fields onto the existing record.
func (r UpdateProductRequest) ApplyTo(p domain.Product) domain.Product {
	if r.ID != nil {
		p.ID = *r.ID
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.CreatedAt != nil {
		p.CreatedAt = *r.CreatedAt
	}
	if r.Image != nil {
		p.Image = *r.Image
	}
	return p
}
