package domain

import "time"

// ProductStatus represents catalog visibility states.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is a catalog item record.
type Product struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Price     float64       `json:"price"`
	Category  string        `json:"category"`
	Stock     int           `json:"stock"`
	Status    ProductStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	Image     string        `json:"image,omitempty"`
}

// RecordID returns the collection identifier.
func (p Product) RecordID() string { return p.ID }

// Stamped returns a copy with identity and creation time assigned.
func (p Product) Stamped(id string, createdAt time.Time) Product {
	p.ID = id
	p.CreatedAt = createdAt
	return p
}
