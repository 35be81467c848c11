package domain

import "time"

// OrderStatus enumerates fulfillment states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem is a line item captured at order time. The product name and
// price are snapshots; later edits to the catalog do not flow back here.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a purchase record. The user fields are a snapshot of the placing
// user, not a live reference, and Total is caller-supplied rather than
// derived from the line items.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	UserName  string      `json:"userName"`
	UserEmail string      `json:"userEmail"`
	Products  []OrderItem `json:"products"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// RecordID returns the collection identifier.
func (o Order) RecordID() string { return o.ID }

// Stamped returns a copy with identity and creation time assigned.
func (o Order) Stamped(id string, createdAt time.Time) Order {
	o.ID = id
	o.CreatedAt = createdAt
	return o
}
