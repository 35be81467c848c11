package store

import (
	"time"

	"github.com/spec-kit/admin-panel-service/internal/domain"
)

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("store: bad seed timestamp " + value)
	}
	return t
}

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Role: domain.UserRoleAdmin, Status: domain.UserStatusActive, CreatedAt: seedTime("2024-01-15T10:30:00Z")},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Role: domain.UserRoleUser, Status: domain.UserStatusActive, CreatedAt: seedTime("2024-01-10T14:20:00Z")},
		{ID: "3", Name: "Mike Johnson", Email: "mike@example.com", Role: domain.UserRoleModerator, Status: domain.UserStatusInactive, CreatedAt: seedTime("2024-01-05T09:15:00Z")},
		{ID: "4", Name: "Sarah Wilson", Email: "sarah@example.com", Role: domain.UserRoleUser, Status: domain.UserStatusActive, CreatedAt: seedTime("2024-01-12T16:45:00Z")},
		{ID: "5", Name: "David Brown", Email: "david@example.com", Role: domain.UserRoleUser, Status: domain.UserStatusActive, CreatedAt: seedTime("2024-01-08T11:30:00Z")},
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Wireless Headphones", Price: 299.99, Category: "Electronics", Stock: 45, Status: domain.ProductStatusActive, CreatedAt: seedTime("2024-01-10T10:00:00Z")},
		{ID: "2", Name: "Smart Watch", Price: 399.99, Category: "Electronics", Stock: 23, Status: domain.ProductStatusActive, CreatedAt: seedTime("2024-01-08T14:30:00Z")},
		{ID: "3", Name: "Coffee Maker", Price: 149.99, Category: "Home & Kitchen", Stock: 12, Status: domain.ProductStatusActive, CreatedAt: seedTime("2024-01-12T09:20:00Z")},
		{ID: "4", Name: "Bluetooth Speaker", Price: 79.99, Category: "Electronics", Stock: 0, Status: domain.ProductStatusInactive, CreatedAt: seedTime("2024-01-05T15:45:00Z")},
		{ID: "5", Name: "Desk Lamp", Price: 59.99, Category: "Home & Kitchen", Stock: 34, Status: domain.ProductStatusActive, CreatedAt: seedTime("2024-01-14T12:10:00Z")},
	}
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{
			ID: "1001", UserID: "2", UserName: "Jane Smith", UserEmail: "jane@example.com",
			Products: []domain.OrderItem{
				{ProductID: "1", ProductName: "Wireless Headphones", Quantity: 1, Price: 299.99},
			},
			Total: 299.99, Status: domain.OrderStatusDelivered, CreatedAt: seedTime("2024-01-15T08:30:00Z"),
		},
		{
			ID: "1002", UserID: "4", UserName: "Sarah Wilson", UserEmail: "sarah@example.com",
			Products: []domain.OrderItem{
				{ProductID: "2", ProductName: "Smart Watch", Quantity: 1, Price: 399.99},
				{ProductID: "5", ProductName: "Desk Lamp", Quantity: 2, Price: 59.99},
			},
			Total: 519.97, Status: domain.OrderStatusProcessing, CreatedAt: seedTime("2024-01-14T16:20:00Z"),
		},
		{
			ID: "1003", UserID: "5", UserName: "David Brown", UserEmail: "david@example.com",
			Products: []domain.OrderItem{
				{ProductID: "3", ProductName: "Coffee Maker", Quantity: 1, Price: 149.99},
			},
			Total: 149.99, Status: domain.OrderStatusShipped, CreatedAt: seedTime("2024-01-13T11:45:00Z"),
		},
		{
			ID: "1004", UserID: "2", UserName: "Jane Smith", UserEmail: "jane@example.com",
			Products: []domain.OrderItem{
				{ProductID: "4", ProductName: "Bluetooth Speaker", Quantity: 1, Price: 79.99},
			},
			Total: 79.99, Status: domain.OrderStatusPending, CreatedAt: seedTime("2024-01-12T14:15:00Z"),
		},
	}
}
