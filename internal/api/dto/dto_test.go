package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-panel-service/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func TestCreateUserRequestValidate(t *testing.T) {
	valid := CreateUserRequest{Name: "X", Email: "x@x.com", Role: domain.UserRoleUser, Status: domain.UserStatusActive}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{"missing name", CreateUserRequest{Email: "x@x.com", Role: "user", Status: "active"}},
		{"missing email", CreateUserRequest{Name: "X", Role: "user", Status: "active"}},
		{"missing role", CreateUserRequest{Name: "X", Email: "x@x.com", Status: "active"}},
		{"missing status", CreateUserRequest{Name: "X", Email: "x@x.com", Role: "user"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestCreateProductRequestValidate(t *testing.T) {
	valid := CreateProductRequest{Name: "Lamp", Price: floatPtr(59.99), Category: "Home", Stock: intPtr(4), Status: domain.ProductStatusActive}
	assert.NoError(t, valid.Validate())

	t.Run("zero price and stock are present", func(t *testing.T) {
		req := CreateProductRequest{Name: "Free", Price: floatPtr(0), Category: "Misc", Stock: intPtr(0), Status: domain.ProductStatusActive}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing stock", func(t *testing.T) {
		req := CreateProductRequest{Name: "Lamp", Price: floatPtr(59.99), Category: "Home", Status: domain.ProductStatusActive}
		assert.Error(t, req.Validate())
	})

	t.Run("missing price", func(t *testing.T) {
		req := CreateProductRequest{Name: "Lamp", Category: "Home", Stock: intPtr(4), Status: domain.ProductStatusActive}
		assert.Error(t, req.Validate())
	})
}

func TestCreateOrderRequestValidate(t *testing.T) {
	valid := CreateOrderRequest{
		UserID: "2", UserName: "Jane", UserEmail: "jane@example.com",
		Products: []domain.OrderItem{{ProductID: "1", ProductName: "Headphones", Quantity: 1, Price: 299.99}},
		Total:    299.99, Status: domain.OrderStatusPending,
	}
	assert.NoError(t, valid.Validate())

	t.Run("empty line-item list is present", func(t *testing.T) {
		req := valid
		req.Products = []domain.OrderItem{}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing line-item list", func(t *testing.T) {
		req := valid
		req.Products = nil
		assert.Error(t, req.Validate())
	})

	t.Run("zero total is rejected", func(t *testing.T) {
		req := valid
		req.Total = 0
		assert.Error(t, req.Validate())
	})

	t.Run("missing userId", func(t *testing.T) {
		req := valid
		req.UserID = ""
		assert.Error(t, req.Validate())
	})
}

func TestUpdateUserRequestApplyTo(t *testing.T) {
	createdAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	existing := domain.User{
		ID: "3", Name: "Mike Johnson", Email: "mike@example.com",
		Role: domain.UserRoleModerator, Status: domain.UserStatusInactive, CreatedAt: createdAt,
	}

	status := domain.UserStatusActive
	merged := UpdateUserRequest{Status: &status}.ApplyTo(existing)

	assert.Equal(t, domain.UserStatusActive, merged.Status)
	assert.Equal(t, existing.ID, merged.ID)
	assert.Equal(t, existing.Name, merged.Name)
	assert.Equal(t, existing.Email, merged.Email)
	assert.Equal(t, existing.Role, merged.Role)
	assert.Equal(t, existing.CreatedAt, merged.CreatedAt)
}

func TestUpdateRequestCanOverwriteIdentityFields(t *testing.T) {
	// the panel's update is a blind shallow merge; id and createdAt are not
	// shielded when the payload carries them
	existing := domain.Product{ID: "1", Name: "Lamp", Price: 59.99, Category: "Home", Stock: 4, Status: domain.ProductStatusActive}

	newCreatedAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	merged := UpdateProductRequest{ID: strPtr("77"), CreatedAt: &newCreatedAt}.ApplyTo(existing)

	assert.Equal(t, "77", merged.ID)
	assert.Equal(t, newCreatedAt, merged.CreatedAt)
	assert.Equal(t, existing.Name, merged.Name)
}

func TestUpdateOrderRequestReplacesLineItems(t *testing.T) {
	existing := domain.Order{
		ID: "1001", UserID: "2", UserName: "Jane Smith", UserEmail: "jane@example.com",
		Products: []domain.OrderItem{{ProductID: "1", ProductName: "Headphones", Quantity: 1, Price: 299.99}},
		Total:    299.99, Status: domain.OrderStatusDelivered,
	}

	items := []domain.OrderItem{{ProductID: "5", ProductName: "Desk Lamp", Quantity: 2, Price: 59.99}}
	merged := UpdateOrderRequest{Products: &items}.ApplyTo(existing)

	require.Len(t, merged.Products, 1)
	assert.Equal(t, "5", merged.Products[0].ProductID)
	// total stays caller-supplied, never recomputed
	assert.Equal(t, 299.99, merged.Total)
}
