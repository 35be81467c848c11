package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-panel-service/internal/domain"
)

func TestSeededStore(t *testing.T) {
	st := NewSeeded()

	assert.Equal(t, 5, st.Users.Len())
	assert.Equal(t, 5, st.Products.Len())
	assert.Equal(t, 4, st.Orders.Len())

	users := st.Users.GetAll()
	require.Len(t, users, 5)
	for i, u := range users {
		assert.Equal(t, fmt.Sprintf("%d", i+1), u.ID, "seed users keep insertion order")
	}

	orders := st.Orders.GetAll()
	require.Len(t, orders, 4)
	assert.Equal(t, "1001", orders[0].ID)
	assert.Equal(t, "1004", orders[3].ID)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	st := NewSeeded()

	created := st.Users.Create(domain.User{
		Name:   "X",
		Email:  "x@x.com",
		Role:   domain.UserRoleUser,
		Status: domain.UserStatusActive,
	})

	assert.Equal(t, "6", created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now(), created.CreatedAt, 2*time.Second)
	assert.Equal(t, 6, st.Users.Len())
}

func TestCreateManyDistinctIDs(t *testing.T) {
	st := New()

	const n = 25
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		p := st.Products.Create(domain.Product{Name: "Widget", Category: "Misc", Status: domain.ProductStatusActive})
		assert.False(t, seen[p.ID], "id %q reused", p.ID)
		seen[p.ID] = true
	}
	assert.Equal(t, n, st.Products.Len())
}

func TestOrderIDsUseSeparateNumberingSpace(t *testing.T) {
	st := New()

	o := st.Orders.Create(domain.Order{UserID: "1", UserName: "A", UserEmail: "a@a.com", Total: 10, Status: domain.OrderStatusPending})
	assert.Equal(t, "1001", o.ID)

	u := st.Users.Create(domain.User{Name: "A", Email: "a@a.com", Role: domain.UserRoleUser, Status: domain.UserStatusActive})
	assert.Equal(t, "1", u.ID)
}

func TestGetByIDReturnsCreatedRecord(t *testing.T) {
	st := New()
	created := st.Products.Create(domain.Product{
		Name:     "Lamp",
		Price:    59.99,
		Category: "Home & Kitchen",
		Stock:    3,
		Status:   domain.ProductStatusActive,
	})

	got, ok := st.Products.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)

	_, ok = st.Products.GetByID("nope")
	assert.False(t, ok)
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	st := NewSeeded()

	before, ok := st.Users.GetByID("3")
	require.True(t, ok)

	updated, ok := st.Users.Update("3", func(u domain.User) domain.User {
		u.Status = domain.UserStatusInactive
		return u
	})
	require.True(t, ok)

	assert.Equal(t, "3", updated.ID)
	assert.Equal(t, domain.UserStatusInactive, updated.Status)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.Role, updated.Role)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)

	// position preserved
	all := st.Users.GetAll()
	assert.Equal(t, "3", all[2].ID)
}

func TestUpdateMissingIDLeavesCollectionUnchanged(t *testing.T) {
	st := NewSeeded()
	before := st.Users.GetAll()

	_, ok := st.Users.Update("99", func(u domain.User) domain.User {
		u.Name = "changed"
		return u
	})
	assert.False(t, ok)
	assert.Equal(t, before, st.Users.GetAll())
}

func TestDeleteRemovesExactlyOneRecord(t *testing.T) {
	st := NewSeeded()
	before := st.Users.GetAll()

	require.True(t, st.Users.Delete("2"))
	assert.Equal(t, 4, st.Users.Len())

	_, ok := st.Users.GetByID("2")
	assert.False(t, ok)

	// remaining records untouched and order preserved
	after := st.Users.GetAll()
	assert.Equal(t, []domain.User{before[0], before[2], before[3], before[4]}, after)
}

func TestDeleteMissingIDReturnsFalse(t *testing.T) {
	st := NewSeeded()

	assert.False(t, st.Users.Delete("99"))
	assert.Equal(t, 5, st.Users.Len())
}

func TestGetAllReturnsCopy(t *testing.T) {
	st := NewSeeded()

	all := st.Users.GetAll()
	all[0].Name = "mutated"

	orig, ok := st.Users.GetByID("1")
	require.True(t, ok)
	assert.Equal(t, "John Doe", orig.Name)
}

func TestConcurrentCreates(t *testing.T) {
	st := New()

	const n = 50
	done := make(chan string, n)
	for i := 0; i < n; i++ {
		go func() {
			u := st.Users.Create(domain.User{Name: "A", Email: "a@a.com", Role: domain.UserRoleUser, Status: domain.UserStatusActive})
			done <- u.ID
		}()
	}

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := <-done
		assert.False(t, seen[id], "id %q assigned twice", id)
		seen[id] = true
	}
	assert.Equal(t, n, st.Users.Len())
}
