package store

import (
	"strconv"

	"github.com/spec-kit/admin-panel-service/internal/domain"
)

// Store owns the three entity collections. One instance per process, built
// explicitly and passed to whatever needs it; there is no package-global
// state.
type Store struct {
	Users    *Collection[domain.User]
	Products *Collection[domain.Product]
	Orders   *Collection[domain.Order]
}

// sequentialIDs numbers records from 1 by current count.
func sequentialIDs(count int) string {
	return strconv.Itoa(count + 1)
}

// orderIDs numbers orders in their own 1000-offset space.
func orderIDs(count int) string {
	return strconv.Itoa(1000 + count + 1)
}

// New returns an empty store.
func New() *Store {
	return &Store{
		Users:    NewCollection[domain.User](sequentialIDs),
		Products: NewCollection[domain.Product](sequentialIDs),
		Orders:   NewCollection[domain.Order](orderIDs),
	}
}

// NewSeeded returns a store preloaded with the demo data set.
func NewSeeded() *Store {
	return &Store{
		Users:    NewCollection(sequentialIDs, seedUsers()...),
		Products: NewCollection(sequentialIDs, seedProducts()...),
		Orders:   NewCollection(orderIDs, seedOrders()...),
	}
}
