// Package store defines the repository ports for products and orders along
// with the MongoDB and in-memory adapters that implement them.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairyhunter13/bike-store-service/internal/model"
)

var (
	// ErrNotFound means the referenced document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName means a product with the same name already exists.
	ErrDuplicateName = errors.New("product name already exists")
	// ErrProductGone means the product exists but was soft-deleted.
	ErrProductGone = errors.New("product is no longer available")
)

// InsufficientStockError reports a decrement larger than the available stock.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: only %d available", e.Available)
}

// ProductRepository persists catalog entries. Default reads exclude
// soft-deleted products; only failure classification looks past the flag.
type ProductRepository interface {
	Insert(ctx context.Context, p model.Product) error
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id string) (model.Product, error)
	Update(ctx context.Context, id string, u model.ProductUpdate) (model.Product, error)
	SoftDelete(ctx context.Context, id string) error

	// DecrementStock atomically subtracts qty from the product's quantity,
	// recomputing inStock in the same write. It must never drive quantity
	// negative: when stock is short it fails with *InsufficientStockError,
	// and with ErrNotFound / ErrProductGone for missing or deleted products.
	DecrementStock(ctx context.Context, id string, qty int) (model.Product, error)

	// IncrementStock adds qty back. Used to compensate a failed order write.
	IncrementStock(ctx context.Context, id string, qty int) error
}

// OrderRepository persists orders. Orders are insert-only.
type OrderRepository interface {
	Insert(ctx context.Context, o model.Order) error
	TotalRevenue(ctx context.Context) (float64, error)
}
