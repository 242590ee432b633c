package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fairyhunter13/bike-store-service/internal/model"
)

// MemoryProductRepository is a mutex-guarded map with the same contract as
// the Mongo repository. It backs the service when no DATABASE_URL is set and
// the package tests.
type MemoryProductRepository struct {
	mu sync.RWMutex
	m  map[string]model.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{m: make(map[string]model.Product)}
}

func (r *MemoryProductRepository) Insert(_ context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.m {
		if existing.Name == p.Name {
			return ErrDuplicateName
		}
	}
	r.m[p.ID] = p
	return nil
}

func (r *MemoryProductRepository) List(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := []model.Product{}
	for _, p := range r.m {
		if !p.IsDeleted {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *MemoryProductRepository) Get(_ context.Context, id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.m[id]
	if !ok || p.IsDeleted {
		return model.Product{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryProductRepository) Update(_ context.Context, id string, u model.ProductUpdate) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.m[id]
	if !ok || p.IsDeleted {
		return model.Product{}, ErrNotFound
	}
	if u.Name != nil {
		for otherID, other := range r.m {
			if otherID != id && other.Name == *u.Name {
				return model.Product{}, ErrDuplicateName
			}
		}
		p.Name = *u.Name
	}
	if u.Brand != nil {
		p.Brand = *u.Brand
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
		p.InStock = *u.Quantity > 0
	} else if u.InStock != nil {
		p.InStock = *u.InStock
	}
	if u.IsDeleted != nil {
		p.IsDeleted = *u.IsDeleted
	}
	p.UpdatedAt = time.Now().UTC()
	r.m[id] = p
	return p, nil
}

func (r *MemoryProductRepository) SoftDelete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.m[id]
	if !ok || p.IsDeleted {
		return ErrNotFound
	}
	p.IsDeleted = true
	p.UpdatedAt = time.Now().UTC()
	r.m[id] = p
	return nil
}

func (r *MemoryProductRepository) DecrementStock(_ context.Context, id string, qty int) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.m[id]
	if !ok {
		return model.Product{}, ErrNotFound
	}
	if p.IsDeleted {
		return model.Product{}, ErrProductGone
	}
	if p.Quantity < qty {
		return model.Product{}, &InsufficientStockError{Available: p.Quantity}
	}
	p.Quantity -= qty
	p.InStock = p.Quantity > 0
	p.UpdatedAt = time.Now().UTC()
	r.m[id] = p
	return p, nil
}

func (r *MemoryProductRepository) IncrementStock(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.m[id]
	if !ok {
		return ErrNotFound
	}
	p.Quantity += qty
	p.InStock = p.Quantity > 0
	p.UpdatedAt = time.Now().UTC()
	r.m[id] = p
	return nil
}

// MemoryOrderRepository is the in-memory counterpart of the Mongo order store.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []model.Order

	// FailInserts makes Insert fail, for exercising the compensation path.
	FailInserts bool
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Insert(_ context.Context, o model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailInserts {
		return errors.New("insert refused")
	}
	r.orders = append(r.orders, o)
	return nil
}

func (r *MemoryOrderRepository) TotalRevenue(_ context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, o := range r.orders {
		total += o.TotalPrice
	}
	return total, nil
}

// Count reports the number of stored orders. Test helper.
func (r *MemoryOrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
