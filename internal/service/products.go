// Package service holds the catalog operations and the order-placement
// workflow on top of the store ports.
package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fairyhunter13/bike-store-service/internal/model"
	"github.com/fairyhunter13/bike-store-service/internal/store"
	"github.com/fairyhunter13/bike-store-service/internal/validate"
)

// ProductService implements catalog CRUD over a ProductRepository.
type ProductService struct {
	products store.ProductRepository
}

func NewProductService(products store.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

// Create validates and persists a new product. InStock is derived from
// quantity regardless of what the payload carried.
func (s *ProductService) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := validate.Product(p); err != nil {
		return model.Product{}, err
	}
	now := time.Now().UTC()
	p.ID = newID()
	p.InStock = p.Quantity > 0
	p.IsDeleted = false
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.products.Insert(ctx, p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// List returns all products that are not soft-deleted.
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}

// Get returns a product by id. Soft-deleted products are not found.
func (s *ProductService) Get(ctx context.Context, id string) (model.Product, error) {
	return s.products.Get(ctx, id)
}

// Update applies a validated partial mutation and returns the new state.
func (s *ProductService) Update(ctx context.Context, id string, u model.ProductUpdate) (model.Product, error) {
	if err := validate.ProductUpdate(u); err != nil {
		return model.Product{}, err
	}
	return s.products.Update(ctx, id, u)
}

// Delete soft-deletes a product. Stock fields are left untouched.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.products.SoftDelete(ctx, id)
}
