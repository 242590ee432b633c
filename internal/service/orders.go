package service

import (
	"context"
	"time"

	"github.com/fairyhunter13/bike-store-service/internal/model"
	"github.com/fairyhunter13/bike-store-service/internal/obs"
	"github.com/fairyhunter13/bike-store-service/internal/store"
	"github.com/fairyhunter13/bike-store-service/internal/validate"
)

// OrderService places orders against product stock and answers the revenue
// aggregation.
type OrderService struct {
	products store.ProductRepository
	orders   store.OrderRepository
}

func NewOrderService(products store.ProductRepository, orders store.OrderRepository) *OrderService {
	return &OrderService{products: products, orders: orders}
}

// Place creates an order for o.Product. The stock check and decrement happen
// as one conditional write in the product repository, so concurrent
// placements cannot oversell: each either claims its quantity or fails with
// *store.InsufficientStockError. The order record is written after the claim;
// if that write fails the claimed stock is returned.
func (s *OrderService) Place(ctx context.Context, o model.Order) (model.Order, error) {
	if err := validate.Order(o); err != nil {
		return model.Order{}, err
	}

	if _, err := s.products.DecrementStock(ctx, o.Product, o.Quantity); err != nil {
		return model.Order{}, err
	}

	o.ID = newID()
	o.CreatedAt = time.Now().UTC()
	if err := s.orders.Insert(ctx, o); err != nil {
		if incErr := s.products.IncrementStock(ctx, o.Product, o.Quantity); incErr != nil {
			obs.Logger.Error("stock_compensation_failed",
				"product", o.Product,
				"quantity", o.Quantity,
				"error", incErr,
			)
		}
		return model.Order{}, err
	}
	return o, nil
}

// TotalRevenue sums totalPrice over every order. Zero orders yields 0.
func (s *OrderService) TotalRevenue(ctx context.Context) (float64, error) {
	return s.orders.TotalRevenue(ctx)
}
