package validate

import (
	"strings"
	"testing"

	"github.com/fairyhunter13/bike-store-service/internal/model"
)

func validProduct() model.Product {
	return model.Product{
		Name:        "Trail Blazer",
		Brand:       "Ridgeline",
		Price:       1299.99,
		Category:    model.CategoryMountain,
		Description: "Full-suspension trail bike",
		Quantity:    5,
	}
}

func validOrder() model.Order {
	return model.Order{
		Email:      "rider@example.com",
		Product:    "64f1c0ffee0000000000aaaa",
		Quantity:   2,
		TotalPrice: 2599.98,
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	ve, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	m := make(map[string]string)
	for _, f := range ve.Fields {
		m[f.Field] = f.Message
	}
	return m
}

func TestProductValid(t *testing.T) {
	if err := Product(validProduct()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductFieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Product)
		field  string
	}{
		{"empty name", func(p *model.Product) { p.Name = "" }, "name"},
		{"long name", func(p *model.Product) { p.Name = strings.Repeat("x", 101) }, "name"},
		{"empty brand", func(p *model.Product) { p.Brand = "" }, "brand"},
		{"long brand", func(p *model.Product) { p.Brand = strings.Repeat("x", 51) }, "brand"},
		{"zero price", func(p *model.Product) { p.Price = 0 }, "price"},
		{"negative price", func(p *model.Product) { p.Price = -1 }, "price"},
		{"huge price", func(p *model.Product) { p.Price = 1000000 }, "price"},
		{"bad category", func(p *model.Product) { p.Category = "BMX" }, "category"},
		{"empty description", func(p *model.Product) { p.Description = "" }, "description"},
		{"long description", func(p *model.Product) { p.Description = strings.Repeat("x", 1001) }, "description"},
		{"negative quantity", func(p *model.Product) { p.Quantity = -1 }, "quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(&p)
			err := Product(p)
			if err == nil {
				t.Fatalf("expected error")
			}
			if _, ok := fieldsOf(t, err)[tc.field]; !ok {
				t.Fatalf("expected error on %q, got %v", tc.field, err)
			}
		})
	}
}

func TestProductAccumulatesAllViolations(t *testing.T) {
	err := Product(model.Product{Category: "Gravel", Price: -5})
	if err == nil {
		t.Fatalf("expected error")
	}
	fields := fieldsOf(t, err)
	for _, f := range []string{"name", "brand", "price", "category", "description"} {
		if _, ok := fields[f]; !ok {
			t.Fatalf("missing violation for %q: %v", f, fields)
		}
	}
}

func TestProductUpdateChecksOnlyPresentFields(t *testing.T) {
	if err := ProductUpdate(model.ProductUpdate{}); err != nil {
		t.Fatalf("empty update should pass: %v", err)
	}
	price := 100.0
	if err := ProductUpdate(model.ProductUpdate{Price: &price}); err != nil {
		t.Fatalf("valid partial update should pass: %v", err)
	}
	bad := -1.0
	err := ProductUpdate(model.ProductUpdate{Price: &bad})
	if err == nil {
		t.Fatalf("expected price violation")
	}
	if _, ok := fieldsOf(t, err)["price"]; !ok {
		t.Fatalf("expected price violation, got %v", err)
	}
}

func TestOrderValid(t *testing.T) {
	if err := Order(validOrder()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderFieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Order)
		field  string
	}{
		{"empty email", func(o *model.Order) { o.Email = "" }, "email"},
		{"bad email", func(o *model.Order) { o.Email = "not-an-email" }, "email"},
		{"long email", func(o *model.Order) { o.Email = strings.Repeat("a", 95) + "@example.com" }, "email"},
		{"empty product", func(o *model.Order) { o.Product = "" }, "product"},
		{"zero quantity", func(o *model.Order) { o.Quantity = 0 }, "quantity"},
		{"negative quantity", func(o *model.Order) { o.Quantity = -2 }, "quantity"},
		{"quantity over cap", func(o *model.Order) { o.Quantity = 1001 }, "quantity"},
		{"zero total", func(o *model.Order) { o.TotalPrice = 0 }, "totalPrice"},
		{"huge total", func(o *model.Order) { o.TotalPrice = 10000000 }, "totalPrice"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := validOrder()
			tc.mutate(&o)
			err := Order(o)
			if err == nil {
				t.Fatalf("expected error")
			}
			if _, ok := fieldsOf(t, err)[tc.field]; !ok {
				t.Fatalf("expected error on %q, got %v", tc.field, err)
			}
		})
	}
}
