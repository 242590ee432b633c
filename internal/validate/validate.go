// Package validate checks inbound payloads field by field before they reach
// the services. Every violated constraint is reported, not just the first.
package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/fairyhunter13/bike-store-service/internal/model"
)

const (
	maxNameLen        = 100
	maxBrandLen       = 50
	maxDescriptionLen = 1000
	maxEmailLen       = 100
	maxProductRefLen  = 100
	maxOrderQuantity  = 1000
	maxPrice          = 999999.99
	maxTotalPrice     = 9999999.99
)

// FieldError names one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates all field violations for one payload.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func errorOrNil(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &Error{Fields: fields}
}

func checkName(fields []FieldError, name string) []FieldError {
	if name == "" {
		return append(fields, FieldError{"name", "Name cannot be empty"})
	}
	if len(name) > maxNameLen {
		return append(fields, FieldError{"name", fmt.Sprintf("Name cannot exceed %d characters", maxNameLen)})
	}
	return fields
}

func checkBrand(fields []FieldError, brand string) []FieldError {
	if brand == "" {
		return append(fields, FieldError{"brand", "Brand cannot be empty"})
	}
	if len(brand) > maxBrandLen {
		return append(fields, FieldError{"brand", fmt.Sprintf("Brand cannot exceed %d characters", maxBrandLen)})
	}
	return fields
}

func checkPrice(fields []FieldError, price float64) []FieldError {
	if price <= 0 {
		return append(fields, FieldError{"price", "Price must be a positive number"})
	}
	if price > maxPrice {
		return append(fields, FieldError{"price", "Price cannot exceed 999,999.99"})
	}
	return fields
}

func checkCategory(fields []FieldError, c model.Category) []FieldError {
	if !c.Valid() {
		return append(fields, FieldError{"category", "Category must be one of: Mountain, Road, Hybrid, Electric"})
	}
	return fields
}

func checkDescription(fields []FieldError, desc string) []FieldError {
	if desc == "" {
		return append(fields, FieldError{"description", "Description cannot be empty"})
	}
	if len(desc) > maxDescriptionLen {
		return append(fields, FieldError{"description", fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLen)})
	}
	return fields
}

func checkQuantity(fields []FieldError, q int) []FieldError {
	if q < 0 {
		return append(fields, FieldError{"quantity", "Quantity cannot be negative"})
	}
	return fields
}

// Product validates a full catalog-create payload. InStock and IsDeleted are
// derived elsewhere and intentionally not checked here.
func Product(p model.Product) error {
	var fields []FieldError
	fields = checkName(fields, p.Name)
	fields = checkBrand(fields, p.Brand)
	fields = checkPrice(fields, p.Price)
	fields = checkCategory(fields, p.Category)
	fields = checkDescription(fields, p.Description)
	fields = checkQuantity(fields, p.Quantity)
	return errorOrNil(fields)
}

// ProductUpdate validates only the fields present in a partial update.
func ProductUpdate(u model.ProductUpdate) error {
	var fields []FieldError
	if u.Name != nil {
		fields = checkName(fields, *u.Name)
	}
	if u.Brand != nil {
		fields = checkBrand(fields, *u.Brand)
	}
	if u.Price != nil {
		fields = checkPrice(fields, *u.Price)
	}
	if u.Category != nil {
		fields = checkCategory(fields, *u.Category)
	}
	if u.Description != nil {
		fields = checkDescription(fields, *u.Description)
	}
	if u.Quantity != nil {
		fields = checkQuantity(fields, *u.Quantity)
	}
	return errorOrNil(fields)
}

// Order validates an order-create payload.
func Order(o model.Order) error {
	var fields []FieldError
	switch {
	case o.Email == "":
		fields = append(fields, FieldError{"email", "Email cannot be empty"})
	case len(o.Email) > maxEmailLen:
		fields = append(fields, FieldError{"email", fmt.Sprintf("Email cannot exceed %d characters", maxEmailLen)})
	default:
		if _, err := mail.ParseAddress(o.Email); err != nil {
			fields = append(fields, FieldError{"email", "Please provide a valid email address"})
		}
	}
	if o.Product == "" {
		fields = append(fields, FieldError{"product", "Product cannot be empty"})
	} else if len(o.Product) > maxProductRefLen {
		fields = append(fields, FieldError{"product", fmt.Sprintf("Product reference cannot exceed %d characters", maxProductRefLen)})
	}
	if o.Quantity <= 0 {
		fields = append(fields, FieldError{"quantity", "Quantity must be a positive number"})
	} else if o.Quantity > maxOrderQuantity {
		fields = append(fields, FieldError{"quantity", fmt.Sprintf("Quantity cannot exceed %d", maxOrderQuantity)})
	}
	if o.TotalPrice <= 0 {
		fields = append(fields, FieldError{"totalPrice", "Total price must be a positive number"})
	} else if o.TotalPrice > maxTotalPrice {
		fields = append(fields, FieldError{"totalPrice", "Total price cannot exceed 9,999,999.99"})
	}
	return errorOrNil(fields)
}
