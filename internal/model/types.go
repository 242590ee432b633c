// Package model defines domain types used by the service.
package model

import "time"

// Category is the bike category. Only the four listed values are valid.
type Category string

const (
	CategoryMountain Category = "Mountain"
	CategoryRoad     Category = "Road"
	CategoryHybrid   Category = "Hybrid"
	CategoryElectric Category = "Electric"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMountain, CategoryRoad, CategoryHybrid, CategoryElectric:
		return true
	}
	return false
}

// Product is a catalog entry. InStock is derived from Quantity and is never
// taken from client input. Soft-deleted products stay in storage with
// IsDeleted set and are excluded from default reads.
type Product struct {
	ID          string    `bson:"_id" json:"_id"`
	Name        string    `bson:"name" json:"name"`
	Brand       string    `bson:"brand" json:"brand"`
	Price       float64   `bson:"price" json:"price"`
	Category    Category  `bson:"category" json:"category"`
	Description string    `bson:"description" json:"description"`
	Quantity    int       `bson:"quantity" json:"quantity"`
	InStock     bool      `bson:"inStock" json:"inStock"`
	IsDeleted   bool      `bson:"isDeleted" json:"isDeleted"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProductUpdate carries a partial product mutation. Nil fields are left
// untouched. Setting Quantity recomputes InStock.
type ProductUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Brand       *string   `json:"brand,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Quantity    *int      `json:"quantity,omitempty"`
	InStock     *bool     `json:"inStock,omitempty"`
	IsDeleted   *bool     `json:"isDeleted,omitempty"`
}

// Order references a product by id. Orders are immutable after creation.
type Order struct {
	ID         string    `bson:"_id" json:"_id"`
	Email      string    `bson:"email" json:"email"`
	Product    string    `bson:"product" json:"product"`
	Quantity   int       `bson:"quantity" json:"quantity"`
	TotalPrice float64   `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
