// Package store provides an interface for product storage operations.
package store

import "context"

// Product represents a product entity in the store.
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string
	Price       float64
	Quantity    int
	Rating      float64
	Image       string
}

// ProductPatch lists the fields an update overwrites. A nil field is left untouched.
type ProductPatch struct {
	Name        *string
	Category    *string
	Description *string
	Price       *float64
	Quantity    *int
	Rating      *float64
	Image       *string
}

// Fields returns the JSON names of the fields set in the patch.
func (p ProductPatch) Fields() []string {
	fields := make([]string, 0, 7)
	if p.Name != nil {
		fields = append(fields, "name")
	}
	if p.Category != nil {
		fields = append(fields, "category")
	}
	if p.Description != nil {
		fields = append(fields, "description")
	}
	if p.Price != nil {
		fields = append(fields, "price")
	}
	if p.Quantity != nil {
		fields = append(fields, "quantity")
	}
	if p.Rating != nil {
		fields = append(fields, "rating")
	}
	if p.Image != nil {
		fields = append(fields, "image")
	}
	return fields
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create assigns a fresh ID to product and appends it to the catalog.
	// Returns error if the product cannot be created.
	Create(ctx context.Context, product Product) (*Product, error)

	// Update overwrites the fields set in patch.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, patch ProductPatch) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}
