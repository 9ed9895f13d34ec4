package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/abgdnv/catalog/internal/errors"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// idLength is the number of characters of a generated product ID.
	idLength = 6
	// maxIDAttempts bounds the retries when a generated ID is already taken.
	maxIDAttempts = 10
)

// IDGenerator returns a new candidate product ID.
type IDGenerator func() (string, error)

// NanoID generates a URL-safe random ID of idLength characters.
func NanoID() (string, error) {
	return gonanoid.New(idLength)
}

// inMemory implements ProductStore using an ordered slice.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
	newID    IDGenerator
}

// Option configures the in-memory store.
type Option func(*inMemory)

// WithIDGenerator replaces the nanoid generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *inMemory) {
		s.newID = gen
	}
}

// WithSeed preloads products. Their IDs are kept as given.
func WithSeed(products []Product) Option {
	return func(s *inMemory) {
		s.products = append(s.products, products...)
	}
}

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore(opts ...Option) ProductStore {
	s := &inMemory{
		products: make([]Product, 0),
		newID:    NanoID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// FindAll retrieves all products in insertion order.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.products), nil
}

// Create creates a new product and returns it.
func (s *inMemory) Create(_ context.Context, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return nil, err
	}
	product.ID = id
	s.products = append(s.products, product)

	return &product, nil
}

// Update applies patch to the product with the given ID and returns the result.
func (s *inMemory) Update(_ context.Context, id string, patch ProductPatch) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	p := &s.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}

	updated := *p
	return &updated, nil
}

// DeleteByID deletes a product by its ID.
func (s *inMemory) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errors.ErrProductNotFound
	}
	s.products = slices.Delete(s.products, i, i+1)
	return nil
}

// indexOf returns the position of id or -1. Callers hold the lock.
func (s *inMemory) indexOf(id string) int {
	return slices.IndexFunc(s.products, func(p Product) bool {
		return p.ID == id
	})
}

// uniqueID draws IDs until one is free. Callers hold the write lock.
func (s *inMemory) uniqueID() (string, error) {
	for range maxIDAttempts {
		id, err := s.newID()
		if err != nil {
			return "", fmt.Errorf("%w: generate id: %v", errors.ErrCantCreateProduct, err)
		}
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: no free id after %d attempts", errors.ErrCantCreateProduct, maxIDAttempts)
}
