// Package service provides the implementation of catalog business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abgdnv/catalog/internal/store"
	"github.com/abgdnv/catalog/pkg/messaging"
	"github.com/abgdnv/catalog/pkg/messaging/events"
)

// DefaultCategory is assigned to products created without a category.
const DefaultCategory = "Другое"

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*ProductDto, error)

	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// Create adds a new product to the catalog, filling in defaults.
	// Returns error if the product cannot be created.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update overwrites the fields present in product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	publisher  messaging.Publisher
	logger     *slog.Logger
}

// NewService creates a new instance of ProductService with the provided repository.
// Catalog changes are announced through publisher.
func NewService(repo store.ProductStore, publisher messaging.Publisher, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &Service{
		repository: repo,
		publisher:  publisher,
		logger:     logger.With("component", "service"),
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// A zero price counts as missing.
type ProductCreateDto struct {
	Name        string  `json:"name"        validate:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       Number  `json:"price"       validate:"required,gte=0"`
	Quantity    Integer `json:"quantity"    validate:"gte=0"`
	Rating      Number  `json:"rating"`
	Image       string  `json:"image"`
}

// ProductUpdateDto represents a partial update. Absent and null fields are nil and stay unchanged.
type ProductUpdateDto struct {
	Name        *string  `json:"name"        validate:"omitnil,min=1"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *Number  `json:"price"       validate:"omitnil,gte=0"`
	Quantity    *Integer `json:"quantity"    validate:"omitnil,gte=0"`
	Rating      *Number  `json:"rating"`
	Image       *string  `json:"image"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id string) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}

	return toDto(product), nil
}

// FindAll retrieves a list of all products and returns them as ProductDTOs.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}

	return productDTOs, nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	category := product.Category
	if category == "" {
		category = DefaultCategory
	}
	p, err := s.repository.Create(ctx, store.Product{
		Name:        product.Name,
		Category:    category,
		Description: product.Description,
		Price:       float64(product.Price),
		Quantity:    int(product.Quantity),
		Rating:      float64(product.Rating),
		Image:       product.Image,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.publish(ctx, events.ProductCreatedEvent{
		Product:   toSnapshot(p),
		CreatedAt: time.Now().UTC(),
	})
	return toDto(p), nil
}

// Update applies the supplied fields to the product and returns the result as a ProductDto.
func (s *Service) Update(ctx context.Context, id string, product ProductUpdateDto) (*ProductDto, error) {
	patch := toPatch(product)
	updated, err := s.repository.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}

	s.publish(ctx, events.ProductUpdatedEvent{
		Product:   toSnapshot(updated),
		Fields:    patch.Fields(),
		UpdatedAt: time.Now().UTC(),
	})
	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %s: %w", id, err)
	}

	s.publish(ctx, events.ProductDeletedEvent{
		ProductID: id,
		DeletedAt: time.Now().UTC(),
	})
	return nil
}

// publish sends event and only logs a failure: the catalog change has already happened.
func (s *Service) publish(ctx context.Context, event messaging.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish catalog event", "subject", event.Subject(), "error", err)
	}
}

func toPatch(dto ProductUpdateDto) store.ProductPatch {
	patch := store.ProductPatch{
		Name:        dto.Name,
		Category:    dto.Category,
		Description: dto.Description,
		Image:       dto.Image,
	}
	if dto.Price != nil {
		v := float64(*dto.Price)
		patch.Price = &v
	}
	if dto.Quantity != nil {
		v := int(*dto.Quantity)
		patch.Quantity = &v
	}
	if dto.Rating != nil {
		v := float64(*dto.Rating)
		patch.Rating = &v
	}
	return patch
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Rating:      product.Rating,
		Image:       product.Image,
	}
}

func toSnapshot(product *store.Product) events.ProductSnapshot {
	return events.ProductSnapshot{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Rating:      product.Rating,
		Image:       product.Image,
	}
}
