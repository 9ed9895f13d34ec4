package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	catalogerrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/store"
	"github.com/abgdnv/catalog/pkg/messaging"
	"github.com/abgdnv/catalog/pkg/messaging/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	products  []store.Product
	product   store.Product
	error     error
	created   store.Product
	patch     store.ProductPatch
	patchedID string
}

func (m *mockProductStore) FindByID(_ context.Context, _ string) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductStore) FindAll(_ context.Context) ([]store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockProductStore) Create(_ context.Context, p store.Product) (*store.Product, error) {
	m.created = p
	if m.error != nil {
		return nil, m.error
	}
	p.ID = m.product.ID
	return &p, nil
}

func (m *mockProductStore) Update(_ context.Context, id string, patch store.ProductPatch) (*store.Product, error) {
	m.patchedID = id
	m.patch = patch
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductStore) DeleteByID(_ context.Context, _ string) error {
	return m.error
}

// mockPublisher records published events and fails when error is set.
type mockPublisher struct {
	events []messaging.Event
	error  error
}

func (m *mockPublisher) Publish(_ context.Context, event messaging.Event) error {
	m.events = append(m.events, event)
	return m.error
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_ProductService_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product found",
			mockStore: &mockProductStore{
				product: store.Product{ID: "abc123", Name: "Казан", Category: "Казаны", Price: 3500, Quantity: 8, Rating: 4.9},
			},
			expected: &ProductDto{ID: "abc123", Name: "Казан", Category: "Казаны", Price: 3500, Quantity: 8, Rating: 4.9},
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{error: catalogerrors.ErrProductNotFound},
			expectError: catalogerrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore, nil, testLogger())
			// when
			found, err := service.FindByID(context.Background(), "abc123")
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_ProductService_FindAll(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name         string
		mockStore    *mockProductStore
		expectedList []ProductDto
		expectError  error
	}{
		{
			name:         "Success - products found",
			mockStore:    &mockProductStore{products: []store.Product{{ID: "1", Name: "Турка"}, {ID: "2", Name: "Вок"}}},
			expectedList: []ProductDto{{ID: "1", Name: "Турка"}, {ID: "2", Name: "Вок"}},
		},
		{
			name:         "Success - no products",
			mockStore:    &mockProductStore{products: []store.Product{}},
			expectedList: []ProductDto{},
		},
		{
			name:        "Error - store error",
			mockStore:   &mockProductStore{error: ErrStoreError},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore, nil, testLogger())
			// when
			found, err := service.FindAll(context.Background())
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedList, found)
		})
	}
}

func Test_ProductService_Create(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name          string
		mockStore     *mockProductStore
		product       ProductCreateDto
		expected      *ProductDto
		expectStored  store.Product
		expectError   error
		expectPublish bool
	}{
		{
			name:          "Success - defaults applied",
			mockStore:     &mockProductStore{product: store.Product{ID: "new001"}},
			product:       ProductCreateDto{Name: "Test Pot", Price: 1000},
			expected:      &ProductDto{ID: "new001", Name: "Test Pot", Category: DefaultCategory, Price: 1000},
			expectStored:  store.Product{Name: "Test Pot", Category: DefaultCategory, Price: 1000},
			expectPublish: true,
		},
		{
			name:      "Success - all fields kept",
			mockStore: &mockProductStore{product: store.Product{ID: "new002"}},
			product: ProductCreateDto{
				Name: "Вок", Category: "Сковороды", Description: "32см", Price: 2800, Quantity: 9, Rating: 4.5, Image: "/assets/wok.jpg",
			},
			expected: &ProductDto{
				ID: "new002", Name: "Вок", Category: "Сковороды", Description: "32см", Price: 2800, Quantity: 9, Rating: 4.5, Image: "/assets/wok.jpg",
			},
			expectStored: store.Product{
				Name: "Вок", Category: "Сковороды", Description: "32см", Price: 2800, Quantity: 9, Rating: 4.5, Image: "/assets/wok.jpg",
			},
			expectPublish: true,
		},
		{
			name:         "Error - store error",
			mockStore:    &mockProductStore{error: ErrStoreError},
			product:      ProductCreateDto{Name: "Test Pot", Price: 1000},
			expectStored: store.Product{Name: "Test Pot", Category: DefaultCategory, Price: 1000},
			expectError:  ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			publisher := &mockPublisher{}
			service := NewService(tc.mockStore, publisher, testLogger())
			// when
			created, err := service.Create(context.Background(), tc.product)
			// then
			assert.Equal(t, tc.expectStored, tc.mockStore.created)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, created)
				assert.Empty(t, publisher.events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, created)
			require.Len(t, publisher.events, 1)
			event, ok := publisher.events[0].(events.ProductCreatedEvent)
			require.True(t, ok)
			assert.Equal(t, tc.expected.ID, event.Product.ID)
		})
	}
}

func Test_ProductService_Update(t *testing.T) {
	quantity := Integer(0)
	price := Number(1500)
	name := "Пароварка"

	// given
	mockStore := &mockProductStore{product: store.Product{ID: "p1", Name: name, Price: 1500, Quantity: 0}}
	publisher := &mockPublisher{}
	service := NewService(mockStore, publisher, testLogger())

	// when
	updated, err := service.Update(context.Background(), "p1", ProductUpdateDto{Name: &name, Price: &price, Quantity: &quantity})

	// then
	require.NoError(t, err)
	assert.Equal(t, &ProductDto{ID: "p1", Name: name, Price: 1500}, updated)
	assert.Equal(t, "p1", mockStore.patchedID)
	require.NotNil(t, mockStore.patch.Quantity)
	assert.Equal(t, 0, *mockStore.patch.Quantity)
	require.NotNil(t, mockStore.patch.Price)
	assert.InDelta(t, 1500, *mockStore.patch.Price, 0)
	assert.Nil(t, mockStore.patch.Rating)
	assert.Nil(t, mockStore.patch.Category)
	require.Len(t, publisher.events, 1)
	event := publisher.events[0].(events.ProductUpdatedEvent)
	assert.Equal(t, []string{"name", "price", "quantity"}, event.Fields)
}

func Test_ProductService_Update_NotFound(t *testing.T) {
	// given
	publisher := &mockPublisher{}
	service := NewService(&mockProductStore{error: catalogerrors.ErrProductNotFound}, publisher, testLogger())

	// when
	updated, err := service.Update(context.Background(), "nope", ProductUpdateDto{})

	// then
	assert.ErrorIs(t, err, catalogerrors.ErrProductNotFound)
	assert.Nil(t, updated)
	assert.Empty(t, publisher.events)
}

func Test_ProductService_DeleteByID(t *testing.T) {
	testCases := []struct {
		name          string
		mockStore     *mockProductStore
		expectError   error
		expectPublish bool
	}{
		{name: "Success - product deleted", mockStore: &mockProductStore{}, expectPublish: true},
		{name: "Error - product not found", mockStore: &mockProductStore{error: catalogerrors.ErrProductNotFound}, expectError: catalogerrors.ErrProductNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			publisher := &mockPublisher{}
			service := NewService(tc.mockStore, publisher, testLogger())
			// when
			err := service.DeleteByID(context.Background(), "p1")
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Empty(t, publisher.events)
				return
			}
			require.NoError(t, err)
			require.Len(t, publisher.events, 1)
			assert.Equal(t, events.ProductDeletedEvent{ProductID: "p1", DeletedAt: publisher.events[0].(events.ProductDeletedEvent).DeletedAt}, publisher.events[0])
		})
	}
}

func Test_ProductService_PublishFailureDoesNotFailRequest(t *testing.T) {
	// given
	publisher := &mockPublisher{error: errors.New("nats down")}
	service := NewService(&mockProductStore{product: store.Product{ID: "x"}}, publisher, testLogger())

	// when
	created, err := service.Create(context.Background(), ProductCreateDto{Name: "Ковш", Price: 890})

	// then
	require.NoError(t, err)
	assert.Equal(t, "x", created.ID)
	assert.Len(t, publisher.events, 1)
}
