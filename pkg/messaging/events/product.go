package events

import (
	"encoding/json"
	"time"

	"github.com/abgdnv/catalog/pkg/messaging"
)

// ProductSnapshot is the product state carried by catalog events.
type ProductSnapshot struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
}

type ProductCreatedEvent struct {
	Product   ProductSnapshot `json:"product"`
	CreatedAt time.Time       `json:"created_at"`
}

func (e ProductCreatedEvent) Subject() string {
	return messaging.ProductCreatedSubject
}

func (e ProductCreatedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

type ProductUpdatedEvent struct {
	Product   ProductSnapshot `json:"product"`
	Fields    []string        `json:"fields"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (e ProductUpdatedEvent) Subject() string {
	return messaging.ProductUpdatedSubject
}

func (e ProductUpdatedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

type ProductDeletedEvent struct {
	ProductID string    `json:"product_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e ProductDeletedEvent) Subject() string {
	return messaging.ProductDeletedSubject
}

func (e ProductDeletedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
