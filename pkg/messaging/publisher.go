package messaging

import (
	"context"
)

// Subjects of catalog events.
const (
	ProductCreatedSubject = "catalog.products.created"
	ProductUpdatedSubject = "catalog.products.updated"
	ProductDeletedSubject = "catalog.products.deleted"
)

// ProductSubjects is the subject filter of the catalog event stream.
var ProductSubjects = []string{"catalog.products.>"}

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
