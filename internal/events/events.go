// Package events publishes domain events after successful mutations.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Type names a domain event. It doubles as the AMQP routing key.
type Type string

const (
	TransactionCreated Type = "transaction.created"
	TransactionUpdated Type = "transaction.updated"
	TransactionDeleted Type = "transaction.deleted"
	TransferCreated    Type = "transfer.created"
	TransferDeleted    Type = "transfer.deleted"
	AccountCreated     Type = "account.created"
	AccountUpdated     Type = "account.updated"
	AccountDeleted     Type = "account.deleted"
	CategoryCreated    Type = "category.created"
	CategoryDeleted    Type = "category.deleted"
)

// Event is the JSON envelope sent to subscribers.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	UserID     string    `json:"userId"`
	EntityID   string    `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

// New builds an event with a fresh id.
func New(typ Type, userID, entityID string, occurredAt time.Time, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		UserID:     userID,
		EntityID:   entityID,
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}

// ToJSON converts the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                       { return nil }
