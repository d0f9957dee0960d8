package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/feral-file/founder-scout/internal/store/schema"
)

// SUBJECT_PREFIX roots every emergence event subject
const SUBJECT_PREFIX = "scout.events"

// EventMessage is the wire form of an emergence event
type EventMessage struct {
	ID          uint64          `json:"id"`
	EventType   string          `json:"event_type"`
	EntityID    uint64          `json:"entity_id"`
	EntityType  string          `json:"entity_type"`
	Signal      string          `json:"signal"`
	DeltaBefore *float64        `json:"delta_before,omitempty"`
	DeltaAfter  *float64        `json:"delta_after,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	DetectedAt  time.Time       `json:"detected_at"`
}

// NewEventMessage converts a stored event
func NewEventMessage(event *schema.EmergenceEvent) EventMessage {
	msg := EventMessage{
		ID:          event.ID,
		EventType:   string(event.EventType),
		EntityID:    event.EntityID,
		EntityType:  string(event.EntityType),
		Signal:      event.Signal,
		DeltaBefore: event.DeltaBefore,
		DeltaAfter:  event.DeltaAfter,
		DetectedAt:  event.DetectedAt,
	}
	if len(event.Metadata) > 0 {
		msg.Metadata = json.RawMessage(event.Metadata)
	}
	return msg
}

// Publisher defines the interface for publishing emergence events to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes an emergence event
	PublishEvent(ctx context.Context, event *schema.EmergenceEvent) error
	// Close closes the connection
	Close()
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishEvent(context.Context, *schema.EmergenceEvent) error { return nil }

func (nopPublisher) Close() {}
