// Package notify carries user-facing feedback events (toast-style
// confirmations) from services to delivery sinks: the websocket channel
// for connected clients and the structured log as a fallback.
package notify

import (
	"context"
	"time"
)

// Event types
const (
	EventItemAdded        = "cart.item_added"
	EventItemRemoved      = "cart.item_removed"
	EventCartCleared      = "cart.cleared"
	EventDiscountApplied  = "cart.discount_applied"
	EventDiscountRemoved  = "cart.discount_removed"
	EventDiscountInvalid  = "cart.discount_invalid"
	EventOrderPlaced      = "order.placed"
	EventBookingConfirmed = "booking.confirmed"
	EventVoteRecorded     = "community.vote_recorded"
	EventPostCreated      = "community.post_created"
)

// Event one user-facing feedback notification
type Event struct {
	Type      string                 `json:"type"`
	SessionID string                 `json:"-"`
	Message   string                 `json:"message"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	At        time.Time              `json:"at"`
}

// Notifier delivers feedback events; implementations never block the caller's flow
type Notifier interface {
	Publish(ctx context.Context, event Event)
}

// NewEvent builds an event stamped with the current time
func NewEvent(eventType, sessionID, message string) Event {
	return Event{
		Type:      eventType,
		SessionID: sessionID,
		Message:   message,
		At:        time.Now(),
	}
}

// WithPayload attaches a payload field and returns the event
func (e Event) WithPayload(key string, value interface{}) Event {
	if e.Payload == nil {
		e.Payload = make(map[string]interface{})
	}
	e.Payload[key] = value
	return e
}

type multiNotifier struct {
	sinks []Notifier
}

// NewMulti fans an event out to every sink
func NewMulti(sinks ...Notifier) Notifier {
	return &multiNotifier{sinks: sinks}
}

func (m *multiNotifier) Publish(ctx context.Context, event Event) {
	for _, sink := range m.sinks {
		sink.Publish(ctx, event)
	}
}

type noopNotifier struct{}

// NewNoop notifier that drops every event
func NewNoop() Notifier {
	return noopNotifier{}
}

func (noopNotifier) Publish(context.Context, Event) {}
