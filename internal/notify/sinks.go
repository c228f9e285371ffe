package notify

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

// SessionBroadcaster pushes raw payloads to a session's connected clients
type SessionBroadcaster interface {
	SendToSession(sessionID string, data []byte)
}

type hubSink struct {
	hub SessionBroadcaster
}

// NewHubSink delivers events over the websocket hub
func NewHubSink(hub SessionBroadcaster) Notifier {
	return &hubSink{hub: hub}
}

func (s *hubSink) Publish(_ context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("Failed to encode notification")
		return
	}
	s.hub.SendToSession(event.SessionID, data)
}

type logSink struct{}

// NewLogSink delivers events to the structured log
func NewLogSink() Notifier {
	return logSink{}
}

func (logSink) Publish(_ context.Context, event Event) {
	log.Info().
		Str("type", event.Type).
		Str("session_id", event.SessionID).
		Str("message", event.Message).
		Msg("Notification")
}

// Capture records published events for assertions in tests
type Capture struct {
	mu     sync.Mutex
	events []Event
}

// NewCapture creates an empty capture sink
func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) Publish(_ context.Context, event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

// Events returns a snapshot of everything published so far
func (c *Capture) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Last returns the most recent event, if any
func (c *Capture) Last() (Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.events) == 0 {
		return Event{}, false
	}
	return c.events[len(c.events)-1], true
}

// TypesSeen returns the event types in publish order
func (c *Capture) TypesSeen() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	types := make([]string, 0, len(c.events))
	for _, e := range c.events {
		types = append(types, e.Type)
	}
	return types
}
