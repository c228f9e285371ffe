package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapture_RecordsInOrder(t *testing.T) {
	capture := NewCapture()
	ctx := context.Background()

	capture.Publish(ctx, NewEvent(EventItemAdded, "sess-1", "Nasi Goreng added to cart!"))
	capture.Publish(ctx, NewEvent(EventDiscountApplied, "sess-1", "Discount applied"))

	assert.Equal(t, []string{EventItemAdded, EventDiscountApplied}, capture.TypesSeen())

	last, ok := capture.Last()
	assert.True(t, ok)
	assert.Equal(t, EventDiscountApplied, last.Type)
}

func TestCapture_EmptyLast(t *testing.T) {
	capture := NewCapture()
	_, ok := capture.Last()
	assert.False(t, ok)
}

func TestMulti_FansOut(t *testing.T) {
	a := NewCapture()
	b := NewCapture()
	multi := NewMulti(a, b)

	multi.Publish(context.Background(), NewEvent(EventOrderPlaced, "sess-2", "Order placed"))

	assert.Len(t, a.Events(), 1)
	assert.Len(t, b.Events(), 1)
}

func TestEvent_WithPayload(t *testing.T) {
	event := NewEvent(EventVoteRecorded, "sess-3", "Vote recorded").
		WithPayload("poll_id", "poll-1").
		WithPayload("option_id", "opt-2")

	assert.Equal(t, "poll-1", event.Payload["poll_id"])
	assert.Equal(t, "opt-2", event.Payload["option_id"])
}
