package gateway

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kedaimae/kedai-backend/internal/domain"
)

func TestSubmit_ReturnsConfirmation(t *testing.T) {
	gw := NewInstantOrderGateway()

	conf, err := gw.Submit(context.Background(), &domain.Order{})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(conf.Number, "ORD-"))
	assert.Equal(t, EstimatedPrepTime, conf.EstimatedTime)
	assert.WithinDuration(t, time.Now(), conf.PlacedAt, time.Second)
}

func TestSubmit_KeepsPresetNumber(t *testing.T) {
	gw := NewInstantOrderGateway()

	conf, err := gw.Submit(context.Background(), &domain.Order{Number: "ORD-FIXED1"})
	assert.NoError(t, err)
	assert.Equal(t, "ORD-FIXED1", conf.Number)
}

func TestSubmit_HonorsContextCancellation(t *testing.T) {
	gw := NewSimulatedOrderGateway(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gw.Submit(ctx, &domain.Order{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewOrderNumber_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := NewOrderNumber()
		assert.Len(t, n, 10)
		assert.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}

func TestIdentityGateway_Verify(t *testing.T) {
	assert.NoError(t, NewInstantIdentityGateway().Verify(context.Background()))

	slow := NewSimulatedIdentityGateway(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, slow.Verify(ctx), context.DeadlineExceeded)
}
