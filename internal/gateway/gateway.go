// Package gateway models the external systems the shop talks to: the
// order intake at the kitchen and the identity provider. Production has
// no real upstream yet, so both are simulated with a fixed latency; the
// interfaces keep the swap cheap when one arrives.
package gateway

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/kedaimae/kedai-backend/internal/domain"
)

// OrderGateway accepts a finished order and returns its confirmation
type OrderGateway interface {
	Submit(ctx context.Context, order *domain.Order) (domain.OrderConfirmation, error)
}

// EstimatedPrepTime quoted to the customer on every confirmation
const EstimatedPrepTime = "25-35 minutes"

type simulatedOrderGateway struct {
	delay time.Duration
}

// NewSimulatedOrderGateway order intake that acknowledges after a fixed delay
func NewSimulatedOrderGateway(delay time.Duration) OrderGateway {
	return &simulatedOrderGateway{delay: delay}
}

func (g *simulatedOrderGateway) Submit(ctx context.Context, order *domain.Order) (domain.OrderConfirmation, error) {
	if err := sleep(ctx, g.delay); err != nil {
		return domain.OrderConfirmation{}, err
	}

	number := order.Number
	if number == "" {
		number = NewOrderNumber()
	}
	return domain.OrderConfirmation{
		Number:        number,
		EstimatedTime: EstimatedPrepTime,
		PlacedAt:      time.Now(),
	}, nil
}

// NewOrderNumber generates a display order number like ORD-A1B2C3
func NewOrderNumber() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("ORD-%06d", time.Now().UnixNano()%1000000)
	}
	return "ORD-" + strings.ToUpper(hex.EncodeToString(buf))
}

// sleep waits for d or until the context is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
