package gateway

import (
	"context"
	"time"
)

// IdentityGateway models the round trip to the identity provider.
// Verify reports nothing about the credentials; the auth service owns
// the actual password check. The gateway exists to carry the upstream
// latency so the login path behaves like production.
type IdentityGateway interface {
	Verify(ctx context.Context) error
}

type simulatedIdentityGateway struct {
	delay time.Duration
}

// NewSimulatedIdentityGateway identity round trip with a fixed delay
func NewSimulatedIdentityGateway(delay time.Duration) IdentityGateway {
	return &simulatedIdentityGateway{delay: delay}
}

func (g *simulatedIdentityGateway) Verify(ctx context.Context) error {
	return sleep(ctx, g.delay)
}

// Instant gateways for tests

type instantOrderGateway struct {
	simulatedOrderGateway
}

// NewInstantOrderGateway order gateway with no latency
func NewInstantOrderGateway() OrderGateway {
	return &instantOrderGateway{}
}

// NewInstantIdentityGateway identity gateway with no latency
func NewInstantIdentityGateway() IdentityGateway {
	return &simulatedIdentityGateway{}
}
