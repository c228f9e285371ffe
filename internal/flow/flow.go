// Package flow implements the linear gate-and-advance state machine that
// drives the multi-screen checkout and booking flows. Steps form a fixed
// ordered sequence; moving forward requires the current step's validation
// to pass, moving backward is always allowed except from the terminal
// step, and skipping is impossible by construction.
package flow

import (
	"errors"
	"fmt"
)

var (
	ErrAtTerminal = errors.New("flow already at terminal step")
	ErrAtStart    = errors.New("flow already at first step")
)

// Step a named position in a flow
type Step string

// Checkout flow steps
const (
	StepCart         Step = "cart"
	StepCheckout     Step = "checkout"
	StepConfirmation Step = "confirmation"
)

// Booking flow steps
const (
	StepDetails Step = "details"
	StepPayment Step = "payment"
)

// Gate validates the state gathered at the current step before the flow
// may advance past it. A nil gate is unconditional.
type Gate func() error

// Sequencer a single flow instance. Not safe for concurrent use; each
// browsing session owns its own sequencer.
type Sequencer struct {
	steps []Step
	pos   int
}

// NewSequencer creates a flow over the given ordered steps, positioned
// at the first. Panics on fewer than two steps, which is a programming
// error, not an input condition.
func NewSequencer(steps ...Step) *Sequencer {
	if len(steps) < 2 {
		panic("flow: a sequencer needs at least two steps")
	}
	return &Sequencer{steps: steps}
}

// NewCheckoutFlow cart -> checkout -> confirmation
func NewCheckoutFlow() *Sequencer {
	return NewSequencer(StepCart, StepCheckout, StepConfirmation)
}

// NewBookingFlow details -> payment -> confirmation
func NewBookingFlow() *Sequencer {
	return NewSequencer(StepDetails, StepPayment, StepConfirmation)
}

// Current the step the flow is on
func (s *Sequencer) Current() Step {
	return s.steps[s.pos]
}

// AtTerminal reports whether the flow reached its final step
func (s *Sequencer) AtTerminal() bool {
	return s.pos == len(s.steps)-1
}

// Advance moves one step forward after the gate passes. The position is
// unchanged when the gate rejects or the flow is already terminal.
func (s *Sequencer) Advance(gate Gate) error {
	if s.AtTerminal() {
		return ErrAtTerminal
	}
	if gate != nil {
		if err := gate(); err != nil {
			return fmt.Errorf("cannot leave step %s: %w", s.Current(), err)
		}
	}
	s.pos++
	return nil
}

// Back moves one step backward. Form state gathered so far is owned by
// the caller and survives; only the position changes. Backing out of the
// terminal step is not permitted: a confirmed flow can only be reset.
func (s *Sequencer) Back() error {
	if s.AtTerminal() {
		return ErrAtTerminal
	}
	if s.pos == 0 {
		return ErrAtStart
	}
	s.pos--
	return nil
}

// Reset returns the flow to its first step
func (s *Sequencer) Reset() {
	s.pos = 0
}
