package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencerAdvance(t *testing.T) {
	t.Run("gate failure leaves position unchanged", func(t *testing.T) {
		seq := NewCheckoutFlow()
		gateErr := errors.New("cart is empty")

		err := seq.Advance(func() error { return gateErr })

		assert.ErrorIs(t, err, gateErr)
		assert.Equal(t, StepCart, seq.Current())
	})

	t.Run("gate success advances one step", func(t *testing.T) {
		seq := NewCheckoutFlow()

		assert.NoError(t, seq.Advance(func() error { return nil }))
		assert.Equal(t, StepCheckout, seq.Current())
	})

	t.Run("nil gate is unconditional", func(t *testing.T) {
		seq := NewBookingFlow()

		assert.NoError(t, seq.Advance(nil))
		assert.Equal(t, StepPayment, seq.Current())
	})

	t.Run("advance past terminal rejected", func(t *testing.T) {
		seq := NewBookingFlow()
		assert.NoError(t, seq.Advance(nil))
		assert.NoError(t, seq.Advance(nil))
		assert.True(t, seq.AtTerminal())

		assert.ErrorIs(t, seq.Advance(nil), ErrAtTerminal)
		assert.Equal(t, StepConfirmation, seq.Current())
	})
}

func TestSequencerBack(t *testing.T) {
	t.Run("backward always permitted mid-flow", func(t *testing.T) {
		seq := NewCheckoutFlow()
		assert.NoError(t, seq.Advance(nil))

		assert.NoError(t, seq.Back())
		assert.Equal(t, StepCart, seq.Current())
	})

	t.Run("back at start rejected", func(t *testing.T) {
		seq := NewCheckoutFlow()
		assert.ErrorIs(t, seq.Back(), ErrAtStart)
	})

	t.Run("no backward transition from confirmation", func(t *testing.T) {
		seq := NewCheckoutFlow()
		assert.NoError(t, seq.Advance(nil))
		assert.NoError(t, seq.Advance(nil))

		assert.ErrorIs(t, seq.Back(), ErrAtTerminal)
	})
}

func TestSequencerReset(t *testing.T) {
	seq := NewBookingFlow()
	assert.NoError(t, seq.Advance(nil))
	assert.NoError(t, seq.Advance(nil))

	seq.Reset()

	assert.Equal(t, StepDetails, seq.Current())
	assert.False(t, seq.AtTerminal())
}
