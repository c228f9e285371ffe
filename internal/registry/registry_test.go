package registry

import (
	"testing"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testRegistry() *Registry {
	return New(
		[]domain.Discount{
			{Code: "WELCOME10", Kind: domain.DiscountKindPercentage, Value: 10},
			{Code: "SAVE20", Kind: domain.DiscountKindFixed, Value: 20000},
		},
		[]domain.PromoCode{
			{Code: "WEEKEND15", Kind: domain.DiscountKindPercentage, Value: 15, MinOrder: 40000, Active: true},
			{Code: "RETIRED", Kind: domain.DiscountKindFixed, Value: 5000, MinOrder: 0, Active: false},
		},
	)
}

func TestLookup(t *testing.T) {
	r := testRegistry()

	t.Run("case-insensitive", func(t *testing.T) {
		for _, code := range []string{"SAVE20", "save20", "Save20", "  save20  "} {
			d, ok := r.Lookup(code)
			assert.True(t, ok, "code %q should resolve", code)
			assert.Equal(t, "SAVE20", d.Code)
			assert.Equal(t, domain.DiscountKindFixed, d.Kind)
			assert.Equal(t, int64(20000), d.Value)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		_, ok := r.Lookup("FAKE123")
		assert.False(t, ok)
	})
}

func TestLookupPromo(t *testing.T) {
	r := testRegistry()

	t.Run("active promo resolves", func(t *testing.T) {
		p, ok := r.LookupPromo("weekend15")
		assert.True(t, ok)
		assert.Equal(t, int64(40000), p.MinOrder)
	})

	t.Run("inactive promo does not resolve", func(t *testing.T) {
		_, ok := r.LookupPromo("RETIRED")
		assert.False(t, ok)
	})

	t.Run("toggle reactivates", func(t *testing.T) {
		assert.True(t, r.SetPromoActive("RETIRED", true))
		_, ok := r.LookupPromo("RETIRED")
		assert.True(t, ok)
	})

	t.Run("toggle unknown code", func(t *testing.T) {
		assert.False(t, r.SetPromoActive("NOPE", true))
	})
}
