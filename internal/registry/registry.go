// Package registry holds the discount code table: cart-level codes that
// apply unconditionally and checkout promos that carry a minimum order.
package registry

import (
	"sync"

	"github.com/kedaimae/kedai-backend/internal/domain"
)

// Registry fixed mapping from canonical code to discount definition.
// Lookups are case-insensitive; codes are stored uppercase.
type Registry struct {
	mu     sync.RWMutex
	codes  map[string]domain.Discount
	promos map[string]domain.PromoCode
}

// New creates a registry seeded with the given codes and promos
func New(codes []domain.Discount, promos []domain.PromoCode) *Registry {
	r := &Registry{
		codes:  make(map[string]domain.Discount, len(codes)),
		promos: make(map[string]domain.PromoCode, len(promos)),
	}
	for _, d := range codes {
		d.Code = domain.NormalizeCode(d.Code)
		r.codes[d.Code] = d
	}
	for _, p := range promos {
		p.Code = domain.NormalizeCode(p.Code)
		r.promos[p.Code] = p
	}
	return r
}

// Lookup resolves a cart-level discount code. The bool result is the
// only failure signal; an unknown code is not an error.
func (r *Registry) Lookup(code string) (domain.Discount, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.codes[domain.NormalizeCode(code)]
	return d, ok
}

// LookupPromo resolves a checkout promo code. Inactive promos do not resolve.
func (r *Registry) LookupPromo(code string) (domain.PromoCode, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.promos[domain.NormalizeCode(code)]
	if !ok || !p.Active {
		return domain.PromoCode{}, false
	}
	return p, true
}

// Promos returns all promo codes, active or not, for the admin panel
func (r *Registry) Promos() []domain.PromoCode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PromoCode, 0, len(r.promos))
	for _, p := range r.promos {
		out = append(out, p)
	}
	return out
}

// SetPromoActive toggles a promo on or off. Returns false when the code
// is unknown.
func (r *Registry) SetPromoActive(code string, active bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.NormalizeCode(code)
	p, ok := r.promos[key]
	if !ok {
		return false
	}
	p.Active = active
	r.promos[key] = p
	return true
}
