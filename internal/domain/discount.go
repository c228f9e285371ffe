package domain

import "strings"

// DiscountKind how a discount reduces the subtotal
type DiscountKind string

const (
	DiscountKindPercentage DiscountKind = "percentage" // value is a rate 0-100
	DiscountKindFixed      DiscountKind = "fixed"      // value is an amount in rupiah
)

// Discount a single reduction applied to a cart. At most one is active
// per cart; applying a new one replaces the old.
type Discount struct {
	Code  string       `json:"code"`
	Kind  DiscountKind `json:"type"`
	Value int64        `json:"amount"`
}

// NormalizeCode canonicalizes a discount code for lookup
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PromoCode a checkout-level promotion: a discount that additionally
// requires a minimum order subtotal before it may be applied.
type PromoCode struct {
	Code     string       `json:"code"`
	Kind     DiscountKind `json:"type"`
	Value    int64        `json:"amount"`
	MinOrder Money        `json:"min_order"`
	Active   bool         `json:"active"`
}

// Discount converts the promo into the cart-level discount it grants
func (p *PromoCode) Discount() Discount {
	return Discount{Code: p.Code, Kind: p.Kind, Value: p.Value}
}

// ApplyDiscountRequest apply-by-code request DTO
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required,min=2,max=50"`
}
