// Package pricing derives monetary totals from a cart. All functions are
// pure and all arithmetic is done in int64 rupiah; percentage discounts
// round down (integer division) so a discount is never over-applied.
package pricing

import "github.com/kedaimae/kedai-backend/internal/domain"

// Subtotal sum of unit price times quantity over all line items
func Subtotal(cart *domain.Cart) domain.Money {
	var sum int64
	for i := range cart.Items {
		sum += cart.Items[i].LineTotal()
	}
	return sum
}

// DiscountAmount how much the active discount takes off the subtotal.
// A fixed discount is capped at the subtotal so it can never drive the
// total negative; a percentage discount is floored.
func DiscountAmount(cart *domain.Cart) domain.Money {
	if cart.Discount == nil {
		return 0
	}
	return discountOn(Subtotal(cart), cart.Discount)
}

func discountOn(subtotal domain.Money, d *domain.Discount) domain.Money {
	switch d.Kind {
	case domain.DiscountKindPercentage:
		return subtotal * d.Value / 100
	case domain.DiscountKindFixed:
		if d.Value > subtotal {
			return subtotal
		}
		return d.Value
	default:
		return 0
	}
}

// Quote full price breakdown for a cart plus checkout fees
type Quote struct {
	Subtotal       domain.Money `json:"subtotal"`
	DiscountAmount domain.Money `json:"discount_amount"`
	DeliveryFee    domain.Money `json:"delivery_fee"`
	PaymentFee     domain.Money `json:"payment_fee"`
	Total          domain.Money `json:"total"`
}

// NewQuote computes the breakdown. Total is clamped at zero.
func NewQuote(cart *domain.Cart, deliveryFee, paymentFee domain.Money) Quote {
	subtotal := Subtotal(cart)
	var discount int64
	if cart.Discount != nil {
		discount = discountOn(subtotal, cart.Discount)
	}

	total := subtotal - discount + deliveryFee + paymentFee
	if total < 0 {
		total = 0
	}

	return Quote{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		DeliveryFee:    deliveryFee,
		PaymentFee:     paymentFee,
		Total:          total,
	}
}

// Total convenience wrapper over NewQuote
func Total(cart *domain.Cart, deliveryFee, paymentFee domain.Money) domain.Money {
	return NewQuote(cart, deliveryFee, paymentFee).Total
}
