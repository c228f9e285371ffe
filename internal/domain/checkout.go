package domain

// DeliveryOption how an order is fulfilled. RequiresAddress marks
// delivery-type options that make the address field mandatory.
type DeliveryOption struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Fee             Money  `json:"price"`
	EstimatedTime   string `json:"estimated_time"`
	RequiresAddress bool   `json:"requires_address"`
}

// PaymentMethod how an order is paid, with its own fee
type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Fee         Money  `json:"fee"`
}

// CustomerInfo contact fields gathered during checkout/booking.
// Name, email and phone are required before the flow may advance;
// address only when the fulfillment option requires delivery.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// CheckoutSelection ephemeral step-scoped state for the cart checkout
// flow. Created fresh when a flow starts, discarded on completion.
type CheckoutSelection struct {
	DeliveryOptionID string       `json:"delivery_option"`
	PaymentMethodID  string       `json:"payment_method"`
	Customer         CustomerInfo `json:"customer"`
}

// CheckoutDetailsRequest details-step submission DTO
type CheckoutDetailsRequest struct {
	DeliveryOptionID string `json:"delivery_option" binding:"required"`
	Name             string `json:"name" binding:"required,max=100"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required,phone"`
	Address          string `json:"address" binding:"omitempty,max=500"`
	Notes            string `json:"notes" binding:"omitempty,max=1000"`
}

// PlaceOrderRequest payment-step submission DTO. PaymentMethodID
// defaults to the first configured method when empty.
type PlaceOrderRequest struct {
	PaymentMethodID string `json:"payment_method"`
}

// CheckoutStateResponse current flow position with derived totals
type CheckoutStateResponse struct {
	Step           string             `json:"step"`
	Selection      *CheckoutSelection `json:"selection,omitempty"`
	DeliveryFee    Money              `json:"delivery_fee"`
	PaymentFee     Money              `json:"payment_fee"`
	Subtotal       Money              `json:"subtotal"`
	DiscountAmount Money              `json:"discount_amount"`
	Total          Money              `json:"total"`
}
