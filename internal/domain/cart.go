package domain

// LineItem one product-and-quantity record inside a cart.
// Quantity is always >= 1 while the item remains in the cart; setting it
// to zero or below removes the item instead.
type LineItem struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	UnitPrice           Money  `json:"price"`
	Quantity            int    `json:"quantity"`
	Image               string `json:"image,omitempty"`
	Category            string `json:"category"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// LineTotal price of this line in rupiah
func (li *LineItem) LineTotal() Money {
	return li.UnitPrice * int64(li.Quantity)
}

// Cart the per-session aggregate: ordered line items plus at most one
// active discount. Insertion order is preserved for display only.
type Cart struct {
	Items    []LineItem `json:"items"`
	Discount *Discount  `json:"discount,omitempty"`
}

// IsEmpty reports whether the cart has no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems sum of quantities across all line items
func (c *Cart) TotalItems() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}

// Clone returns a deep copy so callers can never mutate store state
func (c *Cart) Clone() *Cart {
	out := &Cart{Items: make([]LineItem, len(c.Items))}
	copy(out.Items, c.Items)
	if c.Discount != nil {
		d := *c.Discount
		out.Discount = &d
	}
	return out
}

// AddItemRequest add-to-cart request DTO. Quantity defaults to 1.
type AddItemRequest struct {
	ItemID              string `json:"item_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"omitempty,gte=1"`
	SpecialInstructions string `json:"special_instructions" binding:"omitempty,max=500"`
}

// UpdateQuantityRequest quantity change request DTO. Zero or negative
// quantities are accepted and remove the item.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse cart snapshot with derived totals, all recomputed per request
type CartResponse struct {
	Items          []LineItem `json:"items"`
	ItemCount      int        `json:"item_count"`
	TotalQuantity  int        `json:"total_quantity"`
	Subtotal       Money      `json:"subtotal"`
	Discount       *Discount  `json:"discount,omitempty"`
	DiscountAmount Money      `json:"discount_amount"`
	Total          Money      `json:"total"`
	Currency       string     `json:"currency"`
}
