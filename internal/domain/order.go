package domain

import "time"

// OrderStatus kitchen-side order lifecycle
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known status value
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order a placed order. Persisted so the admin back office and the
// profile order history survive restarts.
type Order struct {
	ID        uint64      `gorm:"primaryKey" json:"-"`
	Number    string      `gorm:"column:number;size:20;uniqueIndex;not null" json:"id"`
	SessionID string      `gorm:"column:session_id;size:64;index" json:"-"`
	UserID    string      `gorm:"column:user_id;size:64;index" json:"user_id,omitempty"`
	Status    OrderStatus `gorm:"size:20;default:'pending'" json:"status"`

	Subtotal       Money `gorm:"not null" json:"subtotal"`
	DiscountAmount Money `gorm:"column:discount_amount;default:0" json:"discount_amount"`
	DeliveryFee    Money `gorm:"column:delivery_fee;default:0" json:"delivery_fee"`
	PaymentFee     Money `gorm:"column:payment_fee;default:0" json:"payment_fee"`
	Total          Money `gorm:"not null" json:"total"`

	DiscountCode   string `gorm:"column:discount_code;size:50" json:"discount_code,omitempty"`
	DeliveryOption string `gorm:"column:delivery_option;size:30" json:"delivery_option"`
	PaymentMethod  string `gorm:"column:payment_method;size:30" json:"payment_method"`

	CustomerName    string `gorm:"column:customer_name;size:100" json:"customer_name"`
	CustomerEmail   string `gorm:"column:customer_email;size:190" json:"customer_email"`
	CustomerPhone   string `gorm:"column:customer_phone;size:30" json:"customer_phone"`
	CustomerAddress string `gorm:"column:customer_address;size:500" json:"customer_address,omitempty"`
	Notes           string `gorm:"type:text" json:"notes,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName GORM table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem one product line captured at order time
type OrderItem struct {
	ID        uint64 `gorm:"primaryKey" json:"-"`
	OrderID   uint64 `gorm:"column:order_id;index;not null" json:"-"`
	ItemID    string `gorm:"column:item_id;size:64;not null" json:"item_id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	UnitPrice Money  `gorm:"column:unit_price;not null" json:"price"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

// TableName GORM table name
func (OrderItem) TableName() string {
	return "order_items"
}

// UpdateOrderStatusRequest admin status change DTO
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing ready delivered completed cancelled"`
}

// OrderConfirmation what the order gateway returns once an order is accepted
type OrderConfirmation struct {
	Number        string    `json:"order_number"`
	EstimatedTime string    `json:"estimated_time"`
	PlacedAt      time.Time `json:"placed_at"`
}
