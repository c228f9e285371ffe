package domain

// DashboardStats aggregate figures for the admin dashboard
type DashboardStats struct {
	TotalOrders    int64 `json:"total_orders"`
	PendingOrders  int64 `json:"pending_orders"`
	TotalRevenue   Money `json:"total_revenue"`
	TotalUsers     int   `json:"total_users"`
	MenuItems      int   `json:"menu_items"`
	ActiveEvents   int   `json:"active_events"`
	ForumPosts     int   `json:"forum_posts"`
	ActivePromos   int   `json:"active_promos"`
	AverageOrder   Money `json:"average_order"`
	OrdersToday    int64 `json:"orders_today"`
	RevenueToday   Money `json:"revenue_today"`
	CancelledToday int64 `json:"cancelled_today"`
}

// ToggleAvailabilityRequest menu availability switch DTO
type ToggleAvailabilityRequest struct {
	Available bool `json:"available"`
}

// TogglePromotionRequest promotion activation switch DTO
type TogglePromotionRequest struct {
	Active bool `json:"active"`
}
