package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/registry"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrUnknownPromo  = errors.New("unknown promo code")
	ErrInvalidStatus = errors.New("invalid order status")
)

// AdminService back-office operations: dashboard figures, the order
// queue, and the menu/promotion switches
type AdminService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	ListOrders(ctx context.Context, status string, page, limit int) ([]domain.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, number string, req *domain.UpdateOrderStatusRequest) (*domain.Order, error)
	ToggleAvailability(itemID string, req *domain.ToggleAvailabilityRequest) (*domain.MenuItem, error)
	Promotions() []domain.PromoCode
	TogglePromotion(code string, req *domain.TogglePromotionRequest) error
}

type adminService struct {
	db       *gorm.DB
	menu     MenuService
	registry *registry.Registry

	menuCount  int
	eventCount int
	postCount  int
	userCount  int
}

// Counts static figures folded into the dashboard; the content catalog
// does not change size at runtime
type Counts struct {
	MenuItems  int
	Events     int
	ForumPosts int
	Users      int
}

// NewAdminService constructor
func NewAdminService(db *gorm.DB, menu MenuService, reg *registry.Registry, counts Counts) AdminService {
	return &adminService{
		db:         db,
		menu:       menu,
		registry:   reg,
		menuCount:  counts.MenuItems,
		eventCount: counts.Events,
		postCount:  counts.ForumPosts,
		userCount:  counts.Users,
	}
}

func (s *adminService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{
		MenuItems:    s.menuCount,
		ActiveEvents: s.eventCount,
		ForumPosts:   s.postCount,
		TotalUsers:   s.userCount,
	}
	for _, p := range s.registry.Promos() {
		if p.Active {
			stats.ActivePromos++
		}
	}
	if s.db == nil {
		return stats, nil
	}

	db := s.db.WithContext(ctx)
	if err := db.Model(&domain.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Order{}).
		Where("status = ?", domain.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}

	var revenue struct{ Total int64 }
	if err := db.Model(&domain.Order{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("status <> ?", domain.OrderStatusCancelled).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue.Total
	if stats.TotalOrders > 0 {
		stats.AverageOrder = stats.TotalRevenue / stats.TotalOrders
	}

	today := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&domain.Order{}).
		Where("created_at >= ?", today).
		Count(&stats.OrdersToday).Error; err != nil {
		return nil, err
	}
	var todayRevenue struct{ Total int64 }
	if err := db.Model(&domain.Order{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("created_at >= ? AND status <> ?", today, domain.OrderStatusCancelled).
		Scan(&todayRevenue).Error; err != nil {
		return nil, err
	}
	stats.RevenueToday = todayRevenue.Total
	if err := db.Model(&domain.Order{}).
		Where("created_at >= ? AND status = ?", today, domain.OrderStatusCancelled).
		Count(&stats.CancelledToday).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *adminService) ListOrders(ctx context.Context, status string, page, limit int) ([]domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.db.WithContext(ctx).Model(&domain.Order{})
	if status != "" {
		if !domain.ValidOrderStatus(status) {
			return nil, 0, ErrInvalidStatus
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []domain.Order
	err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *adminService) UpdateOrderStatus(ctx context.Context, number string, req *domain.UpdateOrderStatusRequest) (*domain.Order, error) {
	if !domain.ValidOrderStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	var order domain.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&order, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order.Status = domain.OrderStatus(req.Status)
	if err := s.db.WithContext(ctx).Model(&order).Update("status", order.Status).Error; err != nil {
		return nil, err
	}
	log.Info().Str("order", number).Str("status", req.Status).Msg("Order status updated")
	return &order, nil
}

func (s *adminService) ToggleAvailability(itemID string, req *domain.ToggleAvailabilityRequest) (*domain.MenuItem, error) {
	return s.menu.SetAvailability(itemID, req.Available)
}

func (s *adminService) Promotions() []domain.PromoCode {
	return s.registry.Promos()
}

func (s *adminService) TogglePromotion(code string, req *domain.TogglePromotionRequest) error {
	if !s.registry.SetPromoActive(code, req.Active) {
		return ErrUnknownPromo
	}
	return nil
}
