package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/registry"
	"github.com/kedaimae/kedai-backend/internal/seed"
)

func newAdminFixture(t *testing.T) (AdminService, *gorm.DB, MenuService, *registry.Registry) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&domain.Order{}, &domain.OrderItem{}))

	menu := newTestMenu()
	reg := registry.New(seed.DiscountCodes(), seed.PromoCodes())
	svc := NewAdminService(db, menu, reg, Counts{MenuItems: 6, Events: 4, ForumPosts: 3, Users: 2})
	return svc, db, menu, reg
}

func seedOrders(t *testing.T, db *gorm.DB) {
	orders := []domain.Order{
		{Number: "ORD-00001", Status: domain.OrderStatusPending, Subtotal: 80000, Total: 95000},
		{Number: "ORD-00002", Status: domain.OrderStatusCompleted, Subtotal: 45000, Total: 45000},
		{Number: "ORD-00003", Status: domain.OrderStatusCancelled, Subtotal: 30000, Total: 30000},
	}
	for i := range orders {
		assert.NoError(t, db.Create(&orders[i]).Error)
	}
}

func TestAdmin_Dashboard(t *testing.T) {
	svc, db, _, _ := newAdminFixture(t)
	seedOrders(t, db)

	stats, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	// cancelled orders do not count toward revenue
	assert.Equal(t, domain.Money(140000), stats.TotalRevenue)
	assert.Equal(t, 6, stats.MenuItems)
	assert.Equal(t, 3, stats.ActivePromos)
	assert.Equal(t, int64(3), stats.OrdersToday)
	assert.Equal(t, int64(1), stats.CancelledToday)
}

func TestAdmin_ListOrders(t *testing.T) {
	svc, db, _, _ := newAdminFixture(t)
	seedOrders(t, db)
	ctx := context.Background()

	orders, total, err := svc.ListOrders(ctx, "", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, orders, 3)

	pending, total, err := svc.ListOrders(ctx, "pending", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "ORD-00001", pending[0].Number)

	_, _, err = svc.ListOrders(ctx, "bogus", 1, 20)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAdmin_UpdateOrderStatus(t *testing.T) {
	svc, db, _, _ := newAdminFixture(t)
	seedOrders(t, db)
	ctx := context.Background()

	order, err := svc.UpdateOrderStatus(ctx, "ORD-00001", &domain.UpdateOrderStatusRequest{Status: "preparing"})
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPreparing, order.Status)

	var stored domain.Order
	assert.NoError(t, db.First(&stored, "number = ?", "ORD-00001").Error)
	assert.Equal(t, domain.OrderStatusPreparing, stored.Status)

	_, err = svc.UpdateOrderStatus(ctx, "ORD-99999", &domain.UpdateOrderStatusRequest{Status: "ready"})
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.UpdateOrderStatus(ctx, "ORD-00001", &domain.UpdateOrderStatusRequest{Status: "teleported"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAdmin_ToggleAvailability(t *testing.T) {
	svc, _, menu, _ := newAdminFixture(t)

	item, err := svc.ToggleAvailability("3", &domain.ToggleAvailabilityRequest{Available: false})
	assert.NoError(t, err)
	assert.False(t, item.Available)

	fetched, err := menu.GetByID("3")
	assert.NoError(t, err)
	assert.False(t, fetched.Available)
}

func TestAdmin_TogglePromotion(t *testing.T) {
	svc, _, _, reg := newAdminFixture(t)

	assert.NoError(t, svc.TogglePromotion("WEEKEND15", &domain.TogglePromotionRequest{Active: false}))
	_, ok := reg.LookupPromo("WEEKEND15")
	assert.False(t, ok)

	assert.ErrorIs(t, svc.TogglePromotion("GHOST", &domain.TogglePromotionRequest{Active: true}), ErrUnknownPromo)

	stats := svc.Promotions()
	assert.Len(t, stats, 3)
}
