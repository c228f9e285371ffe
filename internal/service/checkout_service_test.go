package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/flow"
	"github.com/kedaimae/kedai-backend/internal/gateway"
	"github.com/kedaimae/kedai-backend/internal/mirror"
	"github.com/kedaimae/kedai-backend/internal/notify"
	"github.com/kedaimae/kedai-backend/internal/registry"
	"github.com/kedaimae/kedai-backend/internal/seed"
	"github.com/kedaimae/kedai-backend/internal/store"
)

type checkoutFixture struct {
	svc   CheckoutService
	carts store.CartStore
	cart  CartService
	db    *gorm.DB
	note  *notify.Capture
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&domain.Order{}, &domain.OrderItem{}))

	reg := registry.New(seed.DiscountCodes(), seed.PromoCodes())
	capture := notify.NewCapture()
	carts := store.NewCartStore(reg, mirror.NewMemoryStore(), capture)
	svc := NewCheckoutService(carts, reg, db, gateway.NewInstantOrderGateway(), capture,
		seed.DeliveryOptions(), seed.PaymentMethods(), 0)

	return &checkoutFixture{
		svc:   svc,
		carts: carts,
		cart:  NewCartService(carts, newTestMenu()),
		db:    db,
		note:  capture,
	}
}

func (f *checkoutFixture) fillCart(t *testing.T, sessionID string) {
	// Rendang 65000 + Es Cendol 15000 = 80000
	_, err := f.cart.AddItem(context.Background(), sessionID, &domain.AddItemRequest{ItemID: "2"})
	assert.NoError(t, err)
	_, err = f.cart.AddItem(context.Background(), sessionID, &domain.AddItemRequest{ItemID: "5"})
	assert.NoError(t, err)
}

func detailsRequest(option string) *domain.CheckoutDetailsRequest {
	req := &domain.CheckoutDetailsRequest{
		DeliveryOptionID: option,
		Name:             "Siti Rahma",
		Email:            "siti@example.com",
		Phone:            "+62 812-3456-7890",
	}
	if option == "delivery" {
		req.Address = "Jl. Sudirman No. 12, Jakarta"
	}
	return req
}

func TestCheckout_BeginRequiresItems(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.Begin(context.Background(), "sess-1")
	assert.ErrorIs(t, err, store.ErrCartEmpty)

	f.fillCart(t, "sess-1")
	state, err := f.svc.Begin(context.Background(), "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, string(flow.StepCheckout), state.Step)
	assert.Equal(t, domain.Money(80000), state.Subtotal)
}

func TestCheckout_BeginIsIdempotent(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.fillCart(t, "sess-1")
	_, err := f.svc.Begin(ctx, "sess-1")
	assert.NoError(t, err)

	// a repeated begin stays at the checkout step instead of advancing
	state, err := f.svc.Begin(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, string(flow.StepCheckout), state.Step)

	// the flow still requires details before the order
	_, err = f.svc.PlaceOrder(ctx, "sess-1", "", &domain.PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrDetailsIncomplete)

	_, err = f.svc.SubmitDetails(ctx, "sess-1", detailsRequest("pickup"))
	assert.NoError(t, err)
	_, err = f.svc.PlaceOrder(ctx, "sess-1", "", &domain.PlaceOrderRequest{})
	assert.NoError(t, err)
}

func TestCheckout_DetailsValidation(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	// details before Begin are rejected
	_, err := f.svc.SubmitDetails(ctx, "sess-1", detailsRequest("pickup"))
	assert.ErrorIs(t, err, ErrCheckoutNotStarted)

	f.fillCart(t, "sess-1")
	_, err = f.svc.Begin(ctx, "sess-1")
	assert.NoError(t, err)

	_, err = f.svc.SubmitDetails(ctx, "sess-1", detailsRequest("teleport"))
	assert.ErrorIs(t, err, ErrUnknownDeliveryOption)

	req := detailsRequest("delivery")
	req.Address = ""
	_, err = f.svc.SubmitDetails(ctx, "sess-1", req)
	assert.ErrorIs(t, err, ErrAddressRequired)

	state, err := f.svc.SubmitDetails(ctx, "sess-1", detailsRequest("delivery"))
	assert.NoError(t, err)
	assert.Equal(t, domain.Money(15000), state.DeliveryFee)
	assert.Equal(t, domain.Money(95000), state.Total)
	assert.Equal(t, "Siti Rahma", state.Selection.Customer.Name)
}

func TestCheckout_PickupHasNoFee(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.fillCart(t, "sess-1")
	_, err := f.svc.Begin(ctx, "sess-1")
	assert.NoError(t, err)

	state, err := f.svc.SubmitDetails(ctx, "sess-1", detailsRequest("pickup"))
	assert.NoError(t, err)
	assert.Equal(t, domain.Money(0), state.DeliveryFee)
	assert.Equal(t, domain.Money(80000), state.Total)
}

func TestCheckout_ApplyPromo(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.fillCart(t, "sess-1") // 80000 subtotal
	_, err := f.svc.Begin(ctx, "sess-1")
	assert.NoError(t, err)

	// WELCOME20: 20% off with a 50000 minimum
	state, err := f.svc.ApplyPromo(ctx, "sess-1", "welcome20")
	assert.NoError(t, err)
	assert.Equal(t, domain.Money(16000), state.DiscountAmount)
	assert.Equal(t, domain.Money(64000), state.Total)

	_, err = f.svc.ApplyPromo(ctx, "sess-1", "NOPE")
	assert.ErrorIs(t, err, ErrInvalidPromoCode)
}

func TestCheckout_PromoMinOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	// only Es Cendol: 15000, below NEWUSER's 75000 floor
	_, err := f.cart.AddItem(ctx, "sess-1", &domain.AddItemRequest{ItemID: "5"})
	assert.NoError(t, err)
	_, err = f.svc.Begin(ctx, "sess-1")
	assert.NoError(t, err)

	_, err = f.svc.ApplyPromo(ctx, "sess-1", "NEWUSER")
	assert.ErrorIs(t, err, store.ErrMinOrderNotMet)
}

func TestCheckout_InactivePromoDoesNotResolve(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	reg := registry.New(nil, []domain.PromoCode{
		{Code: "PAUSED", Kind: domain.DiscountKindPercentage, Value: 50, Active: false},
	})
	svc := NewCheckoutService(f.carts, reg, nil, gateway.NewInstantOrderGateway(), nil,
		seed.DeliveryOptions(), seed.PaymentMethods(), 0)

	f.fillCart(t, "sess-1")
	_, err := svc.Begin(ctx, "sess-1")
	assert.NoError(t, err)
	_, err = svc.ApplyPromo(ctx, "sess-1", "PAUSED")
	assert.ErrorIs(t, err, ErrInvalidPromoCode)
}

func TestCheckout_PlaceOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.fillCart(t, "sess-1")
	_, err := f.svc.Begin(ctx, "sess-1")
	assert.NoError(t, err)

	// order without details is rejected
	_, err = f.svc.PlaceOrder(ctx, "sess-1", "", &domain.PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrDetailsIncomplete)

	_, err = f.svc.SubmitDetails(ctx, "sess-1", detailsRequest("delivery"))
	assert.NoError(t, err)

	conf, err := f.svc.PlaceOrder(ctx, "sess-1", "user-1", &domain.PlaceOrderRequest{PaymentMethodID: "ewallet"})
	assert.NoError(t, err)
	assert.NotEmpty(t, conf.Number)
	assert.Equal(t, gateway.EstimatedPrepTime, conf.EstimatedTime)

	// the order is persisted with its lines and totals
	var order domain.Order
	assert.NoError(t, f.db.Preload("Items").First(&order, "number = ?", conf.Number).Error)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, domain.Money(80000), order.Subtotal)
	assert.Equal(t, domain.Money(95000), order.Total)
	assert.Equal(t, "ewallet", order.PaymentMethod)
	assert.Len(t, order.Items, 2)

	// with zero clear delay the cart empties immediately
	assert.True(t, f.carts.Get(ctx, "sess-1").IsEmpty())

	types := f.note.TypesSeen()
	assert.Contains(t, types, notify.EventOrderPlaced)
}

func TestCheckout_DefaultPaymentMethod(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.fillCart(t, "sess-1")
	_, err := f.svc.Begin(ctx, "sess-1")
	assert.NoError(t, err)
	_, err = f.svc.SubmitDetails(ctx, "sess-1", detailsRequest("pickup"))
	assert.NoError(t, err)

	conf, err := f.svc.PlaceOrder(ctx, "sess-1", "", &domain.PlaceOrderRequest{})
	assert.NoError(t, err)

	var order domain.Order
	assert.NoError(t, f.db.First(&order, "number = ?", conf.Number).Error)
	assert.Equal(t, "cash", order.PaymentMethod)
}

func TestCheckout_BackReturnsToCart(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.fillCart(t, "sess-1")
	_, err := f.svc.Begin(ctx, "sess-1")
	assert.NoError(t, err)

	state, err := f.svc.Back(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, string(flow.StepCart), state.Step)

	// cart contents survive the step change
	assert.Len(t, f.carts.Get(ctx, "sess-1").Items, 2)

	_, err = f.svc.Back(ctx, "sess-1")
	assert.ErrorIs(t, err, flow.ErrAtStart)
}

func TestCheckout_StateForFreshSession(t *testing.T) {
	f := newCheckoutFixture(t)

	state := f.svc.State(context.Background(), "sess-unseen")
	assert.Equal(t, string(flow.StepCart), state.Step)
	assert.Nil(t, state.Selection)
	assert.Equal(t, domain.Money(0), state.Total)
}
