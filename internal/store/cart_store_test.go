package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/mirror"
	"github.com/kedaimae/kedai-backend/internal/notify"
	"github.com/kedaimae/kedai-backend/internal/pricing"
	"github.com/kedaimae/kedai-backend/internal/registry"
)

func testRegistry() *registry.Registry {
	return registry.New(
		[]domain.Discount{
			{Code: "WELCOME10", Kind: domain.DiscountKindPercentage, Value: 10},
			{Code: "SAVE20", Kind: domain.DiscountKindFixed, Value: 20000},
			{Code: "MAE2024", Kind: domain.DiscountKindPercentage, Value: 15},
		},
		[]domain.PromoCode{
			{Code: "WELCOME20", Kind: domain.DiscountKindPercentage, Value: 20, MinOrder: 50000, Active: true},
		},
	)
}

func nasiGoreng() domain.LineItem {
	return domain.LineItem{ID: "nasi-goreng", Name: "Nasi Goreng Spesial", UnitPrice: 45000, Quantity: 1, Category: "mains"}
}

func esTeh() domain.LineItem {
	return domain.LineItem{ID: "es-teh", Name: "Es Teh Manis", UnitPrice: 15000, Quantity: 1, Category: "drinks"}
}

func newTestStore() (CartStore, *notify.Capture) {
	capture := notify.NewCapture()
	return NewCartStore(testRegistry(), mirror.NewMemoryStore(), capture), capture
}

func TestCartStore_EmptySessionGetsEmptyCart(t *testing.T) {
	store, _ := newTestStore()

	cart := store.Get(context.Background(), "sess-new")
	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Items)
	assert.Nil(t, cart.Discount)
}

func TestCartStore_AddItemMergesQuantity(t *testing.T) {
	store, capture := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())
	item := nasiGoreng()
	item.Quantity = 2
	cart := store.AddItem(ctx, "sess-1", item)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, []string{notify.EventItemAdded, notify.EventItemAdded}, capture.TypesSeen())
}

func TestCartStore_AddItemDefaultsQuantityToOne(t *testing.T) {
	store, _ := newTestStore()

	item := esTeh()
	item.Quantity = 0
	cart := store.AddItem(context.Background(), "sess-1", item)

	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartStore_SessionsAreIsolated(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-a", nasiGoreng())

	assert.True(t, store.Get(ctx, "sess-b").IsEmpty())
	assert.False(t, store.Get(ctx, "sess-a").IsEmpty())
}

func TestCartStore_SetQuantity(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())
	cart := store.SetQuantity(ctx, "sess-1", "nasi-goreng", 5)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartStore_SetQuantityZeroRemovesItem(t *testing.T) {
	store, capture := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())
	store.AddItem(ctx, "sess-1", esTeh())

	cart := store.SetQuantity(ctx, "sess-1", "nasi-goreng", 0)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "es-teh", cart.Items[0].ID)

	cart = store.SetQuantity(ctx, "sess-1", "es-teh", -3)
	assert.True(t, cart.IsEmpty())

	types := capture.TypesSeen()
	assert.Equal(t, notify.EventItemRemoved, types[len(types)-1])
}

func TestCartStore_RemoveItemIsIdempotent(t *testing.T) {
	store, capture := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())
	store.RemoveItem(ctx, "sess-1", "nasi-goreng")
	cart := store.RemoveItem(ctx, "sess-1", "nasi-goreng")

	assert.True(t, cart.IsEmpty())
	// only the first removal announces anything
	removed := 0
	for _, et := range capture.TypesSeen() {
		if et == notify.EventItemRemoved {
			removed++
		}
	}
	assert.Equal(t, 1, removed)
}

func TestCartStore_ClearDropsItemsAndDiscount(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())
	_, err := store.ApplyDiscountByCode(ctx, "sess-1", "WELCOME10")
	assert.NoError(t, err)

	cart := store.Clear(ctx, "sess-1")
	assert.True(t, cart.IsEmpty())
	assert.Nil(t, cart.Discount)
}

func TestCartStore_ApplyDiscountByCode(t *testing.T) {
	store, capture := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())

	// lookup is case-insensitive
	cart, err := store.ApplyDiscountByCode(ctx, "sess-1", "welcome10")
	assert.NoError(t, err)
	assert.Equal(t, "WELCOME10", cart.Discount.Code)

	last, _ := capture.Last()
	assert.Equal(t, notify.EventDiscountApplied, last.Type)
}

func TestCartStore_InvalidCodeLeavesCartUntouched(t *testing.T) {
	store, capture := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())
	_, err := store.ApplyDiscountByCode(ctx, "sess-1", "SAVE10")
	assert.ErrorIs(t, err, ErrInvalidDiscountCode)

	assert.Nil(t, store.Get(ctx, "sess-1").Discount)
	last, _ := capture.Last()
	assert.Equal(t, notify.EventDiscountInvalid, last.Type)
}

func TestCartStore_SecondDiscountReplacesFirst(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())
	_, err := store.ApplyDiscountByCode(ctx, "sess-1", "WELCOME10")
	assert.NoError(t, err)

	cart, err := store.ApplyDiscountByCode(ctx, "sess-1", "SAVE20")
	assert.NoError(t, err)
	assert.Equal(t, "SAVE20", cart.Discount.Code)
	assert.Equal(t, domain.DiscountKindFixed, cart.Discount.Kind)
}

func TestCartStore_PromoMinOrderEnforced(t *testing.T) {
	store, capture := newTestStore()
	ctx := context.Background()
	promo := domain.PromoCode{Code: "WELCOME20", Kind: domain.DiscountKindPercentage, Value: 20, MinOrder: 50000, Active: true}

	// 45000 subtotal is below the 50000 floor
	store.AddItem(ctx, "sess-1", nasiGoreng())
	_, err := store.ApplyDiscountDirect(ctx, "sess-1", promo)
	assert.ErrorIs(t, err, ErrMinOrderNotMet)

	last, _ := capture.Last()
	assert.Equal(t, notify.EventDiscountInvalid, last.Type)
	assert.Contains(t, last.Message, "50.000")

	// adding a drink crosses the threshold
	store.AddItem(ctx, "sess-1", esTeh())
	cart, err := store.ApplyDiscountDirect(ctx, "sess-1", promo)
	assert.NoError(t, err)
	assert.Equal(t, "WELCOME20", cart.Discount.Code)
}

func TestCartStore_RemoveDiscount(t *testing.T) {
	store, capture := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())
	_, err := store.ApplyDiscountByCode(ctx, "sess-1", "MAE2024")
	assert.NoError(t, err)

	cart := store.RemoveDiscount(ctx, "sess-1")
	assert.Nil(t, cart.Discount)
	last, _ := capture.Last()
	assert.Equal(t, notify.EventDiscountRemoved, last.Type)

	// removing with no discount active still confirms
	before := len(capture.Events())
	store.RemoveDiscount(ctx, "sess-1")
	assert.Len(t, capture.Events(), before+1)
	last, _ = capture.Last()
	assert.Equal(t, notify.EventDiscountRemoved, last.Type)
}

func TestCartStore_SnapshotsDoNotAliasState(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())
	snapshot := store.Get(ctx, "sess-1")
	snapshot.Items[0].Quantity = 99

	assert.Equal(t, 1, store.Get(ctx, "sess-1").Items[0].Quantity)
}

func TestCartStore_RestoresFromMirror(t *testing.T) {
	m := mirror.NewMemoryStore()
	ctx := context.Background()

	first := NewCartStore(testRegistry(), m, nil)
	first.AddItem(ctx, "sess-1", nasiGoreng())
	_, err := first.ApplyDiscountByCode(ctx, "sess-1", "WELCOME10")
	assert.NoError(t, err)

	// a fresh store over the same mirror sees the persisted cart
	second := NewCartStore(testRegistry(), m, nil)
	cart := second.Get(ctx, "sess-1")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "nasi-goreng", cart.Items[0].ID)
	assert.Equal(t, "WELCOME10", cart.Discount.Code)
}

func TestCartStore_DiscountAppliesToGrowingSubtotal(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "sess-1", nasiGoreng())
	cart, err := store.ApplyDiscountByCode(ctx, "sess-1", "WELCOME10")
	assert.NoError(t, err)
	assert.Equal(t, domain.Money(4500), pricing.DiscountAmount(cart))

	cart = store.AddItem(ctx, "sess-1", esTeh())
	assert.Equal(t, domain.Money(6000), pricing.DiscountAmount(cart))
}
