// Package store implements the per-session cart store. Memory is
// authoritative; every mutation is mirrored to durable storage
// best-effort and announced on the notification channel.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/mirror"
	"github.com/kedaimae/kedai-backend/internal/notify"
	"github.com/kedaimae/kedai-backend/internal/pricing"
	"github.com/kedaimae/kedai-backend/internal/registry"
)

var (
	ErrInvalidDiscountCode = errors.New("invalid discount code")
	ErrMinOrderNotMet      = errors.New("minimum order amount not met")
	ErrCartEmpty           = errors.New("cart is empty")
)

// CartStore holds one cart per browsing session
type CartStore interface {
	// Get returns a snapshot of the session's cart, hydrating from the
	// mirror after a restart. A session with no cart gets an empty one.
	Get(ctx context.Context, sessionID string) *domain.Cart
	// AddItem merges the item into the cart: an existing line's quantity
	// grows, a new line is appended.
	AddItem(ctx context.Context, sessionID string, item domain.LineItem) *domain.Cart
	// SetQuantity updates a line's quantity; zero or below removes the line
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) *domain.Cart
	// RemoveItem drops a line. Removing an absent item is a no-op.
	RemoveItem(ctx context.Context, sessionID, itemID string) *domain.Cart
	// Clear empties the cart and drops any active discount
	Clear(ctx context.Context, sessionID string) *domain.Cart
	// ApplyDiscountByCode resolves a cart-level code and applies it,
	// replacing any discount already active
	ApplyDiscountByCode(ctx context.Context, sessionID, code string) (*domain.Cart, error)
	// ApplyDiscountDirect applies a checkout promo after checking its
	// minimum order against the current subtotal
	ApplyDiscountDirect(ctx context.Context, sessionID string, promo domain.PromoCode) (*domain.Cart, error)
	// RemoveDiscount drops the active discount, if any
	RemoveDiscount(ctx context.Context, sessionID string) *domain.Cart
}

type cartStore struct {
	mu       sync.Mutex
	carts    map[string]*domain.Cart
	registry *registry.Registry
	mirror   mirror.Store
	notifier notify.Notifier
}

// NewCartStore creates a cart store backed by the given mirror and
// notification channel. Both may be stubbed in tests.
func NewCartStore(reg *registry.Registry, m mirror.Store, n notify.Notifier) CartStore {
	if n == nil {
		n = notify.NewNoop()
	}
	return &cartStore{
		carts:    make(map[string]*domain.Cart),
		registry: reg,
		mirror:   m,
		notifier: n,
	}
}

// cart returns the live cart for a session, creating or hydrating it.
// Callers must hold the lock.
func (s *cartStore) cart(ctx context.Context, sessionID string) *domain.Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	c := &domain.Cart{Items: []domain.LineItem{}}
	if s.mirror != nil {
		var restored domain.Cart
		err := mirror.ReadJSON(ctx, s.mirror, mirror.CartKey(sessionID), &restored)
		switch {
		case err == nil:
			if restored.Items == nil {
				restored.Items = []domain.LineItem{}
			}
			c = &restored
		case !errors.Is(err, mirror.ErrNotFound):
			log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to restore cart from mirror")
		}
	}
	s.carts[sessionID] = c
	return c
}

// persist mirrors the cart; failures are logged and never surfaced.
// Callers must hold the lock.
func (s *cartStore) persist(ctx context.Context, sessionID string, c *domain.Cart) {
	if s.mirror == nil {
		return
	}
	if err := mirror.WriteJSON(ctx, s.mirror, mirror.CartKey(sessionID), c); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to mirror cart")
	}
}

func (s *cartStore) Get(ctx context.Context, sessionID string) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(ctx, sessionID).Clone()
}

func (s *cartStore) AddItem(ctx context.Context, sessionID string, item domain.LineItem) *domain.Cart {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	c := s.cart(ctx, sessionID)
	merged := false
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity += item.Quantity
			if item.SpecialInstructions != "" {
				c.Items[i].SpecialInstructions = item.SpecialInstructions
			}
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, item)
	}
	s.persist(ctx, sessionID, c)
	snapshot := c.Clone()
	s.mu.Unlock()

	s.notifier.Publish(ctx, notify.NewEvent(notify.EventItemAdded, sessionID,
		fmt.Sprintf("%s added to cart!", item.Name)).WithPayload("item_id", item.ID))
	return snapshot
}

func (s *cartStore) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) *domain.Cart {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, sessionID)
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			s.persist(ctx, sessionID, c)
			break
		}
	}
	return c.Clone()
}

func (s *cartStore) RemoveItem(ctx context.Context, sessionID, itemID string) *domain.Cart {
	s.mu.Lock()
	c := s.cart(ctx, sessionID)
	removedName := ""
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			removedName = c.Items[i].Name
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			s.persist(ctx, sessionID, c)
			break
		}
	}
	snapshot := c.Clone()
	s.mu.Unlock()

	if removedName != "" {
		s.notifier.Publish(ctx, notify.NewEvent(notify.EventItemRemoved, sessionID,
			fmt.Sprintf("%s removed from cart", removedName)).WithPayload("item_id", itemID))
	}
	return snapshot
}

func (s *cartStore) Clear(ctx context.Context, sessionID string) *domain.Cart {
	s.mu.Lock()
	c := s.cart(ctx, sessionID)
	c.Items = []domain.LineItem{}
	c.Discount = nil
	s.persist(ctx, sessionID, c)
	snapshot := c.Clone()
	s.mu.Unlock()

	s.notifier.Publish(ctx, notify.NewEvent(notify.EventCartCleared, sessionID, "Cart cleared"))
	return snapshot
}

func (s *cartStore) ApplyDiscountByCode(ctx context.Context, sessionID, code string) (*domain.Cart, error) {
	discount, ok := s.registry.Lookup(code)
	if !ok {
		s.notifier.Publish(ctx, notify.NewEvent(notify.EventDiscountInvalid, sessionID,
			"Invalid discount code").WithPayload("code", domain.NormalizeCode(code)))
		return nil, ErrInvalidDiscountCode
	}
	return s.applyDiscount(ctx, sessionID, discount), nil
}

func (s *cartStore) ApplyDiscountDirect(ctx context.Context, sessionID string, promo domain.PromoCode) (*domain.Cart, error) {
	s.mu.Lock()
	c := s.cart(ctx, sessionID)
	subtotal := pricing.Subtotal(c)
	s.mu.Unlock()

	if subtotal < promo.MinOrder {
		s.notifier.Publish(ctx, notify.NewEvent(notify.EventDiscountInvalid, sessionID,
			fmt.Sprintf("Minimum order amount is Rp %s", domain.FormatIDR(promo.MinOrder))).
			WithPayload("code", promo.Code))
		return nil, ErrMinOrderNotMet
	}
	return s.applyDiscount(ctx, sessionID, promo.Discount()), nil
}

// applyDiscount installs the discount, replacing any active one
func (s *cartStore) applyDiscount(ctx context.Context, sessionID string, discount domain.Discount) *domain.Cart {
	s.mu.Lock()
	c := s.cart(ctx, sessionID)
	c.Discount = &discount
	s.persist(ctx, sessionID, c)
	snapshot := c.Clone()
	s.mu.Unlock()

	s.notifier.Publish(ctx, notify.NewEvent(notify.EventDiscountApplied, sessionID,
		fmt.Sprintf("Discount %s applied!", discount.Code)).WithPayload("code", discount.Code))
	return snapshot
}

// RemoveDiscount clears any active discount. The confirmation event is
// published even when no discount was active.
func (s *cartStore) RemoveDiscount(ctx context.Context, sessionID string) *domain.Cart {
	s.mu.Lock()
	c := s.cart(ctx, sessionID)
	c.Discount = nil
	s.persist(ctx, sessionID, c)
	snapshot := c.Clone()
	s.mu.Unlock()

	s.notifier.Publish(ctx, notify.NewEvent(notify.EventDiscountRemoved, sessionID, "Discount removed"))
	return snapshot
}
