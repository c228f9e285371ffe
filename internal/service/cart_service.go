package service

import (
	"context"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/pricing"
	"github.com/kedaimae/kedai-backend/internal/store"
)

// CartService session cart operations over the cart store, resolving
// menu items and deriving totals for every response
type CartService interface {
	Get(ctx context.Context, sessionID string) *domain.CartResponse
	AddItem(ctx context.Context, sessionID string, req *domain.AddItemRequest) (*domain.CartResponse, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, req *domain.UpdateQuantityRequest) *domain.CartResponse
	RemoveItem(ctx context.Context, sessionID, itemID string) *domain.CartResponse
	Clear(ctx context.Context, sessionID string) *domain.CartResponse
	ApplyDiscount(ctx context.Context, sessionID, code string) (*domain.CartResponse, error)
	RemoveDiscount(ctx context.Context, sessionID string) *domain.CartResponse
}

type cartService struct {
	carts store.CartStore
	menu  MenuService
}

// NewCartService constructor
func NewCartService(carts store.CartStore, menu MenuService) CartService {
	return &cartService{carts: carts, menu: menu}
}

// toResponse derives the priced snapshot. Checkout fees are not known
// at the cart stage, so the quote carries none.
func toResponse(cart *domain.Cart) *domain.CartResponse {
	quote := pricing.NewQuote(cart, 0, 0)
	return &domain.CartResponse{
		Items:          cart.Items,
		ItemCount:      len(cart.Items),
		TotalQuantity:  cart.TotalItems(),
		Subtotal:       quote.Subtotal,
		Discount:       cart.Discount,
		DiscountAmount: quote.DiscountAmount,
		Total:          quote.Total,
		Currency:       "IDR",
	}
}

func (s *cartService) Get(ctx context.Context, sessionID string) *domain.CartResponse {
	return toResponse(s.carts.Get(ctx, sessionID))
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, req *domain.AddItemRequest) (*domain.CartResponse, error) {
	item, err := s.menu.GetByID(req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, ErrMenuItemUnavailable
	}

	line := domain.LineItem{
		ID:                  item.ID,
		Name:                item.Name,
		Description:         item.Description,
		UnitPrice:           item.Price,
		Quantity:            req.Quantity,
		Image:               item.Image,
		Category:            item.Category,
		SpecialInstructions: req.SpecialInstructions,
	}
	return toResponse(s.carts.AddItem(ctx, sessionID, line)), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, req *domain.UpdateQuantityRequest) *domain.CartResponse {
	return toResponse(s.carts.SetQuantity(ctx, sessionID, itemID, req.Quantity))
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID, itemID string) *domain.CartResponse {
	return toResponse(s.carts.RemoveItem(ctx, sessionID, itemID))
}

func (s *cartService) Clear(ctx context.Context, sessionID string) *domain.CartResponse {
	return toResponse(s.carts.Clear(ctx, sessionID))
}

func (s *cartService) ApplyDiscount(ctx context.Context, sessionID, code string) (*domain.CartResponse, error) {
	cart, err := s.carts.ApplyDiscountByCode(ctx, sessionID, code)
	if err != nil {
		return nil, err
	}
	return toResponse(cart), nil
}

func (s *cartService) RemoveDiscount(ctx context.Context, sessionID string) *domain.CartResponse {
	return toResponse(s.carts.RemoveDiscount(ctx, sessionID))
}
