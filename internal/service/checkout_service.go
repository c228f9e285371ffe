package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/flow"
	"github.com/kedaimae/kedai-backend/internal/gateway"
	"github.com/kedaimae/kedai-backend/internal/notify"
	"github.com/kedaimae/kedai-backend/internal/pricing"
	"github.com/kedaimae/kedai-backend/internal/registry"
	"github.com/kedaimae/kedai-backend/internal/store"
)

var (
	ErrCheckoutNotStarted    = errors.New("checkout has not been started")
	ErrDetailsIncomplete     = errors.New("checkout details have not been submitted")
	ErrUnknownDeliveryOption = errors.New("unknown delivery option")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")
	ErrAddressRequired       = errors.New("delivery address is required")
	ErrInvalidPromoCode      = errors.New("invalid promo code")
	ErrOrderAlreadyPlaced    = errors.New("order has already been placed")
)

// CheckoutService drives the cart checkout flow: a strict step sequence
// from cart review through details to the order confirmation. One flow
// per session; completing or abandoning it resets the sequence.
type CheckoutService interface {
	Options() ([]domain.DeliveryOption, []domain.PaymentMethod)
	State(ctx context.Context, sessionID string) *domain.CheckoutStateResponse
	Begin(ctx context.Context, sessionID string) (*domain.CheckoutStateResponse, error)
	SubmitDetails(ctx context.Context, sessionID string, req *domain.CheckoutDetailsRequest) (*domain.CheckoutStateResponse, error)
	ApplyPromo(ctx context.Context, sessionID, code string) (*domain.CheckoutStateResponse, error)
	PlaceOrder(ctx context.Context, sessionID, userID string, req *domain.PlaceOrderRequest) (*domain.OrderConfirmation, error)
	Back(ctx context.Context, sessionID string) (*domain.CheckoutStateResponse, error)
	Abandon(ctx context.Context, sessionID string)
}

// checkoutFlow per-session flow state, discarded when the flow ends
type checkoutFlow struct {
	seq          *flow.Sequencer
	selection    domain.CheckoutSelection
	detailsSet   bool
	confirmation *domain.OrderConfirmation
}

type checkoutService struct {
	mu    sync.Mutex
	flows map[string]*checkoutFlow

	carts    store.CartStore
	registry *registry.Registry
	db       *gorm.DB
	gateway  gateway.OrderGateway
	notifier notify.Notifier

	deliveryOptions []domain.DeliveryOption
	paymentMethods  []domain.PaymentMethod
	clearDelay      time.Duration
}

// NewCheckoutService constructor. db persists placed orders and may be
// nil in tests that never place one; clearDelay is how long the cart
// stays visible after a successful order before it empties.
func NewCheckoutService(
	carts store.CartStore,
	reg *registry.Registry,
	db *gorm.DB,
	gw gateway.OrderGateway,
	notifier notify.Notifier,
	deliveryOptions []domain.DeliveryOption,
	paymentMethods []domain.PaymentMethod,
	clearDelay time.Duration,
) CheckoutService {
	if notifier == nil {
		notifier = notify.NewNoop()
	}
	return &checkoutService{
		flows:           make(map[string]*checkoutFlow),
		carts:           carts,
		registry:        reg,
		db:              db,
		gateway:         gw,
		notifier:        notifier,
		deliveryOptions: deliveryOptions,
		paymentMethods:  paymentMethods,
		clearDelay:      clearDelay,
	}
}

func (s *checkoutService) Options() ([]domain.DeliveryOption, []domain.PaymentMethod) {
	return s.deliveryOptions, s.paymentMethods
}

func (s *checkoutService) deliveryOption(id string) (domain.DeliveryOption, bool) {
	for _, opt := range s.deliveryOptions {
		if opt.ID == id {
			return opt, true
		}
	}
	return domain.DeliveryOption{}, false
}

func (s *checkoutService) paymentMethod(id string) (domain.PaymentMethod, bool) {
	for _, m := range s.paymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return domain.PaymentMethod{}, false
}

// fees current fee pair for a flow's selection. Callers must hold the lock.
func (s *checkoutService) fees(f *checkoutFlow) (deliveryFee, paymentFee domain.Money) {
	if f == nil {
		return 0, 0
	}
	if opt, ok := s.deliveryOption(f.selection.DeliveryOptionID); ok {
		deliveryFee = opt.Fee
	}
	if m, ok := s.paymentMethod(f.selection.PaymentMethodID); ok {
		paymentFee = m.Fee
	}
	return deliveryFee, paymentFee
}

func (s *checkoutService) state(ctx context.Context, sessionID string, f *checkoutFlow) *domain.CheckoutStateResponse {
	cart := s.carts.Get(ctx, sessionID)

	resp := &domain.CheckoutStateResponse{Step: string(flow.StepCart)}
	if f != nil {
		resp.Step = string(f.seq.Current())
		if f.detailsSet {
			selection := f.selection
			resp.Selection = &selection
		}
	}

	deliveryFee, paymentFee := s.fees(f)
	quote := pricing.NewQuote(cart, deliveryFee, paymentFee)
	resp.DeliveryFee = quote.DeliveryFee
	resp.PaymentFee = quote.PaymentFee
	resp.Subtotal = quote.Subtotal
	resp.DiscountAmount = quote.DiscountAmount
	resp.Total = quote.Total
	return resp
}

func (s *checkoutService) State(ctx context.Context, sessionID string) *domain.CheckoutStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(ctx, sessionID, s.flows[sessionID])
}

// Begin moves the session from cart review into the checkout step.
// An empty cart blocks the transition. Calling it again on a flow
// already at the checkout step is a no-op.
func (s *checkoutService) Begin(ctx context.Context, sessionID string) (*domain.CheckoutStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok || f.seq.AtTerminal() {
		f = &checkoutFlow{seq: flow.NewCheckoutFlow()}
		s.flows[sessionID] = f
	}
	if f.seq.Current() == flow.StepCheckout {
		return s.state(ctx, sessionID, f), nil
	}

	err := f.seq.Advance(func() error {
		if s.carts.Get(ctx, sessionID).IsEmpty() {
			return store.ErrCartEmpty
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.state(ctx, sessionID, f), nil
}

// SubmitDetails records the fulfillment choice and contact info.
// Valid only while the flow sits at the checkout step.
func (s *checkoutService) SubmitDetails(ctx context.Context, sessionID string, req *domain.CheckoutDetailsRequest) (*domain.CheckoutStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok || f.seq.Current() != flow.StepCheckout {
		return nil, ErrCheckoutNotStarted
	}

	opt, ok := s.deliveryOption(req.DeliveryOptionID)
	if !ok {
		return nil, ErrUnknownDeliveryOption
	}
	if opt.RequiresAddress && req.Address == "" {
		return nil, ErrAddressRequired
	}

	f.selection = domain.CheckoutSelection{
		DeliveryOptionID: opt.ID,
		Customer: domain.CustomerInfo{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
			Notes:   req.Notes,
		},
	}
	f.detailsSet = true
	return s.state(ctx, sessionID, f), nil
}

// ApplyPromo applies a checkout promotion to the session's cart,
// enforcing the promo's minimum order
func (s *checkoutService) ApplyPromo(ctx context.Context, sessionID, code string) (*domain.CheckoutStateResponse, error) {
	promo, ok := s.registry.LookupPromo(code)
	if !ok {
		return nil, ErrInvalidPromoCode
	}
	if _, err := s.carts.ApplyDiscountDirect(ctx, sessionID, promo); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(ctx, sessionID, s.flows[sessionID]), nil
}

// PlaceOrder completes the flow: submits to the order gateway, persists
// the order, and schedules the post-confirmation cart clear
func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID, userID string, req *domain.PlaceOrderRequest) (*domain.OrderConfirmation, error) {
	s.mu.Lock()
	f, ok := s.flows[sessionID]
	if !ok || f.seq.Current() != flow.StepCheckout {
		s.mu.Unlock()
		if ok && f.seq.AtTerminal() {
			return nil, ErrOrderAlreadyPlaced
		}
		return nil, ErrCheckoutNotStarted
	}
	if !f.detailsSet {
		s.mu.Unlock()
		return nil, ErrDetailsIncomplete
	}

	methodID := req.PaymentMethodID
	if methodID == "" && len(s.paymentMethods) > 0 {
		methodID = s.paymentMethods[0].ID
	}
	method, ok := s.paymentMethod(methodID)
	if !ok {
		s.mu.Unlock()
		return nil, ErrUnknownPaymentMethod
	}
	f.selection.PaymentMethodID = method.ID
	selection := f.selection
	s.mu.Unlock()

	cart := s.carts.Get(ctx, sessionID)
	if cart.IsEmpty() {
		return nil, store.ErrCartEmpty
	}

	opt, _ := s.deliveryOption(selection.DeliveryOptionID)
	quote := pricing.NewQuote(cart, opt.Fee, method.Fee)

	order := s.buildOrder(sessionID, cart, selection, method, quote)
	order.UserID = userID
	confirmation, err := s.gateway.Submit(ctx, order)
	if err != nil {
		return nil, err
	}
	order.Number = confirmation.Number

	if s.db != nil {
		if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	if err := f.seq.Advance(nil); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	f.confirmation = &confirmation
	s.mu.Unlock()

	s.notifier.Publish(ctx, notify.NewEvent(notify.EventOrderPlaced, sessionID,
		"Order "+confirmation.Number+" placed! Estimated time: "+confirmation.EstimatedTime).
		WithPayload("order_number", confirmation.Number))

	s.scheduleCartClear(sessionID)
	return &confirmation, nil
}

func (s *checkoutService) buildOrder(sessionID string, cart *domain.Cart, selection domain.CheckoutSelection, method domain.PaymentMethod, quote pricing.Quote) *domain.Order {
	order := &domain.Order{
		SessionID:      sessionID,
		Status:         domain.OrderStatusPending,
		Subtotal:       quote.Subtotal,
		DiscountAmount: quote.DiscountAmount,
		DeliveryFee:    quote.DeliveryFee,
		PaymentFee:     quote.PaymentFee,
		Total:          quote.Total,
		DeliveryOption: selection.DeliveryOptionID,
		PaymentMethod:  method.ID,

		CustomerName:    selection.Customer.Name,
		CustomerEmail:   selection.Customer.Email,
		CustomerPhone:   selection.Customer.Phone,
		CustomerAddress: selection.Customer.Address,
		Notes:           selection.Customer.Notes,
	}
	if cart.Discount != nil {
		order.DiscountCode = cart.Discount.Code
	}
	for i := range cart.Items {
		item := &cart.Items[i]
		order.Items = append(order.Items, domain.OrderItem{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return order
}

// scheduleCartClear empties the cart after the confirmation has had
// time to show. The flow entry goes with it.
func (s *checkoutService) scheduleCartClear(sessionID string) {
	clear := func() {
		s.carts.Clear(context.Background(), sessionID)
		s.mu.Lock()
		delete(s.flows, sessionID)
		s.mu.Unlock()
		log.Debug().Str("session_id", sessionID).Msg("Cart cleared after order confirmation")
	}
	if s.clearDelay <= 0 {
		clear()
		return
	}
	time.AfterFunc(s.clearDelay, clear)
}

// Back returns from the checkout step to cart review. Backing out of a
// confirmation is not possible.
func (s *checkoutService) Back(ctx context.Context, sessionID string) (*domain.CheckoutStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrCheckoutNotStarted
	}
	if err := f.seq.Back(); err != nil {
		return nil, err
	}
	return s.state(ctx, sessionID, f), nil
}

// Abandon drops the session's flow without touching the cart
func (s *checkoutService) Abandon(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, sessionID)
}
