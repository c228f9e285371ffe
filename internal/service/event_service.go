package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/flow"
	"github.com/kedaimae/kedai-backend/internal/gateway"
	"github.com/kedaimae/kedai-backend/internal/listing"
	"github.com/kedaimae/kedai-backend/internal/notify"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventFull         = errors.New("event is fully booked")
	ErrNotEnoughSpots    = errors.New("not enough spots left for the requested participants")
	ErrBookingNotStarted = errors.New("booking has not been started")
	ErrBookingWrongStep  = errors.New("operation not valid at the current booking step")
	ErrBookingIncomplete = errors.New("booking details have not been submitted")
)

// EventService event calendar plus the booking flow: a strict step
// sequence from participant details through payment to confirmation
type EventService interface {
	List(req *domain.ListEventsRequest) []domain.Event
	GetByID(id string) (*domain.Event, error)
	Like(eventID, viewerID string) (*domain.Event, error)
	Categories() []string

	StartBooking(ctx context.Context, sessionID, eventID string) (*domain.BookingStateResponse, error)
	SubmitBookingDetails(ctx context.Context, sessionID string, req *domain.BookingDetailsRequest) (*domain.BookingStateResponse, error)
	ConfirmBooking(ctx context.Context, sessionID string, req *domain.ConfirmBookingRequest) (*domain.Booking, error)
	BookingBack(ctx context.Context, sessionID string) (*domain.BookingStateResponse, error)
	CancelBooking(ctx context.Context, sessionID string)
}

// bookingFlow per-session booking state, bound to one event
type bookingFlow struct {
	seq     *flow.Sequencer
	eventID string
	details domain.BookingDetailsRequest
	set     bool
}

type eventService struct {
	mu       sync.Mutex
	events   []domain.Event
	bookings map[string]*bookingFlow
	likes    map[string]map[string]bool // eventID -> viewer set
	notifier notify.Notifier
	payments []domain.PaymentMethod
}

// NewEventService constructor
func NewEventService(events []domain.Event, payments []domain.PaymentMethod, notifier notify.Notifier) EventService {
	owned := make([]domain.Event, len(events))
	copy(owned, events)
	if notifier == nil {
		notifier = notify.NewNoop()
	}
	return &eventService{
		events:   owned,
		bookings: make(map[string]*bookingFlow),
		likes:    make(map[string]map[string]bool),
		notifier: notifier,
		payments: payments,
	}
}

func (s *eventService) List(req *domain.ListEventsRequest) []domain.Event {
	s.mu.Lock()
	events := make([]domain.Event, len(s.events))
	copy(events, s.events)
	s.mu.Unlock()

	var preds []listing.Predicate[domain.Event]
	if req.Search != "" {
		search := req.Search
		preds = append(preds, func(e domain.Event) bool {
			return listing.MatchesSearch(search,
				[]string{e.Title, e.Description, e.Instructor.Name, e.Location}, e.Tags)
		})
	}
	if req.Category != "" {
		category := req.Category
		preds = append(preds, func(e domain.Event) bool {
			return listing.MatchesCategory(category, string(e.Category))
		})
	}
	return listing.Filter(events, preds...)
}

func (s *eventService) GetByID(id string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findEvent(id)
}

// Like toggles the viewer's like on an event
func (s *eventService) Like(eventID, viewerID string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.findEvent(eventID)
	if err != nil {
		return nil, err
	}
	if s.likes[eventID] == nil {
		s.likes[eventID] = make(map[string]bool)
	}
	if s.likes[eventID][viewerID] {
		delete(s.likes[eventID], viewerID)
		event.Likes--
	} else {
		s.likes[eventID][viewerID] = true
		event.Likes++
	}
	out := *event
	return &out, nil
}

// findEvent callers must hold the lock
func (s *eventService) findEvent(id string) (*domain.Event, error) {
	for i := range s.events {
		if s.events[i].ID == id {
			return &s.events[i], nil
		}
	}
	return nil, ErrEventNotFound
}

func (s *eventService) Categories() []string {
	return []string{
		domain.CategoryAll,
		string(domain.EventCategoryWorkshop),
		string(domain.EventCategoryMasterclass),
		string(domain.EventCategoryTasting),
		string(domain.EventCategoryCompetition),
		string(domain.EventCategoryCultural),
	}
}

func (s *eventService) bookingState(f *bookingFlow, event *domain.Event) *domain.BookingStateResponse {
	resp := &domain.BookingStateResponse{
		Step:    string(f.seq.Current()),
		EventID: f.eventID,
	}
	if f.set {
		resp.Participants = f.details.Participants
		resp.Total = event.Price * domain.Money(f.details.Participants)
	}
	return resp
}

// StartBooking opens a booking flow for the event. A full event cannot
// be booked; starting over an unfinished flow replaces it.
func (s *eventService) StartBooking(_ context.Context, sessionID, eventID string) (*domain.BookingStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.findEvent(eventID)
	if err != nil {
		return nil, err
	}
	if event.SpotsLeft() <= 0 {
		return nil, ErrEventFull
	}

	f := &bookingFlow{seq: flow.NewBookingFlow(), eventID: eventID}
	s.bookings[sessionID] = f
	return s.bookingState(f, event), nil
}

// SubmitBookingDetails records participants and contact info, then
// advances to the payment step. The participant count must fit the
// event's remaining capacity.
func (s *eventService) SubmitBookingDetails(_ context.Context, sessionID string, req *domain.BookingDetailsRequest) (*domain.BookingStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.bookings[sessionID]
	if !ok {
		return nil, ErrBookingNotStarted
	}
	if f.seq.Current() != flow.StepDetails {
		return nil, ErrBookingWrongStep
	}

	event, err := s.findEvent(f.eventID)
	if err != nil {
		return nil, err
	}

	err = f.seq.Advance(func() error {
		if req.Participants > event.SpotsLeft() {
			return ErrNotEnoughSpots
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.details = *req
	f.set = true
	return s.bookingState(f, event), nil
}

// ConfirmBooking completes the flow at the payment step: takes the
// event's spots, issues a booking number, and announces it
func (s *eventService) ConfirmBooking(ctx context.Context, sessionID string, req *domain.ConfirmBookingRequest) (*domain.Booking, error) {
	s.mu.Lock()
	f, ok := s.bookings[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrBookingNotStarted
	}
	if f.seq.Current() != flow.StepPayment {
		s.mu.Unlock()
		return nil, ErrBookingWrongStep
	}
	if !f.set {
		s.mu.Unlock()
		return nil, ErrBookingIncomplete
	}

	event, err := s.findEvent(f.eventID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	err = f.seq.Advance(func() error {
		if f.details.Participants > event.SpotsLeft() {
			return ErrNotEnoughSpots
		}
		return nil
	})
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	methodID := req.PaymentMethodID
	if methodID == "" && len(s.payments) > 0 {
		methodID = s.payments[0].ID
	}

	event.CurrentParticipants += f.details.Participants
	booking := &domain.Booking{
		Number:       "BKG-" + strings.TrimPrefix(gateway.NewOrderNumber(), "ORD-"),
		EventID:      event.ID,
		EventTitle:   event.Title,
		Participants: f.details.Participants,
		Customer: domain.CustomerInfo{
			Name:  f.details.Name,
			Email: f.details.Email,
			Phone: f.details.Phone,
			Notes: f.details.Notes,
		},
		DietaryRestrictions: f.details.DietaryRestrictions,
		Experience:          f.details.Experience,
		PaymentMethod:       methodID,
		Total:               event.Price * domain.Money(f.details.Participants),
		ConfirmedAt:         time.Now(),
	}
	delete(s.bookings, sessionID)
	s.mu.Unlock()

	s.notifier.Publish(ctx, notify.NewEvent(notify.EventBookingConfirmed, sessionID,
		"Booking confirmed for "+event.Title+"!").
		WithPayload("booking_number", booking.Number))
	return booking, nil
}

func (s *eventService) BookingBack(_ context.Context, sessionID string) (*domain.BookingStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.bookings[sessionID]
	if !ok {
		return nil, ErrBookingNotStarted
	}
	if err := f.seq.Back(); err != nil {
		return nil, err
	}
	event, err := s.findEvent(f.eventID)
	if err != nil {
		return nil, err
	}
	return s.bookingState(f, event), nil
}

// CancelBooking abandons an unfinished flow. Confirmed bookings are
// untouched.
func (s *eventService) CancelBooking(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bookings, sessionID)
}
