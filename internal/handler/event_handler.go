package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kedaimae/kedai-backend/internal/common"
	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/flow"
	"github.com/kedaimae/kedai-backend/internal/middleware"
	"github.com/kedaimae/kedai-backend/internal/service"
	"github.com/kedaimae/kedai-backend/pkg/i18n"
)

// EventHandler event listing and booking flow HTTP handlers
type EventHandler struct {
	service service.EventService
	bundle  *i18n.Bundle
}

// NewEventHandler constructor
func NewEventHandler(svc service.EventService, bundle *i18n.Bundle) *EventHandler {
	return &EventHandler{service: svc, bundle: bundle}
}

// List godoc
// @Summary      List events
// @Description  Returns cooking classes and events filtered by search and category
// @Tags         events
// @Produce      json
// @Param        search    query  string  false  "Search term"
// @Param        category  query  string  false  "Category filter"
// @Success      200  {object}  common.APIResponse{data=[]domain.Event}
// @Failure      400  {object}  common.APIResponse
// @Router       /events [get]
func (h *EventHandler) List(c *gin.Context) {
	var req domain.ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	common.SuccessResponse(c, h.service.List(&req), nil)
}

// Get godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        id  path  string  true  "Event ID"
// @Success      200  {object}  common.APIResponse{data=domain.Event}
// @Failure      404  {object}  common.APIResponse
// @Router       /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Event not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch event", err)
		return
	}

	common.SuccessResponse(c, event, nil)
}

// Like godoc
// @Summary      Toggle like on an event
// @Tags         events
// @Produce      json
// @Param        id  path  string  true  "Event ID"
// @Success      200  {object}  common.APIResponse{data=domain.Event}
// @Failure      404  {object}  common.APIResponse
// @Router       /events/{id}/like [post]
func (h *EventHandler) Like(c *gin.Context) {
	event, err := h.service.Like(c.Param("id"), viewerID(c))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Event not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to like event", err)
		return
	}

	common.SuccessResponse(c, event, nil)
}

// Categories godoc
// @Summary      List event categories
// @Tags         events
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]string}
// @Router       /events/categories [get]
func (h *EventHandler) Categories(c *gin.Context) {
	common.SuccessResponse(c, h.service.Categories(), nil)
}

// StartBooking godoc
// @Summary      Start booking an event
// @Description  Opens the booking flow for the session at the details step
// @Tags         events
// @Produce      json
// @Param        id  path  string  true  "Event ID"
// @Success      200  {object}  common.APIResponse{data=domain.BookingStateResponse}
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /events/{id}/booking [post]
func (h *EventHandler) StartBooking(c *gin.Context) {
	locale := middleware.GetLocale(c)
	state, err := h.service.StartBooking(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Event not found", err)
		case errors.Is(err, service.ErrEventFull):
			common.ErrorResponse(c, http.StatusConflict, h.bundle.T(locale, "event.fully_booked"), err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to start booking", err)
		}
		return
	}

	common.SuccessResponse(c, state, nil)
}

// SubmitBookingDetails godoc
// @Summary      Submit booking details
// @Description  Records participants and contact details, then advances to the payment step
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body  domain.BookingDetailsRequest  true  "Booking details"
// @Success      200  {object}  common.APIResponse{data=domain.BookingStateResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /events/booking/details [post]
func (h *EventHandler) SubmitBookingDetails(c *gin.Context) {
	locale := middleware.GetLocale(c)
	var req domain.BookingDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, h.bundle.T(locale, "checkout.missing_fields"), err)
		return
	}

	state, err := h.service.SubmitBookingDetails(c.Request.Context(), middleware.GetSessionID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotStarted):
			common.ErrorResponse(c, http.StatusConflict, "Booking has not been started", err)
		case errors.Is(err, service.ErrBookingWrongStep):
			common.ErrorResponse(c, http.StatusConflict, "Not at the details step", err)
		case errors.Is(err, service.ErrNotEnoughSpots):
			common.ErrorResponse(c, http.StatusConflict, "Not enough spots left", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to submit booking details", err)
		}
		return
	}

	common.SuccessResponse(c, state, nil)
}

// ConfirmBooking godoc
// @Summary      Confirm the booking
// @Description  Confirms payment, reserves the spots and returns the booking number
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body  domain.ConfirmBookingRequest  true  "Payment selection"
// @Success      201  {object}  common.APIResponse{data=domain.Booking}
// @Failure      409  {object}  common.APIResponse
// @Router       /events/booking/confirm [post]
func (h *EventHandler) ConfirmBooking(c *gin.Context) {
	var req domain.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	locale := middleware.GetLocale(c)
	booking, err := h.service.ConfirmBooking(c.Request.Context(), middleware.GetSessionID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotStarted):
			common.ErrorResponse(c, http.StatusConflict, "Booking has not been started", err)
		case errors.Is(err, service.ErrBookingIncomplete):
			common.ErrorResponse(c, http.StatusConflict, "Booking details have not been submitted", err)
		case errors.Is(err, service.ErrNotEnoughSpots):
			common.ErrorResponse(c, http.StatusConflict, "Not enough spots left", err)
		case errors.Is(err, service.ErrEventFull):
			common.ErrorResponse(c, http.StatusConflict, h.bundle.T(locale, "event.fully_booked"), err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to confirm booking", err)
		}
		return
	}

	middleware.CountBookingConfirmed()
	common.CreatedResponse(c, booking)
}

// BookingBack godoc
// @Summary      Step back in the booking flow
// @Tags         events
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.BookingStateResponse}
// @Failure      409  {object}  common.APIResponse
// @Router       /events/booking/back [post]
func (h *EventHandler) BookingBack(c *gin.Context) {
	state, err := h.service.BookingBack(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotStarted):
			common.ErrorResponse(c, http.StatusConflict, "Booking has not been started", err)
		case errors.Is(err, flow.ErrAtStart):
			common.ErrorResponse(c, http.StatusConflict, "Already at the first step", err)
		case errors.Is(err, flow.ErrAtTerminal):
			common.ErrorResponse(c, http.StatusConflict, "Booking is already confirmed", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to step back", err)
		}
		return
	}

	common.SuccessResponse(c, state, nil)
}

// CancelBooking godoc
// @Summary      Cancel the booking flow
// @Description  Discards the session's booking progress. No spots are released because none were reserved.
// @Tags         events
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Router       /events/booking [delete]
func (h *EventHandler) CancelBooking(c *gin.Context) {
	h.service.CancelBooking(c.Request.Context(), middleware.GetSessionID(c))
	common.SuccessResponse(c, gin.H{"cancelled": true}, nil)
}
