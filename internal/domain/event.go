package domain

import "time"

// EventCategory type of culinary event
type EventCategory string

const (
	EventCategoryWorkshop    EventCategory = "workshop"
	EventCategoryTasting     EventCategory = "tasting"
	EventCategoryCompetition EventCategory = "competition"
	EventCategoryMasterclass EventCategory = "masterclass"
	EventCategoryCultural    EventCategory = "cultural"
)

// EventDifficulty skill level expected of participants
type EventDifficulty string

const (
	DifficultyBeginner     EventDifficulty = "beginner"
	DifficultyIntermediate EventDifficulty = "intermediate"
	DifficultyAdvanced     EventDifficulty = "advanced"
)

// Instructor who runs an event
type Instructor struct {
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Image      string  `json:"image"`
	Rating     float64 `json:"rating"`
	Experience string  `json:"experience"`
}

// Event a bookable culinary event (workshop, tasting, masterclass...)
type Event struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	LongDescription     string          `json:"long_description"`
	Category            EventCategory   `json:"category"`
	Instructor          Instructor      `json:"instructor"`
	Date                string          `json:"date"`
	StartTime           string          `json:"start_time"`
	EndTime             string          `json:"end_time"`
	Duration            string          `json:"duration"`
	Location            string          `json:"location"`
	Price               Money           `json:"price"`
	OriginalPrice       Money           `json:"original_price,omitempty"`
	MaxParticipants     int             `json:"max_participants"`
	CurrentParticipants int             `json:"current_participants"`
	Difficulty          EventDifficulty `json:"difficulty"`
	Image               string          `json:"image"`
	Includes            []string        `json:"includes"`
	Requirements        []string        `json:"requirements"`
	Tags                []string        `json:"tags"`
	Rating              float64         `json:"rating"`
	Reviews             int             `json:"reviews"`
	IsPopular           bool            `json:"is_popular"`
	IsFeatured          bool            `json:"is_featured"`
	Likes               int             `json:"likes"`
}

// SpotsLeft remaining capacity
func (e *Event) SpotsLeft() int {
	return e.MaxParticipants - e.CurrentParticipants
}

// ListEventsRequest event listing filter parameters
type ListEventsRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// BookingDetailsRequest details-step submission for the booking flow
type BookingDetailsRequest struct {
	Participants        int    `json:"participants" binding:"required,gte=1"`
	Name                string `json:"name" binding:"required,max=100"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone" binding:"required,phone"`
	DietaryRestrictions string `json:"dietary_restrictions" binding:"omitempty,max=500"`
	Experience          string `json:"experience" binding:"omitempty,max=500"`
	Notes               string `json:"notes" binding:"omitempty,max=1000"`
}

// ConfirmBookingRequest payment-step submission for the booking flow
type ConfirmBookingRequest struct {
	PaymentMethodID string `json:"payment_method"`
}

// Booking a confirmed event booking
type Booking struct {
	Number              string       `json:"booking_number"`
	EventID             string       `json:"event_id"`
	EventTitle          string       `json:"event_title"`
	Participants        int          `json:"participants"`
	Customer            CustomerInfo `json:"customer"`
	DietaryRestrictions string       `json:"dietary_restrictions,omitempty"`
	Experience          string       `json:"experience,omitempty"`
	PaymentMethod       string       `json:"payment_method"`
	Total               Money        `json:"total"`
	ConfirmedAt         time.Time    `json:"confirmed_at"`
}

// BookingStateResponse current booking flow position
type BookingStateResponse struct {
	Step         string `json:"step"`
	EventID      string `json:"event_id"`
	Participants int    `json:"participants"`
	Total        Money  `json:"total"`
}
