package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether the status is one of the known values
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Active reports whether the booking counts toward availability
func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// CanTransitionTo encodes the booking state machine:
// pending -> confirmed -> completed, with cancellation allowed from any
// active state. completed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	return false
}

// Customer identifies who booked the van
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Booking struct {
	ID                 string         `json:"id"`
	Range              DateRange      `json:"range"`
	PickupTime         string         `json:"pickup_time"` // HH:MM
	ReturnTime         string         `json:"return_time"` // HH:MM
	Status             BookingStatus  `json:"status"`
	Customer           Customer       `json:"customer"`
	Parking            bool           `json:"parking"`
	DeliveryDistanceKm *int           `json:"delivery_distance_km,omitempty"`
	Price              PriceBreakdown `json:"price"`
	CreatedOn          time.Time      `json:"created_on"`
	UpdatedOn          time.Time      `json:"updated_on"`
}
