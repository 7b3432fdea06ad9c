package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"campervan-backend/internal/domain"
)

type QuoteService interface {
	// Quote computes a price breakdown for a stay without side effects
	Quote(ctx context.Context, startDate, endDate, pickupTime, returnTime string, parking bool, deliveryKm *int) (*domain.PriceBreakdown, error)
}

type AvailabilityService interface {
	Check(ctx context.Context, startDate, endDate string) (*domain.AvailabilityResult, error)
	CheckRange(ctx context.Context, rng domain.DateRange) (*domain.AvailabilityResult, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, customer domain.Customer, startDate, endDate, pickupTime, returnTime string, parking bool, deliveryKm *int, expectedTotal *decimal.Decimal) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	TransitionBooking(ctx context.Context, id string, newStatus domain.BookingStatus) (*domain.Booking, error)
	ListBookings(ctx context.Context, status string, from, to *time.Time, page, pageSize int32) ([]domain.Booking, int32, error)
}

type AdminService interface {
	CreatePricingRule(ctx context.Context, startDate, endDate string, nightlyRate decimal.Decimal, notes string) (*domain.PricingRule, error)
	ListPricingRules(ctx context.Context, startDate, endDate string) ([]domain.PricingRule, error)
	CreateBlockedPeriod(ctx context.Context, startDate, endDate, reason, notes string) (*domain.BlockedPeriod, error)
	ListBlockedPeriods(ctx context.Context, startDate, endDate string) ([]domain.BlockedPeriod, error)
}

type EmailService interface {
	SendBookingReceived(ctx context.Context, b *domain.Booking) error
	SendBookingStatusUpdate(ctx context.Context, b *domain.Booking) error
	SendPickupReminder(ctx context.Context, email, name, startDate, pickupTime string) error
}
