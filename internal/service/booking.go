package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campervan-backend/internal/domain"
	"campervan-backend/internal/logger"
	"campervan-backend/internal/repository"
	"campervan-backend/internal/utils"
)

// A client-supplied expected total may differ from the server-computed total
// by at most one cent; anything larger fails the booking.
var priceEpsilon = decimal.RequireFromString("0.01")

type bookingService struct {
	bookingRepo   repository.BookingRepository
	ruleRepo      repository.PricingRuleRepository
	availability  AvailabilityService
	emailSvc      EmailService
	maxDeliveryKm int
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	ruleRepo repository.PricingRuleRepository,
	availability AvailabilityService,
	emailSvc EmailService,
	maxDeliveryKm int,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		ruleRepo:      ruleRepo,
		availability:  availability,
		emailSvc:      emailSvc,
		maxDeliveryKm: maxDeliveryKm,
	}
}

// CreateBooking is the reserve-if-available step. The price is recomputed
// server-side from the current rule set; the client's expected total is only
// ever compared against it, never trusted. The insert itself is conditional
// at the store level, so a booking racing a conflicting write loses cleanly:
// the losing attempt is retried once and then surfaced as a ConflictError.
// A failed attempt leaves no record.
func (s *bookingService) CreateBooking(
	ctx context.Context,
	customer domain.Customer,
	startDate, endDate, pickupTime, returnTime string,
	parking bool,
	deliveryKm *int,
	expectedTotal *decimal.Decimal,
) (*domain.Booking, error) {
	rng, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if customer.Name == "" {
		return nil, &domain.InputError{Field: "customer.name", Reason: "must not be empty"}
	}
	if customer.Email == "" {
		return nil, &domain.InputError{Field: "customer.email", Reason: "must not be empty"}
	}

	rules, err := s.ruleRepo.ListOverlapping(ctx, rng)
	if err != nil {
		return nil, err
	}
	price, err := utils.CalculatePrice(rng, rules, pickupTime, returnTime, parking, deliveryKm, s.maxDeliveryKm)
	if err != nil {
		return nil, err
	}

	if expectedTotal != nil && expectedTotal.Sub(price.Total).Abs().GreaterThan(priceEpsilon) {
		return nil, &domain.PriceMismatchError{Expected: *expectedTotal, Computed: price.Total}
	}

	// The availability scan explains rejections; the conditional insert is
	// what actually guarantees no overlap. A conflicting write committed
	// between scan and insert shows up as ErrRangeConflict and gets one
	// transparent retry.
	for attempt := 0; attempt < 2; attempt++ {
		result, err := s.availability.CheckRange(ctx, rng)
		if err != nil {
			return nil, err
		}
		if !result.Available {
			return nil, &domain.ConflictError{Conflicts: result.Conflicts}
		}

		b := &domain.Booking{
			ID:                 uuid.NewString(),
			Range:              rng,
			PickupTime:         pickupTime,
			ReturnTime:         returnTime,
			Status:             domain.BookingStatusPending,
			Customer:           customer,
			Parking:            parking,
			DeliveryDistanceKm: deliveryKm,
			Price:              *price,
		}

		err = s.bookingRepo.CreateIfAvailable(ctx, b)
		if err == nil {
			_ = s.emailSvc.SendBookingReceived(ctx, b)
			return b, nil
		}
		if !errors.Is(err, repository.ErrRangeConflict) {
			return nil, err
		}
		logger.Debug("Booking insert lost a race, retrying", "range", rng.String(), "attempt", attempt+1)
	}

	// Both attempts lost the race; report whatever conflicts are visible now
	result, err := s.availability.CheckRange(ctx, rng)
	if err == nil && len(result.Conflicts) > 0 {
		return nil, &domain.ConflictError{Conflicts: result.Conflicts}
	}
	return nil, &domain.ConflictError{
		Conflicts: []domain.Conflict{{Range: rng, Source: domain.ConflictSourceBooking}},
	}
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) TransitionBooking(ctx context.Context, id string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if !newStatus.Valid() {
		return nil, &domain.InputError{Field: "status", Reason: "unknown status " + string(newStatus)}
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(newStatus) {
		return nil, &domain.InvalidTransitionError{From: b.Status, To: newStatus}
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendBookingStatusUpdate(ctx, updated)
	return updated, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status string, from, to *time.Time, page, pageSize int32) ([]domain.Booking, int32, error) {
	if status != "" && !domain.BookingStatus(status).Valid() {
		return nil, 0, &domain.InputError{Field: "status", Reason: "unknown status " + status}
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.bookingRepo.List(ctx, status, from, to, page, pageSize)
}
