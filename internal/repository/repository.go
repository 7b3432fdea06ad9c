package repository

import (
	"context"
	"errors"
	"time"

	"campervan-backend/internal/domain"
)

// ErrRangeConflict is returned by BookingRepository.CreateIfAvailable when the
// store rejects the write because an overlapping active booking was committed
// first. It is the surfaced form of the store's conditional-write primitive.
var ErrRangeConflict = errors.New("overlapping active booking exists")

type BookingRepository interface {
	// CreateIfAvailable inserts the booking unless an overlapping active
	// booking already exists, in which case it returns ErrRangeConflict
	// and writes nothing.
	CreateIfAvailable(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	// ListActiveOverlapping returns pending and confirmed bookings whose
	// range overlaps rng
	ListActiveOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.Booking, error)
	List(ctx context.Context, status string, from, to *time.Time, page, pageSize int32) ([]domain.Booking, int32, error)
}

type PricingRuleRepository interface {
	Create(ctx context.Context, rule *domain.PricingRule) error
	// ListOverlapping returns rules whose range overlaps rng, ordered by
	// creation, oldest first
	ListOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.PricingRule, error)
	List(ctx context.Context) ([]domain.PricingRule, error)
}

type BlockedPeriodRepository interface {
	Create(ctx context.Context, period *domain.BlockedPeriod) error
	ListOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.BlockedPeriod, error)
	List(ctx context.Context) ([]domain.BlockedPeriod, error)
}
