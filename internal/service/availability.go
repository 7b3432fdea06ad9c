package service

import (
	"context"

	"campervan-backend/internal/domain"
	"campervan-backend/internal/repository"
)

type availabilityService struct {
	bookingRepo repository.BookingRepository
	blockedRepo repository.BlockedPeriodRepository
}

func NewAvailabilityService(bookingRepo repository.BookingRepository, blockedRepo repository.BlockedPeriodRepository) AvailabilityService {
	return &availabilityService{bookingRepo: bookingRepo, blockedRepo: blockedRepo}
}

func (s *availabilityService) Check(ctx context.Context, startDate, endDate string) (*domain.AvailabilityResult, error) {
	rng, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.CheckRange(ctx, rng)
}

// CheckRange scans active bookings and blocked periods for overlaps and
// returns every conflict, tagged with its source, so rejections can be
// explained to the caller.
func (s *availabilityService) CheckRange(ctx context.Context, rng domain.DateRange) (*domain.AvailabilityResult, error) {
	bookings, err := s.bookingRepo.ListActiveOverlapping(ctx, rng)
	if err != nil {
		return nil, err
	}
	blocked, err := s.blockedRepo.ListOverlapping(ctx, rng)
	if err != nil {
		return nil, err
	}

	var conflicts []domain.Conflict
	for _, b := range bookings {
		conflicts = append(conflicts, domain.Conflict{Range: b.Range, Source: domain.ConflictSourceBooking})
	}
	for _, p := range blocked {
		conflicts = append(conflicts, domain.Conflict{Range: p.Range, Source: domain.ConflictSource(p.Reason)})
	}

	return &domain.AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
