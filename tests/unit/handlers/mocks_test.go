package handlers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"campervan-backend/internal/domain"
)

// MockQuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(ctx context.Context, startDate, endDate, pickupTime, returnTime string, parking bool, deliveryKm *int) (*domain.PriceBreakdown, error) {
	args := m.Called(ctx, startDate, endDate, pickupTime, returnTime, parking, deliveryKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceBreakdown), args.Error(1)
}

// MockAvailabilityService
type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) Check(ctx context.Context, startDate, endDate string) (*domain.AvailabilityResult, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityResult), args.Error(1)
}
func (m *MockAvailabilityService) CheckRange(ctx context.Context, rng domain.DateRange) (*domain.AvailabilityResult, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityResult), args.Error(1)
}

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, customer domain.Customer, startDate, endDate, pickupTime, returnTime string, parking bool, deliveryKm *int, expectedTotal *decimal.Decimal) (*domain.Booking, error) {
	args := m.Called(ctx, customer, startDate, endDate, pickupTime, returnTime, parking, deliveryKm, expectedTotal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) TransitionBooking(ctx context.Context, id string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, newStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListBookings(ctx context.Context, status string, from, to *time.Time, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, from, to, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) CreatePricingRule(ctx context.Context, startDate, endDate string, nightlyRate decimal.Decimal, notes string) (*domain.PricingRule, error) {
	args := m.Called(ctx, startDate, endDate, nightlyRate, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingRule), args.Error(1)
}
func (m *MockAdminService) ListPricingRules(ctx context.Context, startDate, endDate string) ([]domain.PricingRule, error) {
	args := m.Called(ctx, startDate, endDate)
	return args.Get(0).([]domain.PricingRule), args.Error(1)
}
func (m *MockAdminService) CreateBlockedPeriod(ctx context.Context, startDate, endDate, reason, notes string) (*domain.BlockedPeriod, error) {
	args := m.Called(ctx, startDate, endDate, reason, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlockedPeriod), args.Error(1)
}
func (m *MockAdminService) ListBlockedPeriods(ctx context.Context, startDate, endDate string) ([]domain.BlockedPeriod, error) {
	args := m.Called(ctx, startDate, endDate)
	return args.Get(0).([]domain.BlockedPeriod), args.Error(1)
}
