package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"campervan-backend/internal/domain"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListActiveOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.Booking, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context, status string, from, to *time.Time, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, from, to, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

// MockPricingRuleRepo
type MockPricingRuleRepo struct {
	mock.Mock
}

func (m *MockPricingRuleRepo) Create(ctx context.Context, rule *domain.PricingRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}
func (m *MockPricingRuleRepo) ListOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.PricingRule, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).([]domain.PricingRule), args.Error(1)
}
func (m *MockPricingRuleRepo) List(ctx context.Context) ([]domain.PricingRule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PricingRule), args.Error(1)
}

// MockBlockedPeriodRepo
type MockBlockedPeriodRepo struct {
	mock.Mock
}

func (m *MockBlockedPeriodRepo) Create(ctx context.Context, period *domain.BlockedPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}
func (m *MockBlockedPeriodRepo) ListOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.BlockedPeriod, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).([]domain.BlockedPeriod), args.Error(1)
}
func (m *MockBlockedPeriodRepo) List(ctx context.Context) ([]domain.BlockedPeriod, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BlockedPeriod), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingReceived(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingStatusUpdate(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, email, name, startDate, pickupTime string) error {
	args := m.Called(ctx, email, name, startDate, pickupTime)
	return args.Error(0)
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
