package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campervan-backend/internal/domain"
	"campervan-backend/internal/repository"
)

type adminService struct {
	ruleRepo    repository.PricingRuleRepository
	blockedRepo repository.BlockedPeriodRepository
}

func NewAdminService(ruleRepo repository.PricingRuleRepository, blockedRepo repository.BlockedPeriodRepository) AdminService {
	return &adminService{ruleRepo: ruleRepo, blockedRepo: blockedRepo}
}

// CreatePricingRule inserts a new rule. Overlap with existing rules is legal:
// the newer rule takes precedence on the shared nights.
func (s *adminService) CreatePricingRule(ctx context.Context, startDate, endDate string, nightlyRate decimal.Decimal, notes string) (*domain.PricingRule, error) {
	rng, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if !nightlyRate.IsPositive() {
		return nil, &domain.InvalidServiceParameterError{Parameter: "nightly_rate", Reason: "must be positive"}
	}

	rule := &domain.PricingRule{
		ID:          uuid.NewString(),
		Range:       rng,
		NightlyRate: nightlyRate,
		Notes:       notes,
	}
	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *adminService) ListPricingRules(ctx context.Context, startDate, endDate string) ([]domain.PricingRule, error) {
	if startDate == "" && endDate == "" {
		return s.ruleRepo.List(ctx)
	}
	rng, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.ruleRepo.ListOverlapping(ctx, rng)
}

func (s *adminService) CreateBlockedPeriod(ctx context.Context, startDate, endDate, reason, notes string) (*domain.BlockedPeriod, error) {
	rng, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	blockedReason := domain.BlockedReason(reason)
	if !blockedReason.Valid() {
		return nil, &domain.InvalidServiceParameterError{Parameter: "reason", Reason: "must be maintenance, private or other"}
	}

	period := &domain.BlockedPeriod{
		ID:     uuid.NewString(),
		Range:  rng,
		Reason: blockedReason,
		Notes:  notes,
	}
	if err := s.blockedRepo.Create(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

func (s *adminService) ListBlockedPeriods(ctx context.Context, startDate, endDate string) ([]domain.BlockedPeriod, error) {
	if startDate == "" && endDate == "" {
		return s.blockedRepo.List(ctx)
	}
	rng, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.blockedRepo.ListOverlapping(ctx, rng)
}
