package service

import (
	"context"

	"campervan-backend/internal/domain"
	"campervan-backend/internal/repository"
	"campervan-backend/internal/utils"
)

type quoteService struct {
	ruleRepo      repository.PricingRuleRepository
	maxDeliveryKm int
}

func NewQuoteService(ruleRepo repository.PricingRuleRepository, maxDeliveryKm int) QuoteService {
	return &quoteService{ruleRepo: ruleRepo, maxDeliveryKm: maxDeliveryKm}
}

// Quote loads a fresh rule snapshot and prices the stay. The same code path
// runs again at booking time, so a preview total always matches the commit
// total for an unchanged rule set.
func (s *quoteService) Quote(ctx context.Context, startDate, endDate, pickupTime, returnTime string, parking bool, deliveryKm *int) (*domain.PriceBreakdown, error) {
	rng, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.ListOverlapping(ctx, rng)
	if err != nil {
		return nil, err
	}

	return utils.CalculatePrice(rng, rules, pickupTime, returnTime, parking, deliveryKm, s.maxDeliveryKm)
}
