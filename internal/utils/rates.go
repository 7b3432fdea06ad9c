package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"campervan-backend/internal/domain"
)

// Weekend nights (Saturday and Sunday) are priced 20% above the resolved base rate
var weekendSurcharge = decimal.RequireFromString("1.2")

// Seasonal minimum stay in nights, selected by the month of the start date
const (
	minStayHighSeason = 5 // May through September
	minStayLowSeason  = 3 // October through April
)

// MinimumStayNights returns the minimum stay required for a booking starting
// on the given date
func MinimumStayNights(start time.Time) int {
	if start.Month() >= time.May && start.Month() <= time.September {
		return minStayHighSeason
	}
	return minStayLowSeason
}

// ValidateMinimumStay enforces the seasonal minimum stay for the range
func ValidateMinimumStay(rng domain.DateRange) error {
	required := MinimumStayNights(rng.Start)
	if rng.Nights() < required {
		return &domain.MinimumStayError{RequiredNights: required, Nights: rng.Nights()}
	}
	return nil
}

// ResolveNightlyRates maps every night in rng onto the pricing rules and
// returns one rate per night in date order, weekend surcharge applied.
//
// Rules must be ordered by creation, oldest first. When several rules cover
// the same night, the most recently created rule wins: this is a deliberate
// policy choice (recency precedence) rather than most-specific-range wins.
// Any night not covered by a rule fails the whole resolution with a
// PricingGapError listing every uncovered date.
func ResolveNightlyRates(rng domain.DateRange, rules []domain.PricingRule) ([]domain.NightlyRate, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	nights := make([]domain.NightlyRate, 0, rng.Nights())
	var gaps []time.Time

	for _, night := range rng.EachNight() {
		rule, ok := latestCovering(night, rules)
		if !ok {
			gaps = append(gaps, night)
			continue
		}

		rate := rule.NightlyRate
		if isWeekendNight(night) {
			rate = rate.Mul(weekendSurcharge)
		}
		nights = append(nights, domain.NightlyRate{Night: night, Rate: rate})
	}

	if len(gaps) > 0 {
		return nil, &domain.PricingGapError{Dates: gaps}
	}
	return nights, nil
}

// latestCovering scans rules newest-first and returns the first one whose
// range contains the night
func latestCovering(night time.Time, rules []domain.PricingRule) (domain.PricingRule, bool) {
	for i := len(rules) - 1; i >= 0; i-- {
		if rules[i].Range.ContainsNight(night) {
			return rules[i], true
		}
	}
	return domain.PricingRule{}, false
}

func isWeekendNight(night time.Time) bool {
	wd := night.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
