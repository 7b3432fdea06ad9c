package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"campervan-backend/internal/domain"
)

// Fixed surcharge table. Amounts are EUR.
var (
	serviceFee         = decimal.NewFromInt(50)
	earlyPickupFee     = decimal.NewFromInt(50)
	lateReturnFee      = decimal.NewFromInt(50)
	parkingFeePerNight = decimal.NewFromInt(5)
	deliveryFeePerKm   = decimal.RequireFromString("0.20")
)

// Clock-time cutoffs in minutes since midnight
const (
	earlyPickupCutoff = 12 * 60 // pickups before 12:00 pay the early fee
	lateReturnCutoff  = 16 * 60 // returns after 16:00 pay the late fee
)

// ClockLayout is the wire format for pickup and return times
const ClockLayout = "15:04"

// ParseClockTime converts an HH:MM string into minutes since midnight
func ParseClockTime(value string) (int, error) {
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("must be HH:MM, got %q", value)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// CalculatePrice is the single pricing entry point, used identically by quote
// preview and booking commit so that preview equals commit by construction.
// Rules must be ordered by creation, oldest first. maxDeliveryKm is the
// configured delivery policy limit.
//
// The total is nightly rates (weekend surcharge included) plus fees, rounded
// half-up to the cent once at the end, never per line.
func CalculatePrice(
	rng domain.DateRange,
	rules []domain.PricingRule,
	pickupTime, returnTime string,
	parking bool,
	deliveryKm *int,
	maxDeliveryKm int,
) (*domain.PriceBreakdown, error) {
	pickup, err := ParseClockTime(pickupTime)
	if err != nil {
		return nil, &domain.InputError{Field: "pickup_time", Reason: err.Error()}
	}
	ret, err := ParseClockTime(returnTime)
	if err != nil {
		return nil, &domain.InputError{Field: "return_time", Reason: err.Error()}
	}
	if deliveryKm != nil {
		if *deliveryKm < 0 {
			return nil, &domain.InvalidServiceParameterError{Parameter: "delivery_distance_km", Reason: "must not be negative"}
		}
		if *deliveryKm > maxDeliveryKm {
			return nil, &domain.InvalidServiceParameterError{
				Parameter: "delivery_distance_km",
				Reason:    fmt.Sprintf("must not exceed %d km", maxDeliveryKm),
			}
		}
	}

	if err := ValidateMinimumStay(rng); err != nil {
		return nil, err
	}

	nights, err := ResolveNightlyRates(rng, rules)
	if err != nil {
		return nil, err
	}

	nightlyTotal := decimal.Zero
	for _, n := range nights {
		nightlyTotal = nightlyTotal.Add(n.Rate)
	}

	breakdown := &domain.PriceBreakdown{
		Nights:       nights,
		NightlyTotal: nightlyTotal,
		ServiceFee:   serviceFee,
	}
	total := nightlyTotal.Add(serviceFee)

	if pickup < earlyPickupCutoff {
		fee := earlyPickupFee
		breakdown.EarlyPickupFee = &fee
		total = total.Add(fee)
	}
	if ret > lateReturnCutoff {
		fee := lateReturnFee
		breakdown.LateReturnFee = &fee
		total = total.Add(fee)
	}
	if parking {
		fee := parkingFeePerNight.Mul(decimal.NewFromInt(int64(rng.Nights())))
		breakdown.ParkingFee = &fee
		total = total.Add(fee)
	}
	if deliveryKm != nil {
		fee := deliveryFeePerKm.Mul(decimal.NewFromInt(int64(*deliveryKm)))
		breakdown.DeliveryFee = &fee
		total = total.Add(fee)
	}

	// Single rounding step for the whole price
	breakdown.Total = total.Round(2)
	return breakdown, nil
}
