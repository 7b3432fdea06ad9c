package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PricingRule assigns a nightly rate to a date range. Rules are insert-only:
// an administrator supersedes a rule by creating a newer one over the same
// dates, and on overlap the most recently created rule wins.
type PricingRule struct {
	ID          string          `json:"id"`
	Range       DateRange       `json:"range"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	Notes       string          `json:"notes,omitempty"`
	CreatedOn   time.Time       `json:"created_on"`
}

// NightlyRate is one priced night of a stay, weekend surcharge included
type NightlyRate struct {
	Night time.Time
	Rate  decimal.Decimal
}

type nightlyRateJSON struct {
	Night string          `json:"night"`
	Rate  decimal.Decimal `json:"rate"`
}

func (n NightlyRate) MarshalJSON() ([]byte, error) {
	return json.Marshal(nightlyRateJSON{
		Night: n.Night.Format(DateLayout),
		Rate:  n.Rate,
	})
}

func (n *NightlyRate) UnmarshalJSON(data []byte) error {
	var raw nightlyRateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	night, err := time.Parse(DateLayout, raw.Night)
	if err != nil {
		return err
	}
	n.Night = night.UTC()
	n.Rate = raw.Rate
	return nil
}

// PriceBreakdown is the full server-computed price for a stay. It is a pure
// function of (range, service options, rule snapshot): recomputing with the
// same inputs yields an identical breakdown. The total is the sum of nightly
// rates and fees, rounded half-up to the cent exactly once at the end.
type PriceBreakdown struct {
	Nights         []NightlyRate    `json:"nights"`
	NightlyTotal   decimal.Decimal  `json:"nightly_total"`
	ServiceFee     decimal.Decimal  `json:"service_fee"`
	EarlyPickupFee *decimal.Decimal `json:"early_pickup_fee,omitempty"`
	LateReturnFee  *decimal.Decimal `json:"late_return_fee,omitempty"`
	ParkingFee     *decimal.Decimal `json:"parking_fee,omitempty"`
	DeliveryFee    *decimal.Decimal `json:"delivery_fee,omitempty"`
	Total          decimal.Decimal  `json:"total"`
}
