package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// DateRange is a half-open range of nights [Start, End). The end date is the
// checkout day: it is never priced and never counts toward the stay.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses yyyy-mm-dd strings into a validated DateRange
func NewDateRange(startStr, endStr string) (DateRange, error) {
	start, err := time.Parse(DateLayout, startStr)
	if err != nil {
		return DateRange{}, &InputError{Field: "start_date", Reason: fmt.Sprintf("must be yyyy-mm-dd, got %q", startStr)}
	}
	end, err := time.Parse(DateLayout, endStr)
	if err != nil {
		return DateRange{}, &InputError{Field: "end_date", Reason: fmt.Sprintf("must be yyyy-mm-dd, got %q", endStr)}
	}
	r := DateRange{Start: start.UTC(), End: end.UTC()}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate checks the start < end invariant
func (r DateRange) Validate() error {
	if !r.Start.Before(r.End) {
		return &InputError{Field: "end_date", Reason: "must be after start_date"}
	}
	return nil
}

// Nights returns the number of nights in the range
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Overlaps reports whether two ranges share at least one night
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// ContainsNight reports whether the given night falls inside the range
func (r DateRange) ContainsNight(night time.Time) bool {
	return !night.Before(r.Start) && night.Before(r.End)
}

// EachNight returns every night in the range in date order
func (r DateRange) EachNight() []time.Time {
	nights := make([]time.Time, 0, r.Nights())
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}

type dateRangeJSON struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// MarshalJSON emits plain yyyy-mm-dd dates instead of RFC 3339 timestamps
func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateRangeJSON{
		StartDate: r.Start.Format(DateLayout),
		EndDate:   r.End.Format(DateLayout),
	})
}

func (r *DateRange) UnmarshalJSON(data []byte) error {
	var raw dateRangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewDateRange(raw.StartDate, raw.EndDate)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
