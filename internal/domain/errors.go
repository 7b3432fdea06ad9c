package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InputError reports a malformed request field, rejected before any lookup
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PricingGapError is returned when one or more nights in a requested range are
// not covered by any pricing rule. A quote never falls back to a default rate.
type PricingGapError struct {
	Dates []time.Time
}

func (e *PricingGapError) Error() string {
	days := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		days[i] = d.Format(DateLayout)
	}
	return fmt.Sprintf("no pricing rule covers: %s", strings.Join(days, ", "))
}

// MinimumStayError reports a stay shorter than the seasonal minimum
type MinimumStayError struct {
	RequiredNights int
	Nights         int
}

func (e *MinimumStayError) Error() string {
	return fmt.Sprintf("minimum stay is %d nights, requested %d", e.RequiredNights, e.Nights)
}

// InvalidServiceParameterError reports an out-of-range service option
type InvalidServiceParameterError struct {
	Parameter string
	Reason    string
}

func (e *InvalidServiceParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Parameter, e.Reason)
}

// ConflictError is returned when a requested range collides with existing
// active bookings or blocked periods. Conflicts carries every colliding range.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested range conflicts with %d existing period(s)", len(e.Conflicts))
}

// PriceMismatchError is returned when a client-supplied expected total differs
// from the server-computed total by more than the fixed epsilon
type PriceMismatchError struct {
	Expected decimal.Decimal
	Computed decimal.Decimal
}

func (e *PriceMismatchError) Error() string {
	return fmt.Sprintf("expected total %s does not match computed total %s", e.Expected, e.Computed)
}

// InvalidTransitionError reports a disallowed booking status change
type InvalidTransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}
