package domain

import "time"

type BlockedReason string

const (
	BlockedReasonMaintenance BlockedReason = "maintenance"
	BlockedReasonPrivate     BlockedReason = "private"
	BlockedReasonOther       BlockedReason = "other"
)

// Valid reports whether the reason is one of the known values
func (r BlockedReason) Valid() bool {
	switch r {
	case BlockedReasonMaintenance, BlockedReasonPrivate, BlockedReasonOther:
		return true
	}
	return false
}

// BlockedPeriod marks a date range as unbookable regardless of bookings.
// Overlapping blocked periods are redundant, not an error.
type BlockedPeriod struct {
	ID        string        `json:"id"`
	Range     DateRange     `json:"range"`
	Reason    BlockedReason `json:"reason"`
	Notes     string        `json:"notes,omitempty"`
	CreatedOn time.Time     `json:"created_on"`
}
