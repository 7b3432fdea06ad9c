package domain

type ConflictSource string

const (
	ConflictSourceBooking     ConflictSource = "booking"
	ConflictSourceMaintenance ConflictSource = "maintenance"
	ConflictSourcePrivate     ConflictSource = "private"
	ConflictSourceOther       ConflictSource = "other"
)

// Conflict is one existing period that collides with a requested range,
// tagged with where it came from so a rejection can be explained
type Conflict struct {
	Range  DateRange      `json:"range"`
	Source ConflictSource `json:"source"`
}

// AvailabilityResult is the outcome of an availability check. When the range
// is unavailable, Conflicts carries every colliding period, not just the first.
type AvailabilityResult struct {
	Available bool       `json:"available"`
	Conflicts []Conflict `json:"conflicts,omitempty"`
}
