package attendance

import (
	"time"
)

type Status string

const (
	StatusIn  Status = "IN"
	StatusOut Status = "OUT"
)

// Record is one attendance row. Exactly one record exists per employee
// per work date; the work date is the punch-in instant rendered as a
// calendar day in the server's local zone.
type Record struct {
	ID           string
	EmployeeID   string
	WorkDate     string
	PunchedInAt  time.Time
	PunchedOutAt *time.Time
	TotalMinutes int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName   *string
	DepartmentName *string
}

// WorkedMinutes computes whole minutes between punch-in and punch-out,
// truncating partial minutes and clamping negatives to zero.
func WorkedMinutes(punchedInAt time.Time, punchedOutAt *time.Time) int {
	if punchedOutAt == nil {
		return 0
	}
	minutes := int(punchedOutAt.Sub(punchedInAt) / time.Minute)
	if minutes < 0 {
		return 0
	}
	return minutes
}

// StatusFor derives the record status from punch-out presence.
func StatusFor(punchedOutAt *time.Time) Status {
	if punchedOutAt == nil {
		return StatusIn
	}
	return StatusOut
}
