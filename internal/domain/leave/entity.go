package leave

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// CanTransition is the single gate every mutating operation consults.
// Only Pending requests move; decided and cancelled requests are final.
func CanTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	switch to {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

type Type string

const (
	TypeSick   Type = "Sick"
	TypeAnnual Type = "Annual"
	TypeCasual Type = "Casual"
	TypeUnpaid Type = "Unpaid"
	TypeOther  Type = "Other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeSick, TypeAnnual, TypeCasual, TypeUnpaid, TypeOther:
		return true
	}
	return false
}

type Request struct {
	ID           string
	EmployeeID   string
	LeaveType    Type
	FromDate     time.Time
	ToDate       time.Time
	Description  string
	Status       Status
	AppliedAt    time.Time
	CancelReason string
	AdminNote    string
	RejectReason string
	DecidedBy    *string
	DecidedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName   *string
	DepartmentName *string
}

// Overlaps reports whether two inclusive date ranges share any day.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return !aFrom.After(bTo) && !aTo.Before(bFrom)
}
