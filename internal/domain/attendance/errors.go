package attendance

import "errors"

var (
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrNoPunchInToday  = errors.New("no punch-in found for today")
	ErrDuplicateRecord = errors.New("attendance record already exists for this work date")
)

// AlreadyPunchedInError is returned when an employee punches in twice on
// the same work date. It carries the existing record so the caller can
// show what was already logged.
type AlreadyPunchedInError struct {
	Existing Record
}

func (e *AlreadyPunchedInError) Error() string {
	return "already punched in for today"
}

// AlreadyPunchedOutError is returned when an employee punches out twice
// on the same work date.
type AlreadyPunchedOutError struct {
	Existing Record
}

func (e *AlreadyPunchedOutError) Error() string {
	return "already punched out for today"
}
