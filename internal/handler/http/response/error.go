package response

import (
	"errors"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/auth"
	"github.com/emsuite/ems-backend-go/internal/domain/department"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance conflicts carry the record that won the day.
	var punchedIn *attendance.AlreadyPunchedInError
	if errors.As(err, &punchedIn) {
		ConflictWithData(w, "Already punched in for today", attendance.ToRecordResponse(punchedIn.Existing))
		return
	}
	var punchedOut *attendance.AlreadyPunchedOutError
	if errors.As(err, &punchedOut) {
		ConflictWithData(w, "Already punched out for today", attendance.ToRecordResponse(punchedOut.Existing))
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrInactiveAccount):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrManagerRequired):
		Forbidden(w, "Admin or HR privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoPunchInToday):
		NotFound(w, "No punch-in found for today")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this work date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave request overlaps an existing request")
	case errors.Is(err, leave.ErrNotPending):
		Conflict(w, "Leave request has already been decided or cancelled")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
