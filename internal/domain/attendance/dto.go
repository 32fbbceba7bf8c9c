package attendance

import (
	"encoding/json"
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

// OptionalString distinguishes an omitted JSON field from an explicit
// null or empty value. Set is false only when the field was absent.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type AdminUpsertRequest struct {
	EmployeeID   string  `json:"employee_id"`
	PunchedInAt  string  `json:"punched_in_at"`
	PunchedOutAt *string `json:"punched_out_at"`
}

func (r *AdminUpsertRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}

	var punchedIn time.Time
	if validator.IsEmpty(r.PunchedInAt) {
		errs = append(errs, validator.ValidationError{Field: "punched_in_at", Message: "punched_in_at is required"})
	} else {
		var ok bool
		punchedIn, ok = validator.IsValidDateTime(r.PunchedInAt)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "punched_in_at", Message: "punched_in_at must be a valid ISO8601 timestamp"})
		}
	}

	if r.PunchedOutAt != nil && !validator.IsEmpty(*r.PunchedOutAt) {
		punchedOut, ok := validator.IsValidDateTime(*r.PunchedOutAt)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "punched_out_at", Message: "punched_out_at must be a valid ISO8601 timestamp"})
		} else if !punchedIn.IsZero() && punchedOut.Before(punchedIn) {
			errs = append(errs, validator.ValidationError{Field: "punched_out_at", Message: "punched_out_at cannot be earlier than punched_in_at"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdminUpdateTimesRequest struct {
	ID           string         `json:"-"`
	PunchedInAt  *string        `json:"punched_in_at"`
	PunchedOutAt OptionalString `json:"punched_out_at"`
}

func (r *AdminUpdateTimesRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}

	if r.PunchedInAt != nil {
		if _, ok := validator.IsValidDateTime(*r.PunchedInAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "punched_in_at", Message: "punched_in_at must be a valid ISO8601 timestamp"})
		}
	}

	// A set-but-empty punch-out clears the field, so only a non-empty
	// value needs to parse. Ordering against the effective punch-in is
	// checked in the service once the existing record is loaded.
	if r.PunchedOutAt.Set && r.PunchedOutAt.Value != nil && !validator.IsEmpty(*r.PunchedOutAt.Value) {
		if _, ok := validator.IsValidDateTime(*r.PunchedOutAt.Value); !ok {
			errs = append(errs, validator.ValidationError{Field: "punched_out_at", Message: "punched_out_at must be a valid ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ClearsPunchOut reports whether the request asks to remove the
// punch-out (explicit null or empty string).
func (r *AdminUpdateTimesRequest) ClearsPunchOut() bool {
	return r.PunchedOutAt.Set && (r.PunchedOutAt.Value == nil || validator.IsEmpty(*r.PunchedOutAt.Value))
}

type RecordResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	WorkDate       string  `json:"work_date"`
	PunchedInAt    string  `json:"punched_in_at"`
	PunchedOutAt   *string `json:"punched_out_at"`
	TotalMinutes   int     `json:"total_minutes"`
	Status         string  `json:"status"`
}

func ToRecordResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		DepartmentName: rec.DepartmentName,
		WorkDate:       rec.WorkDate,
		PunchedInAt:    rec.PunchedInAt.Format(time.RFC3339),
		TotalMinutes:   rec.TotalMinutes,
		Status:         string(rec.Status),
	}
	if rec.PunchedOutAt != nil {
		out := rec.PunchedOutAt.Format(time.RFC3339)
		resp.PunchedOutAt = &out
	}
	return resp
}

func ToRecordResponses(records []Record) []RecordResponse {
	responses := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, ToRecordResponse(rec))
	}
	return responses
}

// PresenceRow pairs an employee with their attendance for one work
// date. Attendance is nil for absentees.
type PresenceRow struct {
	EmployeeID     string          `json:"employee_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	EmployeeCode   string          `json:"employee_code,omitempty"`
	DepartmentName *string         `json:"department_name,omitempty"`
	Attendance     *RecordResponse `json:"attendance"`
	Present        bool            `json:"present"`
	InNow          bool            `json:"in_now"`
}

type PresenceSummary struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	InNow   int `json:"in_now"`
}

type PresenceResponse struct {
	WorkDate string          `json:"work_date"`
	Summary  PresenceSummary `json:"summary"`
	Rows     []PresenceRow   `json:"rows"`
}
