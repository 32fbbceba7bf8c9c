package leave

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	LeaveType   string `json:"leave_type"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	Description string `json:"description"`
}

func (r *ApplyRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type is required"})
	} else if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of: Sick, Annual, Casual, Unpaid, Other"})
	}

	var from, to time.Time
	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from_date is required"})
	} else {
		var ok bool
		from, ok = validator.IsValidDate(r.FromDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from_date must be a valid date (YYYY-MM-DD)"})
		}
	}
	if validator.IsEmpty(r.ToDate) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date is required"})
	} else {
		var ok bool
		to, ok = validator.IsValidDate(r.ToDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must be a valid date (YYYY-MM-DD)"})
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date cannot be earlier than from_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CancelRequest struct {
	ID           string `json:"-"`
	CancelReason string `json:"cancel_reason"`
}

func (r *CancelRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveRequest struct {
	ID        string `json:"-"`
	AdminNote string `json:"admin_note"`
}

type RejectRequest struct {
	ID           string `json:"-"`
	AdminNote    string `json:"admin_note"`
	RejectReason string `json:"reject_reason"`
}

type ListFilter struct {
	Status *Status
}

type RequestResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	LeaveType      string  `json:"leave_type"`
	FromDate       string  `json:"from_date"`
	ToDate         string  `json:"to_date"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	AppliedAt      string  `json:"applied_at"`
	CancelReason   string  `json:"cancel_reason,omitempty"`
	AdminNote      string  `json:"admin_note,omitempty"`
	RejectReason   string  `json:"reject_reason,omitempty"`
	DecidedBy      *string `json:"decided_by,omitempty"`
	DecidedAt      *string `json:"decided_at,omitempty"`
}

func ToRequestResponse(req Request) RequestResponse {
	resp := RequestResponse{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		DepartmentName: req.DepartmentName,
		LeaveType:      string(req.LeaveType),
		FromDate:       req.FromDate.Format("2006-01-02"),
		ToDate:         req.ToDate.Format("2006-01-02"),
		Description:    req.Description,
		Status:         string(req.Status),
		AppliedAt:      req.AppliedAt.Format(time.RFC3339),
		CancelReason:   req.CancelReason,
		AdminNote:      req.AdminNote,
		RejectReason:   req.RejectReason,
		DecidedBy:      req.DecidedBy,
	}
	if req.DecidedAt != nil {
		at := req.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &at
	}
	return resp
}

func ToRequestResponses(requests []Request) []RequestResponse {
	responses := make([]RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, ToRequestResponse(req))
	}
	return responses
}
