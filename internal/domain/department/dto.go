package department

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (r *CreateDepartmentRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

func ToDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}

func ToDepartmentResponses(departments []Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, ToDepartmentResponse(d))
	}
	return responses
}
