package employee

import (
	"strings"
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	EmployeeCode string  `json:"employee_code"`
	Phone        string  `json:"phone"`
	DepartmentID *string `json:"department_id"`
	Status       string  `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if r.Role != "" && !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of: admin, hr, employee"})
	}
	if r.Status != "" && !EmploymentStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: Active, On Leave, Inactive"})
	}
	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	Phone        *string `json:"phone"`
	Role         *string `json:"role"`
	DepartmentID *string `json:"department_id"`
	Status       *string `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if r.Role != nil && !Role(*r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of: admin, hr, employee"})
	}
	if r.Status != nil && !EmploymentStatus(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: Active, On Leave, Inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	EmployeeCode   string  `json:"employee_code,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	DepartmentID   *string `json:"department_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

func ToEmployeeResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             emp.ID,
		Name:           emp.Name,
		Email:          strings.ToLower(emp.Email),
		Role:           string(emp.Role),
		EmployeeCode:   emp.EmployeeCode,
		Phone:          emp.Phone,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		Status:         string(emp.Status),
		CreatedAt:      emp.CreatedAt.Format(time.RFC3339),
	}
}

func ToEmployeeResponses(emps []Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, ToEmployeeResponse(emp))
	}
	return responses
}
