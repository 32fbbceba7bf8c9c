package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/department"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentService department.DepartmentService
}

// List implements DepartmentHandler.
func (d *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	departments, err := d.departmentService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// Create implements DepartmentHandler.
func (d *DepartmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := d.departmentService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", created)
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &DepartmentHandlerImpl{departmentService: departmentService}
}
