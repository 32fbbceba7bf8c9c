package employee

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if strings.EqualFold(existing.Email, emp.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	f.nextID++
	emp.ID = string(rune('a' + f.nextID))
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetEmployeeByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.Role != employee.RoleEmployee {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if strings.EqualFold(emp.Email, email) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListEmployees(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.Role == employee.RoleEmployee {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.UpdatedAt = time.Now()
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func newTestService() (employee.EmployeeService, *fakeEmployeeRepo) {
	repo := newFakeEmployeeRepo()
	return NewEmployeeService(repo), repo
}

func createEmployee(t *testing.T, svc employee.EmployeeService) employee.EmployeeResponse {
	t.Helper()
	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name:     "Jane Dev",
		Email:    "jane@example.com",
		Password: "initial-pass",
	})
	require.NoError(t, err)
	return resp
}

func strPtr(s string) *string { return &s }

func TestCreateEmployee_HashesPassword(t *testing.T) {
	svc, repo := newTestService()

	created := createEmployee(t, svc)

	stored := repo.employees[created.ID]
	assert.NotEqual(t, "initial-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("initial-pass")))
	assert.Equal(t, employee.RoleEmployee, stored.Role)
	assert.Equal(t, employee.StatusActive, stored.Status)
}

func TestUpdateEmployee_ChangesPassword(t *testing.T) {
	svc, repo := newTestService()
	created := createEmployee(t, svc)

	_, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:       created.ID,
		Password: strPtr("fresh-secret"),
	})
	require.NoError(t, err)

	stored := repo.employees[created.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("fresh-secret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("initial-pass")))
}

func TestUpdateEmployee_OmittedPasswordKeepsHash(t *testing.T) {
	svc, repo := newTestService()
	created := createEmployee(t, svc)
	before := repo.employees[created.ID].PasswordHash

	_, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:   created.ID,
		Name: strPtr("Jane Senior Dev"),
	})
	require.NoError(t, err)

	stored := repo.employees[created.ID]
	assert.Equal(t, before, stored.PasswordHash)
	assert.Equal(t, "Jane Senior Dev", stored.Name)
}

func TestUpdateEmployee_ShortPassword(t *testing.T) {
	svc, _ := newTestService()
	created := createEmployee(t, svc)

	_, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:       created.ID,
		Password: strPtr("tiny"),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "password")
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:   "missing",
		Name: strPtr("Nobody"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
