package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts a new attendance record. Returns ErrDuplicateRecord
	// when a record already exists for the employee and work date.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves a record by id
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// work date. Returns ErrRecordNotFound when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate string) (Record, error)

	// Update persists punch-out and derived fields of an existing record
	Update(ctx context.Context, rec Record) (Record, error)

	// UpsertForDate inserts or replaces the record for the employee and
	// work date in a single statement.
	UpsertForDate(ctx context.Context, employeeID string, workDate string, punchedInAt time.Time, punchedOutAt *time.Time, totalMinutes int, status Status) (Record, error)

	// ListByDate retrieves all records for a work date with employee
	// names joined, ordered by punch-in time.
	ListByDate(ctx context.Context, workDate string) ([]Record, error)

	// ListByEmployee retrieves an employee's records newest first
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Record, error)
}
