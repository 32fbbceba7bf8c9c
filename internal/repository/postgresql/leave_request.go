package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

const leaveColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.from_date, lr.to_date,
	lr.description, lr.status, lr.applied_at,
	lr.cancel_reason, lr.admin_note, lr.reject_reason,
	lr.decided_by, lr.decided_at, lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.FromDate, &req.ToDate,
		&req.Description, &req.Status, &req.AppliedAt,
		&req.CancelReason, &req.AdminNote, &req.RejectReason,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// CreateIfNoOverlap implements leave.LeaveRepository.
func (l *leaveRepository) CreateIfNoOverlap(ctx context.Context, req leave.Request) (leave.Request, error) {
	var created leave.Request

	err := WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		overlaps, err := l.hasOverlap(txCtx, req.EmployeeID, req.FromDate, req.ToDate)
		if err != nil {
			return err
		}
		if overlaps {
			return leave.ErrOverlappingLeave
		}

		created, err = l.create(txCtx, req)
		return err
	})
	if err != nil {
		return leave.Request{}, err
	}

	return created, nil
}

func (l *leaveRepository) create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, from_date, to_date, description, status, applied_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.LeaveType,
		req.FromDate,
		req.ToDate,
		req.Description,
		req.Status,
		req.AppliedAt,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `, e.name, d.name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE lr.id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.FromDate, &req.ToDate,
		&req.Description, &req.Status, &req.AppliedAt,
		&req.CancelReason, &req.AdminNote, &req.RejectReason,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// GetByIDForEmployee implements leave.LeaveRepository.
func (l *leaveRepository) GetByIDForEmployee(ctx context.Context, id string, employeeID string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		WHERE lr.id = $1
		  AND lr.employee_id = $2
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// ListByEmployee implements leave.LeaveRepository.
func (l *leaveRepository) ListByEmployee(ctx context.Context, employeeID string, filter leave.ListFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
	`
	args := []interface{}{employeeID}
	if filter.Status != nil {
		query += ` AND lr.status = $2`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY lr.applied_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

// List implements leave.LeaveRepository.
func (l *leaveRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `, e.name, d.name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
	`
	var args []interface{}
	if filter.Status != nil {
		query += ` WHERE lr.status = $1`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY lr.applied_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.FromDate, &req.ToDate,
			&req.Description, &req.Status, &req.AppliedAt,
			&req.CancelReason, &req.AdminNote, &req.RejectReason,
			&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

func (l *leaveRepository) hasOverlap(ctx context.Context, employeeID string, from time.Time, to time.Time) (bool, error) {
	q := GetQuerier(ctx, l.db)

	// Cancelled requests do not block new applications; pending,
	// approved and rejected ones all do.
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			  AND status != 'Cancelled'
			  AND from_date <= $3
			  AND to_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}

	return exists, nil
}

// Decide implements leave.LeaveRepository.
func (l *leaveRepository) Decide(ctx context.Context, id string, to leave.Status, decidedBy string, adminNote string, rejectReason string, decidedAt time.Time) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	// Conditional on Pending so concurrent decisions cannot both win.
	query := `
		UPDATE leave_requests lr
		SET status = $2,
			admin_note = $3,
			reject_reason = $4,
			decided_by = $5,
			decided_at = $6,
			updated_at = NOW()
		WHERE lr.id = $1
		  AND lr.status = 'Pending'
		RETURNING ` + leaveColumns + `
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id, to, adminNote, rejectReason, decidedBy, decidedAt))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to decide leave request: %w", err)
	}

	return req, nil
}

// CancelPending implements leave.LeaveRepository.
func (l *leaveRepository) CancelPending(ctx context.Context, id string, employeeID string, cancelReason string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests lr
		SET status = 'Cancelled',
			cancel_reason = $3,
			updated_at = NOW()
		WHERE lr.id = $1
		  AND lr.employee_id = $2
		  AND lr.status = 'Pending'
		RETURNING ` + leaveColumns + `
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id, employeeID, cancelReason))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to cancel leave request: %w", err)
	}

	return req, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
