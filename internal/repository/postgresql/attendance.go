package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	id, employee_id, work_date, punched_in_at, punched_out_at,
	total_minutes, status, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.WorkDate, &rec.PunchedInAt, &rec.PunchedOutAt,
		&rec.TotalMinutes, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, work_date, punched_in_at, punched_out_at, total_minutes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.WorkDate,
		rec.PunchedInAt,
		rec.PunchedOutAt,
		rec.TotalMinutes,
		rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		// Unique violation on (employee_id, work_date) means the day is
		// already punched in.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE id = $1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND work_date = $2
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, workDate))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET punched_in_at = $2,
			punched_out_at = $3,
			total_minutes = $4,
			status = $5,
			updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.PunchedInAt,
		rec.PunchedOutAt,
		rec.TotalMinutes,
		rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return rec, nil
}

// UpsertForDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpsertForDate(ctx context.Context, employeeID string, workDate string, punchedInAt time.Time, punchedOutAt *time.Time, totalMinutes int, status attendance.Status) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, work_date, punched_in_at, punched_out_at, total_minutes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id, work_date) DO UPDATE
		SET punched_in_at = EXCLUDED.punched_in_at,
			punched_out_at = EXCLUDED.punched_out_at,
			total_minutes = EXCLUDED.total_minutes,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING ` + attendanceColumns + `
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query,
		uuid.NewString(),
		employeeID,
		workDate,
		punchedInAt,
		punchedOutAt,
		totalMinutes,
		status,
	))
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, workDate string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.work_date, ar.punched_in_at, ar.punched_out_at,
			   ar.total_minutes, ar.status, ar.created_at, ar.updated_at,
			   e.name, d.name
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE ar.work_date = $1
		ORDER BY ar.punched_in_at ASC
	`

	rows, err := q.Query(ctx, query, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.WorkDate, &rec.PunchedInAt, &rec.PunchedOutAt,
			&rec.TotalMinutes, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY work_date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.WorkDate, &rec.PunchedInAt, &rec.PunchedOutAt,
			&rec.TotalMinutes, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
