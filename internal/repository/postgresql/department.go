package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/department"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type departmentRepository struct {
	db *database.DB
}

// Create implements department.DepartmentRepository.
func (d *departmentRepository) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO departments (id, name, code, description, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	if dept.ID == "" {
		dept.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, query,
		dept.ID,
		dept.Name,
		dept.Code,
		dept.Description,
		dept.IsActive,
	).Scan(&dept.CreatedAt, &dept.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.Department{}, department.ErrDepartmentExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return dept, nil
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, code, description, is_active, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.Code, &dept.Description, &dept.IsActive,
		&dept.CreatedAt, &dept.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return dept, nil
}

// GetByName implements department.DepartmentRepository.
func (d *departmentRepository) GetByName(ctx context.Context, name string) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, code, description, is_active, created_at, updated_at
		FROM departments
		WHERE name = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, name).Scan(
		&dept.ID, &dept.Name, &dept.Code, &dept.Description, &dept.IsActive,
		&dept.CreatedAt, &dept.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by name: %w", err)
	}

	return dept, nil
}

// List implements department.DepartmentRepository.
func (d *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, code, description, is_active, created_at, updated_at
		FROM departments
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		err := rows.Scan(
			&dept.ID, &dept.Name, &dept.Code, &dept.Description, &dept.IsActive,
			&dept.CreatedAt, &dept.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}
