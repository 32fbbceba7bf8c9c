package department

import "time"

type Department struct {
	ID          string
	Name        string
	Code        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
