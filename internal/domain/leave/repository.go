package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// CreateIfNoOverlap inserts a new leave request unless the employee
	// already has a non-cancelled request sharing a day with it, in
	// which case it returns ErrOverlappingLeave. Check and insert run
	// in one transaction.
	CreateIfNoOverlap(ctx context.Context, req Request) (Request, error)

	// GetByID retrieves a request by id with employee fields joined
	GetByID(ctx context.Context, id string) (Request, error)

	// GetByIDForEmployee retrieves a request only when it belongs to
	// the given employee. Returns ErrLeaveRequestNotFound otherwise.
	GetByIDForEmployee(ctx context.Context, id string, employeeID string) (Request, error)

	// ListByEmployee retrieves one employee's requests newest first,
	// optionally filtered by status.
	ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]Request, error)

	// List retrieves all requests newest first with employee fields
	// joined, optionally filtered by status.
	List(ctx context.Context, filter ListFilter) ([]Request, error)

	// Decide moves a Pending request into Approved or Rejected,
	// recording the decision audit fields. Matching is conditional on
	// Pending status; zero rows yields ErrLeaveRequestNotFound and the
	// caller re-reads to tell a missing row from a decided one.
	Decide(ctx context.Context, id string, to Status, decidedBy string, adminNote string, rejectReason string, decidedAt time.Time) (Request, error)

	// CancelPending moves an employee's own Pending request to
	// Cancelled under the same conditional-update contract as Decide.
	CancelPending(ctx context.Context, id string, employeeID string, cancelReason string) (Request, error)
}
