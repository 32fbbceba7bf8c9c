package leave

import (
	"context"
)

type LeaveService interface {
	// Apply files a new leave request for the authenticated employee.
	// Returns ErrOverlappingLeave when it shares a day with an existing
	// non-cancelled request.
	Apply(ctx context.Context, req ApplyRequest) (RequestResponse, error)

	// Cancel moves the employee's own Pending request to Cancelled.
	// Returns ErrNotPending once the request has been decided.
	Cancel(ctx context.Context, req CancelRequest) (RequestResponse, error)

	// GetMyLeaves lists the authenticated employee's requests
	GetMyLeaves(ctx context.Context, filter ListFilter) ([]RequestResponse, error)

	// GetMyLeaveByID retrieves one of the employee's own requests
	GetMyLeaveByID(ctx context.Context, id string) (RequestResponse, error)

	// ListLeaves lists all requests for the admin surface
	ListLeaves(ctx context.Context, filter ListFilter) ([]RequestResponse, error)

	// Approve moves a Pending request to Approved, stamping the
	// decision audit fields and clearing any reject reason.
	Approve(ctx context.Context, req ApproveRequest) (RequestResponse, error)

	// Reject moves a Pending request to Rejected with an optional
	// reason.
	Reject(ctx context.Context, req RejectRequest) (RequestResponse, error)
}
