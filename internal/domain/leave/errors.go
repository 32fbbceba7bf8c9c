package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrOverlappingLeave     = errors.New("leave request overlaps an existing request")
	ErrNotPending           = errors.New("leave request has already been decided or cancelled")
)
