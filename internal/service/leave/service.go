package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/clock"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	clock clock.Clock
}

func claimsFromContext(ctx context.Context) (userID string, name string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}
	name, _ = claims["name"].(string)

	return userID, name, nil
}

// Apply implements leave.LeaveService.
func (l *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	loc := l.clock.Location()
	fromDay, _ := validator.IsValidDate(req.FromDate)
	toDay, _ := validator.IsValidDate(req.ToDate)

	// Normalize to local day bounds so two requests touching the same
	// calendar day always overlap.
	from := clock.StartOfDay(fromDay.In(loc), loc)
	to := clock.EndOfDay(toDay.In(loc), loc)

	created, err := l.LeaveRepository.CreateIfNoOverlap(ctx, leave.Request{
		EmployeeID:  employeeID,
		LeaveType:   leave.Type(req.LeaveType),
		FromDate:    from,
		ToDate:      to,
		Description: strings.TrimSpace(req.Description),
		Status:      leave.StatusPending,
		AppliedAt:   l.clock.Now(),
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(created), nil
}

// Cancel implements leave.LeaveService.
func (l *LeaveServiceImpl) Cancel(ctx context.Context, req leave.CancelRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	cancelled, err := l.LeaveRepository.CancelPending(ctx, req.ID, employeeID, strings.TrimSpace(req.CancelReason))
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			// The conditional update matched nothing: either the
			// request does not belong to this employee or it left
			// Pending first. Re-read to tell the two apart.
			current, getErr := l.LeaveRepository.GetByIDForEmployee(ctx, req.ID, employeeID)
			if getErr != nil {
				return leave.RequestResponse{}, leave.ErrLeaveRequestNotFound
			}
			if !leave.CanTransition(current.Status, leave.StatusCancelled) {
				return leave.RequestResponse{}, leave.ErrNotPending
			}
			return leave.RequestResponse{}, err
		}
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(cancelled), nil
}

// GetMyLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeaves(ctx context.Context, filter leave.ListFilter) ([]leave.RequestResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}

	return leave.ToRequestResponses(requests), nil
}

// GetMyLeaveByID implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeaveByID(ctx context.Context, id string) (leave.RequestResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	req, err := l.LeaveRepository.GetByIDForEmployee(ctx, id, employeeID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(req), nil
}

// ListLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.ListFilter) ([]leave.RequestResponse, error) {
	requests, err := l.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return leave.ToRequestResponses(requests), nil
}

func (l *LeaveServiceImpl) decide(ctx context.Context, id string, to leave.Status, adminNote string, rejectReason string) (leave.RequestResponse, error) {
	adminID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	decided, err := l.LeaveRepository.Decide(ctx, id, to, adminID, strings.TrimSpace(adminNote), strings.TrimSpace(rejectReason), l.clock.Now())
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			current, getErr := l.LeaveRepository.GetByID(ctx, id)
			if getErr != nil {
				return leave.RequestResponse{}, leave.ErrLeaveRequestNotFound
			}
			if !leave.CanTransition(current.Status, to) {
				return leave.RequestResponse{}, leave.ErrNotPending
			}
			return leave.RequestResponse{}, err
		}
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(decided), nil
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveRequest) (leave.RequestResponse, error) {
	// Approval clears any reject reason left from a previous draft.
	return l.decide(ctx, req.ID, leave.StatusApproved, req.AdminNote, "")
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectRequest) (leave.RequestResponse, error) {
	return l.decide(ctx, req.ID, leave.StatusRejected, req.AdminNote, req.RejectReason)
}

func NewLeaveService(leaveRepo leave.LeaveRepository, clk clock.Clock) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepo,
		clock:           clk,
	}
}
