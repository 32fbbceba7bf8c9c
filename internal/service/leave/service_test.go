package leave

import (
	"context"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/clock"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests map[string]leave.Request
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.Request)}
}

func (f *fakeLeaveRepo) CreateIfNoOverlap(_ context.Context, req leave.Request) (leave.Request, error) {
	for _, existing := range f.requests {
		if existing.EmployeeID != req.EmployeeID || existing.Status == leave.StatusCancelled {
			continue
		}
		if leave.Overlaps(existing.FromDate, existing.ToDate, req.FromDate, req.ToDate) {
			return leave.Request{}, leave.ErrOverlappingLeave
		}
	}
	f.nextID++
	req.ID = string(rune('a' + f.nextID))
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) GetByIDForEmployee(_ context.Context, id string, employeeID string) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok || req.EmployeeID != employeeID {
		return leave.Request{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string, filter leave.ListFilter) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeLeaveRepo) Decide(_ context.Context, id string, to leave.Status, decidedBy string, adminNote string, rejectReason string, decidedAt time.Time) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok || req.Status != leave.StatusPending {
		return leave.Request{}, leave.ErrLeaveRequestNotFound
	}
	req.Status = to
	req.AdminNote = adminNote
	req.RejectReason = rejectReason
	req.DecidedBy = &decidedBy
	req.DecidedAt = &decidedAt
	f.requests[id] = req
	return req, nil
}

func (f *fakeLeaveRepo) CancelPending(_ context.Context, id string, employeeID string, cancelReason string) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok || req.EmployeeID != employeeID || req.Status != leave.StatusPending {
		return leave.Request{}, leave.ErrLeaveRequestNotFound
	}
	req.Status = leave.StatusCancelled
	req.CancelReason = cancelReason
	f.requests[id] = req
	return req, nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"name":    "Test User",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

const (
	empID   = "11111111-1111-4111-8111-111111111111"
	adminID = "99999999-9999-4999-8999-999999999999"
)

func newTestService() (leave.LeaveService, *fakeLeaveRepo) {
	repo := newFakeLeaveRepo()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewLeaveService(repo, clock.Fixed{T: now})
	return svc, repo
}

func apply(t *testing.T, svc leave.LeaveService, ctx context.Context, from, to string) leave.RequestResponse {
	t.Helper()
	resp, err := svc.Apply(ctx, leave.ApplyRequest{
		LeaveType:   "Annual",
		FromDate:    from,
		ToDate:      to,
		Description: "family trip",
	})
	require.NoError(t, err)
	return resp
}

func TestApply_CreatesPendingRequest(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, empID)

	resp := apply(t, svc, ctx, "2026-03-10", "2026-03-12")

	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, "2026-03-10", resp.FromDate)
	assert.Equal(t, "2026-03-12", resp.ToDate)
	assert.Empty(t, resp.AdminNote)
	assert.Nil(t, resp.DecidedBy)
}

func TestApply_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, empID)

	_, err := svc.Apply(ctx, leave.ApplyRequest{
		LeaveType:   "Vacation",
		FromDate:    "2026-03-12",
		ToDate:      "2026-03-10",
		Description: "",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "leave_type")
	assert.Contains(t, m, "to_date")
}

func TestApply_DescriptionOptional(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, empID)

	resp, err := svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "Sick",
		FromDate:  "2026-03-10",
		ToDate:    "2026-03-10",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Description)
	assert.Equal(t, "Pending", resp.Status)
}

func TestApply_RejectsOverlap(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, empID)

	apply(t, svc, ctx, "2026-03-10", "2026-03-12")

	// Shares the boundary day with the first request.
	_, err := svc.Apply(ctx, leave.ApplyRequest{
		LeaveType:   "Sick",
		FromDate:    "2026-03-12",
		ToDate:      "2026-03-14",
		Description: "flu",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestApply_OtherEmployeeUnaffected(t *testing.T) {
	svc, _ := newTestService()

	apply(t, svc, authedContext(t, empID), "2026-03-10", "2026-03-12")
	apply(t, svc, authedContext(t, adminID), "2026-03-10", "2026-03-12")
}

func TestApply_CancelledDoesNotBlock(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, empID)

	first := apply(t, svc, ctx, "2026-03-10", "2026-03-12")
	_, err := svc.Cancel(ctx, leave.CancelRequest{ID: first.ID, CancelReason: "plans changed"})
	require.NoError(t, err)

	apply(t, svc, ctx, "2026-03-10", "2026-03-12")
}

func TestCancel_PendingOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, empID)

	created := apply(t, svc, ctx, "2026-03-10", "2026-03-12")

	resp, err := svc.Cancel(ctx, leave.CancelRequest{ID: created.ID, CancelReason: "plans changed"})
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", resp.Status)
	assert.Equal(t, "plans changed", resp.CancelReason)

	// Terminal: cancelling again fails.
	_, err = svc.Cancel(ctx, leave.CancelRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrNotPending)
}

func TestCancel_OtherEmployeesRequest(t *testing.T) {
	svc, _ := newTestService()

	created := apply(t, svc, authedContext(t, empID), "2026-03-10", "2026-03-12")

	_, err := svc.Cancel(authedContext(t, adminID), leave.CancelRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestApprove_StampsAuditFields(t *testing.T) {
	svc, _ := newTestService()

	created := apply(t, svc, authedContext(t, empID), "2026-03-10", "2026-03-12")

	resp, err := svc.Approve(authedContext(t, adminID), leave.ApproveRequest{ID: created.ID, AdminNote: "  enjoy  "})
	require.NoError(t, err)

	assert.Equal(t, "Approved", resp.Status)
	assert.Equal(t, "enjoy", resp.AdminNote)
	assert.Empty(t, resp.RejectReason)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, adminID, *resp.DecidedBy)
	assert.NotNil(t, resp.DecidedAt)
}

func TestReject_KeepsReason(t *testing.T) {
	svc, _ := newTestService()

	created := apply(t, svc, authedContext(t, empID), "2026-03-10", "2026-03-12")

	resp, err := svc.Reject(authedContext(t, adminID), leave.RejectRequest{
		ID:           created.ID,
		AdminNote:    "peak season",
		RejectReason: "coverage",
	})
	require.NoError(t, err)

	assert.Equal(t, "Rejected", resp.Status)
	assert.Equal(t, "peak season", resp.AdminNote)
	assert.Equal(t, "coverage", resp.RejectReason)
}

func TestApprove_CancelledRequest(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, empID)

	created := apply(t, svc, ctx, "2026-03-10", "2026-03-12")
	_, err := svc.Cancel(ctx, leave.CancelRequest{ID: created.ID})
	require.NoError(t, err)

	_, err = svc.Approve(authedContext(t, adminID), leave.ApproveRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrNotPending)
}

func TestApprove_MissingRequest(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Approve(authedContext(t, adminID), leave.ApproveRequest{ID: "nope"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestGetMyLeaves_FiltersByStatus(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, empID)

	first := apply(t, svc, ctx, "2026-03-10", "2026-03-12")
	apply(t, svc, ctx, "2026-04-01", "2026-04-02")

	_, err := svc.Approve(authedContext(t, adminID), leave.ApproveRequest{ID: first.ID})
	require.NoError(t, err)

	pending := leave.StatusPending
	mine, err := svc.GetMyLeaves(ctx, leave.ListFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "2026-04-01", mine[0].FromDate)

	all, err := svc.GetMyLeaves(ctx, leave.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetMyLeaveByID_ScopedToOwner(t *testing.T) {
	svc, _ := newTestService()

	created := apply(t, svc, authedContext(t, empID), "2026-03-10", "2026-03-12")

	resp, err := svc.GetMyLeaveByID(authedContext(t, empID), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)

	_, err = svc.GetMyLeaveByID(authedContext(t, adminID), created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
