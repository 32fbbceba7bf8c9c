package attendance

import (
	"context"
)

type AttendanceService interface {
	// PunchIn opens today's attendance for the authenticated employee.
	// Returns *AlreadyPunchedInError when today already has a record.
	PunchIn(ctx context.Context) (RecordResponse, error)

	// PunchOut closes today's open attendance and computes worked
	// minutes. Returns ErrNoPunchInToday when there is nothing to close
	// and *AlreadyPunchedOutError when already closed.
	PunchOut(ctx context.Context) (RecordResponse, error)

	// GetToday returns today's records for the authenticated employee:
	// zero before the first punch-in, one after. An empty day is not an
	// error.
	GetToday(ctx context.Context) ([]RecordResponse, error)

	// GetMyHistory returns the authenticated employee's recent records
	GetMyHistory(ctx context.Context) ([]RecordResponse, error)

	// TodayPresence returns every employee paired with today's
	// attendance, plus presence counts. Admin surface.
	TodayPresence(ctx context.Context) (PresenceResponse, error)

	// UpsertToday creates or replaces an employee's record for the work
	// date derived from the given punch-in. Admin surface.
	UpsertToday(ctx context.Context, req AdminUpsertRequest) (RecordResponse, error)

	// UpdateRecordTimes edits the punch times of an existing record,
	// re-deriving minutes and status. Admin surface.
	UpdateRecordTimes(ctx context.Context, req AdminUpdateTimesRequest) (RecordResponse, error)
}
