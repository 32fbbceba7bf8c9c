package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/clock"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

const historyLimit = 30

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// PunchIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchIn(ctx context.Context) (attendance.RecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := a.clock.Now()
	workDate := clock.WorkDate(now, a.clock.Location())

	rec := attendance.Record{
		EmployeeID:  employeeID,
		WorkDate:    workDate,
		PunchedInAt: now,
		Status:      attendance.StatusIn,
	}

	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		// The unique index is the arbiter; on conflict return the
		// record that won so the client can display it.
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			existing, getErr := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, workDate)
			if getErr != nil {
				return attendance.RecordResponse{}, fmt.Errorf("failed to load existing attendance record: %w", getErr)
			}
			return attendance.RecordResponse{}, &attendance.AlreadyPunchedInError{Existing: existing}
		}
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(created), nil
}

// PunchOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchOut(ctx context.Context) (attendance.RecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := a.clock.Now()
	workDate := clock.WorkDate(now, a.clock.Location())

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, workDate)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrNoPunchInToday
		}
		return attendance.RecordResponse{}, err
	}

	if rec.PunchedOutAt != nil {
		return attendance.RecordResponse{}, &attendance.AlreadyPunchedOutError{Existing: rec}
	}

	rec.PunchedOutAt = &now
	rec.TotalMinutes = attendance.WorkedMinutes(rec.PunchedInAt, rec.PunchedOutAt)
	rec.Status = attendance.StatusOut

	updated, err := a.AttendanceRepository.Update(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(updated), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) ([]attendance.RecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workDate := clock.WorkDate(a.clock.Now(), a.clock.Location())

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, workDate)
	if err != nil {
		// Before the first punch-in the day is simply empty.
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return []attendance.RecordResponse{}, nil
		}
		return nil, err
	}

	return []attendance.RecordResponse{attendance.ToRecordResponse(rec)}, nil
}

// GetMyHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyHistory(ctx context.Context) ([]attendance.RecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID, historyLimit)
	if err != nil {
		return nil, err
	}

	return attendance.ToRecordResponses(records), nil
}

// TodayPresence implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TodayPresence(ctx context.Context) (attendance.PresenceResponse, error) {
	workDate := clock.WorkDate(a.clock.Now(), a.clock.Location())

	employees, err := a.EmployeeRepository.ListEmployees(ctx)
	if err != nil {
		return attendance.PresenceResponse{}, err
	}

	records, err := a.AttendanceRepository.ListByDate(ctx, workDate)
	if err != nil {
		return attendance.PresenceResponse{}, err
	}

	byEmployee := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	resp := attendance.PresenceResponse{
		WorkDate: workDate,
		Rows:     make([]attendance.PresenceRow, 0, len(employees)),
	}
	resp.Summary.Total = len(employees)

	for _, emp := range employees {
		row := attendance.PresenceRow{
			EmployeeID:     emp.ID,
			Name:           emp.Name,
			Email:          emp.Email,
			EmployeeCode:   emp.EmployeeCode,
			DepartmentName: emp.DepartmentName,
		}
		if rec, ok := byEmployee[emp.ID]; ok {
			recResp := attendance.ToRecordResponse(rec)
			row.Attendance = &recResp
			row.Present = true
			row.InNow = rec.Status == attendance.StatusIn
			resp.Summary.Present++
			if row.InNow {
				resp.Summary.InNow++
			}
		}
		resp.Rows = append(resp.Rows, row)
	}
	resp.Summary.Absent = resp.Summary.Total - resp.Summary.Present

	return resp, nil
}

// UpsertToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpsertToday(ctx context.Context, req attendance.AdminUpsertRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	// The override only targets employee-role identities.
	if _, err := a.EmployeeRepository.GetEmployeeByID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	punchedIn, _ := validator.IsValidDateTime(req.PunchedInAt)

	var punchedOut *time.Time
	if req.PunchedOutAt != nil && !validator.IsEmpty(*req.PunchedOutAt) {
		t, _ := validator.IsValidDateTime(*req.PunchedOutAt)
		punchedOut = &t
	}

	// The work date follows the supplied punch-in, not the wall clock,
	// so backdated corrections land on the right day.
	workDate := clock.WorkDate(punchedIn, a.clock.Location())
	totalMinutes := attendance.WorkedMinutes(punchedIn, punchedOut)
	status := attendance.StatusFor(punchedOut)

	rec, err := a.AttendanceRepository.UpsertForDate(ctx, req.EmployeeID, workDate, punchedIn, punchedOut, totalMinutes, status)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(rec), nil
}

// UpdateRecordTimes implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateRecordTimes(ctx context.Context, req attendance.AdminUpdateTimesRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.PunchedInAt != nil {
		t, _ := validator.IsValidDateTime(*req.PunchedInAt)
		rec.PunchedInAt = t
	}

	if req.ClearsPunchOut() {
		rec.PunchedOutAt = nil
	} else if req.PunchedOutAt.Set {
		t, _ := validator.IsValidDateTime(*req.PunchedOutAt.Value)
		rec.PunchedOutAt = &t
	}

	if rec.PunchedOutAt != nil && rec.PunchedOutAt.Before(rec.PunchedInAt) {
		return attendance.RecordResponse{}, validator.ValidationErrors{
			{Field: "punched_out_at", Message: "punched_out_at cannot be earlier than punched_in_at"},
		}
	}

	rec.TotalMinutes = attendance.WorkedMinutes(rec.PunchedInAt, rec.PunchedOutAt)
	rec.Status = attendance.StatusFor(rec.PunchedOutAt)

	updated, err := a.AttendanceRepository.Update(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(updated), nil
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
	}
}
