package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetMyHistory(w http.ResponseWriter, r *http.Request)

	TodayPresence(w http.ResponseWriter, r *http.Request)
	UpsertToday(w http.ResponseWriter, r *http.Request)
	UpdateRecordTimes(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// PunchIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	record, err := a.attendanceService.PunchIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in successfully", record)
}

// PunchOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	record, err := a.attendanceService.PunchOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out successfully", record)
}

// GetToday implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	records, err := a.attendanceService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetMyHistory implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	records, err := a.attendanceService.GetMyHistory(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// TodayPresence implements AttendanceHandler.
func (a *AttendanceHandlerImpl) TodayPresence(w http.ResponseWriter, r *http.Request) {
	presence, err := a.attendanceService.TodayPresence(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, presence)
}

// UpsertToday implements AttendanceHandler.
func (a *AttendanceHandlerImpl) UpsertToday(w http.ResponseWriter, r *http.Request) {
	var req attendance.AdminUpsertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertToday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.UpsertToday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record saved successfully", record)
}

// UpdateRecordTimes implements AttendanceHandler.
func (a *AttendanceHandlerImpl) UpdateRecordTimes(w http.ResponseWriter, r *http.Request) {
	var req attendance.AdminUpdateTimesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRecordTimes decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	record, err := a.attendanceService.UpdateRecordTimes(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated successfully", record)
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}
