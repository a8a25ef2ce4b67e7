package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/service"
)

type sleepScheduleRequest struct {
	StartHour      int  `json:"start_hour"`
	EndHour        int  `json:"end_hour"`
	DefaultQuality *int `json:"default_quality"`
}

type sleepScheduleUpdateRequest struct {
	StartHour      *int  `json:"start_hour"`
	EndHour        *int  `json:"end_hour"`
	DefaultQuality *int  `json:"default_quality"`
	IsActive       *bool `json:"is_active"`
}

type sleepScheduleResponse struct {
	ID             uint      `json:"id"`
	StartHour      int       `json:"start_hour"`
	EndHour        int       `json:"end_hour"`
	DefaultQuality *int      `json:"default_quality"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toSleepScheduleResponse(s *model.SleepSchedule) sleepScheduleResponse {
	return sleepScheduleResponse{
		ID:             s.ID,
		StartHour:      s.StartHour,
		EndHour:        s.EndHour,
		DefaultQuality: s.DefaultQuality,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (s *Server) handleGetSleepSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := s.sleep.Active(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if schedule == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, toSleepScheduleResponse(schedule))
}

func (s *Server) handleSetSleepSchedule(w http.ResponseWriter, r *http.Request) {
	var req sleepScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	schedule, err := s.sleep.SetSchedule(r.Context(), service.SleepInput{
		StartHour:      req.StartHour,
		EndHour:        req.EndHour,
		DefaultQuality: req.DefaultQuality,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSleepScheduleResponse(schedule))
}

func (s *Server) handleUpdateSleepSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid schedule id"})
		return
	}
	var req sleepScheduleUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	schedule, err := s.sleep.UpdateSchedule(r.Context(), id, service.SleepUpdate{
		StartHour:      req.StartHour,
		EndHour:        req.EndHour,
		DefaultQuality: req.DefaultQuality,
		IsActive:       req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSleepScheduleResponse(schedule))
}

type applySleepResponse struct {
	Message    string `json:"message"`
	SleepHours []int  `json:"sleep_hours"`
}

func (s *Server) handleApplySleepSchedule(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	hours, err := s.sleep.ApplyToDate(r.Context(), date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, applySleepResponse{
		Message:    fmt.Sprintf("Applied sleep schedule to %s", date),
		SleepHours: hours,
	})
}
