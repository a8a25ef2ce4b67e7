package api

import (
	"net/http"

	"github.com/poornima-alugubelly/flourish-ai/internal/service"
)

type planDayRequest struct {
	Date           string `json:"date"`
	WakeHour       *int   `json:"wake_hour"`
	SleepHour      *int   `json:"sleep_hour"`
	FocusHours     *int   `json:"focus_hours"`
	BreakFrequency *int   `json:"break_frequency_minutes"`
}

type planDayResponse struct {
	Date     string             `json:"date"`
	Source   string             `json:"source"`
	Schedule []service.TimeSlot `json:"schedule"`
}

func (s *Server) handlePlanDay(w http.ResponseWriter, r *http.Request) {
	var req planDayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prefs := service.DefaultPlanPreferences()
	if req.WakeHour != nil {
		prefs.WakeHour = *req.WakeHour
	}
	if req.SleepHour != nil {
		prefs.SleepHour = *req.SleepHour
	}
	if req.FocusHours != nil {
		prefs.FocusHours = *req.FocusHours
	}
	if req.BreakFrequency != nil {
		prefs.BreakFrequency = *req.BreakFrequency
	}

	result, err := s.planner.PlanDay(r.Context(), req.Date, prefs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, planDayResponse{
		Date:     result.Date,
		Source:   result.Source,
		Schedule: result.Slots,
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := s.analytics.Analyze(r.Context(), q.Get("start_date"), q.Get("end_date"), q.Get("analysis_type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
