package api

import (
	"net/http"
	"time"

	"github.com/poornima-alugubelly/flourish-ai/internal/service"
)

type notesExportResponse struct {
	Notes      []service.ExportedNote `json:"notes"`
	ExportedAt string                 `json:"exported_at"`
	TotalNotes int                    `json:"total_notes"`
}

type goalsExportResponse struct {
	Goals      []service.ExportedGoal `json:"goals"`
	ExportedAt string                 `json:"exported_at"`
	TotalGoals int                    `json:"total_goals"`
}

type csvExportResponse struct {
	CSVData string `json:"csv_data"`
}

func (s *Server) handleExportNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = "json"
	}

	switch format {
	case "json":
		notes, err := s.export.Notes(r.Context(), q.Get("start_date"), q.Get("end_date"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, notesExportResponse{
			Notes:      notes,
			ExportedAt: time.Now().Format(time.RFC3339),
			TotalNotes: len(notes),
		})
	case "csv":
		data, err := s.export.NotesCSV(r.Context(), q.Get("start_date"), q.Get("end_date"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, csvExportResponse{CSVData: data})
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "format must be json or csv"})
	}
}

func (s *Server) handleExportGoals(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	switch format {
	case "json":
		goals, err := s.export.Goals(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, goalsExportResponse{
			Goals:      goals,
			ExportedAt: time.Now().Format(time.RFC3339),
			TotalGoals: len(goals),
		})
	case "csv":
		data, err := s.export.GoalsCSV(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, csvExportResponse{CSVData: data})
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "format must be json or csv"})
	}
}
