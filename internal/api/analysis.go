package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/poornima-alugubelly/flourish-ai/internal/service"
)

type analyzeRequest struct {
	Notes []service.HourNote `json:"notes"`
	Goals string             `json:"goals"`
	Date  string             `json:"date"`
}

type analyzeResponse struct {
	Analysis       string  `json:"analysis"`
	ProcessingTime float64 `json:"processing_time"`
	Date           string  `json:"date"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := s.analysis.Analyze(r.Context(), service.AnalyzeInput{
		Notes: req.Notes,
		Goals: req.Goals,
		Date:  req.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{
		Analysis:       result.Analysis,
		ProcessingTime: result.ProcessingTime,
		Date:           result.Date,
	})
}

type analysisHistoryEntry struct {
	ID             uint      `json:"id"`
	Date           string    `json:"date"`
	Analysis       string    `json:"analysis"`
	ProcessingTime float64   `json:"processing_time"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *Server) handleAnalysisHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid limit"})
			return
		}
		limit = parsed
	}

	analyses, err := s.analysis.History(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]analysisHistoryEntry, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, analysisHistoryEntry{
			ID:             a.ID,
			Date:           a.Date,
			Analysis:       a.AIResponse,
			ProcessingTime: a.ProcessingTime,
			CreatedAt:      a.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type smartFieldRequest struct {
	GoalTitle       string            `json:"goal_title"`
	FieldType       string            `json:"field_type"`
	Category        string            `json:"category"`
	ExistingContent map[string]string `json:"existing_content"`
}

type smartFieldResponse struct {
	FieldType        string `json:"field_type"`
	GeneratedContent string `json:"generated_content"`
	GoalTitle        string `json:"goal_title"`
	FallbackUsed     bool   `json:"fallback_used,omitempty"`
}

func (s *Server) handleGenerateSMARTField(w http.ResponseWriter, r *http.Request) {
	var req smartFieldRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := s.analysis.GenerateSMARTField(r.Context(), service.SMARTFieldInput{
		GoalTitle: req.GoalTitle,
		FieldType: req.FieldType,
		Category:  req.Category,
		Existing:  req.ExistingContent,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, smartFieldResponse{
		FieldType:        result.FieldType,
		GeneratedContent: result.Content,
		GoalTitle:        result.GoalTitle,
		FallbackUsed:     result.FallbackUsed,
	})
}
