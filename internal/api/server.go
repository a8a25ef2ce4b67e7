// Package api is the HTTP transport over the service layer: request
// decoding, response shaping and error-to-status mapping. No business
// rules live here.
package api

import (
	"net/http"
	"strconv"

	"github.com/poornima-alugubelly/flourish-ai/internal/service"
)

// Server bundles the services behind the HTTP API.
type Server struct {
	notes       *service.NoteService
	goals       *service.GoalService
	categories  *service.GoalCategoryService
	tags        *service.TagService
	templates   *service.TemplateService
	sleep       *service.SleepService
	analysis    *service.AnalysisService
	analytics   *service.AnalyticsService
	planner     *service.PlannerService
	export      *service.ExportService
	corsOrigins []string
}

func NewServer(
	notes *service.NoteService,
	goals *service.GoalService,
	categories *service.GoalCategoryService,
	tags *service.TagService,
	templates *service.TemplateService,
	sleep *service.SleepService,
	analysis *service.AnalysisService,
	analytics *service.AnalyticsService,
	planner *service.PlannerService,
	export *service.ExportService,
	corsOrigins []string,
) *Server {
	return &Server{
		notes:       notes,
		goals:       goals,
		categories:  categories,
		tags:        tags,
		templates:   templates,
		sleep:       sleep,
		analysis:    analysis,
		analytics:   analytics,
		planner:     planner,
		export:      export,
		corsOrigins: corsOrigins,
	}
}

// Handler builds the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /notes", s.handleCreateNote)
	mux.HandleFunc("GET /notes", s.handleListNotes)
	mux.HandleFunc("GET /notes/date/{date}", s.handleNotesByDate)
	mux.HandleFunc("PUT /notes/{id}", s.handleUpdateNote)

	mux.HandleFunc("POST /goals", s.handleCreateGoal)
	mux.HandleFunc("GET /goals", s.handleListGoals)
	mux.HandleFunc("GET /goals-with-milestones", s.handleGoalsWithMilestones)
	mux.HandleFunc("GET /goals/{id}", s.handleGetGoal)
	mux.HandleFunc("PUT /goals/{id}", s.handleUpdateGoal)
	mux.HandleFunc("DELETE /goals/{id}", s.handleDeleteGoal)
	mux.HandleFunc("GET /goals/{id}/milestones", s.handleListMilestones)

	mux.HandleFunc("POST /milestones", s.handleCreateMilestone)
	mux.HandleFunc("PUT /milestones/{id}", s.handleUpdateMilestone)
	mux.HandleFunc("DELETE /milestones/{id}", s.handleDeleteMilestone)

	mux.HandleFunc("GET /goal-categories", s.handleListGoalCategories)
	mux.HandleFunc("POST /goal-categories", s.handleCreateGoalCategory)
	mux.HandleFunc("GET /goal-categories/{id}", s.handleGetGoalCategory)
	mux.HandleFunc("PUT /goal-categories/{id}", s.handleUpdateGoalCategory)
	mux.HandleFunc("DELETE /goal-categories/{id}", s.handleDeleteGoalCategory)

	mux.HandleFunc("GET /tags", s.handleListTags)
	mux.HandleFunc("POST /tags", s.handleCreateTag)
	mux.HandleFunc("GET /templates", s.handleListTemplates)

	mux.HandleFunc("GET /sleep-schedule", s.handleGetSleepSchedule)
	mux.HandleFunc("POST /sleep-schedule", s.handleSetSleepSchedule)
	mux.HandleFunc("PUT /sleep-schedule/{id}", s.handleUpdateSleepSchedule)
	mux.HandleFunc("POST /apply-sleep-schedule/{date}", s.handleApplySleepSchedule)

	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /analysis/history", s.handleAnalysisHistory)
	mux.HandleFunc("POST /generate-smart-field", s.handleGenerateSMARTField)

	mux.HandleFunc("POST /plan-day", s.handlePlanDay)
	mux.HandleFunc("GET /analytics", s.handleAnalytics)

	mux.HandleFunc("GET /export/notes", s.handleExportNotes)
	mux.HandleFunc("GET /export/goals", s.handleExportGoals)

	return withLogging(withCORS(s.corsOrigins, mux))
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
