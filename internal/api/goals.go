package api

import (
	"net/http"
	"time"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/service"
)

type goalCreateRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	TargetDate  *time.Time `json:"target_date"`
	IsSmart     bool       `json:"is_smart"`
	Specific    string     `json:"specific"`
	Measurable  string     `json:"measurable"`
	Achievable  string     `json:"achievable"`
	Relevant    string     `json:"relevant"`
	TimeBound   string     `json:"time_bound"`
}

type goalUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	TargetDate  *time.Time `json:"target_date"`
	Progress    *float64   `json:"progress"`
	Status      *string    `json:"status"`
	Specific    *string    `json:"specific"`
	Measurable  *string    `json:"measurable"`
	Achievable  *string    `json:"achievable"`
	Relevant    *string    `json:"relevant"`
	TimeBound   *string    `json:"time_bound"`
}

type goalResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	TargetDate  *time.Time `json:"target_date"`
	Progress    float64    `json:"progress"`
	Status      string     `json:"status"`
	IsSmart     bool       `json:"is_smart"`
	Specific    string     `json:"specific"`
	Measurable  string     `json:"measurable"`
	Achievable  string     `json:"achievable"`
	Relevant    string     `json:"relevant"`
	TimeBound   string     `json:"time_bound"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type milestoneRequest struct {
	GoalID      uint       `json:"goal_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
}

type milestoneUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	Completed   *bool      `json:"completed"`
}

type milestoneResponse struct {
	ID          uint       `json:"id"`
	GoalID      uint       `json:"goal_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

type goalWithMilestonesResponse struct {
	goalResponse
	Milestones []milestoneResponse `json:"milestones"`
}

func toGoalResponse(goal *model.Goal) goalResponse {
	return goalResponse{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		Category:    goal.Category,
		TargetDate:  goal.TargetDate,
		Progress:    goal.Progress,
		Status:      goal.Status,
		IsSmart:     goal.IsSmart,
		Specific:    goal.Specific,
		Measurable:  goal.Measurable,
		Achievable:  goal.Achievable,
		Relevant:    goal.Relevant,
		TimeBound:   goal.TimeBound,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}

func toMilestoneResponse(m *model.Milestone) milestoneResponse {
	return milestoneResponse{
		ID:          m.ID,
		GoalID:      m.GoalID,
		Title:       m.Title,
		Description: m.Description,
		TargetDate:  m.TargetDate,
		Completed:   m.Completed,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := s.goals.CreateGoal(r.Context(), service.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		IsSmart:     req.IsSmart,
		Specific:    req.Specific,
		Measurable:  req.Measurable,
		Achievable:  req.Achievable,
		Relevant:    req.Relevant,
		TimeBound:   req.TimeBound,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.goals.ListGoals(r.Context(), r.URL.Query().Get("status"), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]goalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, toGoalResponse(&goals[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGoalsWithMilestones(w http.ResponseWriter, r *http.Request) {
	goals, err := s.goals.ListGoalsWithMilestones(r.Context(), r.URL.Query().Get("status"), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]goalWithMilestonesResponse, 0, len(goals))
	for i := range goals {
		milestones := make([]milestoneResponse, 0, len(goals[i].Milestones))
		for j := range goals[i].Milestones {
			milestones = append(milestones, toMilestoneResponse(&goals[i].Milestones[j]))
		}
		out = append(out, goalWithMilestonesResponse{
			goalResponse: toGoalResponse(&goals[i].Goal),
			Milestones:   milestones,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid goal id"})
		return
	}

	goal, err := s.goals.GetGoal(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid goal id"})
		return
	}
	var req goalUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := s.goals.UpdateGoal(r.Context(), id, service.GoalUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		Progress:    req.Progress,
		Status:      req.Status,
		Specific:    req.Specific,
		Measurable:  req.Measurable,
		Achievable:  req.Achievable,
		Relevant:    req.Relevant,
		TimeBound:   req.TimeBound,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid goal id"})
		return
	}

	if err := s.goals.DeleteGoal(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal deleted successfully"})
}

func (s *Server) handleListMilestones(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid goal id"})
		return
	}

	milestones, err := s.goals.ListMilestones(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]milestoneResponse, 0, len(milestones))
	for i := range milestones {
		out = append(out, toMilestoneResponse(&milestones[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateMilestone(w http.ResponseWriter, r *http.Request) {
	var req milestoneRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	milestone, err := s.goals.CreateMilestone(r.Context(), service.MilestoneInput{
		GoalID:      req.GoalID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMilestoneResponse(milestone))
}

func (s *Server) handleUpdateMilestone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid milestone id"})
		return
	}
	var req milestoneUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	milestone, err := s.goals.UpdateMilestone(r.Context(), id, service.MilestoneUpdate{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Completed:   req.Completed,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMilestoneResponse(milestone))
}

func (s *Server) handleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid milestone id"})
		return
	}

	if err := s.goals.DeleteMilestone(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Milestone deleted successfully"})
}
