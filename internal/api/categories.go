package api

import (
	"net/http"
	"time"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/service"
)

type goalCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type goalCategoryUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
}

type goalCategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toGoalCategoryResponse(c *model.GoalCategory) goalCategoryResponse {
	return goalCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		IsDefault:   c.IsDefault,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (s *Server) handleListGoalCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]goalCategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toGoalCategoryResponse(&categories[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateGoalCategory(w http.ResponseWriter, r *http.Request) {
	var req goalCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := s.categories.Create(r.Context(), service.GoalCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalCategoryResponse(category))
}

func (s *Server) handleGetGoalCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid category id"})
		return
	}

	category, err := s.categories.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalCategoryResponse(category))
}

func (s *Server) handleUpdateGoalCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid category id"})
		return
	}
	var req goalCategoryUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := s.categories.Update(r.Context(), id, service.GoalCategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalCategoryResponse(category))
}

func (s *Server) handleDeleteGoalCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid category id"})
		return
	}

	if err := s.categories.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal category deleted successfully"})
}
