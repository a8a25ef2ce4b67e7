package api

import (
	"net/http"
	"time"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
)

type tagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type tagResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tags.ListTags(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color, CreatedAt: tag.CreatedAt})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tag, err := s.tags.CreateTag(r.Context(), req.Name, req.Color)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color, CreatedAt: tag.CreatedAt})
}

type templateResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func toTemplateResponse(t *model.NoteTemplate) templateResponse {
	return templateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Content:     t.Content,
		Description: t.Description,
		Category:    t.Category,
	}
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.templates.ListTemplates(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]templateResponse, 0, len(templates))
	for i := range templates {
		out = append(out, toTemplateResponse(&templates[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
