package api

import (
	"net/http"
	"time"

	"gorm.io/datatypes"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
	"github.com/poornima-alugubelly/flourish-ai/internal/service"
)

type noteRequest struct {
	Date         string         `json:"date"`
	Hour         int            `json:"hour"`
	Content      string         `json:"content"`
	RichContent  datatypes.JSON `json:"rich_content,omitempty"`
	TagNames     []string       `json:"tag_names"`
	TemplateID   *string        `json:"template_id"`
	IsSleep      bool           `json:"is_sleep"`
	SleepQuality *int           `json:"sleep_quality"`
	SleepNotes   string         `json:"sleep_notes"`
}

type noteResponse struct {
	ID           uint           `json:"id"`
	Date         string         `json:"date"`
	Hour         int            `json:"hour"`
	Content      string         `json:"content"`
	RichContent  datatypes.JSON `json:"rich_content,omitempty"`
	Tags         []string       `json:"tags"`
	TemplateID   *string        `json:"template_id"`
	IsSleep      bool           `json:"is_sleep"`
	SleepQuality *int           `json:"sleep_quality"`
	SleepNotes   string         `json:"sleep_notes"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func toNoteResponse(note *model.Note) noteResponse {
	tags := make([]string, 0, len(note.Tags))
	for _, tag := range note.Tags {
		tags = append(tags, tag.Name)
	}
	return noteResponse{
		ID:           note.ID,
		Date:         note.Date,
		Hour:         note.Hour,
		Content:      note.Content,
		RichContent:  note.RichContent,
		Tags:         tags,
		TemplateID:   note.TemplateID,
		IsSleep:      note.IsSleep,
		SleepQuality: note.SleepQuality,
		SleepNotes:   note.SleepNotes,
		CreatedAt:    note.CreatedAt,
		UpdatedAt:    note.UpdatedAt,
	}
}

func noteInputFromRequest(req noteRequest) service.NoteInput {
	return service.NoteInput{
		Date:         req.Date,
		Hour:         req.Hour,
		Content:      req.Content,
		RichContent:  req.RichContent,
		TagNames:     req.TagNames,
		TemplateID:   req.TemplateID,
		IsSleep:      req.IsSleep,
		SleepQuality: req.SleepQuality,
		SleepNotes:   req.SleepNotes,
	}
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := s.notes.CreateNote(r.Context(), noteInputFromRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid note id"})
		return
	}
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := s.notes.UpdateNote(r.Context(), id, noteInputFromRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	filter := repository.NoteFilter{
		Date:   r.URL.Query().Get("date"),
		Tag:    r.URL.Query().Get("tag"),
		Search: r.URL.Query().Get("search"),
	}

	notes, err := s.notes.ListNotes(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]noteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

type hourSlotResponse struct {
	Time         int            `json:"time"`
	ID           *uint          `json:"id"`
	Note         string         `json:"note"`
	RichContent  datatypes.JSON `json:"rich_content,omitempty"`
	Tags         []string       `json:"tags"`
	TemplateID   *string        `json:"template_id"`
	IsSleep      bool           `json:"is_sleep"`
	SleepQuality *int           `json:"sleep_quality"`
	SleepNotes   string         `json:"sleep_notes"`
}

func (s *Server) handleNotesByDate(w http.ResponseWriter, r *http.Request) {
	slots, err := s.notes.DayView(r.Context(), r.PathValue("date"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]hourSlotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, hourSlotResponse{
			Time:         slot.Time,
			ID:           slot.ID,
			Note:         slot.Note,
			RichContent:  slot.RichContent,
			Tags:         slot.Tags,
			TemplateID:   slot.TemplateID,
			IsSleep:      slot.IsSleep,
			SleepQuality: slot.SleepQuality,
			SleepNotes:   slot.SleepNotes,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
