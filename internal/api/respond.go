package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/poornima-alugubelly/flourish-ai/internal/service"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}

// writeError maps service sentinels to HTTP statuses. Anything unmapped is
// a 500 with a generic body; the cause goes to the log, not the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: err.Error()})
	case errors.Is(err, service.ErrInvalidRange), errors.Is(err, service.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
	case errors.Is(err, service.ErrUpstreamUnavailable):
		writeJSON(w, http.StatusBadGateway, errorResponse{Detail: err.Error()})
	default:
		log.Printf("api: internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}
