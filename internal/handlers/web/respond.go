package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/hollyberry/giftswap/internal/engine"
	"github.com/hollyberry/giftswap/internal/repositories/gamestate"
)

// apiResponse is the envelope every endpoint returns
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Infrastructure detail stays in the log, not the response
		log.Printf("request failed: %v", err)
		message = "internal error"
	}
	writeJSON(w, status, apiResponse{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// statusForError maps failure kinds to HTTP status codes: rule violations are
// 400, missing players/participants 404, lock contention 503 (retryable),
// anything infrastructural 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, gamestate.ErrLockTimeout):
		return http.StatusServiceUnavailable
	case errors.Is(err, engine.ErrPlayerNotFound),
		errors.Is(err, engine.ErrParticipantNotFound):
		return http.StatusNotFound
	}

	var gameErr engine.GameError
	if errors.As(err, &gameErr) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrParticipantIDRequired),
		errors.Is(err, ErrPlayerNameRequired),
		errors.Is(err, ErrInvalidAction):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
