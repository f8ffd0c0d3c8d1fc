package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	gameService "github.com/hollyberry/giftswap/internal/services/game"
)

// Handler translates the JSON API into game service calls
type Handler struct {
	service gameService.Service
}

// Config holds configuration for the web handler
type Config struct {
	GameService gameService.Service
}

// New creates a new web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	return &Handler{service: cfg.GameService}, nil
}

// RegisterRoutes mounts the API endpoints on the router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/game", h.getGame)
		r.Post("/game", h.postGame)
		r.Post("/reveal", h.postReveal)
	})
}

// getGame serves three read views: the public name list for the intro screen
// (?publicNames=true), a player's filtered view (?player=<name>), and the full
// admin state
func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ctx := r.Context()

	if query.Get("publicNames") == "true" {
		out, err := h.service.GetParticipantNames(ctx, &gameService.GetParticipantNamesInput{})
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, out.Names)
		return
	}

	if player := query.Get("player"); player != "" && query.Get("admin") != "true" {
		out, err := h.service.GetPlayerView(ctx, &gameService.GetPlayerViewInput{
			PlayerName: player,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, out.View)
		return
	}

	out, err := h.service.GetGame(ctx, &gameService.GetGameInput{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, out.State)
}

// postGame applies one admin action to the game
func (h *Handler) postGame(w http.ResponseWriter, r *http.Request) {
	var req adminActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, ErrInvalidAction)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()

	switch req.Action {
	case ActionAddParticipant:
		out, err := h.service.AddParticipant(ctx, &gameService.AddParticipantInput{Name: req.Name})
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, out.State)

	case ActionRemoveParticipant:
		out, err := h.service.RemoveParticipant(ctx, &gameService.RemoveParticipantInput{
			ParticipantID: req.ParticipantID,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, out.State)

	case ActionStartGame:
		out, err := h.service.StartGame(ctx, &gameService.StartGameInput{})
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, out.State)

	case ActionRestartGame:
		out, err := h.service.RestartGame(ctx, &gameService.RestartGameInput{})
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, out.State)

	case ActionResetGame:
		out, err := h.service.ResetGame(ctx, &gameService.ResetGameInput{})
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, out.State)
	}
}

// postReveal settles a player's match: a reveal of the pre-assigned target
// when no targetId is supplied, a choice-mode claim when one is
func (h *Handler) postReveal(w http.ResponseWriter, r *http.Request) {
	var req revealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, ErrPlayerNameRequired)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()

	if req.TargetID == "" {
		out, err := h.service.RevealAssignment(ctx, &gameService.RevealAssignmentInput{
			PlayerName: req.PlayerName,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, revealResponse{
			AssignedTo:      assignedTo{Name: out.TargetName, AvatarID: out.TargetAvatarID},
			AlreadyRevealed: out.AlreadyRevealed,
		})
		return
	}

	out, err := h.service.ChooseAssignment(ctx, &gameService.ChooseAssignmentInput{
		PlayerName: req.PlayerName,
		TargetID:   req.TargetID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, revealResponse{
		AssignedTo:      assignedTo{Name: out.TargetName, AvatarID: out.TargetAvatarID},
		AlreadyRevealed: out.AlreadyRevealed,
	})
}
