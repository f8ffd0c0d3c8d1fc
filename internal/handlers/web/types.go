package web

import (
	"errors"
)

// Admin actions accepted by POST /api/game
const (
	ActionAddParticipant    = "ADD_PARTICIPANT"
	ActionRemoveParticipant = "REMOVE_PARTICIPANT"
	ActionStartGame         = "START_GAME"
	ActionRestartGame       = "RESTART_GAME"
	ActionResetGame         = "RESET_GAME"
)

// Request validation errors
var (
	ErrNameRequired          = errors.New("name is required")
	ErrParticipantIDRequired = errors.New("participant ID is required")
	ErrPlayerNameRequired    = errors.New("player name is required")
	ErrInvalidAction         = errors.New("invalid action")
)

// adminActionRequest is the tagged request body for POST /api/game. The
// action discriminates which fields are required; validation happens here so
// the service only ever sees well-typed arguments.
type adminActionRequest struct {
	Action        string `json:"action"`
	Name          string `json:"name,omitempty"`
	ParticipantID string `json:"participantId,omitempty"`
}

func (r *adminActionRequest) validate() error {
	switch r.Action {
	case ActionAddParticipant:
		if r.Name == "" {
			return ErrNameRequired
		}
	case ActionRemoveParticipant:
		if r.ParticipantID == "" {
			return ErrParticipantIDRequired
		}
	case ActionStartGame, ActionRestartGame, ActionResetGame:
	default:
		return ErrInvalidAction
	}
	return nil
}

// revealRequest is the body for POST /api/reveal. An empty targetId means
// "reveal my pre-assigned match"; a present targetId means "claim this target".
type revealRequest struct {
	PlayerName string `json:"playerName"`
	TargetID   string `json:"targetId,omitempty"`
}

func (r *revealRequest) validate() error {
	if r.PlayerName == "" {
		return ErrPlayerNameRequired
	}
	return nil
}

// assignedTo is the public-safe projection of a gift recipient
type assignedTo struct {
	Name     string `json:"name"`
	AvatarID string `json:"avatarId"`
}

// revealResponse is the payload returned by POST /api/reveal
type revealResponse struct {
	AssignedTo      assignedTo `json:"assignedTo"`
	AlreadyRevealed bool       `json:"alreadyRevealed"`
}
