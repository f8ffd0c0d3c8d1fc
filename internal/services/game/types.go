package game

import (
	"github.com/hollyberry/giftswap/internal/engine"
	"github.com/hollyberry/giftswap/internal/models"
	"github.com/hollyberry/giftswap/internal/repositories/gamestate"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependency
	StateRepo gamestate.Repository

	// Engine dependency
	Engine *engine.Engine
}

// GetGameInput contains parameters for fetching the admin view
type GetGameInput struct {
}

// GetGameOutput contains the full game state
type GetGameOutput struct {
	State *models.GameState
}

// GetPlayerViewInput contains parameters for fetching a player's view
type GetPlayerViewInput struct {
	// PlayerName is matched case-insensitively against the roster
	PlayerName string
}

// GetPlayerViewOutput contains the privacy-filtered view
type GetPlayerViewOutput struct {
	View *engine.PlayerView
}

// GetParticipantNamesInput contains parameters for the public name list
type GetParticipantNamesInput struct {
}

// GetParticipantNamesOutput contains participant display names in add order
type GetParticipantNamesOutput struct {
	Names []string
}

// AddParticipantInput contains parameters for registering a participant
type AddParticipantInput struct {
	// Name is the display name as entered by the admin
	Name string
}

// AddParticipantOutput contains the updated state
type AddParticipantOutput struct {
	State *models.GameState
}

// RemoveParticipantInput contains parameters for removing a participant
type RemoveParticipantInput struct {
	// ParticipantID identifies the participant to remove
	ParticipantID string
}

// RemoveParticipantOutput contains the updated state
type RemoveParticipantOutput struct {
	State *models.GameState
}

// StartGameInput contains parameters for starting the game
type StartGameInput struct {
}

// StartGameOutput contains the updated state
type StartGameOutput struct {
	State *models.GameState
}

// RestartGameInput contains parameters for restarting the game
type RestartGameInput struct {
}

// RestartGameOutput contains the updated state
type RestartGameOutput struct {
	State *models.GameState
}

// ResetGameInput contains parameters for the full reset
type ResetGameInput struct {
}

// ResetGameOutput contains the brand-new state
type ResetGameOutput struct {
	State *models.GameState
}

// RevealAssignmentInput contains parameters for revealing an assignment
type RevealAssignmentInput struct {
	// PlayerName is matched case-insensitively against the roster
	PlayerName string
}

// RevealAssignmentOutput contains the revealed target
type RevealAssignmentOutput struct {
	// TargetName is the display name of the gift recipient
	TargetName string

	// TargetAvatarID is the recipient's avatar
	TargetAvatarID string

	// AlreadyRevealed indicates this was a repeat view, not a state change
	AlreadyRevealed bool
}

// ChooseAssignmentInput contains parameters for choosing a target
type ChooseAssignmentInput struct {
	// PlayerName is matched case-insensitively against the roster
	PlayerName string

	// TargetID is the chosen participant's ID
	TargetID string
}

// ChooseAssignmentOutput contains the settled choice
type ChooseAssignmentOutput struct {
	// TargetName is the display name of the gift recipient
	TargetName string

	// TargetAvatarID is the recipient's avatar
	TargetAvatarID string

	// AlreadyRevealed indicates the player had already settled a pick
	AlreadyRevealed bool
}
