package game

import "context"

// Service defines the interface for game operations
type Service interface {
	// GetGame returns the full game state for the admin view, creating the
	// initial state on first contact
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetPlayerView returns the privacy-filtered view for one player
	GetPlayerView(ctx context.Context, input *GetPlayerViewInput) (*GetPlayerViewOutput, error)

	// GetParticipantNames returns the public list of display names
	GetParticipantNames(ctx context.Context, input *GetParticipantNamesInput) (*GetParticipantNamesOutput, error)

	// AddParticipant registers a new participant during setup
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error)

	// RemoveParticipant removes a participant during setup
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error)

	// StartGame transitions the game from setup to active
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RestartGame returns the game to setup, keeping the roster
	RestartGame(ctx context.Context, input *RestartGameInput) (*RestartGameOutput, error)

	// ResetGame discards everything and starts a brand-new empty game
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// RevealAssignment shows a player their pre-assigned target (auto mode)
	RevealAssignment(ctx context.Context, input *RevealAssignmentInput) (*RevealAssignmentOutput, error)

	// ChooseAssignment records a player's pick of target (choice mode)
	ChooseAssignment(ctx context.Context, input *ChooseAssignmentInput) (*ChooseAssignmentOutput, error)
}
