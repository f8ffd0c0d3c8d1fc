package game

import (
	"context"
	"errors"

	"github.com/hollyberry/giftswap/internal/engine"
	"github.com/hollyberry/giftswap/internal/models"
	"github.com/hollyberry/giftswap/internal/repositories/gamestate"
)

// Define errors
var (
	ErrNilConfig    = errors.New("config cannot be nil")
	ErrNilStateRepo = errors.New("state repository cannot be nil")
	ErrNilEngine    = errors.New("engine cannot be nil")
)

// service implements the Service interface
type service struct {
	stateRepo gamestate.Repository
	engine    *engine.Engine
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StateRepo == nil {
		return nil, ErrNilStateRepo
	}
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}

	return &service{
		stateRepo: cfg.StateRepo,
		engine:    cfg.Engine,
	}, nil
}

// GetGame returns the full game state for the admin view
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	state, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{State: state}, nil
}

// GetPlayerView returns the privacy-filtered view for one player
func (s *service) GetPlayerView(ctx context.Context, input *GetPlayerViewInput) (*GetPlayerViewOutput, error) {
	state, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &GetPlayerViewOutput{View: engine.Project(state, input.PlayerName)}, nil
}

// GetParticipantNames returns the public list of display names in add order
func (s *service) GetParticipantNames(ctx context.Context, input *GetParticipantNamesInput) (*GetParticipantNamesOutput, error) {
	state, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(state.Participants))
	for _, p := range state.Participants {
		names = append(names, p.Name)
	}

	return &GetParticipantNamesOutput{Names: names}, nil
}

// AddParticipant registers a new participant during setup
func (s *service) AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error) {
	state, err := s.update(ctx, func(state *models.GameState) (*models.GameState, error) {
		return s.engine.AddParticipant(state, input.Name)
	})
	if err != nil {
		return nil, err
	}

	return &AddParticipantOutput{State: state}, nil
}

// RemoveParticipant removes a participant during setup
func (s *service) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error) {
	state, err := s.update(ctx, func(state *models.GameState) (*models.GameState, error) {
		return s.engine.RemoveParticipant(state, input.ParticipantID)
	})
	if err != nil {
		return nil, err
	}

	return &RemoveParticipantOutput{State: state}, nil
}

// StartGame transitions the game from setup to active
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	state, err := s.update(ctx, func(state *models.GameState) (*models.GameState, error) {
		return s.engine.StartGame(state)
	})
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{State: state}, nil
}

// RestartGame returns the game to setup, keeping the roster
func (s *service) RestartGame(ctx context.Context, input *RestartGameInput) (*RestartGameOutput, error) {
	state, err := s.update(ctx, func(state *models.GameState) (*models.GameState, error) {
		return s.engine.RestartGame(state)
	})
	if err != nil {
		return nil, err
	}

	return &RestartGameOutput{State: state}, nil
}

// ResetGame discards all state and starts a brand-new empty game
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	var next *models.GameState

	err := s.stateRepo.WithLock(ctx, func(ctx context.Context) error {
		next = s.engine.NewGame()
		return s.stateRepo.SaveState(ctx, &gamestate.SaveStateInput{State: next})
	})
	if err != nil {
		return nil, err
	}

	return &ResetGameOutput{State: next}, nil
}

// RevealAssignment shows a player their pre-assigned target (auto mode)
func (s *service) RevealAssignment(ctx context.Context, input *RevealAssignmentInput) (*RevealAssignmentOutput, error) {
	var result *engine.RevealResult

	_, err := s.update(ctx, func(state *models.GameState) (*models.GameState, error) {
		next, res, err := s.engine.RevealAssignment(state, input.PlayerName)
		if err != nil {
			return nil, err
		}
		result = res
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &RevealAssignmentOutput{
		TargetName:      result.TargetName,
		TargetAvatarID:  result.TargetAvatarID,
		AlreadyRevealed: result.AlreadyRevealed,
	}, nil
}

// ChooseAssignment records a player's pick of target (choice mode). The
// already-claimed check runs against the state read inside the same lock that
// commits the choice, so two racing picks of one target can never both win.
func (s *service) ChooseAssignment(ctx context.Context, input *ChooseAssignmentInput) (*ChooseAssignmentOutput, error) {
	var result *engine.RevealResult

	_, err := s.update(ctx, func(state *models.GameState) (*models.GameState, error) {
		next, res, err := s.engine.ChooseAssignment(state, input.PlayerName, input.TargetID)
		if err != nil {
			return nil, err
		}
		result = res
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &ChooseAssignmentOutput{
		TargetName:      result.TargetName,
		TargetAvatarID:  result.TargetAvatarID,
		AlreadyRevealed: result.AlreadyRevealed,
	}, nil
}

// update runs a read-compute-write cycle under the exclusive state lock
func (s *service) update(ctx context.Context, mutate func(*models.GameState) (*models.GameState, error)) (*models.GameState, error) {
	var next *models.GameState

	err := s.stateRepo.WithLock(ctx, func(ctx context.Context) error {
		state, err := s.currentOrNew(ctx)
		if err != nil {
			return err
		}

		next, err = mutate(state)
		if err != nil {
			return err
		}

		return s.stateRepo.SaveState(ctx, &gamestate.SaveStateInput{State: next})
	})
	if err != nil {
		return nil, err
	}

	return next, nil
}

// currentOrNew reads the stored state, falling back to a fresh setup-phase
// state when nothing has been stored yet
func (s *service) currentOrNew(ctx context.Context) (*models.GameState, error) {
	state, err := s.stateRepo.GetState(ctx, &gamestate.GetStateInput{})
	if err == nil {
		return state, nil
	}
	if errors.Is(err, gamestate.ErrStateNotFound) {
		return s.engine.NewGame(), nil
	}
	return nil, err
}

// snapshot reads the state for the read-only operations, initializing the
// stored blob on first contact so later polls see a stable game ID
func (s *service) snapshot(ctx context.Context) (*models.GameState, error) {
	state, err := s.stateRepo.GetState(ctx, &gamestate.GetStateInput{})
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, gamestate.ErrStateNotFound) {
		return nil, err
	}

	var created *models.GameState
	err = s.stateRepo.WithLock(ctx, func(ctx context.Context) error {
		state, err := s.stateRepo.GetState(ctx, &gamestate.GetStateInput{})
		if err == nil {
			created = state
			return nil
		}
		if !errors.Is(err, gamestate.ErrStateNotFound) {
			return err
		}

		created = s.engine.NewGame()
		return s.stateRepo.SaveState(ctx, &gamestate.SaveStateInput{State: created})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
