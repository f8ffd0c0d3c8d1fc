package engine

import (
	"fmt"
	"strings"

	"github.com/hollyberry/giftswap/internal/assign"
	"github.com/hollyberry/giftswap/internal/avatars"
	"github.com/hollyberry/giftswap/internal/common/clock"
	"github.com/hollyberry/giftswap/internal/common/uuid"
	"github.com/hollyberry/giftswap/internal/models"
)

const (
	// MinParticipantsAuto is the minimum roster size for auto-assignment games
	MinParticipantsAuto = 3

	// MinParticipantsChoice is the minimum roster size for choice games
	MinParticipantsChoice = 2

	// minNameLength is the minimum trimmed display-name length
	minNameLength = 2
)

// Engine implements the game state machine. Every operation treats its input
// state as immutable and returns a freshly built state, so callers can commit
// the result with a plain write under the storage lock.
type Engine struct {
	mode      models.GameMode
	catalog   *avatars.Catalog
	generator *assign.Generator
	clock     clock.Clock
	uuid      uuid.UUID
}

// Config holds configuration for the game engine
type Config struct {
	// Mode selects auto-assignment or player-choice games
	Mode models.GameMode

	// Catalog provides avatars
	Catalog *avatars.Catalog

	// Generator produces derangements for auto mode
	Generator *assign.Generator

	// Clock provides timestamps
	Clock clock.Clock

	// UUIDGenerator provides participant and game IDs
	UUIDGenerator uuid.UUID
}

// New creates a new game engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	mode := cfg.Mode
	if mode == "" {
		mode = models.GameModeAuto
	}

	return &Engine{
		mode:      mode,
		catalog:   cfg.Catalog,
		generator: cfg.Generator,
		clock:     cfg.Clock,
		uuid:      cfg.UUIDGenerator,
	}, nil
}

// Mode returns the configured game mode
func (e *Engine) Mode() models.GameMode {
	return e.mode
}

// minParticipants returns the roster minimum for the configured mode
func (e *Engine) minParticipants() int {
	if e.mode == models.GameModeChoice {
		return MinParticipantsChoice
	}
	return MinParticipantsAuto
}

// NewGame returns a brand-new empty setup-phase state with a fresh ID
func (e *Engine) NewGame() *models.GameState {
	return &models.GameState{
		ID:           e.uuid.NewUUID(),
		Status:       models.GameStatusSetup,
		Participants: []*models.Participant{},
		CreatedAt:    e.clock.Now(),
	}
}

// AddParticipant appends a new participant to the roster. Only legal during
// setup. Names are trimmed, must be at least two characters, and must be
// unique case-insensitively.
func (e *Engine) AddParticipant(state *models.GameState, name string) (*models.GameState, error) {
	if state.Status != models.GameStatusSetup {
		return nil, ErrSetupRequired
	}

	normalized := models.NormalizeName(name)
	if len([]rune(normalized)) < minNameLength {
		return nil, ErrNameTooShort
	}

	for _, p := range state.Participants {
		if p.NormalizedName == normalized {
			return nil, ErrDuplicateName
		}
	}

	// The catalog bounds the roster so unique avatars always exist at start
	if len(state.Participants) >= e.catalog.Size() {
		return nil, ErrGameFull
	}

	now := e.clock.Now()
	participant := &models.Participant{
		ID:             e.uuid.NewUUID(),
		Name:           strings.TrimSpace(name),
		NormalizedName: normalized,
		AvatarID:       e.catalog.Provisional(len(state.Participants)).ID,
		CreatedAt:      now,
	}

	next := state.Clone()
	next.Participants = append(next.Participants, participant)

	return next, nil
}

// RemoveParticipant removes a participant by ID. Only legal during setup;
// insertion order of the remaining roster is preserved.
func (e *Engine) RemoveParticipant(state *models.GameState, participantID string) (*models.GameState, error) {
	if state.Status != models.GameStatusSetup {
		return nil, ErrSetupRequired
	}

	if state.FindParticipantByID(participantID) == nil {
		return nil, ErrParticipantNotFound
	}

	next := state.Clone()
	remaining := make([]*models.Participant, 0, len(next.Participants)-1)
	for _, p := range next.Participants {
		if p.ID != participantID {
			remaining = append(remaining, p)
		}
	}
	next.Participants = remaining

	return next, nil
}

// StartGame transitions the game from setup to active. In auto mode every
// participant receives a derangement-drawn target; in choice mode targets stay
// unset until players claim them. Both modes reshuffle unique avatars.
func (e *Engine) StartGame(state *models.GameState) (*models.GameState, error) {
	if state.Status != models.GameStatusSetup {
		return nil, ErrSetupRequired
	}

	if len(state.Participants) < e.minParticipants() {
		return nil, ErrInsufficientParticipants
	}

	next := state.Clone()

	shuffled, err := e.catalog.AssignUnique(len(next.Participants))
	if err != nil {
		return nil, fmt.Errorf("failed to assign avatars: %w", err)
	}
	for i, p := range next.Participants {
		p.AvatarID = shuffled[i].ID
	}

	if e.mode == models.GameModeAuto {
		ids := make([]string, len(next.Participants))
		for i, p := range next.Participants {
			ids[i] = p.ID
		}

		assignments, err := e.generator.Generate(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to generate assignments: %w", err)
		}

		for _, p := range next.Participants {
			target := assignments[p.ID]
			p.AssignedToID = &target
		}
	}

	now := e.clock.Now()
	next.Status = models.GameStatusActive
	next.Mode = e.mode
	next.StartedAt = &now

	return next, nil
}

// RestartGame returns an active or completed game to setup, clearing every
// assignment and reveal while preserving the roster.
func (e *Engine) RestartGame(state *models.GameState) (*models.GameState, error) {
	if len(state.Participants) < e.minParticipants() {
		return nil, ErrInsufficientParticipants
	}

	next := state.Clone()
	for _, p := range next.Participants {
		p.AssignedToID = nil
		p.HasRevealed = false
		p.RevealedAt = nil
	}
	next.Status = models.GameStatusSetup
	next.Mode = ""
	next.StartedAt = nil

	return next, nil
}

// RevealResult describes the outcome of a reveal or choose operation
type RevealResult struct {
	// TargetName is the display name of the gift recipient
	TargetName string

	// TargetAvatarID is the recipient's avatar
	TargetAvatarID string

	// AlreadyRevealed indicates the player had already settled their match and
	// this call changed nothing
	AlreadyRevealed bool
}

// RevealAssignment shows a player their pre-assigned target. Repeat calls are
// idempotent. The game completes when the last participant reveals.
func (e *Engine) RevealAssignment(state *models.GameState, playerName string) (*models.GameState, *RevealResult, error) {
	if state.Status != models.GameStatusActive {
		return nil, nil, ErrGameNotActive
	}

	if state.Mode != models.GameModeAuto {
		return nil, nil, ErrRevealNotAvailable
	}

	player := state.FindParticipantByName(playerName)
	if player == nil {
		return nil, nil, ErrPlayerNotFound
	}

	target, err := resolveTarget(state, player)
	if err != nil {
		return nil, nil, err
	}

	if player.HasRevealed {
		return state, &RevealResult{
			TargetName:      target.Name,
			TargetAvatarID:  target.AvatarID,
			AlreadyRevealed: true,
		}, nil
	}

	next := state.Clone()
	e.markRevealed(next, next.FindParticipantByID(player.ID))

	return next, &RevealResult{
		TargetName:     target.Name,
		TargetAvatarID: target.AvatarID,
	}, nil
}

// ChooseAssignment records a player's pick of gift recipient. Repeat calls
// after a settled pick are idempotent; self-picks and targets already claimed
// by someone else are rejected. The game completes when the last participant
// has chosen.
func (e *Engine) ChooseAssignment(state *models.GameState, playerName, targetID string) (*models.GameState, *RevealResult, error) {
	if state.Status != models.GameStatusActive {
		return nil, nil, ErrGameNotActive
	}

	if state.Mode != models.GameModeChoice {
		return nil, nil, ErrChooseNotAvailable
	}

	player := state.FindParticipantByName(playerName)
	if player == nil {
		return nil, nil, ErrPlayerNotFound
	}

	// A settled player gets their existing pick back, whatever targetID says,
	// so duplicate requests after a race never double-assign.
	if player.HasRevealed {
		target, err := resolveTarget(state, player)
		if err != nil {
			return nil, nil, err
		}
		return state, &RevealResult{
			TargetName:      target.Name,
			TargetAvatarID:  target.AvatarID,
			AlreadyRevealed: true,
		}, nil
	}

	target := state.FindParticipantByID(targetID)
	if target == nil {
		return nil, nil, ErrParticipantNotFound
	}

	if target.ID == player.ID {
		return nil, nil, ErrSelfAssignment
	}

	for _, p := range state.Participants {
		if p.ID != player.ID && p.HasRevealed && p.AssignedToID != nil && *p.AssignedToID == targetID {
			return nil, nil, ErrTargetAlreadyClaimed
		}
	}

	next := state.Clone()
	chooser := next.FindParticipantByID(player.ID)
	assignedID := targetID
	chooser.AssignedToID = &assignedID
	e.markRevealed(next, chooser)

	return next, &RevealResult{
		TargetName:     target.Name,
		TargetAvatarID: target.AvatarID,
	}, nil
}

// markRevealed flips a participant to revealed and completes the game when
// they were the last one
func (e *Engine) markRevealed(state *models.GameState, p *models.Participant) {
	now := e.clock.Now()
	p.HasRevealed = true
	p.RevealedAt = &now

	if state.RevealedCount() == len(state.Participants) {
		state.Status = models.GameStatusCompleted
	}
}

// resolveTarget follows a participant's AssignedToID to the target participant
func resolveTarget(state *models.GameState, p *models.Participant) (*models.Participant, error) {
	if p.AssignedToID == nil {
		return nil, ErrAssignmentMissing
	}
	target := state.FindParticipantByID(*p.AssignedToID)
	if target == nil {
		return nil, ErrAssignmentMissing
	}
	return target, nil
}

