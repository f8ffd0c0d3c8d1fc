package models

import (
	"time"
)

// GameStatus represents the current phase of the game
type GameStatus string

const (
	// GameStatusSetup indicates the roster is still being assembled
	GameStatusSetup GameStatus = "setup"

	// GameStatusReady is reserved and currently unused
	GameStatusReady GameStatus = "ready"

	// GameStatusActive indicates the round is running and reveals are open
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates every participant has revealed
	GameStatusCompleted GameStatus = "completed"
)

// GameMode selects how assignments come to exist
type GameMode string

const (
	// GameModeAuto pre-assigns everyone a target via a derangement at start
	GameModeAuto GameMode = "auto"

	// GameModeChoice lets each player claim a target themselves after start
	GameModeChoice GameMode = "choice"
)

// GameState is the single shared state object for the deployment
type GameState struct {
	// ID identifies the current game instance; regenerated on full reset
	ID string `json:"id"`

	// Status is the current phase
	Status GameStatus `json:"status"`

	// Mode is stamped at start and empty during setup
	Mode GameMode `json:"mode,omitempty"`

	// Participants in admin add order
	Participants []*Participant `json:"participants"`

	// CreatedAt is when this game instance was created
	CreatedAt time.Time `json:"createdAt"`

	// StartedAt is when the game left setup; nil until then
	StartedAt *time.Time `json:"startedAt"`
}

// Clone returns a deep copy of the game state
func (g *GameState) Clone() *GameState {
	clone := *g
	if g.StartedAt != nil {
		t := *g.StartedAt
		clone.StartedAt = &t
	}
	clone.Participants = make([]*Participant, len(g.Participants))
	for i, p := range g.Participants {
		clone.Participants[i] = p.Clone()
	}
	return &clone
}

// FindParticipantByID returns the participant with the given ID, or nil
func (g *GameState) FindParticipantByID(id string) *Participant {
	for _, p := range g.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindParticipantByName returns the participant whose normalized name matches
// the given display name, or nil
func (g *GameState) FindParticipantByName(name string) *Participant {
	normalized := NormalizeName(name)
	for _, p := range g.Participants {
		if p.NormalizedName == normalized {
			return p
		}
	}
	return nil
}

// RevealedCount returns how many participants have revealed
func (g *GameState) RevealedCount() int {
	count := 0
	for _, p := range g.Participants {
		if p.HasRevealed {
			count++
		}
	}
	return count
}
