package models

import (
	"time"
)

// Participant represents one registered player in the game
type Participant struct {
	// ID is the unique identifier for the participant
	ID string `json:"id"`

	// Name is the display name as entered by the admin
	Name string `json:"name"`

	// NormalizedName is the lowercased/trimmed form of Name, used as the
	// case-insensitive login key. Unique across the roster.
	NormalizedName string `json:"normalizedName"`

	// AvatarID references an entry in the avatar catalog
	AvatarID string `json:"avatarId"`

	// AssignedToID is the ID of the participant this one buys a gift for.
	// Nil until set by the generator (auto mode) or the player's own choice
	// (choice mode). Never equal to ID.
	AssignedToID *string `json:"assignedToId"`

	// HasRevealed indicates whether the player has seen (or made) their match
	HasRevealed bool `json:"hasRevealed"`

	// RevealedAt is when HasRevealed flipped true
	RevealedAt *time.Time `json:"revealedAt"`

	// CreatedAt is when the participant was added
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the participant
func (p *Participant) Clone() *Participant {
	clone := *p
	if p.AssignedToID != nil {
		id := *p.AssignedToID
		clone.AssignedToID = &id
	}
	if p.RevealedAt != nil {
		t := *p.RevealedAt
		clone.RevealedAt = &t
	}
	return &clone
}
