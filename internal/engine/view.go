package engine

import (
	"github.com/hollyberry/giftswap/internal/models"
)

// ViewParticipant is the public-safe slice of a participant shown to everyone
type ViewParticipant struct {
	AvatarID        string `json:"avatarId"`
	HasRevealed     bool   `json:"hasRevealed"`
	IsCurrentPlayer bool   `json:"isCurrentPlayer"`
}

// ViewCurrentPlayer is the querying player's own record, including their match
// once they have revealed
type ViewCurrentPlayer struct {
	Name               string `json:"name"`
	HasRevealed        bool   `json:"hasRevealed"`
	AssignedToName     string `json:"assignedToName,omitempty"`
	AssignedToAvatarID string `json:"assignedToAvatarId,omitempty"`
}

// ViewCandidate is a participant still available to be picked in choice mode
type ViewCandidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	AvatarID string `json:"avatarId"`
}

// ViewChosenAvatar identifies a participant already spoken for, without saying
// by whom
type ViewChosenAvatar struct {
	AvatarID string `json:"avatarId"`
	Name     string `json:"name"`
}

// PlayerView is the privacy-filtered projection of the game for one player
type PlayerView struct {
	Status                models.GameStatus  `json:"status"`
	Mode                  models.GameMode    `json:"mode,omitempty"`
	Participants          []ViewParticipant  `json:"participants"`
	CurrentPlayer         *ViewCurrentPlayer `json:"currentPlayer"`
	AvailableParticipants []ViewCandidate    `json:"availableParticipants"`
	ChosenAvatars         []ViewChosenAvatar `json:"chosenAvatars"`
	TotalParticipants     int                `json:"totalParticipants"`
	RevealedCount         int                `json:"revealedCount"`
}

// Project derives a player's view of the game. It is a pure read-side
// transform: no other participant's assignment ever leaves it, only the
// querying player's own match once revealed. An unknown player name yields
// CurrentPlayer nil rather than an error.
func Project(state *models.GameState, playerName string) *PlayerView {
	current := state.FindParticipantByName(playerName)

	view := &PlayerView{
		Status:                state.Status,
		Mode:                  state.Mode,
		Participants:          make([]ViewParticipant, 0, len(state.Participants)),
		AvailableParticipants: []ViewCandidate{},
		ChosenAvatars:         []ViewChosenAvatar{},
		TotalParticipants:     len(state.Participants),
		RevealedCount:         state.RevealedCount(),
	}

	for _, p := range state.Participants {
		view.Participants = append(view.Participants, ViewParticipant{
			AvatarID:        p.AvatarID,
			HasRevealed:     p.HasRevealed,
			IsCurrentPlayer: current != nil && p.ID == current.ID,
		})
	}

	if current != nil {
		player := &ViewCurrentPlayer{
			Name:        current.Name,
			HasRevealed: current.HasRevealed,
		}
		if current.HasRevealed && current.AssignedToID != nil {
			if target := state.FindParticipantByID(*current.AssignedToID); target != nil {
				player.AssignedToName = target.Name
				player.AssignedToAvatarID = target.AvatarID
			}
		}
		view.CurrentPlayer = player
	}

	if state.Mode == models.GameModeChoice {
		claimed := make(map[string]bool)
		for _, p := range state.Participants {
			if p.HasRevealed && p.AssignedToID != nil {
				claimed[*p.AssignedToID] = true
			}
		}

		for _, p := range state.Participants {
			if claimed[p.ID] {
				view.ChosenAvatars = append(view.ChosenAvatars, ViewChosenAvatar{
					AvatarID: p.AvatarID,
					Name:     p.Name,
				})
				continue
			}
			if current != nil && p.ID == current.ID {
				continue
			}
			view.AvailableParticipants = append(view.AvailableParticipants, ViewCandidate{
				ID:       p.ID,
				Name:     p.Name,
				AvatarID: p.AvatarID,
			})
		}
	}

	return view
}
