package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollyberry/giftswap/internal/models"
)

func viewFixture() *models.GameState {
	now := time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC)
	started := now

	participants := []*models.Participant{
		{ID: "p1", Name: "Alice", NormalizedName: "alice", AvatarID: "santa-classic", CreatedAt: now},
		{ID: "p2", Name: "Bob", NormalizedName: "bob", AvatarID: "elf-happy", CreatedAt: now},
		{ID: "p3", Name: "Carol", NormalizedName: "carol", AvatarID: "snowman-hat", CreatedAt: now},
	}

	return &models.GameState{
		ID:           "game-1",
		Status:       models.GameStatusActive,
		Mode:         models.GameModeChoice,
		Participants: participants,
		CreatedAt:    now,
		StartedAt:    &started,
	}
}

func claim(state *models.GameState, chooserID, targetID string, at time.Time) {
	chooser := state.FindParticipantByID(chooserID)
	chooser.AssignedToID = &targetID
	chooser.HasRevealed = true
	chooser.RevealedAt = &at
}

func TestProjectHidesOtherAssignments(t *testing.T) {
	state := viewFixture()
	claim(state, "p2", "p3", time.Now())

	view := Project(state, "Alice")

	require.NotNil(t, view.CurrentPlayer)
	assert.Equal(t, "Alice", view.CurrentPlayer.Name)
	assert.False(t, view.CurrentPlayer.HasRevealed)
	assert.Empty(t, view.CurrentPlayer.AssignedToName)

	// Bob's reveal is visible as a flag, his pick is not
	require.Len(t, view.Participants, 3)
	assert.True(t, view.Participants[1].HasRevealed)
	assert.True(t, view.Participants[0].IsCurrentPlayer)
	assert.False(t, view.Participants[1].IsCurrentPlayer)
}

func TestProjectOwnMatchAfterReveal(t *testing.T) {
	state := viewFixture()
	claim(state, "p1", "p3", time.Now())

	view := Project(state, "ALICE")

	require.NotNil(t, view.CurrentPlayer)
	assert.True(t, view.CurrentPlayer.HasRevealed)
	assert.Equal(t, "Carol", view.CurrentPlayer.AssignedToName)
	assert.Equal(t, "snowman-hat", view.CurrentPlayer.AssignedToAvatarID)
}

func TestProjectUnknownPlayer(t *testing.T) {
	view := Project(viewFixture(), "Mallory")

	assert.Nil(t, view.CurrentPlayer)
	assert.Equal(t, 3, view.TotalParticipants)
	assert.Equal(t, 0, view.RevealedCount)
	// All three are candidates for nobody in particular
	assert.Len(t, view.AvailableParticipants, 3)
}

func TestProjectAvailableExcludesClaimedAndSelf(t *testing.T) {
	state := viewFixture()
	claim(state, "p2", "p3", time.Now())

	view := Project(state, "Alice")

	// Carol is claimed, Alice is the asker, so only Bob remains
	require.Len(t, view.AvailableParticipants, 1)
	assert.Equal(t, "p2", view.AvailableParticipants[0].ID)

	require.Len(t, view.ChosenAvatars, 1)
	assert.Equal(t, "Carol", view.ChosenAvatars[0].Name)
	assert.Equal(t, "snowman-hat", view.ChosenAvatars[0].AvatarID)

	assert.Equal(t, 1, view.RevealedCount)
}

func TestProjectAutoModeOmitsCandidates(t *testing.T) {
	state := viewFixture()
	state.Mode = models.GameModeAuto
	target := "p2"
	state.Participants[0].AssignedToID = &target

	view := Project(state, "Alice")

	assert.Empty(t, view.AvailableParticipants)
	assert.Empty(t, view.ChosenAvatars)
}

func TestProjectCounters(t *testing.T) {
	state := viewFixture()
	claim(state, "p1", "p2", time.Now())
	claim(state, "p2", "p3", time.Now())

	view := Project(state, "Carol")

	assert.Equal(t, 3, view.TotalParticipants)
	assert.Equal(t, 2, view.RevealedCount)
}
