package gamestate

import "github.com/hollyberry/giftswap/internal/models"

type GetStateInput struct {
}

type SaveStateInput struct {
	State *models.GameState
}

type DeleteStateInput struct {
}
