package engine

// GameError is a custom error type for rule violations in the game state machine
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSetupRequired            GameError = "participants can only be changed before the game starts"
	ErrGameNotActive            GameError = "game is not active"
	ErrRevealNotAvailable       GameError = "assignments are chosen by players in this game"
	ErrChooseNotAvailable       GameError = "assignments were drawn automatically in this game"
	ErrNameTooShort             GameError = "name must be at least 2 characters"
	ErrDuplicateName            GameError = "a participant with this name already exists"
	ErrGameFull                 GameError = "game is at maximum capacity"
	ErrParticipantNotFound      GameError = "participant not found"
	ErrPlayerNotFound           GameError = "player not found"
	ErrInsufficientParticipants GameError = "not enough participants to start the game"
	ErrSelfAssignment           GameError = "you cannot pick yourself"
	ErrTargetAlreadyClaimed     GameError = "that person was just chosen by someone else - pick another"
	ErrAssignmentMissing        GameError = "assignment not found"
	ErrNilConfig                GameError = "config cannot be nil"
	ErrNilCatalog               GameError = "avatar catalog cannot be nil"
	ErrNilGenerator             GameError = "assignment generator cannot be nil"
	ErrNilClock                 GameError = "clock cannot be nil"
	ErrNilUUIDGenerator         GameError = "UUID generator cannot be nil"
)
