package game

import "errors"

// Recoverable rejection reasons. Every operation either fully commits
// or returns one of these with no state change.
var (
	ErrWrongPhase    = errors.New("action not allowed in current phase")
	ErrNotYourTurn   = errors.New("not this player's turn")
	ErrUnknownPlayer = errors.New("player not seated in this game")
	ErrTableFull     = errors.New("all four seats are taken")
	ErrCardNotHeld   = errors.New("card is not in the player's hand")
	ErrIllegalCard   = errors.New("card cannot legally be played")
	ErrInvalidSuit   = errors.New("suit cannot be named as trump")
	ErrNotTrumpMaker = errors.New("only the trump maker may go alone")
)
