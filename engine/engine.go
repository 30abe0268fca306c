package engine

import (
	"errors"

	"pursuit/game"
)

var (
	ErrStaleToken  = errors.New("token does not match the pending turn")
	ErrIllegalMove = errors.New("move is not legal in this position")
	ErrGameOver    = errors.New("game is over")
)

// Update is one applied move and the hash of the state it produced.
type Update struct {
	Move game.Move
	Hash game.StateHash
}
