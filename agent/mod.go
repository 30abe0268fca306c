package agent

import (
	"github.com/google/uuid"

	"pursuit/experiments/metrics"
	"pursuit/game"
)

// Receiver accepts the one move a player chose for the turn identified by token.
type Receiver interface {
	PlayMove(move game.Move, token uuid.UUID) error
}

// Player is one seat of a game. On its turn it is told the evader's location
// (the true one if it is the evader, the last revealed one otherwise) and the
// legal moves, and must answer through receiver with exactly one of them.
type Player interface {
	Colour() game.Colour
	Notify(location int, moves []game.Move, token uuid.UUID, receiver Receiver) error
}

// Metered is implemented by players that search and can report on their last search.
type Metered interface {
	LastMetric() metrics.SearchMetric
}
