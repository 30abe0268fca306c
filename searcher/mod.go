package searcher

import (
	"errors"
	"math"

	"pursuit/game"
)

// Scores of finished games, from the evader's point of view.
var (
	Win  = math.Inf(1)
	Loss = math.Inf(-1)
)

var ErrNoMoves = errors.New("no legal moves to choose from")

// Router is the shortest path oracle used by the heuristic. The returned route
// excludes from; only its length matters here.
type Router interface {
	Route(from, to int, allowed map[game.Transport]int) ([]int, error)
}

