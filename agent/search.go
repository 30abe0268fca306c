package agent

import (
	"fmt"

	"github.com/google/uuid"

	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"
)

// SearchPlayer answers every turn with a minimax search over the game it watches.
type SearchPlayer struct {
	colour game.Colour
	view   game.View
	search *searcher.Minimax
	last   metrics.SearchMetric
}

func NewSearchPlayer(colour game.Colour, view game.View, search *searcher.Minimax) *SearchPlayer {
	return &SearchPlayer{
		colour: colour,
		view:   view,
		search: search,
	}
}

func (p *SearchPlayer) Colour() game.Colour {
	return p.colour
}

func (p *SearchPlayer) Notify(location int, moves []game.Move, token uuid.UUID, receiver Receiver) error {
	p.search.Observe(location)

	move, metric, err := p.search.SelectMove(p.view, moves)
	p.last = metric
	if err != nil {
		return fmt.Errorf("%s failed to select a move: %w", p.colour, err)
	}
	return receiver.PlayMove(move, token)
}

func (p *SearchPlayer) LastMetric() metrics.SearchMetric {
	return p.last
}
