package agent

import (
	"fmt"

	"pursuit/game"
	"pursuit/searcher"
)

type Kind string

const (
	Search Kind = "search"
	Random Kind = "random"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Search, Random:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown player kind %q", s)
}

// Factory builds the player for each seat of a game.
type Factory struct {
	Router  searcher.Router
	Depth   int
	Evader  Kind
	Seekers Kind
	Seed    uint64
	Metrics bool
	Guess   int // Where searching seekers assume the evader is until its first reveal
}

// NewPlayer builds the player for colour, watching view. start is the
// player's own start location, which a searching evader uses as its first belief.
// Searching seekers start from Guess instead.
func (f *Factory) NewPlayer(colour game.Colour, view game.View, start int) (Player, error) {
	kind := f.Seekers
	if colour.IsEvader() {
		kind = f.Evader
	}

	switch kind {
	case Search:
		options := []searcher.Option{searcher.WithDepth(f.Depth)}
		if colour.IsEvader() {
			options = append(options, searcher.WithBelief(start))
		} else {
			options = append(options, searcher.WithBelief(f.Guess))
		}
		if f.Metrics {
			options = append(options, searcher.WithMetrics())
		}
		return NewSearchPlayer(colour, view, searcher.NewMinimax(colour, f.Router, options...)), nil
	case Random, "":
		return NewRandomPlayer(colour, f.Seed+uint64(colour)), nil
	default:
		return nil, fmt.Errorf("cannot build %s: unknown player kind %q", colour, kind)
	}
}
