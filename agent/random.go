package agent

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"pursuit/game"
)

// RandomPlayer plays a uniformly random legal move.
type RandomPlayer struct {
	colour game.Colour
	rng    *rand.Rand
}

func NewRandomPlayer(colour game.Colour, seed uint64) *RandomPlayer {
	return &RandomPlayer{
		colour: colour,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPlayer) Colour() game.Colour {
	return p.colour
}

func (p *RandomPlayer) Notify(location int, moves []game.Move, token uuid.UUID, receiver Receiver) error {
	if len(moves) == 0 {
		return fmt.Errorf("%s was notified without moves", p.colour)
	}
	return receiver.PlayMove(moves[p.rng.Intn(len(moves))], token)
}
