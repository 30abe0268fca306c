package engine

import (
	"fmt"

	"golang.org/x/exp/rand"

	"pursuit/game"
	"pursuit/meta"
	"pursuit/utils"
)

func EvaderTickets() map[game.Ticket]int {
	return map[game.Ticket]int{
		game.Taxi:        meta.EVADER_TAXI,
		game.Bus:         meta.EVADER_BUS,
		game.Underground: meta.EVADER_UNDERGROUND,
		game.Double:      meta.EVADER_DOUBLE,
		game.Secret:      meta.EVADER_SECRET,
	}
}

func SeekerTickets() map[game.Ticket]int {
	return map[game.Ticket]int{
		game.Taxi:        meta.SEEKER_TAXI,
		game.Bus:         meta.SEEKER_BUS,
		game.Underground: meta.SEEKER_UNDERGROUND,
	}
}

// NewGame joins the evader and the seekers at distinct random start
// locations and returns the ready game with each colour's start.
// Empty start pools mean any location of the map.
func NewGame(seekers int, rounds []bool, m *game.Map, evaderStarts, seekerStarts []int, rng *rand.Rand) (*game.GameState, map[game.Colour]int, error) {
	if seekers < 1 || seekers > game.MaxSeekers {
		return nil, nil, fmt.Errorf("seeker count %d is outside 1..%d", seekers, game.MaxSeekers)
	}
	if len(evaderStarts) == 0 {
		evaderStarts = m.IDs()
	}
	if len(seekerStarts) == 0 {
		seekerStarts = m.IDs()
	}

	evaderAt := utils.Draw(rng, evaderStarts, 1)[0]
	pool := []int{}
	for _, id := range seekerStarts {
		if id != evaderAt {
			pool = append(pool, id)
		}
	}
	if len(pool) < seekers {
		return nil, nil, fmt.Errorf("only %d seeker starts for %d seekers", len(pool), seekers)
	}

	gs := game.NewGameState(seekers, rounds, m)
	starts := map[game.Colour]int{game.Black: evaderAt}
	if err := gs.Join(game.Black, evaderAt, EvaderTickets()); err != nil {
		return nil, nil, fmt.Errorf("failed to set up the evader: %w", err)
	}
	for i, at := range utils.Draw(rng, pool, seekers) {
		colour := game.Colours[i+1]
		if err := gs.Join(colour, at, SeekerTickets()); err != nil {
			return nil, nil, fmt.Errorf("failed to set up %s: %w", colour, err)
		}
		starts[colour] = at
	}
	return gs, starts, nil
}
