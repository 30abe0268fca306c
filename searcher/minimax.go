package searcher

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/meta"
)

type Option func(m *Minimax)

// Minimax searches a fixed number of plies with alpha-beta pruning on behalf
// of one colour. It keeps its own belief of where the evader really is, since
// the views it is handed only expose the last revealed location.
type Minimax struct {
	colour  game.Colour
	depth   int
	router  Router
	belief  int
	metrics metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// WithBelief seeds the evader location the search assumes before the first Observe.
func WithBelief(location int) Option {
	return func(m *Minimax) {
		m.belief = location
	}
}

func NewMinimax(colour game.Colour, router Router, options ...Option) *Minimax {
	if router == nil {
		panic("minimax needs a router for its heuristic")
	}
	m := &Minimax{ // Default values
		colour:  colour,
		depth:   meta.DEPTH,
		router:  router,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Observe updates the belief of the evader's true location. Zero means unknown
// and keeps the previous belief.
func (m *Minimax) Observe(location int) {
	if location != 0 {
		m.belief = location
	}
}

func (m *Minimax) Belief() int {
	return m.belief
}

func (m *Minimax) Depth() int {
	return m.depth
}

// SelectMove scores every root move and returns the best one for the colour
// being played. Equal scores are resolved in favour of the later move.
func (m *Minimax) SelectMove(view game.View, moves []game.Move) (game.Move, metrics.SearchMetric, error) {
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, ErrNoMoves
	}
	state, err := game.CloneView(view, m.belief)
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("failed to clone view with belief %d: %w", m.belief, err)
	}

	m.metrics.Start(m.depth)
	maximizing := m.colour.IsEvader()
	alpha, beta := math.Inf(-1), math.Inf(1)
	bestScore := beta
	if maximizing {
		bestScore = alpha
	}
	var best game.Move

	for _, move := range moves {
		child := state.Copy()
		child.Play(move)
		score, err := m.evaluate(m.depth, child, alpha, beta, child.LegalMoves(child.CurrentPlayer()))
		if err != nil {
			return nil, metrics.SearchMetric{}, fmt.Errorf("failed to evaluate %v: %w", move, err)
		}
		log.Debug().Stringer("colour", m.colour).Msgf("Move %v scored %.1f", move, score)

		if maximizing {
			if score >= bestScore {
				bestScore, best = score, move
			}
			alpha = math.Max(alpha, score)
		} else {
			if score <= bestScore {
				bestScore, best = score, move
			}
			beta = math.Min(beta, score)
		}
	}

	metric := m.metrics.Complete()
	log.Info().Stringer("colour", m.colour).Msgf("Selected %v with score %.1f after %d nodes", best, bestScore, metric.Nodes)
	return best, metric, nil
}

// evaluate scores state with moves being the legal moves of its current player.
// Scores are from the evader's point of view.
func (m *Minimax) evaluate(depth int, state *game.GameState, alpha, beta float64, moves []game.Move) (float64, error) {
	m.metrics.AddNode()
	if state.IsTerminal() {
		if slices.Contains(state.Winners(), game.Black) {
			return Win, nil
		}
		return Loss, nil
	}
	if depth == 0 {
		m.metrics.AddLeaf()
		return m.heuristic(state)
	}

	if state.CurrentPlayer().IsEvader() {
		best := math.Inf(-1)
		for _, move := range moves {
			score, err := m.evaluateChild(depth, state, move, alpha, beta)
			if err != nil {
				return 0, err
			}
			if score > best {
				best = score
				alpha = math.Max(alpha, best)
			}
			if best > beta {
				m.metrics.AddCutoff()
				return best, nil
			}
		}
		return best, nil
	}

	best := math.Inf(1)
	for _, move := range moves {
		score, err := m.evaluateChild(depth, state, move, alpha, beta)
		if err != nil {
			return 0, err
		}
		if score < best {
			best = score
			beta = math.Min(beta, best)
		}
		if best < alpha {
			m.metrics.AddCutoff()
			return best, nil
		}
	}
	return best, nil
}

// evaluateChild plays move on a copy of state. The belief is only injected at the
// root, so copies keep the evader location simulated along this branch.
func (m *Minimax) evaluateChild(depth int, state *game.GameState, move game.Move, alpha, beta float64) (float64, error) {
	child := state.Copy()
	child.Play(move)
	return m.evaluate(depth-1, child, alpha, beta, child.LegalMoves(child.CurrentPlayer()))
}

// heuristic sums the shortest route length from every seeker to the evader's
// true location, each seeker limited to the transports it still has tickets for.
// Larger is better for the evader.
func (m *Minimax) heuristic(state *game.GameState) (float64, error) {
	target := state.EvaderLocation()
	total := 0.0
	for _, seeker := range state.Seekers() {
		allowed := make(map[game.Transport]int)
		for _, ticket := range game.AllTickets {
			if transport, ok := ticket.Transport(); ok {
				allowed[transport] += state.Tickets(seeker, ticket)
			}
		}

		route, err := m.router.Route(state.Location(seeker), target, allowed)
		if err != nil {
			return 0, fmt.Errorf("failed to route %s to the evader: %w", seeker, err)
		}
		total += float64(len(route))
	}
	return total, nil
}
