package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pursuit/agent"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/utils"
)

// Engine owns the authoritative game and asks each player for its move in turn.
type Engine struct {
	State    *game.GameState
	players  map[game.Colour]agent.Player
	maxTurns int
	pending  uuid.UUID
	played   bool
	updates  []Update
}

// LocalEngine wraps a game every player has joined. Players are matched to
// seats by colour.
func LocalEngine(state *game.GameState, players []agent.Player, maxTurns int) *Engine {
	if !state.IsReady() {
		panic("every player must join before the engine starts")
	}
	if len(players) != len(state.Players()) {
		panic("number of players does not match the game")
	}

	seats := make(map[game.Colour]agent.Player, len(players))
	for _, p := range players {
		if utils.FindIndex(state.Players(), p.Colour()) < 0 {
			panic(fmt.Sprintf("player %s has not joined the game", p.Colour()))
		}
		seats[p.Colour()] = p
	}

	return &Engine{
		State:    state,
		players:  seats,
		maxTurns: maxTurns,
	}
}

// PlayMove applies a reply to the pending turn. Each turn accepts exactly one move.
func (e *Engine) PlayMove(move game.Move, token uuid.UUID) error {
	if e.State.IsTerminal() {
		return ErrGameOver
	}
	if e.played || token != e.pending {
		return fmt.Errorf("move %v: %w", move, ErrStaleToken)
	}
	legal := e.State.LegalMoves(e.State.CurrentPlayer())
	if utils.FindIndex(legal, move) < 0 {
		return fmt.Errorf("move %v: %w", move, ErrIllegalMove)
	}

	e.State.Play(move)
	e.played = true
	e.updates = append(e.updates, Update{Move: move, Hash: e.State.Hash()})
	return nil
}

// Run plays until the game is over or the turn limit is reached, in which case
// the evader has escaped.
func (e *Engine) Run() ([]game.Colour, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%d seekers are chasing the evader over %d rounds", e.State.SeekerCount(), len(e.State.Rounds()))

	turn := 0
	for !e.State.IsTerminal() && turn < e.maxTurns {
		colour := e.State.CurrentPlayer()
		moves := e.State.LegalMoves(colour)

		if e.turn(colour, moves) {
			gameMetric.Fallbacks++
		}

		moveMetric := metrics.MoveMetric{
			Step:   turn,
			Colour: colour,
			Move:   fmt.Sprint(e.updates[len(e.updates)-1].Move),
		}
		if m, ok := e.players[colour].(agent.Metered); ok {
			moveMetric.SearchMetric = m.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().Int("round", e.State.Round()).Msgf("%s played %s", colour, moveMetric.Move)
		turn++
	}

	winners := e.State.Winners()
	if winners == nil {
		log.Info().Msgf("Stopped after %d turns without a result", turn)
		winners = []game.Colour{game.Black}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = turn
	gameMetric.Rounds = e.State.Round()
	gameMetric.Winner = Winner(winners)

	log.Info().Msgf("Game over after %d turns and %d rounds, winner: %s", turn, e.State.Round(), gameMetric.Winner)
	return winners, gameMetric, moveMetrics
}

// turn notifies the current player and reports whether the first legal move
// had to be played on its behalf.
func (e *Engine) turn(colour game.Colour, moves []game.Move) bool {
	location := e.State.Location(game.Black)
	if colour.IsEvader() {
		location = e.State.EvaderLocation()
	}

	e.pending = uuid.New()
	e.played = false
	err := e.players[colour].Notify(location, moves, e.pending, e)
	if err == nil && !e.played {
		err = fmt.Errorf("%s did not play a move", colour)
	}
	if err == nil {
		return false
	}

	log.Warn().Err(err).Msgf("Falling back to the first legal move for %s", colour)
	if err := e.PlayMove(moves[0], e.pending); err != nil {
		panic(fmt.Sprintf("fallback move %v rejected: %v", moves[0], err))
	}
	return true
}

// Updates returns every applied move in order.
func (e *Engine) Updates() []Update {
	return e.updates
}

// Winner joins winning colours for records.
func Winner(colours []game.Colour) string {
	names := make([]string, len(colours))
	for i, c := range colours {
		names[i] = c.String()
	}
	return strings.Join(names, "+")
}
