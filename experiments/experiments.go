package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pursuit/agent"
	"pursuit/config"
	"pursuit/engine"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/route"
)

// Board is the map games are played on and where players may start.
type Board struct {
	Map          *game.Map
	EvaderStarts []int // Empty means any location
	SeekerStarts []int
}

// Results collects the records of a batch of games.
type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

func (r *Results) add(metric metrics.GameMetric, moves []metrics.MoveMetric) int {
	id := len(r.Games) + 1
	r.Games = append(r.Games, metrics.GameRecord{ID: id, GameMetric: metric})
	for _, mm := range moves {
		r.Moves = append(r.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return id
}

// RunGames plays cfg.Games games at the configured depth.
func RunGames(cfg *config.Config, board Board) (*Results, error) {
	results := &Results{}
	rng := rand.New(rand.NewSource(cfg.Seed))
	router := route.New(board.Map)

	log.Info().Msgf("starting %d games with %d seekers at depth %d...", cfg.Games, cfg.Seekers, cfg.Depth)
	for i := 0; i < cfg.Games; i++ {
		gameMetric, moveMetrics, err := runGame(cfg, cfg.Depth, board, router, rng)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}
		id := results.add(gameMetric, moveMetrics)
		log.Info().Msgf("completed game %d of %d with winner: %s", id, cfg.Games, gameMetric.Winner)
	}
	return results, nil
}

// runGame sets up a fresh game from rng and plays it to the end.
func runGame(cfg *config.Config, depth int, board Board, router *route.Oracle, rng *rand.Rand) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gs, starts, err := engine.NewGame(cfg.Seekers, cfg.Rounds, board.Map, board.EvaderStarts, board.SeekerStarts, rng)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	// Seekers only know the public start pool until the evader is revealed
	pool := board.EvaderStarts
	if len(pool) == 0 {
		pool = board.Map.IDs()
	}

	factory := &agent.Factory{
		Router:  router,
		Depth:   depth,
		Evader:  cfg.Evader,
		Seekers: cfg.SeekersAgent,
		Seed:    rng.Uint64(),
		Metrics: true,
		Guess:   pool[rng.Intn(len(pool))],
	}
	players := make([]agent.Player, 0, len(gs.Players()))
	for _, colour := range gs.Players() {
		p, err := factory.NewPlayer(colour, gs, starts[colour])
		if err != nil {
			return metrics.GameMetric{}, nil, err
		}
		players = append(players, p)
	}

	e := engine.LocalEngine(gs, players, cfg.MaxTurns)
	_, gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}

// Write stores the records under dir, plus the search effort chart when chart is set.
// It returns the folder the files were written to.
func Write(dir string, results *Results, chart bool) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteGameRecords(results.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(results.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if chart {
		err = writer.WriteChart(results.Moves)
		if err != nil {
			return "", fmt.Errorf("failed to write chart: %w", err)
		}
		log.Info().Msg("stored search effort chart")
	}
	return writer.Dir(), nil
}
