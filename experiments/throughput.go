package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pursuit/config"
	"pursuit/route"
)

// DepthSummary is the average search effort of one depth over a sweep.
type DepthSummary struct {
	Depth       int
	Games       int
	EvaderWins  int
	Searches    int
	MeanNodes   float64
	MeanCutoffs float64
	MeanTime    time.Duration
}

// RunDepthSweep plays cfg.Games games at every depth from 1 to cfg.Depth. Each
// depth replays the same start positions so the depths are compared on equal terms.
func RunDepthSweep(cfg *config.Config, board Board) (*Results, []DepthSummary, error) {
	results := &Results{}
	summaries := []DepthSummary{}
	router := route.New(board.Map)

	log.Info().Msgf("starting depth sweep up to depth %d...", cfg.Depth)
	for depth := 1; depth <= cfg.Depth; depth++ {
		rng := rand.New(rand.NewSource(cfg.Seed))
		summary := DepthSummary{Depth: depth}
		var nodes, cutoffs int
		var elapsed time.Duration

		for i := 0; i < cfg.Games; i++ {
			gameMetric, moveMetrics, err := runGame(cfg, depth, board, router, rng)
			if err != nil {
				return nil, nil, fmt.Errorf("depth %d game %d: %w", depth, i+1, err)
			}
			results.add(gameMetric, moveMetrics)

			summary.Games++
			if gameMetric.Winner == "Black" {
				summary.EvaderWins++
			}
			for _, mm := range moveMetrics {
				if mm.Nodes == 0 {
					continue
				}
				summary.Searches++
				nodes += mm.Nodes
				cutoffs += mm.Cutoffs
				elapsed += mm.Duration
			}
		}

		if summary.Searches > 0 {
			summary.MeanNodes = float64(nodes) / float64(summary.Searches)
			summary.MeanCutoffs = float64(cutoffs) / float64(summary.Searches)
			summary.MeanTime = elapsed / time.Duration(summary.Searches)
		}
		summaries = append(summaries, summary)
		log.Info().Msgf("depth %d: %d/%d evader wins, %.0f nodes and %s per search",
			depth, summary.EvaderWins, summary.Games, summary.MeanNodes, summary.MeanTime)
	}
	return results, summaries, nil
}
