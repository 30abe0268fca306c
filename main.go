package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"pursuit/config"
	"pursuit/experiments"
	"pursuit/game"
	"pursuit/logger"
)

func main() {
	configPath := flag.String("config", "", "YAML run configuration")
	games := flag.Int("games", 0, "Number of games, overrides the configuration")
	out := flag.String("out", "", "Results folder, overrides the configuration")
	chart := flag.Bool("chart", false, "Render an HTML chart of search effort")
	sweep := flag.Bool("sweep", false, "Play the games at every depth up to the configured one")
	flag.Parse()

	if err := run(*configPath, *games, *out, *chart, *sweep); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(configPath string, games int, out string, chart, sweep bool) error {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if games > 0 {
		cfg.Games = games
	}
	if out != "" {
		cfg.OutDir = out
	}
	logger.Init(cfg.LogLevel)

	board, err := loadBoard(cfg.MapFile)
	if err != nil {
		return err
	}

	var results *experiments.Results
	if sweep {
		results, _, err = experiments.RunDepthSweep(cfg, board)
	} else {
		results, err = experiments.RunGames(cfg, board)
	}
	if err != nil {
		return err
	}

	dir, err := experiments.Write(cfg.OutDir, results, chart)
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", dir)
	return nil
}

// loadBoard reads the map file, or returns the demo board with its start cards.
func loadBoard(path string) (experiments.Board, error) {
	if path == "" {
		return experiments.Board{
			Map:          game.CreateMap(),
			EvaderStarts: game.EvaderStarts,
			SeekerStarts: game.SeekerStarts,
		}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return experiments.Board{}, fmt.Errorf("failed to open map: %w", err)
	}
	defer f.Close()

	m, err := game.ReadMap(f)
	if err != nil {
		return experiments.Board{}, fmt.Errorf("failed to load map %s: %w", path, err)
	}
	return experiments.Board{Map: m}, nil
}
