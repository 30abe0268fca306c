package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pursuit/agent"
	"pursuit/config"
	"pursuit/game"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Seekers = 2
	cfg.Rounds = []bool{false, false, true, false, false, false, false, true, false, false}
	cfg.Depth = 2
	cfg.Games = 2
	cfg.Seed = 7
	cfg.Evader = agent.Search
	cfg.SeekersAgent = agent.Random
	return cfg
}

func demoBoard() Board {
	return Board{Map: game.CreateMap(), EvaderStarts: game.EvaderStarts, SeekerStarts: game.SeekerStarts}
}

func TestRunGames(t *testing.T) {
	t.Run("records every game and move", func(t *testing.T) {
		results, err := RunGames(smallConfig(), demoBoard())

		require.NoError(t, err)
		require.Len(t, results.Games, 2)
		total := 0
		for i, g := range results.Games {
			require.Equal(t, i+1, g.ID)
			require.NotEmpty(t, g.Winner)
			total += g.TotalMoves
		}
		require.Len(t, results.Moves, total)
	})

	t.Run("same seed replays the same games", func(t *testing.T) {
		first, err := RunGames(smallConfig(), demoBoard())
		require.NoError(t, err)
		second, err := RunGames(smallConfig(), demoBoard())
		require.NoError(t, err)

		require.Equal(t, len(first.Moves), len(second.Moves))
		for i := range first.Moves {
			require.Equal(t, first.Moves[i].Move, second.Moves[i].Move)
		}
	})

	t.Run("searching seekers search before the first reveal", func(t *testing.T) {
		cfg := smallConfig()
		cfg.Games = 1
		cfg.SeekersAgent = agent.Search

		results, err := RunGames(cfg, demoBoard())

		require.NoError(t, err)
		require.Zero(t, results.Games[0].Fallbacks, "No turn should fall back to the first legal move")
		searched := false
		for _, mm := range results.Moves {
			if !mm.Colour.IsEvader() && mm.Nodes > 0 {
				searched = true
			}
		}
		require.True(t, searched)
	})

	t.Run("too few start locations fail", func(t *testing.T) {
		board := demoBoard()
		board.SeekerStarts = []int{3}

		_, err := RunGames(smallConfig(), board)

		require.Error(t, err)
	})
}

func TestRunDepthSweep(t *testing.T) {
	cfg := smallConfig()
	cfg.Games = 1

	results, summaries, err := RunDepthSweep(cfg, demoBoard())

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Len(t, results.Games, 2, "One game per depth")
	for i, s := range summaries {
		require.Equal(t, i+1, s.Depth)
		require.Equal(t, 1, s.Games)
		require.Positive(t, s.Searches)
	}
	require.Greater(t, summaries[1].MeanNodes, 0.0)
}

func TestWrite(t *testing.T) {
	results, err := RunGames(smallConfig(), demoBoard())
	require.NoError(t, err)

	dir, err := Write(t.TempDir(), results, true)

	require.NoError(t, err)
	for _, name := range []string{"game_records.csv", "move_records.csv", "search_effort.html"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "%s should be written", name)
	}
}
