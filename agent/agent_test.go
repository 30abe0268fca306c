package agent

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pursuit/game"
	"pursuit/route"
	"pursuit/searcher"
)

type mockReceiver struct {
	moves  []game.Move
	tokens []uuid.UUID
}

func (r *mockReceiver) PlayMove(move game.Move, token uuid.UUID) error {
	r.moves = append(r.moves, move)
	r.tokens = append(r.tokens, token)
	return nil
}

func lineGame(t *testing.T) (*game.Map, *game.GameState) {
	t.Helper()
	m := game.BuildMap([]game.Link{
		{A: 1, B: 2, Transport: game.TransportTaxi},
		{A: 2, B: 3, Transport: game.TransportTaxi},
		{A: 3, B: 4, Transport: game.TransportTaxi},
		{A: 4, B: 5, Transport: game.TransportTaxi},
	})
	gs := game.NewGameState(1, make([]bool, 25), m)
	require.NoError(t, gs.Join(game.Black, 1, map[game.Ticket]int{game.Taxi: 2}))
	require.NoError(t, gs.Join(game.Blue, 5, map[game.Ticket]int{game.Taxi: 1}))
	return m, gs
}

func TestSearchPlayer(t *testing.T) {
	t.Run("plays the searched move with the turn's token", func(t *testing.T) {
		m, gs := lineGame(t)
		player := NewSearchPlayer(game.Black, gs, searcher.NewMinimax(game.Black, route.New(m), searcher.WithDepth(1), searcher.WithMetrics()))
		receiver := &mockReceiver{}
		token := uuid.New()

		err := player.Notify(1, gs.LegalMoves(game.Black), token, receiver)

		require.NoError(t, err)
		require.Equal(t, []game.Move{game.TicketMove{Colour: game.Black, Ticket: game.Taxi, Target: 2}}, receiver.moves)
		require.Equal(t, []uuid.UUID{token}, receiver.tokens)
		require.Positive(t, player.LastMetric().Nodes)
	})

	t.Run("failed search sends nothing", func(t *testing.T) {
		m, gs := lineGame(t)
		gs.Play(game.TicketMove{Colour: game.Black, Ticket: game.Taxi, Target: 2})
		player := NewSearchPlayer(game.Blue, gs, searcher.NewMinimax(game.Blue, route.New(m), searcher.WithDepth(1)))
		receiver := &mockReceiver{}

		// Evader never revealed, so the seeker has no belief to search with
		err := player.Notify(gs.Location(game.Black), gs.LegalMoves(game.Blue), uuid.New(), receiver)

		require.ErrorIs(t, err, game.ErrBadLocation)
		require.Empty(t, receiver.moves)
	})
}

func TestRandomPlayer(t *testing.T) {
	moves := []game.Move{
		game.TicketMove{Colour: game.Blue, Ticket: game.Taxi, Target: 1},
		game.TicketMove{Colour: game.Blue, Ticket: game.Bus, Target: 2},
		game.TicketMove{Colour: game.Blue, Ticket: game.Underground, Target: 3},
	}

	t.Run("plays one of the legal moves", func(t *testing.T) {
		player := NewRandomPlayer(game.Blue, 7)
		receiver := &mockReceiver{}

		for i := 0; i < 20; i++ {
			require.NoError(t, player.Notify(0, moves, uuid.New(), receiver))
		}

		require.Len(t, receiver.moves, 20)
		for _, move := range receiver.moves {
			require.Contains(t, moves, move)
		}
	})

	t.Run("same seed plays the same moves", func(t *testing.T) {
		first, second := &mockReceiver{}, &mockReceiver{}
		a, b := NewRandomPlayer(game.Blue, 42), NewRandomPlayer(game.Blue, 42)

		for i := 0; i < 10; i++ {
			require.NoError(t, a.Notify(0, moves, uuid.New(), first))
			require.NoError(t, b.Notify(0, moves, uuid.New(), second))
		}

		require.Equal(t, first.moves, second.moves)
	})

	t.Run("no moves is an error", func(t *testing.T) {
		require.Error(t, NewRandomPlayer(game.Blue, 1).Notify(0, nil, uuid.New(), &mockReceiver{}))
	})
}

func TestFactory(t *testing.T) {
	m, gs := lineGame(t)

	t.Run("builds the configured kind per side", func(t *testing.T) {
		f := &Factory{Router: route.New(m), Depth: 2, Evader: Search, Seekers: Random}

		evader, err := f.NewPlayer(game.Black, gs, 1)
		require.NoError(t, err)
		require.IsType(t, &SearchPlayer{}, evader)
		require.Equal(t, game.Black, evader.Colour())
		require.Equal(t, 1, evader.(*SearchPlayer).search.Belief(), "Evader should start believing its own start")
		require.Equal(t, 2, evader.(*SearchPlayer).search.Depth())

		seeker, err := f.NewPlayer(game.Blue, gs, 5)
		require.NoError(t, err)
		require.IsType(t, &RandomPlayer{}, seeker)
		require.Equal(t, game.Blue, seeker.Colour())
	})

	t.Run("searching seekers start from the guess", func(t *testing.T) {
		f := &Factory{Router: route.New(m), Depth: 2, Evader: Random, Seekers: Search, Guess: 3}

		seeker, err := f.NewPlayer(game.Blue, gs, 5)

		require.NoError(t, err)
		require.Equal(t, 3, seeker.(*SearchPlayer).search.Belief())
	})

	t.Run("searching seeker plays before the first reveal", func(t *testing.T) {
		m, gs := lineGame(t)
		gs.Play(game.TicketMove{Colour: game.Black, Ticket: game.Taxi, Target: 2})
		require.Zero(t, gs.Location(game.Black), "Evader should still be hidden")
		f := &Factory{Router: route.New(m), Depth: 2, Evader: Random, Seekers: Search, Guess: 1}
		seeker, err := f.NewPlayer(game.Blue, gs, 5)
		require.NoError(t, err)
		receiver := &mockReceiver{}

		err = seeker.Notify(gs.Location(game.Black), gs.LegalMoves(game.Blue), uuid.New(), receiver)

		require.NoError(t, err)
		require.Equal(t, []game.Move{game.TicketMove{Colour: game.Blue, Ticket: game.Taxi, Target: 4}}, receiver.moves)
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		f := &Factory{Router: route.New(m), Evader: "oracle"}

		_, err := f.NewPlayer(game.Black, gs, 1)

		require.Error(t, err)
	})

	t.Run("parses kinds", func(t *testing.T) {
		kind, err := ParseKind("search")
		require.NoError(t, err)
		require.Equal(t, Search, kind)

		_, err = ParseKind("greedy")
		require.Error(t, err)
	})
}
