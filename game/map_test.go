package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMap(t *testing.T) {
	t.Run("links are added in both directions once", func(t *testing.T) {
		m := BuildMap([]Link{{1, 2, TransportTaxi}, {2, 1, TransportTaxi}, {1, 2, TransportBus}})

		require.Equal(t, []Edge{{2, TransportTaxi}, {2, TransportBus}}, m.EdgesFrom(1))
		require.Equal(t, []Edge{{1, TransportTaxi}, {1, TransportBus}}, m.EdgesFrom(2))
		require.Equal(t, []int{1, 2}, m.IDs())
	})

	t.Run("unknown location has no edges", func(t *testing.T) {
		m := BuildMap([]Link{{1, 2, TransportTaxi}})
		require.False(t, m.Has(3))
		require.Nil(t, m.EdgesFrom(3))
	})
}

func TestCreateMap(t *testing.T) {
	m := CreateMap()

	require.Len(t, m.IDs(), 24)
	for _, start := range append(append([]int{}, EvaderStarts...), SeekerStarts...) {
		require.True(t, m.Has(start), "Start %d should be on the board", start)
	}

	used := map[Transport]bool{}
	for _, id := range m.IDs() {
		require.NotEmpty(t, m.EdgesFrom(id), "Location %d should be connected", id)
		for _, e := range m.EdgesFrom(id) {
			used[e.Transport] = true
		}
	}
	for _, transport := range Transports {
		require.True(t, used[transport], "Demo board should use %s", transport)
	}
}

func TestReadMap(t *testing.T) {
	t.Run("parses locations and links", func(t *testing.T) {
		input := `4 3
1
2
3

4
1 2 Taxi
2 3 Bus
3 4 Boat
`
		m, err := ReadMap(strings.NewReader(input))

		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3, 4}, m.IDs())
		require.Equal(t, []Edge{{1, TransportTaxi}, {3, TransportBus}}, m.EdgesFrom(2))
		require.Equal(t, []Edge{{3, TransportBoat}}, m.EdgesFrom(4))
	})

	t.Run("declared location without links is kept", func(t *testing.T) {
		m, err := ReadMap(strings.NewReader("3 1\n1\n2\n3\n1 2 Underground\n"))

		require.NoError(t, err)
		require.True(t, m.Has(3))
		require.Empty(t, m.EdgesFrom(3))
	})

	t.Run("rejects bad input", func(t *testing.T) {
		cases := map[string]string{
			"missing header":      "",
			"short header":        "2\n",
			"bad count":           "two 1\n",
			"truncated locations": "3 0\n1\n2\n",
			"truncated links":     "2 2\n1\n2\n1 2 Taxi\n",
			"unknown transport":   "2 1\n1\n2\n1 2 Tram\n",
			"undeclared endpoint": "2 1\n1\n2\n1 5 Taxi\n",
			"short link":          "2 1\n1\n2\n1 2\n",
		}
		for name, input := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := ReadMap(strings.NewReader(input))
				require.Error(t, err)
			})
		}
	})
}

func TestTickets(t *testing.T) {
	t.Run("boats are paid with secret tickets", func(t *testing.T) {
		require.Equal(t, Secret, TicketFor(TransportBoat))
		require.Equal(t, Taxi, TicketFor(TransportTaxi))

		transport, ok := Secret.Transport()
		require.True(t, ok)
		require.Equal(t, TransportBoat, transport)
	})

	t.Run("double ticket has no transport", func(t *testing.T) {
		_, ok := Double.Transport()
		require.False(t, ok)
	})

	t.Run("parses transport names", func(t *testing.T) {
		for _, transport := range Transports {
			parsed, err := ParseTransport(transport.String())
			require.NoError(t, err)
			require.Equal(t, transport, parsed)
		}
		_, err := ParseTransport("Tram")
		require.Error(t, err)
	})
}
