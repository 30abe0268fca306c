package game

import "errors"

var (
	ErrGameFull        = errors.New("all declared players have already joined")
	ErrDuplicateColour = errors.New("colour has already joined")
	ErrEvaderFirst     = errors.New("the evader must join first")
	ErrBadLocation     = errors.New("location is not on the map")
)

type StateHash uint64

// View is the read-only surface of a game that players and the search may
// consult. For the evader Location reports the last revealed position, never
// the true one.
type View interface {
	Players() []Colour
	SeekerCount() int
	CurrentPlayer() Colour
	Location(colour Colour) int
	Tickets(colour Colour, ticket Ticket) int
	Round() int
	Rounds() []bool
	Graph() *Map
}
