// meta/meta.go
package meta

// DEPTH defines the default number of plies the minimax search looks ahead.
const DEPTH = 6

// SEEKERS defines the default number of seekers in a game.
const SEEKERS = 5

// ROUNDS defines the length of the default reveal schedule.
const ROUNDS = 25

// REVEAL_ROUNDS are the rounds in which the evader's location is made public.
var REVEAL_ROUNDS = []int{3, 8, 13, 18, 24}

// MAX_TURNS caps the number of turns the engine plays before calling the game for the evader.
const MAX_TURNS = 300

// Starting tickets for every seeker.
const (
	SEEKER_TAXI        = 10
	SEEKER_BUS         = 8
	SEEKER_UNDERGROUND = 4
)

// Starting tickets for the evader.
const (
	EVADER_TAXI        = 4
	EVADER_BUS         = 3
	EVADER_UNDERGROUND = 3
	EVADER_DOUBLE      = 2
	EVADER_SECRET      = 5
)

// Schedule expands REVEAL_ROUNDS into a reveal schedule of ROUNDS entries.
func Schedule() []bool {
	rounds := make([]bool, ROUNDS)
	for _, r := range REVEAL_ROUNDS {
		rounds[r] = true
	}
	return rounds
}
