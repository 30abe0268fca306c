package game

// Colour identifies a player. Black is always the evader, every other colour is a seeker.
type Colour int

const (
	Black Colour = iota
	Blue
	Green
	Red
	White
	Yellow
)

// Colours lists every colour in the order players join a game.
var Colours = []Colour{Black, Blue, Green, Red, White, Yellow}

// MaxSeekers is the largest number of seekers a game can declare.
const MaxSeekers = 5

var colourNames = [...]string{"Black", "Blue", "Green", "Red", "White", "Yellow"}

func (c Colour) String() string {
	if c < 0 || int(c) >= len(colourNames) {
		return "Unknown"
	}
	return colourNames[c]
}

// IsEvader reports whether c is the hidden player.
func (c Colour) IsEvader() bool {
	return c == Black
}
