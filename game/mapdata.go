package game

// CreateMap builds the built-in demo board: a 3x8 grid of streets with bus
// lines, an underground and two ferry crossings laid over it.
func CreateMap() *Map {
	return BuildMap(demoLinks)
}

// EvaderStarts and SeekerStarts are the start cards for the demo board.
var (
	EvaderStarts = []int{1, 8, 12, 17, 24}
	SeekerStarts = []int{3, 5, 10, 14, 15, 19, 21}
)

// GLOBAL DATA. Small enough to reason about in tests while still using every transport.

var demoLinks = []Link{
	// streets
	{1, 2, TransportTaxi}, {2, 3, TransportTaxi}, {3, 4, TransportTaxi}, {4, 5, TransportTaxi},
	{5, 6, TransportTaxi}, {6, 7, TransportTaxi}, {7, 8, TransportTaxi},
	{9, 10, TransportTaxi}, {10, 11, TransportTaxi}, {11, 12, TransportTaxi}, {12, 13, TransportTaxi},
	{13, 14, TransportTaxi}, {14, 15, TransportTaxi}, {15, 16, TransportTaxi},
	{17, 18, TransportTaxi}, {18, 19, TransportTaxi}, {19, 20, TransportTaxi}, {20, 21, TransportTaxi},
	{21, 22, TransportTaxi}, {22, 23, TransportTaxi}, {23, 24, TransportTaxi},
	{1, 9, TransportTaxi}, {2, 10, TransportTaxi}, {3, 11, TransportTaxi}, {4, 12, TransportTaxi},
	{5, 13, TransportTaxi}, {6, 14, TransportTaxi}, {7, 15, TransportTaxi}, {8, 16, TransportTaxi},
	{9, 17, TransportTaxi}, {10, 18, TransportTaxi}, {11, 19, TransportTaxi}, {12, 20, TransportTaxi},
	{13, 21, TransportTaxi}, {14, 22, TransportTaxi}, {15, 23, TransportTaxi}, {16, 24, TransportTaxi},

	// bus lines
	{1, 11, TransportBus}, {11, 21, TransportBus}, {3, 13, TransportBus}, {13, 23, TransportBus},
	{5, 15, TransportBus}, {2, 4, TransportBus}, {6, 8, TransportBus}, {17, 19, TransportBus},
	{19, 21, TransportBus}, {21, 23, TransportBus},

	// underground
	{1, 13, TransportUnderground}, {13, 24, TransportUnderground},
	{4, 20, TransportUnderground}, {8, 17, TransportUnderground},

	// ferries
	{9, 16, TransportBoat}, {17, 24, TransportBoat},
}
