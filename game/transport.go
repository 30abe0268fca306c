package game

import "fmt"

// Transport is the kind of link between two locations.
type Transport int

const (
	TransportTaxi Transport = iota
	TransportBus
	TransportUnderground
	TransportBoat
)

// Transports lists every transport kind.
var Transports = []Transport{TransportTaxi, TransportBus, TransportUnderground, TransportBoat}

var transportNames = [...]string{"Taxi", "Bus", "Underground", "Boat"}

func (t Transport) String() string {
	if t < 0 || int(t) >= len(transportNames) {
		return "Unknown"
	}
	return transportNames[t]
}

// ParseTransport converts a transport name as written in map files.
func ParseTransport(name string) (Transport, error) {
	for i, n := range transportNames {
		if n == name {
			return Transport(i), nil
		}
	}
	return 0, fmt.Errorf("unknown transport %q", name)
}
