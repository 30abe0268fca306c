package game

// Ticket is a transport credential held by a player.
type Ticket int

const (
	Taxi Ticket = iota
	Bus
	Underground
	Secret // valid on any transport, hides which one was used
	Double // evader only: two ticket moves in one turn
)

// AllTickets lists every ticket kind. Player records always carry an entry for each.
var AllTickets = []Ticket{Taxi, Bus, Underground, Secret, Double}

var ticketNames = [...]string{"Taxi", "Bus", "Underground", "Secret", "Double"}

func (t Ticket) String() string {
	if t < 0 || int(t) >= len(ticketNames) {
		return "Unknown"
	}
	return ticketNames[t]
}

// TicketFor returns the ticket a link of the given transport consumes.
// Boat links can only be taken with a secret ticket.
func TicketFor(t Transport) Ticket {
	switch t {
	case TransportBus:
		return Bus
	case TransportUnderground:
		return Underground
	case TransportBoat:
		return Secret
	default:
		return Taxi
	}
}

// Transport returns the transport a ticket pays for. Double tickets pay for none.
func (t Ticket) Transport() (Transport, bool) {
	switch t {
	case Taxi:
		return TransportTaxi, true
	case Bus:
		return TransportBus, true
	case Underground:
		return TransportUnderground, true
	case Secret:
		return TransportBoat, true
	default:
		return 0, false
	}
}
