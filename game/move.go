package game

import "fmt"

// Move is one of TicketMove, DoubleMove or PassMove. The set is closed: the
// unexported method keeps other packages from adding variants, and Play panics
// on anything it does not recognise.
type Move interface {
	Player() Colour
	isMove()
}

// TicketMove spends one ticket to travel along a single link.
type TicketMove struct {
	Colour Colour
	Ticket Ticket
	Target int
}

// DoubleMove spends a double ticket to play two ticket moves in one turn.
type DoubleMove struct {
	Colour Colour
	First  TicketMove
	Second TicketMove
}

// PassMove is played by a seeker that has nowhere to go.
type PassMove struct {
	Colour Colour
}

// NewDoubleMove builds a double move from its two hops.
func NewDoubleMove(colour Colour, first Ticket, via int, second Ticket, target int) DoubleMove {
	return DoubleMove{
		Colour: colour,
		First:  TicketMove{Colour: colour, Ticket: first, Target: via},
		Second: TicketMove{Colour: colour, Ticket: second, Target: target},
	}
}

func (m TicketMove) Player() Colour { return m.Colour }
func (m DoubleMove) Player() Colour { return m.Colour }
func (m PassMove) Player() Colour   { return m.Colour }

func (TicketMove) isMove() {}
func (DoubleMove) isMove() {}
func (PassMove) isMove()   {}

func (m TicketMove) String() string {
	return fmt.Sprintf("%s %s->%d", m.Colour, m.Ticket, m.Target)
}

func (m DoubleMove) String() string {
	return fmt.Sprintf("%s Double[%s->%d, %s->%d]", m.Colour, m.First.Ticket, m.First.Target, m.Second.Ticket, m.Second.Target)
}

func (m PassMove) String() string {
	return fmt.Sprintf("%s Pass", m.Colour)
}
