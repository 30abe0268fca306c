package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// PlayerRecord holds one player's position and ticket inventory.
type PlayerRecord struct {
	Colour   Colour
	Location int
	Tickets  map[Ticket]int
}

func (p *PlayerRecord) copy() *PlayerRecord {
	tickets := make(map[Ticket]int, len(p.Tickets))
	for ticket, count := range p.Tickets {
		tickets[ticket] = count
	}
	return &PlayerRecord{
		Colour:   p.Colour,
		Location: p.Location,
		Tickets:  tickets,
	}
}

// GameState is a full snapshot of one game in progress. Everything except the
// map (which is static and shared) is owned by the snapshot and mutated in place by Play.
type GameState struct {
	Map      *Map            // Reference to the static board
	seekers  int             // Declared number of seekers
	rounds   []bool          // rounds[n] is true when the evader is revealed in round n
	players  []*PlayerRecord // Join order, evader first
	round    int             // Number of ticket moves the evader has made
	current  int             // Index into players of the player to move, -1 until ready
	evaderAt int             // The evader's true location
	revealed int             // The evader's last revealed location, 0 if never revealed
}

// NewGameState returns an empty game waiting for the evader and the given number of seekers to join.
func NewGameState(seekers int, rounds []bool, m *Map) *GameState {
	roundsCopy := make([]bool, len(rounds))
	copy(roundsCopy, rounds)
	return &GameState{
		Map:     m,
		seekers: seekers,
		rounds:  roundsCopy,
		current: -1,
	}
}

// Join adds a player. The evader must join first; once every declared seeker
// has joined the evader becomes the current player and round 0 begins.
func (gs *GameState) Join(colour Colour, location int, tickets map[Ticket]int) error {
	if gs.IsReady() {
		return fmt.Errorf("cannot join %s: %w", colour, ErrGameFull)
	}
	if gs.record(colour) != nil {
		return fmt.Errorf("cannot join %s: %w", colour, ErrDuplicateColour)
	}
	if len(gs.players) == 0 && !colour.IsEvader() {
		return fmt.Errorf("cannot join %s: %w", colour, ErrEvaderFirst)
	}
	if !gs.Map.Has(location) {
		return fmt.Errorf("cannot join %s at %d: %w", colour, location, ErrBadLocation)
	}

	inventory := make(map[Ticket]int, len(AllTickets))
	for _, ticket := range AllTickets {
		inventory[ticket] = max(tickets[ticket], 0)
	}
	gs.players = append(gs.players, &PlayerRecord{Colour: colour, Location: location, Tickets: inventory})

	if gs.IsReady() {
		gs.current = 0
		gs.evaderAt = gs.players[0].Location
		gs.reveal()
	}
	return nil
}

// IsReady reports whether every declared player has joined.
func (gs *GameState) IsReady() bool {
	return len(gs.players) == gs.seekers+1
}

// Copy returns a deep copy of the snapshot that shares only the map.
func (gs *GameState) Copy() *GameState {
	roundsCopy := make([]bool, len(gs.rounds))
	copy(roundsCopy, gs.rounds)

	playersCopy := make([]*PlayerRecord, len(gs.players))
	for i, p := range gs.players {
		playersCopy[i] = p.copy()
	}

	return &GameState{
		Map:      gs.Map, // Map is immutable
		seekers:  gs.seekers,
		rounds:   roundsCopy,
		players:  playersCopy,
		round:    gs.round,
		current:  gs.current,
		evaderAt: gs.evaderAt,
		revealed: gs.revealed,
	}
}

// CloneView rebuilds a playable snapshot from any view of a game. The view
// only exposes the evader's last revealed position, so the caller supplies
// where it believes the evader really is.
func CloneView(v View, evaderAt int) (*GameState, error) {
	gs := NewGameState(v.SeekerCount(), v.Rounds(), v.Graph())
	for _, colour := range v.Players() {
		location := v.Location(colour)
		if colour.IsEvader() {
			location = evaderAt
		}
		tickets := make(map[Ticket]int, len(AllTickets))
		for _, ticket := range AllTickets {
			tickets[ticket] = v.Tickets(colour, ticket)
		}
		if err := gs.Join(colour, location, tickets); err != nil {
			return nil, fmt.Errorf("failed to clone view: %w", err)
		}
	}
	if !gs.IsReady() {
		return nil, fmt.Errorf("failed to clone view: only %d of %d players joined", len(gs.players), gs.seekers+1)
	}

	gs.round = v.Round()
	gs.current = gs.indexOf(v.CurrentPlayer())
	gs.revealed = v.Location(Black)
	return gs, nil
}

// LegalMoves returns every move the given colour may play from this position.
// Seekers with nowhere to go get a single pass; the evader never passes, so an
// empty result for the evader means it is trapped.
func (gs *GameState) LegalMoves(colour Colour) []Move {
	p := gs.mustRecord(colour)
	moves := []Move{}

	for _, first := range gs.Map.EdgesFrom(p.Location) {
		ticket := TicketFor(first.Transport)
		if !gs.occupied(first.To, colour) {
			if p.Tickets[ticket] > 0 {
				moves = append(moves, TicketMove{Colour: colour, Ticket: ticket, Target: first.To})
			}
			if ticket != Secret && p.Tickets[Secret] > 0 {
				moves = append(moves, TicketMove{Colour: colour, Ticket: Secret, Target: first.To})
			}
		}

		// A double move must land within the round schedule
		if colour.IsEvader() && p.Tickets[Double] > 0 && gs.round+2 < len(gs.rounds) {
			moves = gs.appendDoubleMoves(moves, p, first)
		}
	}

	if len(moves) == 0 && !colour.IsEvader() {
		moves = append(moves, PassMove{Colour: colour})
	}
	return moves
}

// appendDoubleMoves adds every ticket combination for the two-hop routes that
// start with the given link. Combinations reaching the same locations with
// different tickets are all kept since they cost different tickets.
func (gs *GameState) appendDoubleMoves(moves []Move, p *PlayerRecord, first Edge) []Move {
	for _, second := range gs.Map.EdgesFrom(first.To) {
		if gs.occupied(first.To, p.Colour) || gs.occupied(second.To, p.Colour) {
			continue
		}
		for _, t1 := range ticketChoices(first.Transport) {
			for _, t2 := range ticketChoices(second.Transport) {
				need := map[Ticket]int{t1: 1}
				need[t2]++
				if p.Tickets[t1] < need[t1] || p.Tickets[t2] < need[t2] {
					continue
				}
				moves = append(moves, NewDoubleMove(p.Colour, t1, first.To, t2, second.To))
			}
		}
	}
	return moves
}

// ticketChoices returns the tickets that pay for a link: its own kind and a secret.
func ticketChoices(t Transport) []Ticket {
	ticket := TicketFor(t)
	if ticket == Secret {
		return []Ticket{Secret}
	}
	return []Ticket{ticket, Secret}
}

// occupied reports whether a seeker other than colour stands on the location.
func (gs *GameState) occupied(location int, colour Colour) bool {
	for _, p := range gs.players {
		if !p.Colour.IsEvader() && p.Colour != colour && p.Location == location {
			return true
		}
	}
	return false
}

// Play applies a move for the current player and passes the turn on.
func (gs *GameState) Play(move Move) {
	if !gs.IsReady() {
		panic("cannot play before every player has joined")
	}
	if move.Player() != gs.CurrentPlayer() {
		panic(fmt.Sprintf("move %v played out of turn, current player is %s", move, gs.CurrentPlayer()))
	}

	switch m := move.(type) {
	case TicketMove:
		gs.playTicket(m)
	case DoubleMove:
		gs.playTicket(m.First)
		gs.playTicket(m.Second)
		gs.mustRecord(m.Colour).Tickets[Double]--
	case PassMove:
	default:
		panic(fmt.Sprintf("unknown move type %T", move))
	}

	gs.current = (gs.current + 1) % len(gs.players)
}

func (gs *GameState) playTicket(m TicketMove) {
	p := gs.mustRecord(m.Colour)
	p.Location = m.Target
	p.Tickets[m.Ticket]--

	if !m.Colour.IsEvader() {
		// Spent seeker tickets go to the evader
		gs.players[0].Tickets[m.Ticket]++
		return
	}
	gs.round++
	gs.evaderAt = m.Target
	gs.reveal()
}

// reveal publishes the evader's position when the current round is a reveal round.
func (gs *GameState) reveal() {
	if gs.round < len(gs.rounds) && gs.rounds[gs.round] {
		gs.revealed = gs.evaderAt
	}
}

// IsTerminal reports whether the game is over. It is recomputed on every call.
func (gs *GameState) IsTerminal() bool {
	if len(gs.players) == 1 {
		return true
	}
	if !gs.IsReady() {
		return false
	}
	if gs.evaderTrapped() {
		return true
	}

	// Counted over every player, not only those still to move this round
	passes := 0
	for _, p := range gs.players {
		for _, move := range gs.LegalMoves(p.Colour) {
			if _, ok := move.(PassMove); ok {
				passes++
			}
		}
	}
	if passes == len(gs.players)-1 {
		return true
	}

	if gs.captured() {
		return true
	}
	if gs.seekersOutOfTickets() {
		return true
	}
	return gs.round >= len(gs.rounds)-1 && gs.CurrentPlayer().IsEvader()
}

// Winners returns the winning colours of a finished game, nil while it is running.
func (gs *GameState) Winners() []Colour {
	if !gs.IsTerminal() {
		return nil
	}
	if gs.IsReady() && (gs.evaderTrapped() || gs.captured()) {
		return gs.Seekers()
	}
	return []Colour{Black}
}

func (gs *GameState) evaderTrapped() bool {
	return gs.CurrentPlayer().IsEvader() && len(gs.LegalMoves(Black)) == 0
}

func (gs *GameState) captured() bool {
	for _, p := range gs.players[1:] {
		if p.Location == gs.evaderAt {
			return true
		}
	}
	return false
}

func (gs *GameState) seekersOutOfTickets() bool {
	for _, p := range gs.players[1:] {
		for _, count := range p.Tickets {
			if count > 0 {
				return false
			}
		}
	}
	return true
}

// Players returns the joined colours in join order, evader first.
func (gs *GameState) Players() []Colour {
	colours := make([]Colour, len(gs.players))
	for i, p := range gs.players {
		colours[i] = p.Colour
	}
	return colours
}

// Seekers returns the joined seeker colours in join order.
func (gs *GameState) Seekers() []Colour {
	colours := []Colour{}
	for _, p := range gs.players {
		if !p.Colour.IsEvader() {
			colours = append(colours, p.Colour)
		}
	}
	return colours
}

func (gs *GameState) SeekerCount() int { return gs.seekers }

// CurrentPlayer returns the colour to move. Before the game is ready it is the evader.
func (gs *GameState) CurrentPlayer() Colour {
	if gs.current < 0 {
		return Black
	}
	return gs.players[gs.current].Colour
}

// Location returns where a player stands. For the evader this is the last
// revealed location, 0 if it has never been revealed. Unknown colours give 0.
func (gs *GameState) Location(colour Colour) int {
	if colour.IsEvader() {
		return gs.revealed
	}
	if p := gs.record(colour); p != nil {
		return p.Location
	}
	return 0
}

// EvaderLocation returns the evader's true location. Harnesses must not
// forward it to seekers.
func (gs *GameState) EvaderLocation() int {
	return gs.evaderAt
}

// Tickets returns how many tickets of a kind a player holds, -1 for a colour that has not joined.
func (gs *GameState) Tickets(colour Colour, ticket Ticket) int {
	p := gs.record(colour)
	if p == nil {
		return -1
	}
	return p.Tickets[ticket]
}

// Round returns the number of ticket moves the evader has made. A double move counts twice.
func (gs *GameState) Round() int { return gs.round }

// Rounds returns a copy of the reveal schedule.
func (gs *GameState) Rounds() []bool {
	rounds := make([]bool, len(gs.rounds))
	copy(rounds, gs.rounds)
	return rounds
}

func (gs *GameState) Graph() *Map { return gs.Map }

func (gs *GameState) record(colour Colour) *PlayerRecord {
	for _, p := range gs.players {
		if p.Colour == colour {
			return p
		}
	}
	return nil
}

func (gs *GameState) mustRecord(colour Colour) *PlayerRecord {
	p := gs.record(colour)
	if p == nil {
		panic(fmt.Sprintf("colour %s has not joined the game", colour))
	}
	return p
}

func (gs *GameState) indexOf(colour Colour) int {
	for i, p := range gs.players {
		if p.Colour == colour {
			return i
		}
	}
	return -1
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash round and current player
	binary.Write(hasher, binary.LittleEndian, int64(gs.round))
	binary.Write(hasher, binary.LittleEndian, int64(gs.current))
	binary.Write(hasher, binary.LittleEndian, int64(gs.evaderAt))

	// Hash locations and tickets
	for _, p := range gs.players {
		binary.Write(hasher, binary.LittleEndian, int64(p.Colour))
		binary.Write(hasher, binary.LittleEndian, int64(p.Location))
		for _, ticket := range AllTickets {
			binary.Write(hasher, binary.LittleEndian, int64(p.Tickets[ticket]))
		}
	}

	return StateHash(hasher.Sum64())
}
