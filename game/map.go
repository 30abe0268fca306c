package game

import "sort"

// Edge is a link from a location to a neighbour.
type Edge struct {
	To        int
	Transport Transport
}

// Location is a numbered node of the board.
type Location struct {
	ID    int
	Edges []Edge // Outgoing links in insertion order
}

// Link describes an undirected edge when building a map.
type Link struct {
	A, B      int
	Transport Transport
}

// Map is the board: numbered locations joined by typed, undirected links.
// A Map is built once and never mutated while games or searches use it.
type Map struct {
	Locations map[int]*Location
}

// NewMap creates and returns a new Map instance.
func NewMap() *Map {
	return &Map{
		Locations: make(map[int]*Location),
	}
}

// BuildMap creates a map holding the given links and their endpoints.
func BuildMap(links []Link) *Map {
	m := NewMap()
	for _, l := range links {
		m.AddEdge(l.A, l.B, l.Transport)
	}
	return m
}

// AddLocation adds a location to the map if it is not already present.
func (m *Map) AddLocation(id int) {
	if _, ok := m.Locations[id]; !ok {
		m.Locations[id] = &Location{ID: id}
	}
}

// AddEdge adds a bidirectional link between two locations.
func (m *Map) AddEdge(a, b int, t Transport) {
	m.AddLocation(a)
	m.AddLocation(b)
	if !contains(m.Locations[a].Edges, Edge{To: b, Transport: t}) {
		m.Locations[a].Edges = append(m.Locations[a].Edges, Edge{To: b, Transport: t})
	}
	if !contains(m.Locations[b].Edges, Edge{To: a, Transport: t}) {
		m.Locations[b].Edges = append(m.Locations[b].Edges, Edge{To: a, Transport: t})
	}
}

// Has reports whether id is a location of the map.
func (m *Map) Has(id int) bool {
	_, ok := m.Locations[id]
	return ok
}

// EdgesFrom returns the links leaving a location, nil if it does not exist.
func (m *Map) EdgesFrom(id int) []Edge {
	loc, ok := m.Locations[id]
	if !ok {
		return nil
	}
	return loc.Edges
}

// IDs returns every location id in ascending order.
func (m *Map) IDs() []int {
	ids := make([]int, 0, len(m.Locations))
	for id := range m.Locations {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// contains checks if a slice already holds an edge (avoid duplicate links)
func contains(slice []Edge, item Edge) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
