package route

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"pursuit/game"
)

var (
	ErrNoRoute         = errors.New("locations are not connected")
	ErrUnknownLocation = errors.New("location is not on the map")
)

// mask is a bit set of usable transports.
type mask uint8

var everyTransport = func() mask {
	var m mask
	for _, t := range game.Transports {
		m |= 1 << t
	}
	return m
}()

type source struct {
	allowed mask
	from    int
}

// Oracle answers shortest path queries over a map restricted to a set of
// transports. Each transport subset gets its own graph and every search tree
// rooted at a location is cached, so repeated heuristic calls are lookups.
type Oracle struct {
	m *game.Map

	mu     sync.Mutex
	graphs map[mask]*simple.UndirectedGraph
	trees  map[source]path.Shortest
}

func New(m *game.Map) *Oracle {
	return &Oracle{
		m:      m,
		graphs: make(map[mask]*simple.UndirectedGraph),
		trees:  make(map[source]path.Shortest),
	}
}

// Route returns the locations visited after from on a shortest path to to,
// using only transports with a positive count in allowed. The result is empty
// when from equals to. When the allowed transports cannot reach to, the
// shortest path over every transport is returned instead, so a seeker stranded
// by its tickets still gets a defined distance. ErrNoRoute means the map itself
// does not connect the two locations.
func (o *Oracle) Route(from, to int, allowed map[game.Transport]int) ([]int, error) {
	if !o.m.Has(from) {
		return nil, fmt.Errorf("route from %d: %w", from, ErrUnknownLocation)
	}
	if !o.m.Has(to) {
		return nil, fmt.Errorf("route to %d: %w", to, ErrUnknownLocation)
	}
	if from == to {
		return []int{}, nil
	}

	restricted := maskOf(allowed)
	nodes, ok := o.shortest(restricted, from, to)
	if !ok && restricted != everyTransport {
		nodes, ok = o.shortest(everyTransport, from, to)
	}
	if !ok {
		return nil, fmt.Errorf("route %d->%d: %w", from, to, ErrNoRoute)
	}

	ids := make([]int, 0, len(nodes)-1)
	for _, n := range nodes[1:] {
		ids = append(ids, int(n.ID()))
	}
	return ids, nil
}

func (o *Oracle) shortest(allowed mask, from, to int) ([]graph.Node, bool) {
	nodes, weight := o.tree(source{allowed: allowed, from: from}).To(int64(to))
	return nodes, !math.IsInf(weight, 1) && len(nodes) > 0
}

func (o *Oracle) tree(key source) path.Shortest {
	o.mu.Lock()
	defer o.mu.Unlock()

	if tree, ok := o.trees[key]; ok {
		return tree
	}
	g := o.graph(key.allowed)
	tree := path.DijkstraFrom(g.Node(int64(key.from)), g)
	o.trees[key] = tree
	return tree
}

// graph must be called with mu held.
func (o *Oracle) graph(allowed mask) *simple.UndirectedGraph {
	if g, ok := o.graphs[allowed]; ok {
		return g
	}

	g := simple.NewUndirectedGraph()
	for _, id := range o.m.IDs() {
		g.AddNode(simple.Node(id))
	}
	for _, id := range o.m.IDs() {
		for _, e := range o.m.EdgesFrom(id) {
			if allowed&(1<<e.Transport) == 0 || e.To == id {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(id), simple.Node(e.To)))
		}
	}
	o.graphs[allowed] = g
	return g
}

func maskOf(allowed map[game.Transport]int) mask {
	var m mask
	for t, count := range allowed {
		if count > 0 {
			m |= 1 << t
		}
	}
	return m
}
