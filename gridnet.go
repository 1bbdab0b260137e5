// Package gridnet implements the connected-network layer of a machine grid:
// worlds-spanning node graphs with pluggable per-grid services that are kept
// informed of node lifecycle changes.
package gridnet

import (
	"log/slog"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/sasha-s/go-deadlock"

	"github.com/gridnet-dev/gridnet/event"
)

var currentGridId uint64

// Service is a grid-wide facility attached to a single grid. A service is
// notified whenever a node joins or leaves its grid and may post events back
// through the grid in response.
type Service interface {
	// ID returns the unique identifier of the service, e.g. "gridnet:stats".
	ID() string
	// AddNode is called after the node has joined the grid.
	AddNode(n *Node)
	// RemoveNode is called when the node is leaving the grid.
	RemoveNode(n *Node)
}

// Subscriber receives every event posted to a grid, synchronously on the
// goroutine that posted it.
type Subscriber func(ev event.Event)

// Grid is a connected network of nodes. Node and service mutations are not
// safe for concurrent use; callers must drive a grid from one goroutine at a
// time, typically a worker.Serial queue.
type Grid struct {
	id  uint64
	log *slog.Logger

	services *orderedmap.OrderedMap[string, Service]
	nodes    map[uint64]*Node

	subMu       deadlock.RWMutex
	subscribers []Subscriber
}

// New returns an empty grid with a process-unique id.
func New(log *slog.Logger) *Grid {
	currentGridId++
	return &Grid{
		id:       currentGridId,
		log:      log,
		services: orderedmap.NewOrderedMap[string, Service](),
		nodes:    make(map[uint64]*Node),
	}
}

// ID returns the process-unique id of the grid.
func (g *Grid) ID() uint64 {
	return g.id
}

// RegisterService registers a service to the grid. Services are notified of
// node changes in the order they were registered.
func (g *Grid) RegisterService(s Service) {
	g.services.Set(s.ID(), s)
}

// Service returns the registered service with the given ID, or nil.
func (g *Grid) Service(id string) Service {
	s, _ := g.services.Get(id)
	return s
}

// AddNode adds a node to the grid and notifies every registered service.
// Adding a node twice is a no-op.
func (g *Grid) AddNode(n *Node) {
	if _, ok := g.nodes[n.ID()]; ok {
		return
	}
	g.nodes[n.ID()] = n

	for el := g.services.Front(); el != nil; el = el.Next() {
		el.Value.AddNode(n)
	}
	g.log.Debug("node joined grid", "grid", g.id, "node", n.ID())
}

// RemoveNode removes a node from the grid, notifying services in reverse
// registration order. Removing an unknown node is a no-op.
func (g *Grid) RemoveNode(n *Node) {
	if _, ok := g.nodes[n.ID()]; !ok {
		return
	}
	delete(g.nodes, n.ID())

	for el := g.services.Back(); el != nil; el = el.Prev() {
		el.Value.RemoveNode(n)
	}
	g.log.Debug("node left grid", "grid", g.id, "node", n.ID())
}

// NodeCount returns the number of nodes currently on the grid.
func (g *Grid) NodeCount() int {
	return len(g.nodes)
}

// Subscribe adds a subscriber for events posted to the grid. Subscribing is
// safe from any goroutine.
func (g *Grid) Subscribe(sub Subscriber) {
	g.subMu.Lock()
	g.subscribers = append(g.subscribers, sub)
	g.subMu.Unlock()
}

// PostEvent delivers the event synchronously to every subscriber in
// subscription order.
func (g *Grid) PostEvent(ev event.Event) {
	g.subMu.RLock()
	subs := g.subscribers
	g.subMu.RUnlock()

	for _, sub := range subs {
		sub(ev)
	}
}
