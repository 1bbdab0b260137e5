package stats

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/gridnet-dev/gridnet"
	"github.com/gridnet-dev/gridnet/event"
	"github.com/gridnet-dev/gridnet/internal"
	"github.com/gridnet-dev/gridnet/world"
)

const ServiceID = "gridnet:stats"

// Service provides precomputed statistics about a grid. Currently this
// tracks the chunks a grid is occupying, posting ChunkAddedEvent and
// ChunkRemovedEvent to the grid as its footprint grows and shrinks.
type Service struct {
	grid    *gridnet.Grid
	tracker *Tracker[*world.World]
}

// NewService returns a statistics service bound to the grid.
func NewService(g *gridnet.Grid) *Service {
	s := &Service{grid: g}
	s.tracker = NewTracker[*world.World](s)
	return s
}

// Register creates a statistics service and registers it on the grid.
func Register(g *gridnet.Grid) *Service {
	s := NewService(g)
	g.RegisterService(s)
	return s
}

func (s *Service) ID() string {
	return ServiceID
}

// AddNode marks the chunk of the node's anchor as a location of the grid.
// Nodes without a world anchor are ignored.
func (s *Service) AddNode(n *gridnet.Node) {
	if !n.InWorld() {
		return
	}
	s.tracker.AddNode(n.World(), n.Position())
}

// RemoveNode removes the node's anchor chunk reference. The chunk only stops
// counting as a grid location once every other node in it is removed too.
func (s *Service) RemoveNode(n *gridnet.Node) {
	if !n.InWorld() {
		return
	}
	s.tracker.RemoveNode(n.World(), n.Position())
}

// ChunkOccupied implements Listener by posting a ChunkAddedEvent to the grid.
func (s *Service) ChunkOccupied(w *world.World, pos world.ChunkPos) {
	s.grid.PostEvent(event.ChunkAddedEvent{
		NopEvent:  event.NopEvent{EvTime: time.Now().UnixMilli()},
		WorldID:   w.ID(),
		WorldName: w.Name(),
		Position:  pos,
	})
}

// ChunkVacated implements Listener by posting a ChunkRemovedEvent to the grid.
func (s *Service) ChunkVacated(w *world.World, pos world.ChunkPos) {
	s.grid.PostEvent(event.ChunkRemovedEvent{
		NopEvent:  event.NopEvent{EvTime: time.Now().UnixMilli()},
		WorldID:   w.ID(),
		WorldName: w.Name(),
		Position:  pos,
	})
}

// Worlds returns all worlds the grid currently spans.
func (s *Service) Worlds() []*world.World {
	return s.tracker.Regions()
}

// Chunks returns the distinct chunks the grid spans in a specific world.
func (s *Service) Chunks(w *world.World) []world.ChunkPos {
	return s.tracker.ChunksIn(w)
}

// Tracker exposes the underlying occupancy tracker for diagnostics.
func (s *Service) Tracker() *Tracker[*world.World] {
	return s.tracker
}

// Digest hashes the occupancy table in its canonical iteration order. Two
// grids with identical footprints produce the same digest, so it doubles as
// a cheap change detector between ticks.
func (s *Service) Digest() uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	for _, w := range s.tracker.Regions() {
		binary.Write(buf, binary.LittleEndian, w.ID())
		for _, c := range s.tracker.ChunksIn(w) {
			binary.Write(buf, binary.LittleEndian, c.X())
			binary.Write(buf, binary.LittleEndian, c.Z())
			binary.Write(buf, binary.LittleEndian, uint32(s.tracker.Count(w, c)))
		}
	}
	return xxh3.Hash(buf.Bytes())
}
