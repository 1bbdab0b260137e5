package stats

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/gridnet-dev/gridnet/assert"
	"github.com/gridnet-dev/gridnet/world"
)

// Listener is notified when a chunk flips between unoccupied and occupied.
// Both callbacks run synchronously inside AddNode/RemoveNode; a listener must
// not call back into the tracker from them.
type Listener[R comparable] interface {
	ChunkOccupied(region R, pos world.ChunkPos)
	ChunkVacated(region R, pos world.ChunkPos)
}

// NopListener is a Listener that does nothing.
type NopListener[R comparable] struct{}

func (NopListener[R]) ChunkOccupied(R, world.ChunkPos) {}
func (NopListener[R]) ChunkVacated(R, world.ChunkPos)  {}

// Tracker maintains, per region, a reference-counted set of the chunks a set
// of located nodes occupies. The count is what makes shared chunks work: a
// chunk stays occupied until every node in it is gone, not just the first
// one that happened to touch it.
//
// A tracker holds no locks. It expects to be driven from a single goroutine,
// mirroring the single-threaded simulation callback model of the host.
type Tracker[R comparable] struct {
	chunks   *orderedmap.OrderedMap[R, *Multiset[world.ChunkPos]]
	listener Listener[R]

	notifying bool
}

// NewTracker returns an empty tracker delivering transitions to l. A nil
// listener is replaced with NopListener.
func NewTracker[R comparable](l Listener[R]) *Tracker[R] {
	if l == nil {
		l = NopListener[R]{}
	}
	return &Tracker[R]{
		chunks:   orderedmap.NewOrderedMap[R, *Multiset[world.ChunkPos]](),
		listener: l,
	}
}

// AddNode records a node at the block position in the given region. If the
// node is the first occupant of its chunk, ChunkOccupied is emitted before
// the count is raised. Exactly one notification fires per 0 to 1 transition,
// no matter how many nodes later share the chunk.
func (t *Tracker[R]) AddNode(region R, pos world.BlockPos) {
	assert.IsTrue(!t.notifying, "tracker re-entered from an occupancy listener")

	c := world.ChunkPosFromBlock(pos)
	set := t.chunksOf(region)

	if !set.Contains(c) {
		t.notifying = true
		t.listener.ChunkOccupied(region, c)
		t.notifying = false
	}
	set.Add(c)
}

// RemoveNode removes a previously added node at the block position in the
// given region, reporting whether a count was actually decremented. Removing
// from an unknown region or an unoccupied chunk is a no-op returning false,
// so mismatched add/remove pairs from faulty callers never drive a count
// negative. When the last occupant leaves a chunk, ChunkVacated is emitted
// and the chunk entry is dropped; a region left without occupied chunks is
// dropped in the same call.
func (t *Tracker[R]) RemoveNode(region R, pos world.BlockPos) bool {
	assert.IsTrue(!t.notifying, "tracker re-entered from an occupancy listener")

	set, ok := t.chunks.Get(region)
	if !ok {
		return false
	}

	c := world.ChunkPosFromBlock(pos)
	removed := set.Remove(c)

	if removed && !set.Contains(c) {
		t.notifying = true
		t.listener.ChunkVacated(region, c)
		t.notifying = false
	}
	if set.Distinct() == 0 {
		t.chunks.Delete(region)
	}
	return removed
}

// Regions returns the regions with at least one occupied chunk, in first
// occupation order.
func (t *Tracker[R]) Regions() []R {
	return t.chunks.Keys()
}

// ChunksIn returns the distinct occupied chunks in the region, nil if the
// region has none.
func (t *Tracker[R]) ChunksIn(region R) []world.ChunkPos {
	set, ok := t.chunks.Get(region)
	if !ok {
		return nil
	}
	return set.Elements()
}

// Count returns the number of nodes currently occupying the chunk.
func (t *Tracker[R]) Count(region R, pos world.ChunkPos) int {
	set, ok := t.chunks.Get(region)
	if !ok {
		return 0
	}
	return set.Count(pos)
}

// Snapshot copies the full occupancy table, mapping each region to the node
// count per occupied chunk. Regions without occupied chunks never appear.
func (t *Tracker[R]) Snapshot() map[R]map[world.ChunkPos]int {
	snap := make(map[R]map[world.ChunkPos]int, t.chunks.Len())
	for el := t.chunks.Front(); el != nil; el = el.Next() {
		counts := make(map[world.ChunkPos]int, el.Value.Distinct())
		for _, c := range el.Value.Elements() {
			counts[c] = el.Value.Count(c)
		}
		snap[el.Key] = counts
	}
	return snap
}

func (t *Tracker[R]) chunksOf(region R) *Multiset[world.ChunkPos] {
	set, ok := t.chunks.Get(region)
	if !ok {
		set = NewMultiset[world.ChunkPos]()
		t.chunks.Set(region, set)
	}
	return set
}
