package stats_test

import (
	"log/slog"
	"testing"

	"github.com/gridnet-dev/gridnet"
	"github.com/gridnet-dev/gridnet/event"
	"github.com/gridnet-dev/gridnet/stats"
	"github.com/gridnet-dev/gridnet/world"
)

func newTestGrid() (*gridnet.Grid, *stats.Service, *[]event.Event) {
	g := gridnet.New(slog.New(slog.DiscardHandler))
	svc := stats.Register(g)

	events := &[]event.Event{}
	g.Subscribe(func(ev event.Event) {
		*events = append(*events, ev)
	})
	return g, svc, events
}

func TestServicePostsChunkEvents(t *testing.T) {
	g, svc, events := newTestGrid()
	w := world.New("overworld")

	first := gridnet.NewInWorldNode(w, world.BlockPos{16, 64, 16})
	second := gridnet.NewInWorldNode(w, world.BlockPos{17, 64, 30})

	g.AddNode(first)
	g.AddNode(second)

	if len(*events) != 1 {
		t.Fatalf("expected a single ChunkAddedEvent, got %v", *events)
	}
	added, ok := (*events)[0].(event.ChunkAddedEvent)
	if !ok {
		t.Fatalf("expected ChunkAddedEvent, got %T", (*events)[0])
	}
	if added.WorldID != w.ID() || added.WorldName != "overworld" {
		t.Errorf("event world = %d %q", added.WorldID, added.WorldName)
	}
	if added.Position != (world.ChunkPos{1, 1}) {
		t.Errorf("event position = %v", added.Position)
	}

	g.RemoveNode(first)
	if len(*events) != 1 {
		t.Fatalf("removing one of two occupants posted an event: %v", *events)
	}

	g.RemoveNode(second)
	if len(*events) != 2 {
		t.Fatalf("expected a ChunkRemovedEvent, got %v", *events)
	}
	removed, ok := (*events)[1].(event.ChunkRemovedEvent)
	if !ok {
		t.Fatalf("expected ChunkRemovedEvent, got %T", (*events)[1])
	}
	if removed.Position != (world.ChunkPos{1, 1}) || removed.WorldID != w.ID() {
		t.Errorf("event = %+v", removed)
	}

	if got := len(svc.Worlds()); got != 0 {
		t.Errorf("Worlds() = %v after the grid emptied", svc.Worlds())
	}
}

func TestServiceIgnoresNodesWithoutAnchor(t *testing.T) {
	g, svc, events := newTestGrid()

	g.AddNode(gridnet.NewNode())
	if len(*events) != 0 || len(svc.Worlds()) != 0 {
		t.Fatalf("anchorless node tracked: events %v, worlds %v", *events, svc.Worlds())
	}
}

func TestServiceLookup(t *testing.T) {
	g, svc, _ := newTestGrid()
	if got := g.Service(stats.ServiceID); got != gridnet.Service(svc) {
		t.Fatalf("Service(%q) = %v", stats.ServiceID, got)
	}
}

func TestServiceDigest(t *testing.T) {
	_, svc, _ := newTestGrid()
	empty := svc.Digest()

	w := world.New("overworld")
	n := gridnet.NewInWorldNode(w, world.BlockPos{5, 0, 5})

	svc.AddNode(n)
	occupiedDigest := svc.Digest()
	if occupiedDigest == empty {
		t.Fatal("digest did not change when the footprint changed")
	}
	if svc.Digest() != occupiedDigest {
		t.Fatal("digest is not stable between reads")
	}

	svc.RemoveNode(n)
	if svc.Digest() != empty {
		t.Fatal("digest of an emptied grid differs from the empty digest")
	}
}

func TestServiceSummary(t *testing.T) {
	g, svc, _ := newTestGrid()
	overworld, nether := world.New("overworld"), world.New("nether")

	g.AddNode(gridnet.NewInWorldNode(overworld, world.BlockPos{0, 0, 0}))
	g.AddNode(gridnet.NewInWorldNode(overworld, world.BlockPos{3, 0, 3}))
	g.AddNode(gridnet.NewInWorldNode(overworld, world.BlockPos{40, 0, 0}))
	g.AddNode(gridnet.NewInWorldNode(nether, world.BlockPos{0, 0, 0}))

	sum := svc.Summary()
	if sum.Worlds != 2 {
		t.Errorf("Worlds = %d, want 2", sum.Worlds)
	}
	if sum.Chunks != 3 {
		t.Errorf("Chunks = %d, want 3", sum.Chunks)
	}
	if sum.Nodes != 4 {
		t.Errorf("Nodes = %d, want 4", sum.Nodes)
	}
	if want := 4.0 / 3.0; sum.MeanNodesPerChunk != want {
		t.Errorf("MeanNodesPerChunk = %v, want %v", sum.MeanNodesPerChunk, want)
	}
}
