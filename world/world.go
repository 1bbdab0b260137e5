package world

var currentWorldId uint64

// World identifies a spatial partition a grid can span. Grids and their
// services treat it as an opaque key: equality is pointer identity, and
// nothing beyond the id and name is ever inspected. The engine layer that
// owns block storage, generation and ticking lives elsewhere entirely.
type World struct {
	id   uint64
	name string
}

// New returns a world handle with a process-unique id.
func New(name string) *World {
	currentWorldId++
	return &World{
		id:   currentWorldId,
		name: name,
	}
}

// ID returns the process-unique id of the world.
func (w *World) ID() uint64 {
	return w.id
}

// Name returns the display name the world was created with.
func (w *World) Name() string {
	return w.name
}
