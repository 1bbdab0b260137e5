package gridnet

import "github.com/gridnet-dev/gridnet/world"

var currentNodeId uint64

// Node is a single element of a grid. Most nodes are anchored to a block in
// a world; nodes without an anchor (virtual or in-transit machine parts) are
// still part of the graph but invisible to location-based services.
type Node struct {
	id uint64

	world   *world.World
	pos     world.BlockPos
	inWorld bool
}

// NewNode returns a node without a world anchor.
func NewNode() *Node {
	currentNodeId++
	return &Node{id: currentNodeId}
}

// NewInWorldNode returns a node anchored to the block position in the world
// passed. The anchor is fixed for the lifetime of the node: relocating a
// machine means removing its node from the grid and adding a fresh one.
func NewInWorldNode(w *world.World, pos world.BlockPos) *Node {
	currentNodeId++
	return &Node{
		id:      currentNodeId,
		world:   w,
		pos:     pos,
		inWorld: true,
	}
}

// ID returns the process-unique id of the node.
func (n *Node) ID() uint64 {
	return n.id
}

// InWorld reports whether the node is anchored to a world position.
func (n *Node) InWorld() bool {
	return n.inWorld
}

// World returns the world the node is anchored in, or nil for nodes without
// an anchor.
func (n *Node) World() *world.World {
	return n.world
}

// Position returns the block position of the node's anchor. It is only
// meaningful if InWorld reports true.
func (n *Node) Position() world.BlockPos {
	return n.pos
}
