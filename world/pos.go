package world

// ChunkShift is the log2 size of a chunk along the X and Z axes. A chunk
// therefore spans 16x16 blocks, matching the host engine's partitioning.
const ChunkShift = 4

// BlockPos holds the position of a block within a world.
type BlockPos [3]int32

// X returns the X coordinate of the block position.
func (p BlockPos) X() int32 {
	return p[0]
}

// Y returns the Y coordinate of the block position.
func (p BlockPos) Y() int32 {
	return p[1]
}

// Z returns the Z coordinate of the block position.
func (p BlockPos) Z() int32 {
	return p[2]
}

// ChunkPos holds the position of a chunk. Chunk positions are different from
// block positions in the way that increasing the X/Z by one means increasing
// the absolute value on the X/Z axis in terms of blocks by 16.
type ChunkPos [2]int32

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 {
	return p[0]
}

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 {
	return p[1]
}

// ChunkPosFromBlock returns the position of the chunk the block position is
// in. The arithmetic shift keeps negative coordinates on the correct side of
// the axis.
func ChunkPosFromBlock(pos BlockPos) ChunkPos {
	return ChunkPos{pos[0] >> ChunkShift, pos[2] >> ChunkShift}
}
