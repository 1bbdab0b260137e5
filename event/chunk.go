package event

import (
	"bytes"
	"encoding/binary"

	"github.com/gridnet-dev/gridnet/gerror"
	"github.com/gridnet-dev/gridnet/internal"
	"github.com/gridnet-dev/gridnet/utils"
	"github.com/gridnet-dev/gridnet/world"
)

const (
	EventIDChunkAdded byte = iota
	EventIDChunkRemoved
)

// ChunkAddedEvent is posted when the first node of a grid enters a chunk the
// grid did not previously occupy.
type ChunkAddedEvent struct {
	NopEvent

	WorldID   uint64
	WorldName string
	Position  world.ChunkPos
}

func (ChunkAddedEvent) ID() byte {
	return EventIDChunkAdded
}

func (ev ChunkAddedEvent) Encode() []byte {
	return encodeChunkEvent(ev, ev.WorldID, ev.WorldName, ev.Position)
}

func (ev *ChunkAddedEvent) decodeBody(buf *bytes.Buffer) error {
	return decodeChunkEvent(buf, &ev.WorldID, &ev.WorldName, &ev.Position)
}

// ChunkRemovedEvent is posted when the last node of a grid leaves a chunk the
// grid occupied.
type ChunkRemovedEvent struct {
	NopEvent

	WorldID   uint64
	WorldName string
	Position  world.ChunkPos
}

func (ChunkRemovedEvent) ID() byte {
	return EventIDChunkRemoved
}

func (ev ChunkRemovedEvent) Encode() []byte {
	return encodeChunkEvent(ev, ev.WorldID, ev.WorldName, ev.Position)
}

func (ev *ChunkRemovedEvent) decodeBody(buf *bytes.Buffer) error {
	return decodeChunkEvent(buf, &ev.WorldID, &ev.WorldName, &ev.Position)
}

// Both chunk events share one body layout: world id, name, chunk position.
func encodeChunkEvent(ev Event, worldID uint64, worldName string, pos world.ChunkPos) []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)

	binary.Write(buf, binary.LittleEndian, worldID)
	binary.Write(buf, binary.LittleEndian, uint32(len(worldName)))
	buf.WriteString(worldName)
	utils.WriteLInt32(buf, pos.X())
	utils.WriteLInt32(buf, pos.Z())

	return bytes.Clone(buf.Bytes())
}

func decodeChunkEvent(buf *bytes.Buffer, worldID *uint64, worldName *string, pos *world.ChunkPos) error {
	if buf.Len() < 12 {
		return gerror.New("chunk event body truncated (%d bytes left)", buf.Len())
	}

	*worldID = binary.LittleEndian.Uint64(buf.Next(8))

	nameLen := int(binary.LittleEndian.Uint32(buf.Next(4)))
	if buf.Len() < nameLen+8 {
		return gerror.New("chunk event body truncated (%d bytes left)", buf.Len())
	}
	*worldName = string(buf.Next(nameLen))

	pos[0] = utils.LInt32(buf.Next(4))
	pos[1] = utils.LInt32(buf.Next(4))
	return nil
}
