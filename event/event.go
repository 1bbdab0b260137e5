package event

import (
	"bytes"
	"encoding/binary"

	"github.com/gridnet-dev/gridnet/gerror"
	"github.com/gridnet-dev/gridnet/internal"
)

const EventsVersion = "1"

type Event interface {
	ID() byte
	Encode() []byte

	Time() int64
}

type NopEvent struct {
	EvTime int64
}

func (n NopEvent) Time() int64 {
	return n.EvTime
}

func WriteEventHeader(ev Event, buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, uint64(ev.ID()))
	binary.Write(buf, binary.LittleEndian, uint64(ev.Time()))
}

func DecodeEvents(dat []byte) ([]Event, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Write(dat)
	defer internal.BufferPool.Put(buf)

	events := []Event{}
	for buf.Len() > 0 {
		ev, err := DecodeEvent(buf)
		if err != nil {
			return events, gerror.New("error decoding event: %v", err)
		}

		events = append(events, ev)
	}

	return events, nil
}

func DecodeEvent(buf *bytes.Buffer) (Event, error) {
	if buf.Len() < 16 {
		return nil, gerror.New("event header truncated (%d bytes left)", buf.Len())
	}

	rawID := binary.LittleEndian.Uint64(buf.Next(8))
	id := byte(rawID)
	t := int64(binary.LittleEndian.Uint64(buf.Next(8)))

	switch id {
	case EventIDChunkAdded:
		ev := ChunkAddedEvent{}
		ev.EvTime = t
		if err := ev.decodeBody(buf); err != nil {
			return nil, err
		}
		return ev, nil
	case EventIDChunkRemoved:
		ev := ChunkRemovedEvent{}
		ev.EvTime = t
		if err := ev.decodeBody(buf); err != nil {
			return nil, err
		}
		return ev, nil
	}

	return nil, gerror.New("unknown event id %d", rawID)
}
