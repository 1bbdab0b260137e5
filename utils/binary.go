package utils

import (
	"bytes"
	"encoding/binary"
)

// WriteLInt32 writes a little-endian int32 to the buffer.
func WriteLInt32(buf *bytes.Buffer, v int32) {
	binary.Write(buf, binary.LittleEndian, v)
}

// LInt32 reads a little-endian int32 from the first four bytes of dat.
func LInt32(dat []byte) int32 {
	return int32(binary.LittleEndian.Uint32(dat))
}
