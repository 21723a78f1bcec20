package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

type PacketWriter struct {
	buf bytes.Buffer
}

func NewPacketWriter() *PacketWriter {
	return &PacketWriter{}
}

func (w *PacketWriter) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

func (w *PacketWriter) WriteInt32(v int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, _ = w.buf.Write(b[:])
}

func (w *PacketWriter) WriteUTF(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("string of %d bytes exceeds %d", len(s), math.MaxUint16)
	}

	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(len(s)))
	_, _ = w.buf.Write(b[:])
	_, _ = w.buf.WriteString(s)
	return nil
}

// Bytes returns a copy of everything written so far.
func (w *PacketWriter) Bytes() []byte {
	return bytes.Clone(w.buf.Bytes())
}

func (w *PacketWriter) Close() error {
	w.buf.Reset()
	return nil
}
