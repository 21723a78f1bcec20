package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var errReaderClosed = errors.New("packet reader closed")

// PacketReader reads big-endian primitives from a single message buffer.
// It must be closed once the message is handled.
type PacketReader struct {
	buf []byte
	off int
}

func NewPacketReader(data []byte) *PacketReader {
	return &PacketReader{buf: data}
}

func (r *PacketReader) Remaining() int {
	if r.buf == nil {
		return 0
	}
	return len(r.buf) - r.off
}

func (r *PacketReader) ReadInt32() (int32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (r *PacketReader) ReadUTF() (string, error) {
	b, err := r.next(2)
	if err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(b))

	body, err := r.next(n)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Close releases the underlying buffer. Reads after Close fail.
func (r *PacketReader) Close() error {
	r.buf = nil
	r.off = 0
	return nil
}

func (r *PacketReader) next(n int) ([]byte, error) {
	if r.buf == nil {
		return nil, errReaderClosed
	}
	if r.Remaining() < n {
		return nil, fmt.Errorf("need %d bytes, have %d: %w", n, r.Remaining(), io.ErrUnexpectedEOF)
	}

	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}
