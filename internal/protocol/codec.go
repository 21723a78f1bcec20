package protocol

import (
	"fmt"

	"github.com/bnema/serverpacks/internal/domain"
)

// CmdRefresh asks the peer to refresh all creatures and models.
const CmdRefresh byte = 0x01

// minEntrySize is two empty length-prefixed strings.
const minEntrySize = 4

func DecodeSync(data []byte) (domain.SyncMessage, error) {
	r := NewPacketReader(data)
	defer func() { _ = r.Close() }()

	n, err := r.ReadInt32()
	if err != nil {
		return domain.SyncMessage{}, fmt.Errorf("%w: read entry count: %w", domain.ErrMalformedMessage, err)
	}
	if n < 0 {
		return domain.SyncMessage{}, fmt.Errorf("%w: negative entry count %d", domain.ErrMalformedMessage, n)
	}

	entries := make([]domain.PackEntry, 0, min(int(n), r.Remaining()/minEntrySize))
	for i := range int(n) {
		id, err := r.ReadUTF()
		if err != nil {
			return domain.SyncMessage{}, fmt.Errorf("%w: read pack id of entry %d/%d: %w", domain.ErrMalformedMessage, i+1, n, err)
		}
		url, err := r.ReadUTF()
		if err != nil {
			return domain.SyncMessage{}, fmt.Errorf("%w: read url of entry %d/%d: %w", domain.ErrMalformedMessage, i+1, n, err)
		}
		entries = append(entries, domain.PackEntry{ID: domain.PackID(id), URL: url})
	}

	return domain.SyncMessage{Entries: entries}, nil
}

func EncodeRefresh() []byte {
	w := NewPacketWriter()
	defer func() { _ = w.Close() }()

	_ = w.WriteByte(CmdRefresh)
	return w.Bytes()
}

// EncodeSync is the peer-side inverse of DecodeSync.
func EncodeSync(msg domain.SyncMessage) ([]byte, error) {
	w := NewPacketWriter()
	defer func() { _ = w.Close() }()

	w.WriteInt32(int32(len(msg.Entries)))
	for _, entry := range msg.Entries {
		if err := w.WriteUTF(string(entry.ID)); err != nil {
			return nil, fmt.Errorf("encode pack id %q: %w", entry.ID, err)
		}
		if err := w.WriteUTF(entry.URL); err != nil {
			return nil, fmt.Errorf("encode url for pack %q: %w", entry.ID, err)
		}
	}

	return w.Bytes(), nil
}
