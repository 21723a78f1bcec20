package domain

import (
	"fmt"
	"strings"
	"time"
)

// PackArchiveExt is appended to a PackID to form the local archive filename.
const PackArchiveExt = ".jar"

type PackID string

// Validate reports whether the id can be used both as a protocol token and as a
// single filename element inside the packs directory.
func (id PackID) Validate() error {
	raw := string(id)
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPackID)
	}
	if raw == "." || raw == ".." || strings.ContainsAny(raw, `/\`) || strings.ContainsRune(raw, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidPackID, raw)
	}

	return nil
}

// FileName is the archive filename for the pack, e.g. "forest.jar".
func (id PackID) FileName() string {
	return string(id) + PackArchiveExt
}

type PackEntry struct {
	ID  PackID
	URL string
}

type SyncMessage struct {
	Entries []PackEntry
}

type PackState string

const (
	PackStateUnknown     PackState = "unknown"
	PackStatePresent     PackState = "present"
	PackStateAbsent      PackState = "absent"
	PackStateDownloading PackState = "downloading"
	PackStateFailed      PackState = "failed"
	PackStateRegistered  PackState = "registered"
)

type LocalPack struct {
	ID      PackID
	Path    string
	Size    int64
	ModTime time.Time
	Active  bool
}

// PackRecord is the persisted trace of a pack activated by the registry.
type PackRecord struct {
	ID        PackID
	Path      string
	AddedAt   time.Time
	Resources int
}
