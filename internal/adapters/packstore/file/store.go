package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/bnema/serverpacks/internal/ports"
)

const (
	storeDirMode    = 0o755
	packFileMode    = 0o644
	tempFilePattern = ".pack-*.tmp"
)

// Store keeps one archive per pack in a single directory. A regular file at
// LocationOf(id) is the only signal that a pack is materialized.
type Store struct {
	root string
}

var _ ports.PackStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) LocationOf(id domain.PackID) string {
	return filepath.Join(s.root, id.FileName())
}

func (s *Store) Exists(id domain.PackID) bool {
	if id.Validate() != nil {
		return false
	}

	info, err := os.Stat(s.LocationOf(id))
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// Materialize streams r into a temp file next to the final location and renames
// it into place, so a partially written archive is never visible to Exists.
func (s *Store) Materialize(ctx context.Context, id domain.PackID, r io.Reader) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := id.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create packs directory: %w", err)
	}

	tempFile, err := os.CreateTemp(s.root, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp pack file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			if removeErr := os.Remove(tempName); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				err = errors.Join(err, removeErr)
			}
		}
	}()

	if _, err := io.Copy(tempFile, r); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp pack file: %w", err)
	}

	if err := tempFile.Chmod(packFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp pack file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp pack file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Rename(tempName, s.LocationOf(id)); err != nil {
		return fmt.Errorf("replace pack file %q: %w", id, err)
	}

	cleanup = false
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.LocalPack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read packs directory: %w", err)
	}

	packs := make([]domain.LocalPack, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		// Temp files never carry the archive suffix.
		if !entry.Type().IsRegular() || !strings.HasSuffix(name, domain.PackArchiveExt) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat pack file %q: %w", name, err)
		}

		packs = append(packs, domain.LocalPack{
			ID:      domain.PackID(strings.TrimSuffix(name, domain.PackArchiveExt)),
			Path:    filepath.Join(s.root, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(packs, func(i, j int) bool { return packs[i].ID < packs[j].ID })
	return packs, nil
}
