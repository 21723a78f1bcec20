package toml

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/bnema/serverpacks/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	registryFileMode = 0o644
	registryDirMode  = 0o755
	tempFilePattern  = ".registry-*.toml.tmp"
)

// Registry is the session's active pack set. Activation lives in memory; each
// change is also written to a TOML record so other commands can see which packs
// the last session activated. An empty path disables the record.
type Registry struct {
	path   string
	clock  ports.Clock
	fileMu *sync.RWMutex

	mu        sync.RWMutex
	active    map[string]domain.PackRecord
	resources map[string]domain.PackID
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var (
	_ ports.PackRegistrar    = (*Registry)(nil)
	_ ports.ResourceResolver = (*Registry)(nil)
)

func NewRegistry(path string, clock ports.Clock) (*Registry, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	r := &Registry{
		clock:     clock,
		fileMu:    &sync.RWMutex{},
		active:    map[string]domain.PackRecord{},
		resources: map[string]domain.PackID{},
	}

	if path != "" {
		normalized, err := normalizePath(path)
		if err != nil {
			return nil, err
		}
		r.path = normalized
		r.fileMu = lockForPath(normalized)
	}

	return r, nil
}

// AddPack activates the archive at path. It returns false without error when the
// path is already active, and false with ErrRegistrationRejected when the file is
// not a readable archive.
func (r *Registry) AddPack(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	absPath, err := normalizePath(path)
	if err != nil {
		return false, err
	}

	if r.isActive(absPath) {
		return false, nil
	}

	names, err := archiveEntries(absPath)
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrRegistrationRejected, err)
	}

	record := domain.PackRecord{
		ID:        packIDFromPath(absPath),
		Path:      absPath,
		AddedAt:   r.clock.Now().UTC(),
		Resources: len(names),
	}

	r.mu.Lock()
	if _, ok := r.active[absPath]; ok {
		r.mu.Unlock()
		return false, nil
	}
	r.active[absPath] = record
	for _, name := range names {
		r.resources[name] = record.ID
	}
	r.mu.Unlock()

	if err := r.persist(ctx); err != nil {
		return true, err
	}

	return true, nil
}

// FindResource returns the most recently activated pack that contains name.
func (r *Registry) FindResource(name string) (domain.PackID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.resources[strings.TrimPrefix(name, "/")]
	return id, ok
}

// Active returns the packs recorded by the most recent session that wrote the
// registry file.
func (r *Registry) Active(ctx context.Context) ([]domain.PackRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.path == "" {
		r.mu.RLock()
		defer r.mu.RUnlock()
		return r.snapshotLocked(), nil
	}

	r.fileMu.RLock()
	defer r.fileMu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.PackRecord, 0, len(file.Packs))
	for _, entry := range file.Packs {
		records = append(records, fromSchema(entry))
	}

	return records, nil
}

func (r *Registry) isActive(absPath string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.active[absPath]
	return ok
}

func (r *Registry) snapshotLocked() []domain.PackRecord {
	records := make([]domain.PackRecord, 0, len(r.active))
	for _, record := range r.active {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

// persist snapshots the active set while holding the file lock so the last
// writer always records the newest state.
func (r *Registry) persist(ctx context.Context) error {
	if r.path == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.fileMu.Lock()
	defer r.fileMu.Unlock()

	r.mu.RLock()
	records := r.snapshotLocked()
	r.mu.RUnlock()

	file := fileSchema{Packs: make([]packSchema, 0, len(records))}
	for _, record := range records {
		file.Packs = append(file.Packs, toSchema(record))
	}

	if err := r.writeSchema(file); err != nil {
		return fmt.Errorf("persist registry: %w", err)
	}

	return nil
}

func (r *Registry) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read registry file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode registry file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Registry) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), registryDirMode); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode registry file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp registry file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp registry file: %w", err)
	}

	if err := tempFile.Chmod(registryFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp registry file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp registry file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace registry file: %w", err)
	}

	cleanup = false
	return nil
}

func archiveEntries(path string) ([]string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", path, err)
	}
	defer func() { _ = reader.Close() }()

	names := make([]string, 0, len(reader.File))
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		names = append(names, entry.Name)
	}

	return names, nil
}

func packIDFromPath(path string) domain.PackID {
	return domain.PackID(strings.TrimSuffix(filepath.Base(path), domain.PackArchiveExt))
}

func normalizePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(record domain.PackRecord) packSchema {
	return packSchema{
		ID:        string(record.ID),
		Path:      record.Path,
		AddedAt:   formatTime(record.AddedAt),
		Resources: record.Resources,
	}
}

func fromSchema(entry packSchema) domain.PackRecord {
	return domain.PackRecord{
		ID:        domain.PackID(entry.ID),
		Path:      entry.Path,
		AddedAt:   parseTime(entry.AddedAt),
		Resources: entry.Resources,
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
