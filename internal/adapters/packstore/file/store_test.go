package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLocationOfUsesArchiveSuffix(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join("var", "packs"))
	assert.Equal(t, filepath.Join("var", "packs", "forest.jar"), store.LocationOf("forest"))
}

func TestStoreExistsOnlyForRegularFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	assert.False(t, store.Exists("forest"))

	require.NoError(t, os.Mkdir(filepath.Join(root, "armor.jar"), 0o755))
	assert.False(t, store.Exists("armor"))

	require.NoError(t, os.WriteFile(filepath.Join(root, "forest.jar"), []byte("zip"), 0o644))
	assert.True(t, store.Exists("forest"))
}

func TestStoreExistsReflectsOutOfBandChanges(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	path := filepath.Join(root, "forest.jar")

	require.NoError(t, os.WriteFile(path, []byte("zip"), 0o644))
	assert.True(t, store.Exists("forest"))

	require.NoError(t, os.Remove(path))
	assert.False(t, store.Exists("forest"))
}

func TestStoreRejectsInvalidIDs(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name string
		id   domain.PackID
	}{
		{name: "empty", id: ""},
		{name: "whitespace", id: "   "},
		{name: "parent", id: ".."},
		{name: "separator", id: "../escape"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Materialize(context.Background(), tc.id, strings.NewReader("data"))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidPackID)
			assert.False(t, store.Exists(tc.id))
		})
	}
}

func TestStoreMaterializeWritesArchive(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "packs")
	store := NewStore(root)

	err := store.Materialize(context.Background(), "forest", strings.NewReader("archive-bytes"))
	require.NoError(t, err)
	require.True(t, store.Exists("forest"))

	data, err := os.ReadFile(store.LocationOf("forest"))
	require.NoError(t, err)
	assert.Equal(t, "archive-bytes", string(data))

	info, err := os.Stat(store.LocationOf("forest"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(packFileMode), info.Mode().Perm())
}

func TestStoreMaterializeFailureLeavesNoFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	err := store.Materialize(context.Background(), "forest", iotest.ErrReader(errors.New("connection reset")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write temp pack file")
	assert.False(t, store.Exists("forest"))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreListSkipsTempAndForeignFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	require.NoError(t, os.WriteFile(filepath.Join(root, "forest.jar"), []byte("f"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "armor.jar"), []byte("aa"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".pack-123.tmp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "registry.toml"), []byte(""), 0o644))

	packs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, packs, 2)
	assert.Equal(t, domain.PackID("armor"), packs[0].ID)
	assert.Equal(t, int64(2), packs[0].Size)
	assert.Equal(t, domain.PackID("forest"), packs[1].ID)
}

func TestStoreListIncludesDotNamedPacks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	require.NoError(t, store.Materialize(context.Background(), ".hidden", strings.NewReader("h")))
	require.True(t, store.Exists(".hidden"))

	packs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.Equal(t, domain.PackID(".hidden"), packs[0].ID)
	assert.Equal(t, filepath.Join(root, ".hidden.jar"), packs[0].Path)
}

func TestStoreListMissingDirectory(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "missing"))
	packs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, packs)
}
