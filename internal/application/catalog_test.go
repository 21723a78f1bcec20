package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/bnema/serverpacks/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticRecords struct {
	records []domain.PackRecord
	err     error
}

func (s staticRecords) Active(context.Context) ([]domain.PackRecord, error) {
	return s.records, s.err
}

// mapIndex resolves resources from a fixed path -> resources table.
type mapIndex struct {
	contents  map[string][]string
	rejected  map[string]bool
	resources map[string]domain.PackID
}

func (m *mapIndex) AddPack(_ context.Context, path string) (bool, error) {
	if m.rejected[path] {
		return false, fmt.Errorf("%w: not a zip file", domain.ErrRegistrationRejected)
	}
	if m.resources == nil {
		m.resources = map[string]domain.PackID{}
	}
	for _, name := range m.contents[path] {
		m.resources[name] = domain.PackID(path)
	}
	return true, nil
}

func (m *mapIndex) FindResource(name string) (domain.PackID, bool) {
	id, ok := m.resources[name]
	return id, ok
}

func TestCatalogListMarksRecordedPacksActive(t *testing.T) {
	t.Parallel()

	addedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := mocks.NewMockPackStore(t)
	store.EXPECT().List(mockAnyContext()).Return([]domain.LocalPack{
		{ID: "desert", Path: "packs/desert.jar", Size: 10},
		{ID: "forest", Path: "packs/forest.jar", Size: 20},
	}, nil).Once()

	catalog := NewCatalog(store, staticRecords{records: []domain.PackRecord{
		{ID: "forest", Path: "/abs/packs/forest.jar", AddedAt: addedAt, Resources: 3},
	}}, nil, testLogger())

	statuses, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, domain.PackID("desert"), statuses[0].Pack.ID)
	assert.False(t, statuses[0].Pack.Active)
	assert.Equal(t, domain.PackStatePresent, statuses[0].State)

	assert.Equal(t, domain.PackID("forest"), statuses[1].Pack.ID)
	assert.True(t, statuses[1].Pack.Active)
	assert.Equal(t, domain.PackStateRegistered, statuses[1].State)
	assert.Equal(t, addedAt, statuses[1].AddedAt)
	assert.Equal(t, 3, statuses[1].Resources)
}

func TestCatalogListPropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	store := mocks.NewMockPackStore(t)
	store.EXPECT().List(mockAnyContext()).Return(nil, boom).Once()
	_, err := NewCatalog(store, nil, nil, testLogger()).List(context.Background())
	require.ErrorIs(t, err, boom)

	store = mocks.NewMockPackStore(t)
	store.EXPECT().List(mockAnyContext()).Return(nil, nil).Once()
	_, err = NewCatalog(store, staticRecords{err: boom}, nil, testLogger()).List(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestCatalogFindResource(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockPackStore(t)
	store.EXPECT().List(mockAnyContext()).Return([]domain.LocalPack{
		{ID: "broken", Path: "broken"},
		{ID: "desert", Path: "desert"},
		{ID: "forest", Path: "forest"},
	}, nil)

	index := &mapIndex{
		contents: map[string][]string{
			"desert": {"textures/sand.png", "sounds/wind.ogg"},
			"forest": {"textures/oak.png", "sounds/wind.ogg"},
		},
		rejected: map[string]bool{"broken": true},
	}
	catalog := NewCatalog(store, nil, index, testLogger())

	id, err := catalog.FindResource(context.Background(), "textures/sand.png")
	require.NoError(t, err)
	assert.Equal(t, domain.PackID("desert"), id)

	id, err = catalog.FindResource(context.Background(), "sounds/wind.ogg")
	require.NoError(t, err)
	assert.Equal(t, domain.PackID("forest"), id)

	_, err = catalog.FindResource(context.Background(), "textures/missing.png")
	require.ErrorIs(t, err, domain.ErrPackNotFound)
}
