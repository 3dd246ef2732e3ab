package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfinch/crossrate/internal/domain/entity"
	"github.com/mfinch/crossrate/internal/domain/repository"
)

func TestFileSnapshotStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing file is a cache miss", func(t *testing.T) {
		store := NewFileSnapshotStore(filepath.Join(t.TempDir(), "currentRates.json"), nil)

		snapshot, err := store.Load(ctx)
		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	})

	t.Run("Corrupt file is a cache miss", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "currentRates.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		store := NewFileSnapshotStore(path, nil)

		snapshot, err := store.Load(ctx)
		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	})

	t.Run("Raw body round trips verbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "currentRates.json")
		store := NewFileSnapshotStore(path, nil)

		raw := []byte(`{"timestamp":1700000000,"rates":{"AUD":1.5,"EUR":1.0}}`)
		snapshot := &entity.RateSnapshot{
			Timestamp: 1700000000,
			Rates:     map[string]float64{"AUD": 1.5, "EUR": 1.0},
			Raw:       raw,
		}

		require.NoError(t, store.Store(ctx, snapshot))

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, raw, written)

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, snapshot.Timestamp, loaded.Timestamp)
		assert.Equal(t, snapshot.Rates, loaded.Rates)
		assert.Equal(t, raw, loaded.Raw)
	})

	t.Run("Store overwrites prior content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "currentRates.json")
		store := NewFileSnapshotStore(path, nil)

		first := &entity.RateSnapshot{Raw: []byte(`{"timestamp":1,"rates":{"AUD":1.4}}`)}
		second := &entity.RateSnapshot{Raw: []byte(`{"timestamp":2,"rates":{"AUD":1.5}}`)}

		require.NoError(t, store.Store(ctx, first))
		require.NoError(t, store.Store(ctx, second))

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, second.Raw, written)
	})

	t.Run("Store without raw body marshals the snapshot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "currentRates.json")
		store := NewFileSnapshotStore(path, nil)

		snapshot := &entity.RateSnapshot{
			Timestamp: 1700000000,
			Rates:     map[string]float64{"AUD": 1.5, "EUR": 1.0},
		}

		require.NoError(t, store.Store(ctx, snapshot))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, snapshot.Timestamp, loaded.Timestamp)
		assert.Equal(t, snapshot.Rates, loaded.Rates)
	})

	t.Run("Unwritable path returns an error", func(t *testing.T) {
		store := NewFileSnapshotStore(filepath.Join(t.TempDir(), "missing", "currentRates.json"), nil)

		err := store.Store(ctx, &entity.RateSnapshot{Raw: []byte("{}")})
		assert.Error(t, err)
	})
}
