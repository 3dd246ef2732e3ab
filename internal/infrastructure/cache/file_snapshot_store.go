package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mfinch/crossrate/internal/domain/entity"
	"github.com/mfinch/crossrate/internal/domain/repository"
	"github.com/mfinch/crossrate/internal/infrastructure/logger"
)

// FileSnapshotStore persists rate snapshots to a single JSON file. The file
// schema matches the remote API payload so a cached body can be re-read on the
// next run without transformation.
type FileSnapshotStore struct {
	path   string
	logger logger.Logger
}

// NewFileSnapshotStore creates a file-backed snapshot store at path
func NewFileSnapshotStore(path string, log logger.Logger) *FileSnapshotStore {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &FileSnapshotStore{
		path:   path,
		logger: log,
	}
}

// Load reads the cached snapshot. A missing or unparseable file is a cache
// miss, never a fatal error.
func (s *FileSnapshotStore) Load(ctx context.Context) (*entity.RateSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Cache file does not exist", map[string]interface{}{
				"path": s.path,
			})
			return nil, repository.ErrSnapshotNotFound
		}

		s.logger.Warn("Failed to read cache file", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return nil, repository.ErrSnapshotNotFound
	}

	var snapshot entity.RateSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.logger.Warn("Discarding corrupt cache file", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return nil, repository.ErrSnapshotNotFound
	}

	snapshot.Raw = data

	return &snapshot, nil
}

// Store writes the snapshot to the cache file, replacing any prior content.
// The raw fetched body is written verbatim when available.
func (s *FileSnapshotStore) Store(ctx context.Context, snapshot *entity.RateSnapshot) error {
	data := snapshot.Raw
	if len(data) == 0 {
		var err error
		data, err = json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file %s: %w", s.path, err)
	}

	s.logger.Debug("Snapshot written to cache", map[string]interface{}{
		"path":  s.path,
		"bytes": len(data),
	})

	return nil
}
