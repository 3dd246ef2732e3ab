// Package service internal/application/service/rate_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mfinch/crossrate/internal/domain/entity"
	"github.com/mfinch/crossrate/internal/domain/repository"
	domainservice "github.com/mfinch/crossrate/internal/domain/service"
	"github.com/mfinch/crossrate/internal/infrastructure/logger"
	"github.com/mfinch/crossrate/internal/infrastructure/runctx"
)

// Source identifies where a snapshot came from
type Source string

const (
	// SourceCache means the snapshot was served from the local cache
	SourceCache Source = "cache"
	// SourceRemote means the snapshot was fetched from the rate provider
	SourceRemote Source = "remote"
)

// RateService decides between the cached snapshot and a fresh fetch
type RateService struct {
	store    repository.SnapshotRepository
	provider domainservice.RateProvider
	ttl      time.Duration
	required []string
	now      func() time.Time
	logger   logger.Logger
}

// NewRateService creates a new rate service. required lists the currency codes
// a snapshot must carry to be usable.
func NewRateService(store repository.SnapshotRepository, provider domainservice.RateProvider, ttl time.Duration, required []string, log logger.Logger) *RateService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &RateService{
		store:    store,
		provider: provider,
		ttl:      ttl,
		required: required,
		now:      time.Now,
		logger:   log,
	}
}

// GetLatest returns a validated snapshot, preferring a fresh cached copy. The
// provider is only invoked when the cache is absent, stale, or unusable.
func (s *RateService) GetLatest(ctx context.Context) (*entity.RateSnapshot, Source, error) {
	runID := runctx.RunID(ctx)
	now := s.now()

	cached, err := s.store.Load(ctx)
	switch {
	case err == nil:
		if cached.IsFresh(now, s.ttl) {
			if validateErr := cached.Validate(s.required...); validateErr == nil {
				s.logger.Info("Using cached rates", map[string]interface{}{
					"run_id":    runID,
					"age":       cached.Age(now).String(),
					"timestamp": cached.Timestamp,
				})
				return cached, SourceCache, nil
			} else {
				// A fresh but unusable snapshot is treated like a corrupt
				// cache file: refetch instead of failing the run.
				s.logger.Warn("Cached snapshot failed validation, refetching", map[string]interface{}{
					"run_id": runID,
					"error":  validateErr.Error(),
				})
			}
		} else {
			s.logger.Info("Cached rates are stale", map[string]interface{}{
				"run_id": runID,
				"age":    cached.Age(now).String(),
				"ttl":    s.ttl.String(),
			})
		}
	case errors.Is(err, repository.ErrSnapshotNotFound):
		s.logger.Info("No cached rates available", map[string]interface{}{
			"run_id": runID,
		})
	default:
		s.logger.Warn("Failed to load cached rates", map[string]interface{}{
			"run_id": runID,
			"error":  err.Error(),
		})
	}

	snapshot, err := s.provider.FetchLatest(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch latest rates", map[string]interface{}{
			"run_id": runID,
			"error":  err.Error(),
		})
		return nil, "", fmt.Errorf("failed to fetch latest rates: %w", err)
	}

	if err := snapshot.Validate(s.required...); err != nil {
		s.logger.Error("Fetched rates are unusable", map[string]interface{}{
			"run_id": runID,
			"error":  err.Error(),
		})
		return nil, "", fmt.Errorf("fetched rates are unusable: %w", err)
	}

	// Cache writes are best effort; the in-memory snapshot still feeds the
	// report when persisting fails.
	if err := s.store.Store(ctx, snapshot); err != nil {
		s.logger.Warn("Failed to persist rates to cache", map[string]interface{}{
			"run_id": runID,
			"error":  err.Error(),
		})
	}

	s.logger.Info("Fetched latest rates", map[string]interface{}{
		"run_id":     runID,
		"timestamp":  snapshot.Timestamp,
		"currencies": len(snapshot.Rates),
	})

	return snapshot, SourceRemote, nil
}
