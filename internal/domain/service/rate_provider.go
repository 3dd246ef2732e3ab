package service

import (
	"context"

	"github.com/mfinch/crossrate/internal/domain/entity"
)

// RateProvider defines the interface for fetching latest exchange rates from a
// remote source
type RateProvider interface {
	// FetchLatest retrieves the current rate snapshot
	FetchLatest(ctx context.Context) (*entity.RateSnapshot, error)
}
