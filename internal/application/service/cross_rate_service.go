// Package service internal/application/service/cross_rate_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfinch/crossrate/internal/domain/entity"
	"github.com/mfinch/crossrate/internal/infrastructure/logger"
)

// crossRatePlaces is the number of decimal places a derived rate is rounded to
const crossRatePlaces = 4

// ErrNonPositiveRate indicates a base rate of zero or below, which cannot be
// divided through
var ErrNonPositiveRate = errors.New("rate must be positive")

// CrossRateService derives direct exchange rates between two currencies from
// their rates against a common base
type CrossRateService struct {
	logger logger.Logger
}

// NewCrossRateService creates a new cross-rate service
func NewCrossRateService(log logger.Logger) *CrossRateService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &CrossRateService{logger: log}
}

// Derive computes base/quote and its inverse from the snapshot, rounding both
// to four decimal places. A snapshot missing either currency or carrying a
// non-positive rate fails explicitly rather than producing Inf or NaN.
func (s *CrossRateService) Derive(snapshot *entity.RateSnapshot, base, quote string) (*entity.CrossRate, error) {
	if err := snapshot.Validate(base, quote); err != nil {
		return nil, err
	}

	baseRate := snapshot.Rates[base]
	quoteRate := snapshot.Rates[quote]

	// Validate rejects non-positive rates, but the guard stays explicit for
	// callers constructing snapshots by hand.
	if baseRate <= 0 || quoteRate <= 0 {
		return nil, fmt.Errorf("%w: %s=%v, %s=%v", ErrNonPositiveRate, base, baseRate, quote, quoteRate)
	}

	cross := decimal.NewFromFloat(baseRate).Div(decimal.NewFromFloat(quoteRate))
	inverse := decimal.NewFromInt(1).Div(cross)

	rate, _ := cross.Round(crossRatePlaces).Float64()
	inverseRate, _ := inverse.Round(crossRatePlaces).Float64()

	s.logger.Debug("Derived cross-rate", map[string]interface{}{
		"base":    base,
		"quote":   quote,
		"rate":    rate,
		"inverse": inverseRate,
	})

	return &entity.CrossRate{
		Base:    base,
		Quote:   quote,
		Rate:    rate,
		Inverse: inverseRate,
	}, nil
}
