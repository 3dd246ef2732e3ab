package entity

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// RateSnapshot represents one latest-rates payload from the exchange rate API.
// Rates are expressed relative to a common base currency (USD for the upstream
// provider). A snapshot is never mutated after creation, only replaced wholesale
// by a newer fetch.
type RateSnapshot struct {
	Timestamp int64              `json:"timestamp"`
	Rates     map[string]float64 `json:"rates"`

	// Error payload fields. The upstream API reports failures in-band with an
	// "error": true object instead of an HTTP-level contract.
	APIError    bool   `json:"error,omitempty"`
	Message     string `json:"message,omitempty"`
	Description string `json:"description,omitempty"`

	// Raw holds the verbatim response body the snapshot was decoded from, so
	// the cache writer can persist exactly what the API returned.
	Raw []byte `json:"-"`
}

// Time returns the snapshot timestamp as a time.Time.
func (s *RateSnapshot) Time() time.Time {
	return time.Unix(s.Timestamp, 0)
}

// Age returns how old the snapshot is relative to now.
func (s *RateSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.Time())
}

// IsFresh reports whether the snapshot is within the staleness threshold.
func (s *RateSnapshot) IsFresh(now time.Time, ttl time.Duration) bool {
	return s.Age(now) <= ttl
}

// Validate ensures the snapshot carries a usable timestamp and a positive rate
// for every required currency. All violations are reported together.
func (s *RateSnapshot) Validate(required ...string) error {
	var result *multierror.Error

	if s.Timestamp <= 0 {
		result = multierror.Append(result, fmt.Errorf("timestamp must be a positive unix time, got %d", s.Timestamp))
	}

	for _, code := range required {
		rate, ok := s.Rates[code]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("rates are missing currency %q", code))
			continue
		}

		if rate <= 0 {
			result = multierror.Append(result, fmt.Errorf("rate for %q must be positive, got %v", code, rate))
		}
	}

	return result.ErrorOrNil()
}
