package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mfinch/crossrate/internal/domain/entity"
	"github.com/mfinch/crossrate/internal/infrastructure/logger"
	"github.com/mfinch/crossrate/internal/infrastructure/runctx"
)

const (
	defaultBaseURL = "https://openexchangerates.org"
	latestPath     = "/api/latest.json"

	defaultTimeout = 10 * time.Second
)

// ErrMalformedResponse indicates the API body could not be decoded as a rate
// snapshot
var ErrMalformedResponse = errors.New("malformed rates response")

// APIError represents an in-band error payload returned by the rate provider
type APIError struct {
	Status      int    `json:"status"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("rate provider error: %s (%s)", e.Message, e.Description)
	}
	return fmt.Sprintf("rate provider error: %s", e.Message)
}

// OpenExchangeClient implements the RateProvider interface against an Open
// Exchange Rates style API
type OpenExchangeClient struct {
	baseURL    string
	credential entity.Credential
	httpClient *http.Client
	logger     logger.Logger
}

// NewOpenExchangeClient creates a new rate API client
func NewOpenExchangeClient(baseURL string, credential entity.Credential, httpClient *http.Client, log logger.Logger) *OpenExchangeClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}

	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &OpenExchangeClient{
		baseURL:    baseURL,
		credential: credential,
		httpClient: httpClient,
		logger:     log,
	}
}

// FetchLatest retrieves the current rate snapshot. The whole body is read
// before decoding begins, and the verbatim bytes are attached to the returned
// snapshot for caching.
func (c *OpenExchangeClient) FetchLatest(ctx context.Context) (*entity.RateSnapshot, error) {
	reqURL := fmt.Sprintf("%s%s?app_id=%s", c.baseURL, latestPath, url.QueryEscape(string(c.credential)))

	c.logger.Info("Fetching latest rates", map[string]interface{}{
		"run_id":     runctx.RunID(ctx),
		"url":        c.baseURL + latestPath,
		"credential": c.credential.Redacted(),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Error closing response body", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var snapshot entity.RateSnapshot
	if err := json.Unmarshal(bodyBytes, &snapshot); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("API returned error status: %d, body: %s", resp.StatusCode, string(bodyBytes))
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// The provider reports credential and quota failures in-band rather than
	// through HTTP status alone.
	if snapshot.APIError {
		return nil, &APIError{
			Status:      resp.StatusCode,
			Message:     snapshot.Message,
			Description: snapshot.Description,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned error status: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	snapshot.Raw = bodyBytes

	c.logger.Debug("Fetched rate snapshot", map[string]interface{}{
		"run_id":     runctx.RunID(ctx),
		"timestamp":  snapshot.Timestamp,
		"currencies": len(snapshot.Rates),
	})

	return &snapshot, nil
}
