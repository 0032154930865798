package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"engine_rul/internal/models"
)

const (
	predictPath    = "/predict"
	defaultTimeout = 30 * time.Second
)

// Predictor is the call surface shared by Client and CircuitBreakerClient.
type Predictor interface {
	Predict(ctx context.Context, features models.FeatureVector, currentCycle *float64) (map[string]any, error)
}

// ServiceError is a non-200 answer from the inference service. Body is the
// raw response text.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service returned %d: %s", e.StatusCode, e.Body)
}

// Client calls the inference service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Predict posts the features and returns the decoded response body as-is.
// current_cycle is sent as null when currentCycle is nil.
func (c *Client) Predict(ctx context.Context, features models.FeatureVector, currentCycle *float64) (map[string]any, error) {
	payload, err := json.Marshal(models.PredictionRequest{Features: features, CurrentCycle: currentCycle})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+predictPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", predictPath, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
