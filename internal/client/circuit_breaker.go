package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"engine_rul/internal/models"

	"github.com/sony/gobreaker"
)

// CircuitBreakerConfig defines circuit breaker configuration
type CircuitBreakerConfig struct {
	MaxRequests   uint32        // Max requests allowed in half-open state
	Interval      time.Duration // Window for counting failures
	Timeout       time.Duration // Duration circuit stays open before trying recovery
	ReadyToTrip   func(counts gobreaker.Counts) bool
	OnStateChange func(name string, from gobreaker.State, to gobreaker.State)
}

// DefaultCircuitBreakerConfig opens after 5 consecutive failures.
var DefaultCircuitBreakerConfig = CircuitBreakerConfig{
	MaxRequests: 1,
	Interval:    10 * time.Second,
	Timeout:     30 * time.Second,
	ReadyToTrip: func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= 5
	},
}

// CircuitBreakerClient wraps a Predictor with circuit breaker protection.
// Rejections by the service (4xx) do not count as failures.
type CircuitBreakerClient struct {
	client  Predictor
	breaker *gobreaker.CircuitBreaker
}

func NewCircuitBreakerClient(client Predictor, name string, config CircuitBreakerConfig) *CircuitBreakerClient {
	settings := gobreaker.Settings{
		Name:          name,
		MaxRequests:   config.MaxRequests,
		Interval:      config.Interval,
		Timeout:       config.Timeout,
		ReadyToTrip:   config.ReadyToTrip,
		OnStateChange: config.OnStateChange,
		IsSuccessful:  isBreakerSuccess,
	}

	return &CircuitBreakerClient{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var se *ServiceError
	return errors.As(err, &se) && se.StatusCode < http.StatusInternalServerError
}

func (cb *CircuitBreakerClient) Predict(ctx context.Context, features models.FeatureVector, currentCycle *float64) (map[string]any, error) {
	result, err := cb.breaker.Execute(func() (interface{}, error) {
		return cb.client.Predict(ctx, features, currentCycle)
	})
	if err != nil {
		return nil, fmt.Errorf("circuit breaker: %w", err)
	}
	return result.(map[string]any), nil
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreakerClient) State() gobreaker.State {
	return cb.breaker.State()
}

// Counts returns the current failure counts
func (cb *CircuitBreakerClient) Counts() gobreaker.Counts {
	return cb.breaker.Counts()
}
