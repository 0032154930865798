package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"engine_rul/internal/models"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictor struct {
	out   map[string]any
	err   error
	calls int
}

func (s *stubPredictor) Predict(ctx context.Context, features models.FeatureVector, currentCycle *float64) (map[string]any, error) {
	s.calls++
	return s.out, s.err
}

func testConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxRequests: 1,
		Interval:    time.Second,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
}

func TestCircuitBreakerClient_PassesThrough(t *testing.T) {
	stub := &stubPredictor{out: map[string]any{"predicted_rul": 10.0}}
	cb := NewCircuitBreakerClient(stub, "test", DefaultCircuitBreakerConfig)

	out, err := cb.Predict(context.Background(), models.FeatureVector{"a": 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, out["predicted_rul"])
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCircuitBreakerClient_OpensAfterFailures(t *testing.T) {
	stub := &stubPredictor{err: errors.New("connection refused")}
	cb := NewCircuitBreakerClient(stub, "test", testConfig())

	for i := 0; i < 3; i++ {
		_, err := cb.Predict(context.Background(), models.FeatureVector{}, nil)
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Predict(context.Background(), models.FeatureVector{}, nil)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, stub.calls)
}

func TestCircuitBreakerClient_BadRequestsDoNotTrip(t *testing.T) {
	stub := &stubPredictor{err: &ServiceError{StatusCode: 400, Body: `{"error":"x"}`}}
	cb := NewCircuitBreakerClient(stub, "test", testConfig())

	for i := 0; i < 5; i++ {
		_, err := cb.Predict(context.Background(), models.FeatureVector{}, nil)
		var se *ServiceError
		require.True(t, errors.As(err, &se))
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())
	assert.Equal(t, uint32(0), cb.Counts().ConsecutiveFailures)
}

func TestCircuitBreakerClient_ServerErrorsTrip(t *testing.T) {
	stub := &stubPredictor{err: &ServiceError{StatusCode: 503, Body: `{"error":"model not loaded"}`}}
	cb := NewCircuitBreakerClient(stub, "test", testConfig())

	for i := 0; i < 3; i++ {
		_, _ = cb.Predict(context.Background(), models.FeatureVector{}, nil)
	}
	assert.Equal(t, gobreaker.StateOpen, cb.State())
}
