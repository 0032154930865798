package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"engine_rul/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Predict_OK(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &got))
		_, _ = w.Write([]byte(`{"predicted_rul":112.5,"predicted_failure_cycle":143.5}`))
	}))
	defer srv.Close()

	cycle := 31.0
	out, err := New(srv.URL+"/").Predict(context.Background(), models.FeatureVector{"sensor_2": 0.412651}, &cycle)
	require.NoError(t, err)

	assert.Equal(t, 112.5, out["predicted_rul"])
	assert.Equal(t, 143.5, out["predicted_failure_cycle"])
	assert.Equal(t, map[string]any{"sensor_2": 0.412651}, got["features"])
	assert.Equal(t, 31.0, got["current_cycle"])
}

func TestClient_Predict_NullCycleSent(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &got))
		_, _ = w.Write([]byte(`{"predicted_rul":7}`))
	}))
	defer srv.Close()

	out, err := New(srv.URL).Predict(context.Background(), models.FeatureVector{"a": 1}, nil)
	require.NoError(t, err)

	v, ok := got["current_cycle"]
	assert.True(t, ok)
	assert.Nil(t, v)
	// the response map is returned untouched, missing keys included
	_, has := out["predicted_failure_cycle"]
	assert.False(t, has)
}

func TestClient_Predict_ServiceErrorKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"missing feature \"sensor_2\""}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Predict(context.Background(), models.FeatureVector{}, nil)
	require.Error(t, err)

	var se *ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, `{"error":"missing feature \"sensor_2\""}`, se.Body)
	assert.Contains(t, se.Error(), "400")
}

func TestClient_Predict_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).Predict(context.Background(), models.FeatureVector{"a": 1}, nil)
	require.Error(t, err)
	var se *ServiceError
	assert.False(t, errors.As(err, &se))
}
