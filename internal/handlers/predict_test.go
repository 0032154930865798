package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"engine_rul/internal/apperr"
	"engine_rul/internal/models"
	"engine_rul/internal/service"
)

func ptr(f float64) *float64 { return &f }

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	return w
}

func TestPredict_OK_WithCurrentCycle(t *testing.T) {
	inf := &mockInference{resp: models.PredictionResponse{PredictedRUL: 112.5, PredictedFailureCycle: ptr(143.5)}}
	r := newTestRouter(&service.Service{Inference: inf})

	w := doJSON(t, r, http.MethodPost, "/predict", `{"features":{"sensor_2":0.41,"cycle":31},"current_cycle":31}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if inf.calls != 1 {
		t.Fatalf("expected 1 Predict call, got %d", inf.calls)
	}
	if inf.lastReq.CurrentCycle == nil || *inf.lastReq.CurrentCycle != 31 {
		t.Fatalf("current_cycle not forwarded: %+v", inf.lastReq)
	}
	if inf.lastReq.Features["sensor_2"] != 0.41 || inf.lastReq.Features["cycle"] != 31 {
		t.Fatalf("features not forwarded: %+v", inf.lastReq.Features)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["predicted_rul"] != 112.5 || body["predicted_failure_cycle"] != 143.5 {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPredict_OK_NullFailureCycle(t *testing.T) {
	inf := &mockInference{resp: models.PredictionResponse{PredictedRUL: 87.25}}
	r := newTestRouter(&service.Service{Inference: inf})

	w := doJSON(t, r, http.MethodPost, "/predict", `{"features":{"sensor_2":0.41}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	v, ok := body["predicted_failure_cycle"]
	if !ok || v != nil {
		t.Fatalf("expected predicted_failure_cycle key with null, got %v", body)
	}
	if inf.lastReq.CurrentCycle != nil {
		t.Fatalf("expected absent current_cycle, got %v", *inf.lastReq.CurrentCycle)
	}
}

func TestPredict_Errors(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		err       error
		wantCode  int
		wantCalls int
		wantMsg   string
	}{
		{
			name:      "malformed json",
			body:      `{"features":`,
			wantCode:  http.StatusBadRequest,
			wantCalls: 0,
		},
		{
			name:      "non-numeric feature",
			body:      `{"features":{"sensor_2":"high"}}`,
			wantCode:  http.StatusBadRequest,
			wantCalls: 0,
		},
		{
			name:      "missing features",
			body:      `{}`,
			err:       apperr.BadRequest(errors.New("'features' is required and must be an object")),
			wantCode:  http.StatusBadRequest,
			wantCalls: 1,
			wantMsg:   "'features' is required and must be an object",
		},
		{
			name:      "model unavailable",
			body:      `{"features":{"a":1}}`,
			err:       apperr.ServiceUnavailable("model not loaded"),
			wantCode:  http.StatusServiceUnavailable,
			wantCalls: 1,
			wantMsg:   "model not loaded",
		},
		{
			name:      "unexpected failure",
			body:      `{"features":{"a":1}}`,
			err:       errors.New("boom"),
			wantCode:  http.StatusInternalServerError,
			wantCalls: 1,
			wantMsg:   "boom",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inf := &mockInference{err: tc.err}
			r := newTestRouter(&service.Service{Inference: inf})

			w := doJSON(t, r, http.MethodPost, "/predict", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			if inf.calls != tc.wantCalls {
				t.Fatalf("Predict calls=%d want %d", inf.calls, tc.wantCalls)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body["error"] == "" {
				t.Fatalf("expected error message, got %v", body)
			}
			if tc.wantMsg != "" && body["error"] != tc.wantMsg {
				t.Fatalf("error=%q want %q", body["error"], tc.wantMsg)
			}
		})
	}
}
