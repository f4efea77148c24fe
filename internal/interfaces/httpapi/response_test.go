package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/golf-tracker/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
	if got, _ := errorObj["message"].(string); got != "invalid input: bad payload" {
		t.Fatalf("unexpected error message: %q", got)
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("replace user statistics: %w", errors.New("pq: connection refused")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, _ := body["error"].(map[string]any)
	if got, _ := errorObj["message"].(string); got != "internal server error" {
		t.Fatalf("expected generic message, got %q", got)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: x", usecase.ErrInvalidInput), status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "not found", err: fmt.Errorf("%w: x", usecase.ErrNotFound), status: http.StatusNotFound, reason: "notFound"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, status: http.StatusUnauthorized, reason: "unauthorized"},
		{name: "insufficient data", err: fmt.Errorf("%w: 3 rounds", usecase.ErrInsufficientData), status: http.StatusUnprocessableEntity, reason: "insufficientData"},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, status: http.StatusServiceUnavailable, reason: "dependencyUnavailable"},
		{name: "inconsistent state", err: fmt.Errorf("load profile: %w", usecase.ErrInconsistentState), status: http.StatusInternalServerError, reason: "inconsistentState"},
		{name: "storage failure", err: errors.New("boom"), status: http.StatusInternalServerError, reason: "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err)
			if got.HTTPStatus != tt.status || got.Reason != tt.reason {
				t.Fatalf("mapError()=%+v want status=%d reason=%s", got, tt.status, tt.reason)
			}
		})
	}
}
