package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "pdf-chat-api/pkg/errors"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSON(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("body = %v", body)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, http.StatusNotFound, "not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != `{"error":"not found"}` {
		t.Errorf("body = %q", got)
	}
}

func TestWriteAppError(t *testing.T) {
	w := httptest.NewRecorder()
	writeAppError(w, apperrors.NewPDFTooLargeError(1024), false)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}

	got := decodeErrorBody(t, w)
	if got.Code != apperrors.CodePDFTooLarge {
		t.Errorf("error code = %s", got.Code)
	}
	if got.Message != "PDF file is too large" {
		t.Errorf("error message = %q", got.Message)
	}
}

func TestWriteAppErrorWrapsUnknownErrors(t *testing.T) {
	w := httptest.NewRecorder()
	writeAppError(w, errors.New("database exploded"), false)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", w.Code)
	}

	got := decodeErrorBody(t, w)
	if got.Code != apperrors.CodeInternalError {
		t.Errorf("error code = %s", got.Code)
	}
	// The raw message must not leak outside debug mode.
	if got.Message != "An internal error occurred" {
		t.Errorf("error message = %q", got.Message)
	}
	if _, ok := got.Details["error"]; ok {
		t.Error("details leaked without debug enabled")
	}
}

func TestWriteAppErrorDebugDetails(t *testing.T) {
	w := httptest.NewRecorder()
	writeAppError(w, errors.New("database exploded"), true)

	got := decodeErrorBody(t, w)
	if got.Details["error"] != "database exploded" {
		t.Errorf("debug details = %v", got.Details)
	}
}
