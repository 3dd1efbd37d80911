package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestWriteJSONSetsContentType(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, 201, map[string]string{"key": "value"}, nil)

	if rr.Code != 201 {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %s", ct)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	if resp["key"] != "value" {
		t.Fatalf("unexpected payload %+v", resp)
	}
}

func TestWriteErrorIncludesRequestIDHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ready", nil)
	req.Header.Set("X-Request-ID", "abc-123")

	writeError(rr, req, 503, "not ready", nil)

	if rr.Code != 503 {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	if resp["error"] != "not ready" {
		t.Fatalf("unexpected error %s", resp["error"])
	}
	if resp["requestId"] != "abc-123" {
		t.Fatalf("expected request id passthrough, got %s", resp["requestId"])
	}
}
