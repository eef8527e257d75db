package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFailShape(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, http.StatusBadRequest, "Шаблон графика не найден")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %s", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != false {
		t.Fatalf("expected success false, got %v", body["success"])
	}
	if body["error"] != "Шаблон графика не найден" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestSuccessPassesPayloadThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]any{"success": true, "assignedCount": 2})

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["assignedCount"].(float64) != 2 {
		t.Fatalf("expected assignedCount at top level, got %v", body)
	}
}
