package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestComponentLoggerCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "debug", "json")
	defer SetupWriter(&bytes.Buffer{}, "info", "json")

	ctx := WithRequestID(context.Background(), "req-1")
	l := Component(ctx, "project", "usecase")
	l.Info().Str("project_id", "PROJ-2401-001").Msg("create start")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if line["request_id"] != "req-1" || line["component"] != "project" || line["layer"] != "usecase" {
		t.Fatalf("missing fields: %v", line)
	}
	if line["message"] != "create start" {
		t.Fatalf("unexpected message %v", line["message"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "warn", "json")
	defer SetupWriter(&bytes.Buffer{}, "info", "json")

	l := FromContext(context.Background())
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	l.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Fatalf("expected warn to be written")
	}
}
