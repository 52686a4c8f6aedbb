package identity

import (
	"context"
	"testing"
)

func TestActor(t *testing.T) {
	if got := Actor(context.Background()); got != "" {
		t.Fatalf("expected empty actor, got %q", got)
	}
	ctx := WithActor(context.Background(), "  pm@akc.com ")
	if got := Actor(ctx); got != "pm@akc.com" {
		t.Fatalf("expected trimmed actor, got %q", got)
	}
}
