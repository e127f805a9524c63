package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestWithBuildID(t *testing.T) {
	ctx := WithBuildID(context.Background(), "build-123")

	if lc := extractLogContext(ctx); lc.BuildID != "build-123" {
		t.Errorf("expected build-123, got %s", lc.BuildID)
	}
}

func TestMultipleContextValues(t *testing.T) {
	ctx := context.Background()
	ctx = WithBuildID(ctx, "b1")
	ctx = WithStage(ctx, "render")
	ctx = WithRoute(ctx, "/docs/cli")

	lc := extractLogContext(ctx)
	if lc.BuildID != "b1" || lc.Stage != "render" || lc.Route != "/docs/cli" {
		t.Errorf("unexpected log context: %+v", lc)
	}
}

func TestNewBuildID(t *testing.T) {
	id := NewBuildID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("build id is not a uuid: %v", err)
	}
	if id == NewBuildID() {
		t.Fatal("expected distinct build ids")
	}
}

func TestInfoContextIncludesAttrs(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	ctx := WithStage(WithBuildID(context.Background(), "b42"), "write")
	InfoContext(ctx, "Page written", slog.String("route", "/docs"))

	out := buf.String()
	for _, want := range []string{"build.id=b42", "stage=write", "route=/docs", "Page written"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestWarnContextIncludesAttrs(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	ctx := WithStage(WithBuildID(context.Background(), "b7"), "check")
	WarnContext(ctx, "page not listed in navigation", slog.String("route", "/docs/extra"))

	out := buf.String()
	for _, want := range []string{"level=WARN", "build.id=b7", "stage=check", "route=/docs/extra"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
