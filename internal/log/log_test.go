package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/ghettovoice/crawluri/internal/log"
)

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Error("log.Noop.Enabled(LevelError) = true, want false")
	}
	// must not panic
	log.Noop.With("k", "v").WithGroup("g").Error("msg", "error", "boom")
}

func TestValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("values",
		slog.Any("fmt", log.FmtValue(&url.URL{Scheme: "http", Host: "a.com"}, false)),
		slog.Any("gofmt", log.FmtValue([]string{"x"}, true)),
	)

	out := buf.String()
	for _, want := range []string{"fmt=http://a.com", `gofmt="[]string{\"x\"}"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(log.NewHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("resolved",
		slog.Any("url", &url.URL{Scheme: "http", Host: "a.com", Path: "/x"}),
		slog.Any("none", (*url.URL)(nil)),
	)

	out := buf.String()
	for _, want := range []string{"url.scheme=http", "url.host=a.com", "url.path=/x", "url.raw=http://a.com/x", "none=<nil>"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}
