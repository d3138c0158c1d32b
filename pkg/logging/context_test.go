package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFromContextDefault(t *testing.T) {
	if FromContext(context.Background()) != Default() {
		t.Error("context without a logger must yield the default logger")
	}
	if FromContext(nil) != Default() { //nolint:staticcheck // nil context is part of the contract
		t.Error("nil context must yield the default logger")
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	Ctx(ctx).Info().Msg("hello")

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("context logger not used, got %q", buf.String())
	}
}

func TestWithProviderAndMonthFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	ctx = WithProvider(ctx, "divvy")
	ctx = WithMonth(ctx, "2020-06")
	Ctx(ctx).Info().Msg("fetch")

	out := buf.String()
	if !strings.Contains(out, `"provider_id":"divvy"`) {
		t.Errorf("provider_id field missing, got %q", out)
	}
	if !strings.Contains(out, `"month":"2020-06"`) {
		t.Errorf("month field missing, got %q", out)
	}
}
