package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/amp-labs/amp-vector/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var entry map[string]any

		require.NoError(t, json.Unmarshal([]byte(line), &entry))

		out = append(out, entry)
	}

	return out
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "vector4",
		JSON:      true,
		Output:    &buf,
	})

	Get().Info("default subsystem")

	ctx := WithSubsystem(context.Background(), "pack")
	Get(ctx).Info("overridden subsystem")

	ctx = With(ctx, "element", "float32", "count", 3)
	Get(ctx).Info("with values")

	Get(WithMuted(ctx, true)).Error("muted")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "vector4", lines[0]["subsystem"])
	assert.Equal(t, "pack", lines[1]["subsystem"])
	assert.Equal(t, "float32", lines[2]["element"])
	assert.InDelta(t, 3, lines[2]["count"], 0)
}

func TestWith_DoesNotShareValues(t *testing.T) { //nolint:paralleltest
	base := With(context.Background(), "a", 1)
	left := With(base, "b", 2)
	right := With(base, "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
	assert.Equal(t, base, With(base))
}

func TestConfigureLogging_FromEnvironment(t *testing.T) { //nolint:paralleltest
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "warn")

	var buf bytes.Buffer

	logger, err := ConfigureLogging("vector4", WithOutput(&buf))
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["msg"])
	assert.Equal(t, "vector4", GetSubsystem(context.Background()))
}

func TestConfigureLogging_OptionsWin(t *testing.T) { //nolint:paralleltest
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "error")

	var buf bytes.Buffer

	logger, err := ConfigureLogging("vector4", WithOutput(&buf), WithJSON(false), WithLevel(slog.LevelDebug))
	require.NoError(t, err)

	logger.Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
}

func TestConfigureLogging_InvalidEnvironment(t *testing.T) { //nolint:paralleltest
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := ConfigureLogging("vector4")
	require.ErrorIs(t, err, xform.ErrInvalidLogLevel)
	assert.Contains(t, err.Error(), "LOG_LEVEL")

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_JSON", "sometimes")

	_, err = ConfigureLogging("vector4")
	require.Error(t, err)
}

func TestWithLogger(t *testing.T) { //nolint:paralleltest
	var global, scoped bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "vector4", JSON: true, Output: &global})

	ctx := WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&scoped, nil)))
	ctx = With(WithSubsystem(ctx, "pack"), "count", 2)

	Get(ctx).Info("scoped")
	Get(WithMuted(ctx, true)).Info("muted")
	Get().Info("global")

	lines := decodeLines(t, &scoped)
	require.Len(t, lines, 1)
	assert.Equal(t, "scoped", lines[0]["msg"])
	assert.Equal(t, "pack", lines[0]["subsystem"])
	assert.InDelta(t, 2, lines[0]["count"], 0)

	lines = decodeLines(t, &global)
	require.Len(t, lines, 1)
	assert.Equal(t, "global", lines[0]["msg"])
}
