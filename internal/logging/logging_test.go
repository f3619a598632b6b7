package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/hpicker/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: " WARN ", want: zerolog.WarnLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hpicker.log")

	result := logging.NewLoggerWithPath(logging.Config{
		Level:  "debug",
		Format: logging.FormatJSON,
		Output: logging.OutputFile,
		File:   path,
	})
	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	componentLogger := logging.ComponentLogger(result.Logger, "picker")
	componentLogger.Debug().Int("index", 3).Msg("selection committed")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close(), "closing twice is harmless")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"picker"`)
	assert.Contains(t, string(data), `"index":3`)
}

func TestNewLoggerWithPath_FallbackToStderr(t *testing.T) {
	result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputFile})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
}

func TestNewLoggerWithPath_Discard(t *testing.T) {
	result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputDiscard, Level: "debug"})

	assert.Equal(t, zerolog.Disabled, result.Logger.GetLevel())
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	logging.PrintLogPathMessage(&buf, "/tmp/x.log")
	logging.PrintFallbackWarning(&buf, "denied")

	assert.Contains(t, buf.String(), "/tmp/x.log")
	assert.Contains(t, buf.String(), "denied")
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()

	_, ok := logging.TraceIDFromContext(ctx)
	assert.False(t, ok)

	generated := logging.GetOrGenerateTraceID(ctx)
	_, err := ulid.Parse(generated)
	require.NoError(t, err)

	ctx = logging.ContextWithTraceID(ctx, generated)
	assert.Equal(t, generated, logging.GetOrGenerateTraceID(ctx))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	logging.FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
}
