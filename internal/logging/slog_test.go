package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_FileOnly_NoStdout(t *testing.T) {
	origStdout := captureStdout(t)

	var fileBuf bytes.Buffer
	m := NewSlogManager()
	m.Setup(&fileBuf, "info", nil)
	m.Logger().Info("hello file")

	stdout := origStdout()

	assert.Contains(t, fileBuf.String(), "hello file", "log should appear in file")
	assert.Empty(t, stdout, "nothing should be written to stdout when file is provided")
}

func TestSetup_NoFile_WritesToStdout(t *testing.T) {
	origStdout := captureStdout(t)

	m := NewSlogManager()
	m.Setup(nil, "info", nil)
	m.Logger().Info("hello console")

	stdout := origStdout()

	assert.Contains(t, stdout, "hello console", "log should appear on stdout")
}

func TestSetup_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	m := NewSlogManager()
	m.Setup(&buf, "debug", nil)

	m.Logger().Debug("debug msg")
	m.Logger().Info("info msg")

	output := buf.String()
	assert.Contains(t, output, "debug msg")
	assert.Contains(t, output, "info msg")
}

func TestSetup_InfoLevelSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	m := NewSlogManager()
	m.Setup(&buf, "info", nil)

	m.Logger().Debug("debug msg")
	m.Logger().Info("info msg")

	output := buf.String()
	assert.NotContains(t, output, "debug msg")
	assert.Contains(t, output, "info msg")
}

func TestSetup_ContextProviderInjectsAttrs(t *testing.T) {
	var buf bytes.Buffer
	m := NewSlogManager()
	m.Setup(&buf, "info", func() []slog.Attr {
		return []slog.Attr{slog.Int64("seed", 42)}
	})

	m.Logger().Info("with context")

	assert.Contains(t, buf.String(), "seed=42")
}

func TestLogger_BeforeSetupReturnsDefault(t *testing.T) {
	m := NewSlogManager()
	require.NotNil(t, m.Logger())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("Error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	ha := slog.NewTextHandler(&a, nil)
	hb := slog.NewTextHandler(&b, nil)

	logger := slog.New(NewMultiHandler(ha, hb))
	logger.Info("everywhere")

	assert.Contains(t, a.String(), "everywhere")
	assert.Contains(t, b.String(), "everywhere")
}

func TestMultiHandler_SkipsNilHandlers(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(nil, slog.NewTextHandler(&buf, nil), nil)

	require.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	logger := slog.New(h)
	logger.Info("survives nils")
	assert.Contains(t, buf.String(), "survives nils")
}

func TestLogFilePath(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	path := LogFilePath("/var/log/scenegen", "scenegen", start)
	assert.Contains(t, path, "scenegen.20260314_150926.log")
}

// captureStdout redirects os.Stdout to a pipe and returns a function
// that restores stdout and returns what was captured.
func captureStdout(t *testing.T) func() string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	return func() string {
		w.Close()
		os.Stdout = orig
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		return string(data)
	}
}
