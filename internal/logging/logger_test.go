package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Station-Manager/lograin/internal/types"
	"github.com/stretchr/testify/require"
)

// helper to create a ready-to-use file-based logger in a temp dir
func newFileLogger(t testing.TB, level string) (*Service, string) {
	t.Helper()
	wd := t.TempDir()

	cfg := &types.LoggingConfig{
		Level:             level,
		ConsoleLogging:    false,
		FileLogging:       true,
		RelLogFileDir:     "logs",
		LogFileName:       "lograin-test",
		LogFileMaxBackups: 1,
		LogFileMaxAgeDays: 1,
		LogFileMaxSizeMB:  5,
	}

	l := NewService(cfg, wd)
	require.NoError(t, l.Initialize())
	return l, filepath.Join(wd, "logs", "lograin-test.log")
}

func TestFileLoggingCreatesAndWrites(t *testing.T) {
	l, logPath := newFileLogger(t, "debug")
	t.Cleanup(func() { _ = l.Close() })

	l.InfoWith().Str("who", "world").Msg("hello")
	l.WarnWith().Msg("be careful")

	_, err := os.Stat(logPath)
	require.NoError(t, err)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	text := string(content)
	require.Contains(t, text, `"who":"world"`)
	require.Contains(t, text, "hello")
	require.Contains(t, text, "be careful")
}

func TestFileLevelFiltering(t *testing.T) {
	l, logPath := newFileLogger(t, "warn")
	t.Cleanup(func() { _ = l.Close() })

	l.DebugWith().Msg("debug msg")
	l.InfoWith().Msg("info msg")
	l.WarnWith().Msg("warn msg")
	l.ErrorWith().Msg("error msg")

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	s := string(b)
	require.NotContains(t, s, "debug msg")
	require.NotContains(t, s, "info msg")
	require.Contains(t, s, "warn msg")
	require.Contains(t, s, "error msg")
}

func TestFileLoggingDefaultName(t *testing.T) {
	wd := t.TempDir()
	cfg := &types.LoggingConfig{Level: "info", FileLogging: true, RelLogFileDir: "logs"}

	l := NewService(cfg, wd)
	require.NoError(t, l.Initialize())
	t.Cleanup(func() { _ = l.Close() })

	require.NotNil(t, l.fileWriter)
	require.Equal(t, filepath.Join(wd, "logs", execName()+".log"), l.fileWriter.Filename)
}

func TestUninitializedLoggerDoesNotPanic(t *testing.T) {
	// A Service built as a struct literal must be safe before Initialize
	l := &Service{}

	l.InfoWith().Str("key", "value").Msg("test")
	l.ErrorWith().Str("key", "value").Msg("test")
	l.With().Str("k", "v").Logger().DebugWith().Msg("test")

	wd := t.TempDir()
	l.WorkingDir = wd
	l.LoggingConfig = &types.LoggingConfig{Level: "info", FileLogging: true, RelLogFileDir: "logs", LogFileName: "late"}
	require.NoError(t, l.Initialize())
	t.Cleanup(func() { _ = l.Close() })

	l.InfoWith().Str("status", "working").Msg("Initialized successfully")

	data, err := os.ReadFile(filepath.Join(wd, "logs", "late.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "Initialized successfully")
}
