package logging

import (
	"testing"
	"time"

	"github.com/Station-Manager/lograin/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cfgWithDefaults() *types.LoggingConfig {
	return &types.LoggingConfig{
		Level:                  "debug",
		WithTimestamp:          true,
		ConsoleLogging:         true,
		FileLogging:            false,
		RelLogFileDir:          ".",
		LogFileMaxBackups:      1,
		LogFileMaxAgeDays:      1,
		LogFileMaxSizeMB:       10,
		ShutdownTimeoutMS:      20,
		ShutdownTimeoutWarning: true,
	}
}

// Verifies Close() waits up to timeout and returns without hanging when an event is never sent.
func TestCloseTimeoutWaitGroup(t *testing.T) {
	cfg := cfgWithDefaults()
	cfg.ConsoleLogging = false
	cfg.FileLogging = true

	svc := NewService(cfg, t.TempDir())
	require.NoError(t, svc.Initialize())

	// Start an event and never call Msg/Send to keep wg non-zero
	_ = svc.InfoWith()

	start := time.Now()
	require.NoError(t, svc.Close())
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, int64(elapsed/time.Millisecond), int64(cfg.ShutdownTimeoutMS))
}

// Verifies writer options (compression and console formatting) are plumbed.
func TestWriterOptions(t *testing.T) {
	var buf threadSafeBuffer
	cfg := cfgWithDefaults()
	cfg.ConsoleLogging = true
	cfg.FileLogging = true
	cfg.LogFileCompress = true
	cfg.ConsoleNoColor = true
	cfg.ConsoleTimeFormat = time.RFC3339

	svc := NewService(cfg, t.TempDir())
	svc.Console = &buf
	require.NoError(t, svc.Initialize())
	defer svc.Close()

	require.NotNil(t, svc.fileWriter, "fileWriter must be initialized")
	assert.True(t, svc.fileWriter.Compress)

	svc.InfoWith().Msg("hello world")
	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "hello world")
	assert.NotContains(t, out, "\x1b[")
}

// Verifies RelLogFileDir safety validation rejects paths outside the working dir.
func TestRelLogFileDirSafety(t *testing.T) {
	for _, dir := range []string{"/not/relative", "..", "../logs", "logs/../../x", ""} {
		t.Run(dir, func(t *testing.T) {
			cfg := cfgWithDefaults()
			cfg.RelLogFileDir = dir

			err := NewService(cfg, t.TempDir()).Initialize()
			require.Error(t, err)
		})
	}

	for _, dir := range []string{".", "logs", "var/logs", "logs/../other"} {
		t.Run(dir, func(t *testing.T) {
			cfg := cfgWithDefaults()
			cfg.RelLogFileDir = dir
			cfg.ConsoleLogging = false
			cfg.FileLogging = true

			svc := NewService(cfg, t.TempDir())
			require.NoError(t, svc.Initialize())
			require.NoError(t, svc.Close())
		})
	}
}

func TestJournalLogging(t *testing.T) {
	orig := journalEnabled
	t.Cleanup(func() { journalEnabled = orig })

	t.Run("unavailable journal is an error", func(t *testing.T) {
		journalEnabled = func() bool { return false }
		cfg := cfgWithDefaults()
		cfg.JournalLogging = true

		err := NewService(cfg, t.TempDir()).Initialize()
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgJournalUnavailable)
	})

	t.Run("available journal adds a writer", func(t *testing.T) {
		journalEnabled = func() bool { return true }
		cfg := cfgWithDefaults()
		cfg.ConsoleLogging = false
		cfg.JournalLogging = true

		svc := NewService(cfg, t.TempDir())
		require.NoError(t, svc.Initialize())
		t.Cleanup(func() { _ = svc.Close() })

		// journal alone counts as an enabled writer
		assert.False(t, svc.LoggingConfig.FileLogging)
		assert.Nil(t, svc.fileWriter)
	})
}

// Basic race-ish scenario: concurrently build scoped loggers while closing.
func TestConcurrentWithDuringClose(t *testing.T) {
	cfg := cfgWithDefaults()
	cfg.ShutdownTimeoutMS = 50

	svc := NewService(cfg, t.TempDir())
	svc.Console = &threadSafeBuffer{}
	require.NoError(t, svc.Initialize())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			svc.With().Str("i", "x").Logger().InfoWith().Msg("scoped")
		}
		close(done)
	}()

	_ = svc.Close()
	<-done
}
