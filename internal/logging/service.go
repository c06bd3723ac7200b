package logging

import (
	"io"
	"sync"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/lograin/internal/types"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Service is the process-wide logger. The zero value is usable once
// LoggingConfig (and WorkingDir, for file logging) are set; every logging
// method is a no-op until Initialize succeeds and after Close.
type Service struct {
	WorkingDir    string
	LoggingConfig *types.LoggingConfig
	// Console receives console output. Defaults to os.Stderr.
	Console io.Writer

	logger        atomic.Pointer[zerolog.Logger]
	isInitialized atomic.Bool
	activeOps     atomic.Int32

	mu         sync.RWMutex
	wg         sync.WaitGroup
	fileWriter *lumberjack.Logger
}

// NewService returns an uninitialized Service for cfg.
func NewService(cfg *types.LoggingConfig, workingDir string) *Service {
	return &Service{LoggingConfig: cfg, WorkingDir: workingDir}
}

// Initialize validates the configuration and builds the writers. Calling it
// on an initialized service is a no-op.
func (s *Service) Initialize() error {
	const op errors.Op = "logging.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isInitialized.Load() {
		return nil
	}
	if s.LoggingConfig == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	cfg := *s.LoggingConfig
	s.LoggingConfig = &cfg

	if err := validateConfig(s.LoggingConfig); err != nil {
		return err
	}

	level, err := parseLevel(s.LoggingConfig.Level)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgInvalidLevel)
	}

	writers, err := s.initializeWriters()
	if err != nil {
		return err
	}

	var w io.Writer = writers[0]
	if len(writers) > 1 {
		w = zerolog.MultiLevelWriter(writers...)
	}

	ctx := zerolog.New(w).Level(level).With()
	if s.LoggingConfig.WithTimestamp {
		ctx = ctx.Timestamp()
	}
	if s.LoggingConfig.SkipFrameCount > 0 {
		ctx = ctx.CallerWithSkipFrameCount(s.LoggingConfig.SkipFrameCount)
	}
	logger := ctx.Logger()

	s.logger.Store(&logger)
	s.isInitialized.Store(true)
	return nil
}

// Close waits for in-flight events (bounded by ShutdownTimeoutMS), then
// releases the file writer. It's safe to call Close multiple times.
func (s *Service) Close() error {
	const op errors.Op = "logging.Service.Close"
	if s == nil {
		return nil
	}

	s.mu.Lock()
	if !s.isInitialized.Load() {
		s.mu.Unlock()
		return nil
	}
	s.isInitialized.Store(false)
	s.mu.Unlock()

	if !s.waitForActiveOps(s.shutdownTimeout()) && s.LoggingConfig.ShutdownTimeoutWarning {
		if logger := s.logger.Load(); logger != nil {
			logger.Warn().
				Int32("active_operations", s.activeOps.Load()).
				Dur("timeout", s.shutdownTimeout()).
				Msg(warnMsgShutdownTimeout)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Store(nil)
	if s.fileWriter != nil {
		err := s.fileWriter.Close()
		s.fileWriter = nil
		if err != nil {
			return errors.New(op).Err(err).Msg(errMsgCloseFile)
		}
	}
	return nil
}

func (s *Service) shutdownTimeout() time.Duration {
	if s.LoggingConfig == nil || s.LoggingConfig.ShutdownTimeoutMS <= 0 {
		return defaultShutdownTimeout
	}
	return time.Duration(s.LoggingConfig.ShutdownTimeoutMS) * time.Millisecond
}

// waitForActiveOps reports whether all in-flight events finished in time.
func (s *Service) waitForActiveOps(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}

// TraceWith returns a LogEvent for structured Trace-level logging.
func (s *Service) TraceWith() LogEvent { return logEventBuilder(s, zerolog.TraceLevel) }

// DebugWith returns a LogEvent for structured Debug-level logging.
func (s *Service) DebugWith() LogEvent { return logEventBuilder(s, zerolog.DebugLevel) }

// InfoWith returns a LogEvent for structured Info-level logging.
// Example: logger.InfoWith().Str("path", p).Int("lines", n).Msg("done")
func (s *Service) InfoWith() LogEvent { return logEventBuilder(s, zerolog.InfoLevel) }

// WarnWith returns a LogEvent for structured Warn-level logging.
func (s *Service) WarnWith() LogEvent { return logEventBuilder(s, zerolog.WarnLevel) }

// ErrorWith returns a LogEvent for structured Error-level logging.
// Example: logger.ErrorWith().Err(err).Msg("viewer stopped")
func (s *Service) ErrorWith() LogEvent { return logEventBuilder(s, zerolog.ErrorLevel) }

// FatalWith returns a LogEvent for structured Fatal-level logging.
// The program will exit after the log is written.
func (s *Service) FatalWith() LogEvent { return logEventBuilder(s, zerolog.FatalLevel) }

// PanicWith returns a LogEvent that panics after the log is written.
func (s *Service) PanicWith() LogEvent { return logEventBuilder(s, zerolog.PanicLevel) }

// With returns a LogContext for creating a child logger with pre-populated fields.
func (s *Service) With() LogContext {
	if s == nil || !s.isInitialized.Load() {
		return &noopLogContext{}
	}
	logger := s.logger.Load()
	if logger == nil {
		return &noopLogContext{}
	}
	return &logContext{
		context: logger.With(),
		service: s,
	}
}
