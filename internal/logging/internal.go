package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/coreos/go-systemd/v22/journal"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/journald"
	"gopkg.in/natefinch/lumberjack.v2"
)

// journalEnabled is swapped in tests.
var journalEnabled = journal.Enabled

func (s *Service) initializeRollingFileLogger(name string) *lumberjack.Logger {
	if name == emptyString {
		name = defaultFileName
	}

	path := filepath.Join(s.WorkingDir, s.LoggingConfig.RelLogFileDir, name+".log")

	return &lumberjack.Logger{
		Filename:   path,
		MaxBackups: s.LoggingConfig.LogFileMaxBackups,
		MaxAge:     s.LoggingConfig.LogFileMaxAgeDays,
		MaxSize:    s.LoggingConfig.LogFileMaxSizeMB,
		Compress:   s.LoggingConfig.LogFileCompress,
	}
}

func (s *Service) initializeConsoleWriter() io.Writer {
	out := s.Console
	if out == nil {
		out = os.Stderr
	}
	if s.LoggingConfig.ConsoleFormat == consoleFormatJSON {
		return out
	}
	cw := zerolog.ConsoleWriter{Out: out, NoColor: s.LoggingConfig.ConsoleNoColor}
	if s.LoggingConfig.ConsoleTimeFormat != emptyString {
		cw.TimeFormat = s.LoggingConfig.ConsoleTimeFormat
	}
	return cw
}

func (s *Service) initializeWriters() ([]io.Writer, error) {
	const op errors.Op = "logging.Service.initializeWriters"
	var writers []io.Writer

	// If every writer is disabled, enable the file writer
	if !s.LoggingConfig.ConsoleLogging && !s.LoggingConfig.FileLogging && !s.LoggingConfig.JournalLogging {
		s.LoggingConfig.FileLogging = true
	}

	if s.LoggingConfig.FileLogging {
		if s.WorkingDir == emptyString {
			return nil, errors.New(op).Msg(errMsgWorkingDirNotSet)
		}
		dir := filepath.Join(s.WorkingDir, s.LoggingConfig.RelLogFileDir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgCreateLogDir)
		}
		name := s.LoggingConfig.LogFileName
		if name == emptyString {
			name = execName()
		}
		s.fileWriter = s.initializeRollingFileLogger(name)
		writers = append(writers, s.fileWriter)
	}
	if s.LoggingConfig.ConsoleLogging {
		writers = append(writers, s.initializeConsoleWriter())
	}
	if s.LoggingConfig.JournalLogging {
		if !journalEnabled() {
			return nil, errors.New(op).Msg(errMsgJournalUnavailable)
		}
		writers = append(writers, journald.NewJournalDWriter())
	}

	return writers, nil
}

// execName is the running binary's base name without extension.
func execName() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultFileName
	}
	base := filepath.Base(exe)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
