// Package emitter replays a text file through a debug logger, one line at a
// time, pausing between lines and once more at the end.
package emitter

import (
	"os"
	"strings"
	"time"

	"github.com/Station-Manager/lograin/internal/logging"
	"github.com/Station-Manager/lograin/internal/types"
)

// Logger is the part of logging.Logger the emitter writes to.
type Logger interface {
	DebugWith() logging.LogEvent
}

// Stats summarizes a completed run.
type Stats struct {
	Lines int // records emitted
	Blank int // lines that are empty once surrounding whitespace is removed
}

// Emitter emits the lines of one file as debug records.
type Emitter struct {
	logger     Logger
	path       string
	lineDelay  time.Duration
	finalDelay time.Duration
	sleep      func(time.Duration)
}

// Option customizes an Emitter.
type Option func(*Emitter)

// WithPath sets the input file.
func WithPath(path string) Option {
	return func(e *Emitter) { e.path = path }
}

// WithLineDelay sets the pause after each emitted line.
func WithLineDelay(d time.Duration) Option {
	return func(e *Emitter) { e.lineDelay = d }
}

// WithFinalDelay sets the pause after the last line.
func WithFinalDelay(d time.Duration) Option {
	return func(e *Emitter) { e.finalDelay = d }
}

// WithSleep replaces time.Sleep.
func WithSleep(sleep func(time.Duration)) Option {
	return func(e *Emitter) { e.sleep = sleep }
}

// WithConfig applies every field of cfg.
func WithConfig(cfg types.EmitterConfig) Option {
	return func(e *Emitter) {
		e.path = cfg.Path
		e.lineDelay = cfg.LineDelay
		e.finalDelay = cfg.FinalDelay
	}
}

// New returns an Emitter writing to logger. Without options it reads
// log.log, waits 500ms per line and 10s at the end.
func New(logger Logger, opts ...Option) *Emitter {
	e := &Emitter{
		logger:     logger,
		path:       types.DefaultEmitterPath,
		lineDelay:  types.DefaultEmitterLineDelay,
		finalDelay: types.DefaultEmitterFinalDelay,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.Nop()
	}
	return e
}

// Path returns the input file path.
func (e *Emitter) Path() string { return e.path }

// Run opens the file, emits every raw line as a debug record in file order
// with a line delay after each, then waits the final delay. If the file
// cannot be opened nothing is emitted and a *FileAccessError is returned.
func (e *Emitter) Run() (Stats, error) {
	var stats Stats

	f, err := os.Open(e.path)
	if err != nil {
		return stats, &FileAccessError{Op: "open", Path: e.path, Err: err}
	}
	defer f.Close()

	for line, err := range Lines(f) {
		if err != nil {
			return stats, &FileAccessError{Op: "read", Path: e.path, Err: err}
		}
		if strings.TrimSpace(line) == "" {
			stats.Blank++
		}
		e.logger.DebugWith().Msg(line)
		stats.Lines++
		e.sleep(e.lineDelay)
	}

	e.sleep(e.finalDelay)
	return stats, nil
}
