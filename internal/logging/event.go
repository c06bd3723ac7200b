package logging

import (
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// LogContext builds a context logger with pre-populated fields.
type LogContext interface {
	Str(key, val string) LogContext
	Int(key string, val int) LogContext
	Bool(key string, val bool) LogContext
	Dur(key string, val time.Duration) LogContext
	Err(err error) LogContext
	Interface(key string, val interface{}) LogContext
	// Logger creates and returns the new context logger
	Logger() Logger
}

// LogEvent is a fluent, typed wrapper around zerolog.Event.
type LogEvent interface {
	Str(key, val string) LogEvent
	Strs(key string, vals []string) LogEvent
	Int(key string, val int) LogEvent
	Int64(key string, val int64) LogEvent
	Uint64(key string, val uint64) LogEvent
	Float64(key string, val float64) LogEvent
	Bool(key string, val bool) LogEvent
	Time(key string, val time.Time) LogEvent
	Dur(key string, val time.Duration) LogEvent
	Err(err error) LogEvent
	AnErr(key string, err error) LogEvent
	Interface(key string, val interface{}) LogEvent
	Dict(key string, dict func(LogEvent)) LogEvent
	Msg(msg string)
	Msgf(format string, v ...interface{})
	Send()
}

// logEvent wraps a zerolog.Event. When service is set the event holds one
// of its in-flight slots, released exactly once when the event is written.
type logEvent struct {
	event    *zerolog.Event
	service  *Service
	finished atomic.Bool
}

func newLogEvent(e *zerolog.Event) LogEvent {
	return &logEvent{event: e}
}

// newTrackedLogEvent wraps e. A nil event releases the slot immediately.
func newTrackedLogEvent(e *zerolog.Event, s *Service) LogEvent {
	if s == nil {
		return newLogEvent(e)
	}
	if e == nil {
		s.activeOps.Dec()
		s.wg.Done()
		return newLogEvent(nil)
	}
	return &logEvent{event: e, service: s}
}

func (e *logEvent) Str(key, val string) LogEvent {
	if e.event != nil {
		e.event.Str(key, val)
	}
	return e
}

func (e *logEvent) Strs(key string, vals []string) LogEvent {
	if e.event != nil {
		e.event.Strs(key, vals)
	}
	return e
}

func (e *logEvent) Int(key string, val int) LogEvent {
	if e.event != nil {
		e.event.Int(key, val)
	}
	return e
}

func (e *logEvent) Int64(key string, val int64) LogEvent {
	if e.event != nil {
		e.event.Int64(key, val)
	}
	return e
}

func (e *logEvent) Uint64(key string, val uint64) LogEvent {
	if e.event != nil {
		e.event.Uint64(key, val)
	}
	return e
}

func (e *logEvent) Float64(key string, val float64) LogEvent {
	if e.event != nil {
		e.event.Float64(key, val)
	}
	return e
}

func (e *logEvent) Bool(key string, val bool) LogEvent {
	if e.event != nil {
		e.event.Bool(key, val)
	}
	return e
}

func (e *logEvent) Time(key string, val time.Time) LogEvent {
	if e.event != nil {
		e.event.Time(key, val)
	}
	return e
}

func (e *logEvent) Dur(key string, val time.Duration) LogEvent {
	if e.event != nil {
		e.event.Dur(key, val)
	}
	return e
}

func (e *logEvent) Err(err error) LogEvent {
	if e.event != nil {
		e.event.Err(err)
		e.errorChain(zerolog.ErrorFieldName, err)
	}
	return e
}

func (e *logEvent) AnErr(key string, err error) LogEvent {
	if e.event != nil {
		e.event.AnErr(key, err)
		e.errorChain(key, err)
	}
	return e
}

// errorChain adds <key>_chain, _root, _history, _ops and _root_op fields.
func (e *logEvent) errorChain(key string, err error) {
	if err == nil {
		return
	}
	chain, ops, root, rootOp := buildErrorChain(err)
	if len(chain) == 0 {
		return
	}
	e.event.Strs(key+"_chain", chain)
	e.event.Str(key+"_root", root)
	e.event.Str(key+"_history", joinChain(chain))
	e.event.Strs(key+"_ops", ops)
	if rootOp != emptyString {
		e.event.Str(key+"_root_op", rootOp)
	}
}

func (e *logEvent) Interface(key string, val interface{}) LogEvent {
	if e.event != nil {
		e.event.Interface(key, val)
	}
	return e
}

// Dict for nested objects
func (e *logEvent) Dict(key string, dict func(LogEvent)) LogEvent {
	if e.event != nil {
		dictEvent := zerolog.Dict()
		dict(newLogEvent(dictEvent))
		e.event.Dict(key, dictEvent)
	}
	return e
}

func (e *logEvent) Msg(msg string) {
	defer e.release()
	if e.event != nil {
		e.event.Msg(msg)
	}
}

func (e *logEvent) Msgf(format string, v ...interface{}) {
	defer e.release()
	if e.event != nil {
		e.event.Msgf(format, v...)
	}
}

func (e *logEvent) Send() {
	defer e.release()
	if e.event != nil {
		e.event.Send()
	}
}

func (e *logEvent) release() {
	if e.service != nil && e.finished.CompareAndSwap(false, true) {
		e.service.activeOps.Dec()
		e.service.wg.Done()
	}
}
