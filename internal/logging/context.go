package logging

import (
	"time"

	"github.com/rs/zerolog"
)

// logContext implements LogContext by wrapping zerolog.Context
type logContext struct {
	context zerolog.Context
	service *Service
}

// contextLogger is a child logger. Lifecycle and in-flight tracking stay
// with the parent Service.
type contextLogger struct {
	logger *zerolog.Logger
	parent *Service
}

func (c *logContext) Str(key, val string) LogContext {
	c.context = c.context.Str(key, val)
	return c
}

func (c *logContext) Int(key string, val int) LogContext {
	c.context = c.context.Int(key, val)
	return c
}

func (c *logContext) Bool(key string, val bool) LogContext {
	c.context = c.context.Bool(key, val)
	return c
}

func (c *logContext) Dur(key string, val time.Duration) LogContext {
	c.context = c.context.Dur(key, val)
	return c
}

func (c *logContext) Err(err error) LogContext {
	c.context = c.context.Err(err)
	return c
}

func (c *logContext) Interface(key string, val interface{}) LogContext {
	c.context = c.context.Interface(key, val)
	return c
}

func (c *logContext) Logger() Logger {
	logger := c.context.Logger()
	return &contextLogger{logger: &logger, parent: c.service}
}

func (cl *contextLogger) event(level zerolog.Level) LogEvent {
	if cl.logger == nil || cl.parent == nil {
		return newLogEvent(nil)
	}
	return trackedEvent(cl.parent, cl.logger, level)
}

func (cl *contextLogger) TraceWith() LogEvent { return cl.event(zerolog.TraceLevel) }
func (cl *contextLogger) DebugWith() LogEvent { return cl.event(zerolog.DebugLevel) }
func (cl *contextLogger) InfoWith() LogEvent  { return cl.event(zerolog.InfoLevel) }
func (cl *contextLogger) WarnWith() LogEvent  { return cl.event(zerolog.WarnLevel) }
func (cl *contextLogger) ErrorWith() LogEvent { return cl.event(zerolog.ErrorLevel) }
func (cl *contextLogger) FatalWith() LogEvent { return cl.event(zerolog.FatalLevel) }
func (cl *contextLogger) PanicWith() LogEvent { return cl.event(zerolog.PanicLevel) }

func (cl *contextLogger) With() LogContext {
	if cl.logger == nil || cl.parent == nil || !cl.parent.isInitialized.Load() {
		return &noopLogContext{}
	}
	return &logContext{
		context: cl.logger.With(),
		service: cl.parent,
	}
}

// noopLogContext is a no-op implementation of LogContext
type noopLogContext struct{}

func (n *noopLogContext) Str(string, string) LogContext           { return n }
func (n *noopLogContext) Int(string, int) LogContext              { return n }
func (n *noopLogContext) Bool(string, bool) LogContext            { return n }
func (n *noopLogContext) Dur(string, time.Duration) LogContext    { return n }
func (n *noopLogContext) Err(error) LogContext                    { return n }
func (n *noopLogContext) Interface(string, interface{}) LogContext { return n }
func (n *noopLogContext) Logger() Logger                          { return &noopLogger{} }

// noopLogger is a no-op implementation of Logger
type noopLogger struct{}

func (n *noopLogger) TraceWith() LogEvent { return newLogEvent(nil) }
func (n *noopLogger) DebugWith() LogEvent { return newLogEvent(nil) }
func (n *noopLogger) InfoWith() LogEvent  { return newLogEvent(nil) }
func (n *noopLogger) WarnWith() LogEvent  { return newLogEvent(nil) }
func (n *noopLogger) ErrorWith() LogEvent { return newLogEvent(nil) }
func (n *noopLogger) FatalWith() LogEvent { return newLogEvent(nil) }
func (n *noopLogger) PanicWith() LogEvent { return newLogEvent(nil) }
func (n *noopLogger) With() LogContext    { return &noopLogContext{} }

// Nop returns a Logger that discards everything.
func Nop() Logger { return &noopLogger{} }
