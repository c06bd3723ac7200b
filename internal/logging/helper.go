package logging

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// parseLevel parses a string log level into a zerolog.Level.
// Returns zerolog.NoLevel and an error if parsing fails.
func parseLevel(level string) (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, err
	}
	return l, nil
}

// buildErrorChain walks an error's cause chain and returns:
//   - chain: outermost -> innermost error messages
//   - ops: operation identifiers for DetailedError links ("" if not available)
//   - root: the innermost error message
//   - rootOp: the innermost operation identifier if available
//
// DetailedError.Cause() is preferred, then stdlib errors.Unwrap. Depth is
// bounded and repeated messages stop the walk.
func buildErrorChain(err error) (chain []string, ops []string, root string, rootOp string) {
	const maxDepth = 50
	visited := 0
	seen := map[string]bool{}

	for err != nil && visited < maxDepth {
		visited++

		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			ops = append(ops, string(dErr.Op()))
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		ops = append(ops, "")
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	if len(ops) > 0 {
		rootOp = ops[len(ops)-1]
	}
	return
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return ""
	}
	return strings.Join(chain, " -> ")
}

// eventFor opens an event on logger at level. Unknown levels yield nil.
func eventFor(logger *zerolog.Logger, level zerolog.Level) *zerolog.Event {
	switch level {
	case zerolog.TraceLevel:
		return logger.Trace()
	case zerolog.DebugLevel:
		return logger.Debug()
	case zerolog.InfoLevel:
		return logger.Info()
	case zerolog.WarnLevel:
		return logger.Warn()
	case zerolog.ErrorLevel:
		return logger.Error()
	case zerolog.FatalLevel:
		return logger.Fatal()
	case zerolog.PanicLevel:
		return logger.Panic()
	default:
		return nil
	}
}

// trackedEvent creates an event on logger that keeps s open until the event
// is sent. The read lock orders the WaitGroup increment before Close starts
// waiting, so no increment can race with Wait.
// A disabled level or a closed service yields a no-op LogEvent.
func trackedEvent(s *Service, logger *zerolog.Logger, level zerolog.Level) LogEvent {
	if s == nil || logger == nil || level == zerolog.NoLevel {
		return newLogEvent(nil)
	}

	s.mu.RLock()
	if !s.isInitialized.Load() || logger.GetLevel() > level {
		s.mu.RUnlock()
		return newLogEvent(nil)
	}
	event := eventFor(logger, level)
	if event == nil {
		s.mu.RUnlock()
		return newLogEvent(nil)
	}
	s.activeOps.Inc()
	s.wg.Add(1)
	s.mu.RUnlock()

	return newTrackedLogEvent(event, s)
}

// logEventBuilder creates a tracked log event on the service's root logger.
func logEventBuilder(s *Service, level zerolog.Level) LogEvent {
	if s == nil || !s.isInitialized.Load() {
		return newLogEvent(nil)
	}
	return trackedEvent(s, s.logger.Load(), level)
}
