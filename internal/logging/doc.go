// Package logging is the process-wide log sink for lograin: a thin,
// concurrency-safe wrapper over rs/zerolog with a structured-first API.
//
// Key features
//   - Structured logging only: typed fields on a fluent LogEvent
//   - Context loggers via With() for per-component scoping
//   - Console (pretty or JSON), rolling file (lumberjack) and systemd
//     journal outputs, selected by types.LoggingConfig
//   - Graceful shutdown that waits for in-flight events (bounded timeout)
//   - Error history enrichment: Err/AnErr add the full error chain
//     (outermost -> root), the root cause, a joined history and the
//     operations chain for Station-Manager DetailedError values.
//
// Typical usage
//
//	cfg := types.DefaultLoggingConfig()
//	svc := logging.NewService(&cfg, workingDir)
//	if err := svc.Initialize(); err != nil { return err }
//	defer svc.Close()
//
//	svc.DebugWith().Msg(line)
//	rl := svc.With().Str("component", "rain").Logger()
//	rl.ErrorWith().Err(err).Msg("viewer stopped")
package logging
