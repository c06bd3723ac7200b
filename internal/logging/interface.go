package logging

// Logger is the structured logging surface shared by the Service and the
// context loggers it creates.
type Logger interface {
	TraceWith() LogEvent
	DebugWith() LogEvent
	InfoWith() LogEvent
	WarnWith() LogEvent
	ErrorWith() LogEvent
	FatalWith() LogEvent
	PanicWith() LogEvent

	// With creates a child logger whose fields are added to every record.
	// Example: rl := logger.With().Str("component", "rain").Logger()
	With() LogContext
}
