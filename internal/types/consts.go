package types

import "time"

const (
	LoggingServiceName = "logging"
	EmitterServiceName = "emitter"
	RainServiceName    = "rain"
)

const (
	DefaultEmitterPath       = "log.log"
	DefaultEmitterLineDelay  = 500 * time.Millisecond
	DefaultEmitterFinalDelay = 10 * time.Second
)

const (
	DefaultRainColor              = "default"
	DefaultRainHighlightColor     = "white"
	DefaultRainHighlightThreshold = 3
	DefaultRainFrequency          = 100 * time.Millisecond
	DefaultRainDirection          = "bottom"
	DefaultRainSpaces             = 1
)

// DefaultLoggingConfig logs everything from debug up to stderr in the
// human-readable console format.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:                  "debug",
		WithTimestamp:          true,
		ConsoleLogging:         true,
		ConsoleFormat:          "pretty",
		FileLogging:            false,
		RelLogFileDir:          "logs",
		LogFileMaxBackups:      3,
		LogFileMaxAgeDays:      7,
		LogFileMaxSizeMB:       10,
		ShutdownTimeoutMS:      500,
		ShutdownTimeoutWarning: true,
	}
}

func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		Path:       DefaultEmitterPath,
		LineDelay:  DefaultEmitterLineDelay,
		FinalDelay: DefaultEmitterFinalDelay,
	}
}

func DefaultRainConfig() RainConfig {
	return RainConfig{
		Color:              DefaultRainColor,
		HighlightColor:     DefaultRainHighlightColor,
		HighlightThreshold: DefaultRainHighlightThreshold,
		Frequency:          DefaultRainFrequency,
		Direction:          DefaultRainDirection,
		Spaces:             DefaultRainSpaces,
	}
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		LoggingConfig: DefaultLoggingConfig(),
		EmitterConfig: DefaultEmitterConfig(),
		RainConfig:    DefaultRainConfig(),
	}
}
