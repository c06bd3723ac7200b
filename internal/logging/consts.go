package logging

import (
	"time"

	"github.com/Station-Manager/lograin/internal/types"
)

const (
	// ServiceName is the name the logging service is registered under.
	ServiceName = types.LoggingServiceName
	emptyString = ""
)

const (
	defaultFileName        = "lograin"
	defaultShutdownTimeout = 500 * time.Millisecond
	consoleFormatJSON      = "json"
)

const (
	errMsgNilConfig          = "Logging config is nil."
	errMsgNilService         = "Logger service is nil."
	errMsgConfigInvalid      = "Logging configuration is invalid."
	errMsgInvalidLevel       = "Logging level is invalid."
	errMsgWorkingDirNotSet   = "Working directory is not set."
	errMsgCreateLogDir       = "Failed to create logs directory."
	errMsgJournalUnavailable = "Journal logging requested but the systemd journal is not available."
	errMsgCloseFile          = "Failed to close log file."
	warnMsgShutdownTimeout   = "Logger shutdown timeout exceeded"
)
