package types

import "time"

// AppConfig is the full, file-backed configuration for lograin.
type AppConfig struct {
	LoggingConfig LoggingConfig `mapstructure:"logging" yaml:"logging" validate:"-"`
	EmitterConfig EmitterConfig `mapstructure:"emitter" yaml:"emitter"`
	RainConfig    RainConfig    `mapstructure:"rain" yaml:"rain"`
}

// LoggingConfig configures the process-wide logging service.
type LoggingConfig struct {
	Level          string `mapstructure:"level" yaml:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	WithTimestamp  bool   `mapstructure:"with_timestamp" yaml:"with_timestamp"`
	SkipFrameCount int    `mapstructure:"skip_frame_count" yaml:"skip_frame_count" validate:"min=0"`

	ConsoleLogging    bool   `mapstructure:"console_logging" yaml:"console_logging"`
	ConsoleFormat     string `mapstructure:"console_format" yaml:"console_format" validate:"omitempty,oneof=pretty json"`
	ConsoleNoColor    bool   `mapstructure:"console_no_color" yaml:"console_no_color"`
	ConsoleTimeFormat string `mapstructure:"console_time_format" yaml:"console_time_format"`

	FileLogging       bool   `mapstructure:"file_logging" yaml:"file_logging"`
	RelLogFileDir     string `mapstructure:"rel_log_file_dir" yaml:"rel_log_file_dir" validate:"required,relpath"`
	LogFileName       string `mapstructure:"log_file_name" yaml:"log_file_name" validate:"omitempty,excludesall=/"`
	LogFileMaxBackups int    `mapstructure:"log_file_max_backups" yaml:"log_file_max_backups" validate:"min=0"`
	LogFileMaxAgeDays int    `mapstructure:"log_file_max_age_days" yaml:"log_file_max_age_days" validate:"min=0"`
	LogFileMaxSizeMB  int    `mapstructure:"log_file_max_size_mb" yaml:"log_file_max_size_mb" validate:"min=0"`
	LogFileCompress   bool   `mapstructure:"log_file_compress" yaml:"log_file_compress"`

	JournalLogging bool `mapstructure:"journal_logging" yaml:"journal_logging"`

	ShutdownTimeoutMS      int  `mapstructure:"shutdown_timeout_ms" yaml:"shutdown_timeout_ms" validate:"min=0"`
	ShutdownTimeoutWarning bool `mapstructure:"shutdown_timeout_warning" yaml:"shutdown_timeout_warning"`
}

// EmitterConfig configures the line emitter.
type EmitterConfig struct {
	Path       string        `mapstructure:"path" yaml:"path" validate:"required"`
	LineDelay  time.Duration `mapstructure:"line_delay" yaml:"line_delay" validate:"min=0"`
	FinalDelay time.Duration `mapstructure:"final_delay" yaml:"final_delay" validate:"min=0"`
}

// RainConfig configures the rain viewer.
type RainConfig struct {
	Color              string        `mapstructure:"color" yaml:"color" validate:"required,color"`
	HighlightColor     string        `mapstructure:"highlight_color" yaml:"highlight_color" validate:"required,color"`
	HighlightThreshold int           `mapstructure:"highlight_threshold" yaml:"highlight_threshold" validate:"min=0"`
	Frequency          time.Duration `mapstructure:"frequency" yaml:"frequency" validate:"gt=0"`
	Direction          string        `mapstructure:"direction" yaml:"direction" validate:"required,oneof=top bottom spiral-right"`
	Spaces             int           `mapstructure:"spaces" yaml:"spaces" validate:"min=0"`
}
