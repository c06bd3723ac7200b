// Package config loads lograin's configuration from built-in defaults, an
// optional YAML file, LOGRAIN_* environment variables and bound CLI flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Station-Manager/lograin/internal/types"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. LOGRAIN_EMITTER_PATH.
	EnvPrefix = "LOGRAIN"
	// DefaultName is the config file looked up in the working directory.
	DefaultName = "lograin"
)

// Loader resolves an AppConfig. Create one per command invocation.
type Loader struct {
	v *viper.Viper
}

func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, types.DefaultAppConfig())
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper, d types.AppConfig) {
	l := d.LoggingConfig
	v.SetDefault("logging.level", l.Level)
	v.SetDefault("logging.with_timestamp", l.WithTimestamp)
	v.SetDefault("logging.skip_frame_count", l.SkipFrameCount)
	v.SetDefault("logging.console_logging", l.ConsoleLogging)
	v.SetDefault("logging.console_format", l.ConsoleFormat)
	v.SetDefault("logging.console_no_color", l.ConsoleNoColor)
	v.SetDefault("logging.console_time_format", l.ConsoleTimeFormat)
	v.SetDefault("logging.file_logging", l.FileLogging)
	v.SetDefault("logging.rel_log_file_dir", l.RelLogFileDir)
	v.SetDefault("logging.log_file_name", l.LogFileName)
	v.SetDefault("logging.log_file_max_backups", l.LogFileMaxBackups)
	v.SetDefault("logging.log_file_max_age_days", l.LogFileMaxAgeDays)
	v.SetDefault("logging.log_file_max_size_mb", l.LogFileMaxSizeMB)
	v.SetDefault("logging.log_file_compress", l.LogFileCompress)
	v.SetDefault("logging.journal_logging", l.JournalLogging)
	v.SetDefault("logging.shutdown_timeout_ms", l.ShutdownTimeoutMS)
	v.SetDefault("logging.shutdown_timeout_warning", l.ShutdownTimeoutWarning)

	e := d.EmitterConfig
	v.SetDefault("emitter.path", e.Path)
	v.SetDefault("emitter.line_delay", e.LineDelay)
	v.SetDefault("emitter.final_delay", e.FinalDelay)

	r := d.RainConfig
	v.SetDefault("rain.color", r.Color)
	v.SetDefault("rain.highlight_color", r.HighlightColor)
	v.SetDefault("rain.highlight_threshold", r.HighlightThreshold)
	v.SetDefault("rain.frequency", r.Frequency)
	v.SetDefault("rain.direction", r.Direction)
	v.SetDefault("rain.spaces", r.Spaces)
}

// BindFlag makes flag override key when the flag is set on the command line.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	const op smerrors.Op = "config.Loader.BindFlag"
	if flag == nil {
		return smerrors.New(op).Msg("flag for " + key + " is not defined")
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return smerrors.New(op).Err(err).Msg("binding flag for " + key)
	}
	return nil
}

// Load reads path, or ./lograin.yaml when path is empty and that file
// exists, then decodes and validates the result.
func (l *Loader) Load(path string) (*types.AppConfig, error) {
	const op smerrors.Op = "config.Loader.Load"

	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.AddConfigPath(".")
		l.v.SetConfigName(DefaultName)
		l.v.SetConfigType("yaml")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, smerrors.New(op).Err(err).Msg("reading config file")
		}
	}

	cfg := types.DefaultAppConfig()
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, smerrors.New(op).Err(err).Msg("decoding config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFileUsed is the file Load read, or "" when running on defaults.
func (l *Loader) ConfigFileUsed() string { return l.v.ConfigFileUsed() }

// Marshal renders cfg as YAML.
func Marshal(cfg *types.AppConfig) ([]byte, error) {
	const op smerrors.Op = "config.Marshal"
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, smerrors.New(op).Err(err).Msg("encoding config")
	}
	return out, nil
}
