package cli

import (
	"os"

	"github.com/spf13/cobra"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/lograin/internal/emitter"
	"github.com/Station-Manager/lograin/internal/logging"
	"github.com/Station-Manager/lograin/internal/types"
)

func newEmitCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Replay a file line by line as debug log records",
		Long: `Reads the file once, in order, and writes every line as a debug record
through the configured logger, pausing between lines and once more at the end.`,
		Example: `  # Replay ./log.log to stderr with the default pacing
  lograin emit

  # Replay another file quickly, as JSON
  LOGRAIN_LOGGING_CONSOLE_FORMAT=json lograin emit --file app.log --line-delay 50ms --final-delay 0s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, root,
				flagBinding{"emitter.path", "file"},
				flagBinding{"emitter.line_delay", "line-delay"},
				flagBinding{"emitter.final_delay", "final-delay"},
				flagBinding{"logging.level", "level"},
			)
			if err != nil {
				return err
			}
			return runEmit(cmd, cfg)
		},
	}

	d := types.DefaultAppConfig()
	cmd.Flags().String("file", d.EmitterConfig.Path, "file to replay")
	cmd.Flags().Duration("line-delay", d.EmitterConfig.LineDelay, "pause after each line")
	cmd.Flags().Duration("final-delay", d.EmitterConfig.FinalDelay, "pause after the last line")
	cmd.Flags().String("level", d.LoggingConfig.Level, "minimum log level")
	return cmd
}

func runEmit(cmd *cobra.Command, cfg *types.AppConfig) error {
	const op smerrors.Op = "cli.runEmit"

	wd, err := os.Getwd()
	if err != nil {
		return smerrors.New(op).Err(err).Msg("resolving working directory")
	}

	svc := logging.NewService(&cfg.LoggingConfig, wd)
	svc.Console = cmd.ErrOrStderr()
	if err = svc.Initialize(); err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	_, err = emitter.New(svc, emitter.WithConfig(cfg.EmitterConfig)).Run()
	return err
}
