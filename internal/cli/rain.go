package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/lograin/internal/logging"
	"github.com/Station-Manager/lograin/internal/rain"
	"github.com/Station-Manager/lograin/internal/types"
)

func newRainCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rain",
		Short: "Render lines from stdin as falling characters",
		Long: `Reads lines from stdin and drops each one down a random column of the
terminal. Exits when stdin ends or on q, esc or ctrl+c.

Colors: ` + strings.Join(rain.ColorNames(), ", "),
		Example: `  lograin emit 2>&1 | lograin rain
  tail -f /var/log/syslog | lograin rain --direction spiral-right --color green`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, root,
				flagBinding{"rain.color", "color"},
				flagBinding{"rain.highlight_color", "highlight-color"},
				flagBinding{"rain.highlight_threshold", "highlight-threshold"},
				flagBinding{"rain.frequency", "frequency"},
				flagBinding{"rain.direction", "direction"},
				flagBinding{"rain.spaces", "spaces"},
			)
			if err != nil {
				return err
			}
			return runRain(cmd, cfg)
		},
	}

	d := types.DefaultRainConfig()
	cmd.Flags().String("color", d.Color, "text color")
	cmd.Flags().String("highlight-color", d.HighlightColor, "color of the leading characters of each line")
	cmd.Flags().Int("highlight-threshold", d.HighlightThreshold, "number of leading characters to highlight")
	cmd.Flags().Duration("frequency", d.Frequency, "frame period")
	cmd.Flags().String("direction", d.Direction, "top, bottom or spiral-right")
	cmd.Flags().Int("spaces", d.Spaces, "blank cells between consecutive lines in a column")
	return cmd
}

func runRain(cmd *cobra.Command, cfg *types.AppConfig) error {
	const op smerrors.Op = "cli.runRain"

	wd, err := os.Getwd()
	if err != nil {
		return smerrors.New(op).Err(err).Msg("resolving working directory")
	}

	// The terminal belongs to the viewer.
	cfg.LoggingConfig.ConsoleLogging = false
	svc := logging.NewService(&cfg.LoggingConfig, wd)
	if err = svc.Initialize(); err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	logger := svc.With().Str("component", types.RainServiceName).Logger()
	return rain.NewViewer(cfg.RainConfig, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run(cmd.Context())
}
