// Package cli wires lograin's cobra commands to the config loader, the
// logging service and the emitter and rain components.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Station-Manager/lograin/internal/config"
	"github.com/Station-Manager/lograin/internal/types"
)

// Execute runs the lograin command tree against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lograin",
		Short: "Replay a log file through a logger and watch lines rain down the terminal",
		Long: `lograin replays a text file line by line as debug log records and renders
any line stream as falling characters.

  lograin emit 2>&1 | lograin rain`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./lograin.yaml)")

	cmd.AddCommand(
		newEmitCmd(opts),
		newRainCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

type flagBinding struct {
	key  string
	flag string
}

// loadConfig binds the given flags of cmd and loads the configuration.
func loadConfig(cmd *cobra.Command, opts *rootOptions, bindings ...flagBinding) (*types.AppConfig, error) {
	loader := config.NewLoader()
	for _, b := range bindings {
		if err := loader.BindFlag(b.key, cmd.Flags().Lookup(b.flag)); err != nil {
			return nil, err
		}
	}
	return loader.Load(opts.cfgFile)
}
