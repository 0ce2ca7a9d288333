// Package cli wires up the dotsync command tree.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsync/pkg/logging"
)

var (
	verbosity  int
	configFile string
	rootFlag   string
	dryRun     bool
	force      bool
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dotsync",
		Short: "Deploy dotfiles as symlinks and rendered templates",
		Long: `dotsync reconciles the dotfile deployment you describe in dotsync.toml
against what is currently deployed, then deletes what is no longer wanted,
creates what is missing, and leaves the rest in place.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is <root>/dotsync.toml)")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Dotfiles root (default is $DOTSYNC_ROOT or ~/dotfiles)")

	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newUndeployCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
