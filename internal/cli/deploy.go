package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsync/pkg/executor"
	"github.com/arthur-debert/dotsync/pkg/logging"
)

func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy dotfiles to the system",
		Long: `Deploy reconciles the configured symlinks and templates against the
deployed-state manifest, removes artifacts that are no longer configured,
and creates the ones that are missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.deploy")
			logger.Info().
				Bool("dryRun", dryRun).
				Bool("force", force).
				Msg("Starting deploy")

			env, err := loadEnvironment()
			if err != nil {
				return err
			}

			exec := executor.New(env.paths, env.renderer, dryRun).EnableForce(force)
			if err := exec.Apply(env.fileState(), env.manifest); err != nil {
				return err
			}

			if dryRun {
				logger.Info().Msg("Dry run complete, nothing was changed")
				return nil
			}
			return env.manifest.Save(env.paths.ManifestPath())
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files and re-render deployed templates")
	return cmd
}

func newUndeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undeploy",
		Short: "Remove everything dotsync has deployed",
		Long: `Undeploy treats the desired state as empty: every symlink and template
recorded in the manifest is removed from disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.undeploy")
			logger.Info().Bool("dryRun", dryRun).Msg("Starting undeploy")

			env, err := loadBareEnvironment()
			if err != nil {
				return err
			}

			exec := executor.New(env.paths, env.renderer, dryRun)
			if err := exec.Apply(env.undeployState(), env.manifest); err != nil {
				return err
			}

			if dryRun {
				logger.Info().Msg("Dry run complete, nothing was changed")
				return nil
			}
			return env.manifest.Save(env.paths.ManifestPath())
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	return cmd
}
