package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsync/pkg/style"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what deploy would change",
		Long: `Status reconciles desired against deployed state and prints the three
resulting partitions without touching the filesystem.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}

			out := style.RenderStatus(env.fileState(), style.UseColor(os.Stdout))
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
