package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	dryRun  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gwshift",
		Short:         "gwshift migrates API definitions from a source gateway export to a target gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Preview the import without calling the target gateway")

	cmd.AddCommand(newMigrateCmd(flags))
	cmd.AddCommand(newTransformCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
