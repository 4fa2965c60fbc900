package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/esdump/internal/domain"
	m "github.com/mouse-blink/esdump/internal/model"
)

var checkParallelFlag int

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Parse many files and report per-file outcomes",
		Long: `Parse every given .js file (directories are walked recursively) under its
resolved grammar mode and print a per-file summary table. Files are
independent, so they are checked concurrently.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := make([]m.Path, 0, len(args))
			for _, arg := range args {
				paths = append(paths, m.Path(arg))
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Paths:    paths,
				Parallel: viper.GetInt(checkParallelKey),
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&checkParallelFlag, parallelFlagName, "p", viper.GetInt(checkParallelKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), checkParallelKey)
}
