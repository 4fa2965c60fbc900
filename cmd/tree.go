package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/esdump/internal/model"
)

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Parse a file and print its syntax tree",
		Long: `Parse one ECMAScript file under its resolved grammar mode and print the
canonical serialization of its syntax tree to standard output. The resolved
input path is echoed to standard error before processing; on failure the
error goes to standard error and nothing is written to standard output.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Tree(cmd.Context(), m.Path(args[0]))
		},
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
