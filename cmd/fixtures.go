package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/esdump/internal/domain"
	m "github.com/mouse-blink/esdump/internal/model"
)

// fixturesCmd represents the fixtures command.
var fixturesCmd = newFixturesCmd()

func newFixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Slice the statement corpus into test fixtures",
		Long: `Read the configured statement corpus, slice it into statement-sized
snippets with a best-effort line heuristic, and write one named test stub
per snippet to the configured output file. Corpus and output locations come
from configuration (fixtures.corpus, fixtures.output), not from arguments.`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Fixtures(cmd.Context(), domain.FixturesArgs{
				Corpus:  m.Path(viper.GetString(fixturesCorpusKey)),
				Output:  m.Path(viper.GetString(fixturesOutputKey)),
				Prefix:  viper.GetString(fixturesPrefixKey),
				Package: viper.GetString(fixturesPackageKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}
