// Package cmd provides the root command and CLI setup for esdump.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/esdump/internal/adapter"
	"github.com/mouse-blink/esdump/internal/controller"
	"github.com/mouse-blink/esdump/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var parserAdapter adapter.ESParserAdapter
var ui controller.UI
var workflow domain.Workflow

// verboseFlag enables debug logging when set.
var verboseFlag bool

// logFileFlag overrides the rotating log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	parserAdapter = adapter.NewGoFastAdapter()
	workflow = domain.NewWorkflow(fsAdapter, parserAdapter, ui, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
}

const rootLongDescription = `Esdump turns ECMAScript source files into canonical, deterministically
serialized syntax trees, and slices line-oriented statement corpora into
named test fixtures for exercising syntax-tree consumers.

Files whose name ends in "module.js" are parsed with module grammar;
every other file is parsed as a plain script.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "esdump",
		Short: "ECMAScript syntax tree dumper",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "rotating log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute runs the root command. Errors have already been printed to stderr
// by cobra; only the exit status is decided here.
func Execute() {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
