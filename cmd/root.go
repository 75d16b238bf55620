package main

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
)

// run executes the CLI with args. Metrics are exported after the command
// whether it succeeded or not.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cc := &commandContext{}
	rootCmd := newRootCommand(cc)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, cc.teardown(ctx))
}

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fiprank",
		Short:         "Normalize ranking PDF extracts and track rank changes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&ctx.metricsFileFlag, "metrics-file", "", "Write Prometheus metrics to this textfile on exit")

	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newPlayersCommand(ctx))
	rootCmd.AddCommand(newCountriesCommand(ctx))

	return rootCmd
}
