package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var source, snapshot string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a pdftotext extract into the snapshot CSV",
		Long: "Convert the pdftotext extract (pdftotext -layout -nopgbrk -enc UTF-8) into\n" +
			"the canonical snapshot CSV. An existing snapshot is never overwritten.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				source = ctx.cfg.Source
			}
			if snapshot == "" {
				snapshot = ctx.cfg.Snapshot
			}
			written, err := ctx.svc.Convert(cmd.Context(), source, snapshot)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if written {
				fmt.Fprintf(out, "Wrote %s\n", snapshot)
			} else {
				fmt.Fprintf(out, "%s already exists. Skipping creating.\n", snapshot)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Extracted ranking text (default from config)")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "Snapshot CSV to create (default from config)")
	return cmd
}
