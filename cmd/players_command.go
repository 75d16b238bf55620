package main

import (
	"fmt"
	"strings"

	service "github.com/okian/fiprank/internal/app"
	"github.com/okian/fiprank/internal/domain/countries"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newPlayersCommand(ctx *commandContext) *cobra.Command {
	var (
		top     int
		country string
		priors  []string
	)

	cmd := &cobra.Command{
		Use:   "players",
		Short: "Print players of the current snapshot",
		Long: "Print players of the current snapshot, creating it from the source text\n" +
			"when absent. Each --history snapshot is merged in the order given, so\n" +
			"pass them oldest first; the delta columns compare against the last one.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 0 {
				return fmt.Errorf("invalid --top %d: must not be negative", top)
			}
			records, err := ctx.loadWithHistory(cmd.Context(), priors)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("country") {
				code := cases.Upper(language.Und).String(strings.TrimSpace(country))
				records = countries.Filter(records, code)
			}
			if cmd.Flags().Changed("top") {
				if top == 0 {
					top = ctx.cfg.TopPlayers
				}
				records = service.TopRecords(records, top)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRecords(cmd.OutOrStdout(), records))
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Only print the first N players (0 uses top_players)")
	cmd.Flags().StringVar(&country, "country", "", "Only print players of this country code")
	cmd.Flags().StringArrayVar(&priors, "history", nil, "Prior snapshot CSV to merge, oldest first (repeatable)")
	return cmd
}
