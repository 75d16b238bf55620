package main

import (
	"fmt"
	"strconv"

	"github.com/okian/fiprank/internal/domain/countries"
	"github.com/spf13/cobra"
)

func newCountriesCommand(ctx *commandContext) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List the countries of the current snapshot",
		Long: "List all distinct countries in code order, or with --top the N countries\n" +
			"with the most players. Ties are ordered by country code.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 0 {
				return fmt.Errorf("invalid --top %d: must not be negative", top)
			}
			records, err := ctx.svc.Bootstrap(cmd.Context(), ctx.cfg.Source, ctx.cfg.Snapshot)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !cmd.Flags().Changed("top") {
				all := ctx.svc.DistinctCountries(records)
				rows := make([][]string, len(all))
				for i, c := range all {
					rows[i] = []string{displayCountry(c)}
				}
				fmt.Fprintln(out, renderTable(out, []string{"Country"}, rows, nil))
				return nil
			}

			if top == 0 {
				top = ctx.cfg.TopCountries
			}
			counts := countries.TopCounts(records, top)
			rows := make([][]string, len(counts))
			for i, c := range counts {
				rows[i] = []string{strconv.Itoa(i + 1), displayCountry(c.Country), strconv.Itoa(c.Records)}
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"#", "Country", "Players"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "List the N countries with the most players (0 uses top_countries)")
	return cmd
}
