package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ayo6706/remittance-engine/internal/format"
)

func corridorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corridors",
		Short: "List the corridor registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "COUNTRY\tCURRENCY\tRATE\tFEE %\tMIN\tMAX\tDELIVERY")
			for _, rec := range reg.All() {
				fmt.Fprintf(tw, "%s %s\t%s (%s)\t%s\t%s\t%s\t%s\t%s\n",
					rec.CountryCode, rec.CountryName,
					rec.CurrencyCode, rec.CurrencySymbol,
					rec.QuotedRate.String(),
					rec.FeePercent.String(),
					format.Number(rec.MinAmount),
					format.Number(rec.MaxAmount),
					rec.ProcessingTime,
				)
			}
			return tw.Flush()
		},
	}
}

func ratesCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Print destination rates from a source currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				source = reg.Base().CurrencyCode
			}
			board, err := rates.Board(source)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			dimColor.Fprintf(out, "1 %s =\n", source)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, row := range board {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", row.CurrencyCode, row.Rate.Round(6).String(), row.CountryName)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source currency (default: registry base)")
	return cmd
}
