package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/ayo6706/remittance-engine/internal/format"
)

func quoteCmd() *cobra.Command {
	var (
		source string
		policy string
	)
	cmd := &cobra.Command{
		Use:   "quote [amount] [target]",
		Short: "Compute the fee, rate and converted amount for a transfer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				source = reg.Base().CurrencyCode
			}
			target := args[1]
			if rec, err := reg.Lookup(target); err == nil {
				target = rec.CurrencyCode
			}

			q, err := quotes.ComputeText(args[0], source, target, policy)
			out := cmd.OutOrStdout()
			if err != nil {
				failColor.Fprintf(out, "✗ %s\n", domain.Kind(err))
				return err
			}

			fmt.Fprintf(out, "Send:          %s\n", format.Amount(reg, q.SendAmount, q.SourceCurrency))
			fmt.Fprintf(out, "Rate:          1 %s = %s %s\n", q.SourceCurrency, q.ExchangeRate.String(), q.TargetCurrency)
			fmt.Fprintf(out, "Fee (%s%%):    %s\n", q.FeePercent.String(), format.Amount(reg, q.Fee, q.SourceCurrency))
			fmt.Fprintf(out, "Total payable: %s\n", format.Amount(reg, q.TotalPayable, q.SourceCurrency))
			okColor.Fprintf(out, "Recipient gets %s\n", format.Amount(reg, q.ConvertedAmount, q.TargetCurrency))
			dimColor.Fprintf(out, "Delivery: %s, fee %s\n", q.ProcessingTime, q.FeePolicy)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source currency (default: registry base)")
	cmd.Flags().StringVar(&policy, "fee-policy", domain.FeePolicyDeducted, "deducted or on_top")
	return cmd
}
