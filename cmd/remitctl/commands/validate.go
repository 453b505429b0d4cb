package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayo6706/remittance-engine/internal/validation"
)

var ruleNames = []string{"amount", "bank-account", "email", "name", "password", "phone"}

func validateCmd() *cobra.Command {
	var (
		country  string
		currency string
	)
	cmd := &cobra.Command{
		Use:   "validate [rule] [value]",
		Short: "Check a value against a validation rule (" + strings.Join(ruleNames, ", ") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := args[1]
			var v validation.Verdict
			switch args[0] {
			case "email":
				v = validation.Email(value)
			case "password":
				v = validation.Password(value)
			case "name":
				v = validation.Name(value)
			case "phone":
				v = validation.PhoneForCountry(value, country)
			case "bank-account":
				v = validation.BankAccount(value)
			case "amount":
				v = validation.AmountForCorridor(reg, value, currency)
			default:
				return fmt.Errorf("unknown rule %q (want one of %s)", args[0], strings.Join(ruleNames, ", "))
			}

			out := cmd.OutOrStdout()
			if v.OK {
				okColor.Fprintln(out, "✓ valid")
				return nil
			}
			failColor.Fprintf(out, "✗ %s\n", v.Code())
			fmt.Fprintln(out, v.Err())
			return v.Err()
		},
	}
	cmd.Flags().StringVar(&country, "country", "NP", "country code for phone rules")
	cmd.Flags().StringVar(&currency, "currency", "USD", "target currency or country for amount bounds")
	return cmd
}
