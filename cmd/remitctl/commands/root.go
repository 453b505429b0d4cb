package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ayo6706/remittance-engine/internal/app"
	"github.com/ayo6706/remittance-engine/internal/registry"
	"github.com/ayo6706/remittance-engine/internal/service"
)

var (
	corridorsFile string
	noColor       bool

	reg    *registry.Registry
	quotes *service.QuoteService
	rates  *service.RegistryRateService
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "remitctl",
		Short:         "Inspect corridors, compute quotes and check validation rules",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			loaded, err := app.LoadRegistry(corridorsFile)
			if err != nil {
				return err
			}
			reg = loaded
			rates = service.NewRegistryRateService(reg)
			quotes = service.NewQuoteService(reg, rates)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&corridorsFile, "corridors", "", "corridor seed file (YAML or JSON); built-in corridors when empty")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	root.AddCommand(corridorsCmd(), ratesCmd(), quoteCmd(), validateCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
