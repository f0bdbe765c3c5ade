package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sms-cost/core/country"
	"sms-cost/core/output"
	"sms-cost/internal/config"
	"sms-cost/internal/errors"
)

var pricesMissing bool

// pricesCmd shows the loaded price table
var pricesCmd = &cobra.Command{
	Use:   "prices [ISO2...]",
	Short: "Show the per-segment price table",
	Long: `Load the configured price lists and print them, optionally limited to
some countries.

Examples:
  sms-cost prices
  sms-cost prices DE FR GB
  sms-cost prices --price-source url --format json
  sms-cost prices --missing`,
	RunE: runPrices,
}

func init() {
	pricesCmd.Flags().BoolVar(&pricesMissing, "missing", false, "list vendor countries the table does not price")
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	table, err := loadTable(cmd.Context(), cfg.Pricing)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if pricesMissing {
		missing := table.Missing(country.VendorCountries())
		if len(missing) == 0 {
			_, err = fmt.Fprintln(w, "every vendor country is priced")
			return err
		}
		_, err = fmt.Fprintln(w, strings.Join(missing, " "))
		return err
	}

	if len(args) > 0 {
		if missing := table.Missing(args); len(missing) > 0 {
			return errors.NotFound("price for country", strings.Join(missing, ", "))
		}
		table = table.Select(args...)
	}

	format, err := output.ParseFormat(cfg.Output.DefaultFormat)
	if err != nil {
		return err
	}
	formatter, err := output.New(format, cfg.Output.ShowDetails)
	if err != nil {
		return err
	}
	return formatter.RenderPrices(w, table)
}
