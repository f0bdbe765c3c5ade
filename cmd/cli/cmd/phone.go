package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sms-cost/core/country"
	"sms-cost/core/output"
	"sms-cost/core/phone"
	"sms-cost/core/pricing"
	"sms-cost/internal/config"
)

var (
	phoneRegion  string
	phoneCountry string
)

// phoneCmd inspects phone numbers
var phoneCmd = &cobra.Command{
	Use:   "phone <number>...",
	Short: "Resolve the country and per-segment price of phone numbers",
	Long: `Validate phone numbers, resolve their destination country and show the
gross price of one segment.

Numbers in national format need --region.

Examples:
  sms-cost phone +491755555555
  sms-cost phone --region de "0175 5555555"
  sms-cost phone --country GB +15555550100`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPhone,
}

func init() {
	phoneCmd.Flags().StringVar(&phoneRegion, "region", "", "default region for numbers without a country code")
	phoneCmd.Flags().StringVar(&phoneCountry, "country", "", "bill every number to this ISO2 country")
	rootCmd.AddCommand(phoneCmd)
}

// phoneInfo is one row of phone output
type phoneInfo struct {
	Number     string         `json:"number"`
	Country    string         `json:"country,omitempty"`
	Overridden bool           `json:"overridden,omitempty"`
	Routable   bool           `json:"routable"`
	PerSegment pricing.Amount `json:"per_segment"`
}

func runPhone(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	format, err := output.ParseFormat(cfg.Output.DefaultFormat)
	if err != nil {
		return err
	}
	table, err := loadTable(cmd.Context(), cfg.Pricing)
	if err != nil {
		return err
	}
	engine := pricing.NewEngine(table)

	infos := make([]phoneInfo, 0, len(args))
	for _, arg := range args {
		n, err := phone.ParseFormatted(arg, phoneRegion, phoneCountry)
		if err != nil {
			return err
		}
		iso, ok := n.Country()
		infos = append(infos, phoneInfo{
			Number:     n.String(),
			Country:    iso,
			Overridden: n.Overridden(),
			Routable:   ok && country.Routable(iso),
			PerSegment: engine.GrossPerSegment(iso),
		})
	}

	w := cmd.OutOrStdout()
	if format == output.FormatJSON {
		return writeJSON(w, infos)
	}

	for _, info := range infos {
		where := info.Country
		if where == "" {
			where = "??"
		}
		routable := "routable"
		if !info.Routable {
			routable = "not routable"
		}
		price := "unpriced"
		if info.PerSegment.IsPriced() {
			price = info.PerSegment.String() + " " + pricing.CurrencyEUR.String() + "/segment"
		}
		if _, err := fmt.Fprintf(w, "%-16s %-3s %-13s %s\n", info.Number, where, routable, price); err != nil {
			return err
		}
	}
	return nil
}
