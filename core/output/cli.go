package output

import (
	"fmt"
	"io"

	"sms-cost/core/country"
	"sms-cost/core/pricing"
)

const (
	rule   = "─────────────────────────────────────────────────────────────────────────"
	places = 4
)

// CLIFormatter draws box tables
type CLIFormatter struct {
	// Details adds one row per message
	Details bool
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the estimate summary
func (f *CLIFormatter) Render(w io.Writer, result *EstimationResult) error {
	est := result.Estimate
	p := &printer{w: w}

	p.line("┌" + rule + "┐")
	p.line("│                            SMS COST ESTIMATE                            │")
	p.line("├" + rule + "┤")

	if f.Details {
		for _, l := range est.Lines {
			where := l.Country
			if where == "" {
				where = "??"
			}
			p.row(
				fmt.Sprintf("%s (%s) %s x%d", truncate(l.Recipient, 20), where, l.Encoding, l.Segments),
				money(l.Gross, est.Currency),
			)
			if l.Country != "" && !country.Routable(l.Country) {
				p.row("  └─ not routable by the vendor", "")
			}
		}
		p.line("├" + rule + "┤")
	}

	p.row("MESSAGES", fmt.Sprintf("%d", len(est.Lines)))
	p.row("SEGMENTS", fmt.Sprintf("%d", est.Segments))
	if est.Unpriced > 0 {
		label := "UNPRICED (excluded from total)"
		if est.Strict {
			label = "UNPRICED (total unknown)"
		}
		p.row(label, fmt.Sprintf("%d", est.Unpriced))
	}
	p.row("TOTAL NET", money(est.TotalNet, est.Currency))
	p.row("TOTAL GROSS", money(est.Total, est.Currency))
	p.line("└" + rule + "┘")

	p.printf("\nRun %s, prices %s (%s), completed in %s\n",
		result.Metadata.RunID,
		shortID(result.Metadata.TableID),
		result.Metadata.TableSource,
		result.Metadata.Duration,
	)
	return p.err
}

// RenderPrices writes one row per country
func (f *CLIFormatter) RenderPrices(w io.Writer, table *pricing.Table) error {
	p := &printer{w: w}

	p.printf("%-8s %12s %12s %8s %s\n", "COUNTRY", "GROSS", "NET", "VAT", "CURRENCY")
	for _, e := range table.Entries() {
		net, vat := "-", "-"
		if e.Net.Valid {
			net = e.Net.Decimal.StringFixed(places)
		}
		if e.VAT.Valid {
			vat = e.VAT.Decimal.String()
		}
		p.printf("%-8s %12s %12s %8s %s\n", e.Country, e.Gross.StringFixed(places), net, vat, e.Currency)
	}
	p.printf("\n%d countries, table %s (%s)\n", table.Len(), shortID(table.ID()), table.Source())
	return p.err
}

// printer keeps the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}

func (p *printer) row(label, value string) {
	p.printf("│ %-50s %20s │\n", truncate(label, 50), value)
}

func money(a pricing.Amount, cur pricing.Currency) string {
	if !a.IsPriced() {
		return "unpriced"
	}
	return a.StringFixed(places) + " " + cur.String()
}

func truncate(s string, maxLen int) string {
	if len([]rune(s)) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	if id == "" {
		return "-"
	}
	return id
}
