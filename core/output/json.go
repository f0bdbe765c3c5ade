package output

import (
	"encoding/json"
	"io"

	"sms-cost/core/pricing"
)

// JSONFormatter writes machine-readable output
type JSONFormatter struct {
	Indent string
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the result as one JSON document
func (f *JSONFormatter) Render(w io.Writer, result *EstimationResult) error {
	return f.encode(w, result)
}

type priceList struct {
	ID      string          `json:"id"`
	Source  string          `json:"source"`
	Entries []pricing.Entry `json:"entries"`
}

// RenderPrices writes the table entries with its ID and source
func (f *JSONFormatter) RenderPrices(w io.Writer, table *pricing.Table) error {
	return f.encode(w, priceList{
		ID:      table.ID(),
		Source:  table.Source().String(),
		Entries: table.Entries(),
	})
}

func (f *JSONFormatter) encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	return enc.Encode(v)
}
