package pricelist

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"io"

	"go.uber.org/zap"

	"sms-cost/core/country"
	"sms-cost/core/pricing"
	"sms-cost/internal/errors"
	"sms-cost/internal/logging"
)

// vendorItem is one element of the vendor price list. Prices stay
// json.Number so no precision is lost before decimal parsing.
type vendorItem struct {
	Country    *string      `json:"country"`
	NetPrice   *json.Number `json:"netPrice"`
	GrossPrice *json.Number `json:"grossPrice"`
	VAT        *json.Number `json:"vat"`
	Currency   *string      `json:"currency"`
}

func (v vendorItem) complete() bool {
	return v.NetPrice != nil && v.GrossPrice != nil && v.VAT != nil && v.Currency != nil
}

// ParseVendorJSON reads the vendor price list: a JSON array of objects with
// country name, netPrice, grossPrice, vat and currency. Items that are not
// objects, are incomplete, or name a country with no ISO2 mapping are skipped.
func ParseVendorJSON(r io.Reader) ([]pricing.Row, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Parsing("price list is not a JSON array", err)
	}

	rows := make([]pricing.Row, 0, len(raw))
	for i, msg := range raw {
		var item vendorItem
		if err := json.Unmarshal(msg, &item); err != nil {
			logging.Debug("price item is not an object", zap.Int("index", i))
			continue
		}
		if item.Country == nil {
			logging.Debug("price item has no country", zap.Int("index", i))
			continue
		}
		iso, ok := country.NameToISO2(*item.Country)
		if !ok {
			logging.Warn("no ISO2 mapping for country in price list", zap.String("country", *item.Country))
			continue
		}
		if !item.complete() {
			logging.Debug("incomplete price item", zap.String("country", *item.Country))
			continue
		}

		rows = append(rows, pricing.Row{
			Country:  iso,
			Gross:    item.GrossPrice.String(),
			Net:      item.NetPrice.String(),
			VAT:      item.VAT.String(),
			Currency: *item.Currency,
		})
	}

	if len(rows) != len(raw) {
		logging.Warn("not all price list entries could be loaded",
			zap.Int("entries", len(raw)),
			zap.Int("loaded", len(rows)),
		)
	}
	return rows, nil
}

//go:embed data/vendor-2022-12.json
var offlineJSON []byte

type offline struct{}

// Offline is the vendor price list bundled with the binary (December 2022)
func Offline() Source {
	return offline{}
}

func (offline) Name() string { return "offline-2022-12" }

func (offline) Kind() pricing.Source { return pricing.SourceOffline }

func (offline) Rows(context.Context) ([]pricing.Row, error) {
	return ParseVendorJSON(bytes.NewReader(offlineJSON))
}

// JSONFile is a vendor price list saved to disk
type JSONFile struct {
	Path string
}

// Name returns the file path
func (f JSONFile) Name() string { return f.Path }

// Kind reports a file source
func (f JSONFile) Kind() pricing.Source { return pricing.SourceFile }

// Rows reads and parses the file
func (f JSONFile) Rows(ctx context.Context) ([]pricing.Row, error) {
	data, err := readFile(f.Path)
	if err != nil {
		return nil, err
	}
	rows, err := ParseVendorJSON(bytes.NewReader(data))
	if err != nil {
		return nil, withSource(err, f.Path)
	}
	return rows, nil
}
