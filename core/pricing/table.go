// Package pricing holds immutable per-country SMS price tables and the
// engine that prices messages against them.
package pricing

import (
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"sms-cost/core/country"
	"sms-cost/internal/errors"
)

// ErrDuplicateCountry is returned when rows price the same country twice
// and last-wins was not requested.
var ErrDuplicateCountry = stderrors.New("duplicate country in price table")

// ErrInvalidPrice is returned for rows with a bad country code or price
var ErrInvalidPrice = stderrors.New("invalid price row")

// Source indicates where a table's rows came from
type Source int

const (
	SourceManual  Source = iota // Built in code
	SourceOffline               // Bundled snapshot
	SourceFile                  // Local file
	SourceRemote                // Fetched over HTTP
	SourceMerged                // Several sources combined
)

// String returns the source name
func (s Source) String() string {
	switch s {
	case SourceManual:
		return "manual"
	case SourceOffline:
		return "offline"
	case SourceFile:
		return "file"
	case SourceRemote:
		return "remote"
	case SourceMerged:
		return "merged"
	default:
		return "unknown"
	}
}

// Row is a raw, unvalidated price row. Only Country and Gross are required.
type Row struct {
	Country  string `json:"country"`
	Gross    string `json:"gross"`
	Net      string `json:"net,omitempty"`
	VAT      string `json:"vat,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Entry is the validated price for one country
type Entry struct {
	Country  string              `json:"country"`
	Gross    decimal.Decimal     `json:"gross"`
	Net      decimal.NullDecimal `json:"net"`
	VAT      decimal.NullDecimal `json:"vat"`
	Currency Currency            `json:"currency"`
}

// Table is IMMUTABLE after construction
type Table struct {
	entries   map[string]Entry
	countries []string
	id        string
	source    Source
}

type tableOptions struct {
	lastWins bool
	source   Source
}

// TableOption configures NewTable
type TableOption func(*tableOptions)

// WithLastWins lets a later row for a country replace an earlier one
func WithLastWins() TableOption {
	return func(o *tableOptions) { o.lastWins = true }
}

// WithSource tags the table with its origin
func WithSource(s Source) TableOption {
	return func(o *tableOptions) { o.source = s }
}

// NewTable validates rows and builds a table. Duplicate countries are
// rejected unless WithLastWins is given.
func NewTable(rows []Row, opts ...TableOption) (*Table, error) {
	var o tableOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table{
		entries: make(map[string]Entry, len(rows)),
		source:  o.source,
	}

	for i, row := range rows {
		e, err := parseRow(row)
		if err != nil {
			return nil, withRow(err, i)
		}
		if _, dup := t.entries[e.Country]; dup && !o.lastWins {
			return nil, errors.Pricing("price table rejected", ErrDuplicateCountry).
				WithContext("country", e.Country).
				WithContext("row", i)
		}
		t.entries[e.Country] = e
	}

	t.countries = make([]string, 0, len(t.entries))
	for c := range t.entries {
		t.countries = append(t.countries, c)
	}
	sort.Strings(t.countries)
	t.id = t.contentHash()

	return t, nil
}

// MustNewTable is like NewTable but panics on bad rows
func MustNewTable(rows []Row, opts ...TableOption) *Table {
	t, err := NewTable(rows, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func parseRow(row Row) (Entry, error) {
	iso := strings.ToUpper(strings.TrimSpace(row.Country))
	if !country.ValidISO2(iso) {
		return Entry{}, errors.Pricing("price row rejected", ErrInvalidPrice).
			WithContext("country", row.Country)
	}

	gross, err := parseNonNegative(row.Gross)
	if err != nil {
		return Entry{}, errors.Pricing("price row rejected", ErrInvalidPrice).
			WithContext("country", iso).
			WithContext("gross", row.Gross)
	}

	e := Entry{Country: iso, Gross: gross, Currency: CurrencyEUR}

	if strings.TrimSpace(row.Net) != "" {
		net, err := parseNonNegative(row.Net)
		if err != nil {
			return Entry{}, errors.Pricing("price row rejected", ErrInvalidPrice).
				WithContext("country", iso).
				WithContext("net", row.Net)
		}
		e.Net = decimal.NewNullDecimal(net)
	}
	if strings.TrimSpace(row.VAT) != "" {
		vat, err := parseNonNegative(row.VAT)
		if err != nil {
			return Entry{}, errors.Pricing("price row rejected", ErrInvalidPrice).
				WithContext("country", iso).
				WithContext("vat", row.VAT)
		}
		e.VAT = decimal.NewNullDecimal(vat)
	}
	if strings.TrimSpace(row.Currency) != "" {
		cur, err := ParseCurrency(row.Currency)
		if err != nil {
			return Entry{}, err
		}
		e.Currency = cur
	}

	return e, nil
}

func parseNonNegative(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return d, nil
}

func withRow(err error, i int) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.WithContext("row", i)
	}
	return err
}

// contentHash is a SHA-256 over the sorted entries
func (t *Table) contentHash() string {
	h := sha256.New()
	for _, c := range t.countries {
		e := t.entries[c]
		h.Write([]byte(e.Country))
		h.Write([]byte{'|'})
		h.Write([]byte(e.Gross.String()))
		h.Write([]byte{'|'})
		if e.Net.Valid {
			h.Write([]byte(e.Net.Decimal.String()))
		}
		h.Write([]byte{'|'})
		if e.VAT.Valid {
			h.Write([]byte(e.VAT.Decimal.String()))
		}
		h.Write([]byte{'|'})
		h.Write([]byte(e.Currency))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Lookup returns the entry for a country. A miss is not an error.
func (t *Table) Lookup(iso2 string) (Entry, bool) {
	e, ok := t.entries[strings.ToUpper(iso2)]
	return e, ok
}

// Len returns the number of priced countries
func (t *Table) Len() int {
	return len(t.entries)
}

// Countries returns the priced countries, sorted
func (t *Table) Countries() []string {
	out := make([]string, len(t.countries))
	copy(out, t.countries)
	return out
}

// Entries returns all entries sorted by country
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.countries))
	for _, c := range t.countries {
		out = append(out, t.entries[c])
	}
	return out
}

// ID is a content hash; equal prices give equal IDs regardless of row order
func (t *Table) ID() string {
	return t.id
}

// Source returns where the rows came from
func (t *Table) Source() Source {
	return t.source
}

// Missing returns the countries in want that the table has no price for
func (t *Table) Missing(want []string) []string {
	var out []string
	seen := make(map[string]bool, len(want))
	for _, c := range want {
		c = strings.ToUpper(c)
		if seen[c] {
			continue
		}
		seen[c] = true
		if _, ok := t.entries[c]; !ok {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// Select returns a table with only the named countries that t prices.
// The result keeps t's source and gets its own content hash.
func (t *Table) Select(countries ...string) *Table {
	out := &Table{entries: make(map[string]Entry, len(countries)), source: t.source}
	for _, c := range countries {
		if e, ok := t.Lookup(c); ok {
			out.entries[e.Country] = e
		}
	}

	out.countries = make([]string, 0, len(out.entries))
	for c := range out.entries {
		out.countries = append(out.countries, c)
	}
	sort.Strings(out.countries)
	out.id = out.contentHash()
	return out
}
