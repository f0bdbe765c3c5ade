package pricing

import (
	stderrors "errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"

	"sms-cost/internal/errors"
)

// ErrUnsupportedCurrency is returned for real currencies other than the euro
var ErrUnsupportedCurrency = stderrors.New("unsupported currency")

// ErrUnknownCurrency is returned when a label names no currency at all
var ErrUnknownCurrency = stderrors.New("unknown currency")

// Currency is an ISO 4217 code
type Currency string

// CurrencyEUR is the only currency the vendor bills in
const CurrencyEUR Currency = "EUR"

// String returns the code
func (c Currency) String() string {
	return string(c)
}

// ParseCurrency accepts the spellings of the euro found in vendor price lists
// ("EUR", "Euro", "€", "₠", any case). Other ISO codes and currency symbols
// fail with ErrUnsupportedCurrency, anything else with ErrUnknownCurrency.
func ParseCurrency(label string) (Currency, error) {
	s := strings.TrimSpace(label)

	switch strings.ToUpper(s) {
	case "EUR", "EURO", "€", "₠":
		return CurrencyEUR, nil
	}

	if unit, err := currency.ParseISO(s); err == nil {
		return "", errors.Pricing("currency rejected", ErrUnsupportedCurrency).
			WithContext("currency", unit.String())
	}
	if isCurrencySymbol(s) {
		return "", errors.Pricing("currency rejected", ErrUnsupportedCurrency).
			WithContext("currency", s)
	}
	return "", errors.Parsing("currency rejected", ErrUnknownCurrency).
		WithContext("currency", label)
}

func isCurrencySymbol(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && size == len(s) && unicode.Is(unicode.Sc, r)
}
