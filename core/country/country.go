// Package country maps international phone numbers to ISO 3166-1 alpha-2 codes.
package country

import (
	stderrors "errors"
	"sort"
	"strings"
	"sync"

	"sms-cost/internal/errors"
)

// ErrDuplicatePrefix is returned when a prefix table binds the same digits twice
var ErrDuplicatePrefix = stderrors.New("duplicate calling-code prefix")

// ErrInvalidPrefix is returned for prefixes with non-digit characters or bad ISO2 codes
var ErrInvalidPrefix = stderrors.New("invalid calling-code prefix")

// Prefix binds a calling-code prefix (digits after '+') to a country
type Prefix struct {
	Digits  string
	Country string
}

// Resolver performs longest-prefix matching over a fixed prefix table.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	byDigits map[string]string
	minLen   int
	maxLen   int
}

// NewResolver builds a resolver from a prefix table.
// Two entries with the same digits are a table error, whatever their countries.
func NewResolver(prefixes []Prefix) (*Resolver, error) {
	r := &Resolver{byDigits: make(map[string]string, len(prefixes))}

	for _, p := range prefixes {
		if p.Digits == "" || !allDigits(p.Digits) {
			return nil, errors.Input("prefix table rejected", ErrInvalidPrefix).
				WithContext("prefix", p.Digits)
		}
		iso := strings.ToUpper(p.Country)
		if !ValidISO2(iso) {
			return nil, errors.Input("prefix table rejected", ErrInvalidPrefix).
				WithContext("prefix", p.Digits).
				WithContext("country", p.Country)
		}
		if prev, ok := r.byDigits[p.Digits]; ok {
			return nil, errors.Input("prefix table rejected", ErrDuplicatePrefix).
				WithContext("prefix", p.Digits).
				WithContext("countries", []string{prev, iso})
		}
		r.byDigits[p.Digits] = iso

		if r.minLen == 0 || len(p.Digits) < r.minLen {
			r.minLen = len(p.Digits)
		}
		if len(p.Digits) > r.maxLen {
			r.maxLen = len(p.Digits)
		}
	}

	return r, nil
}

// MustNewResolver is like NewResolver but panics on a bad table
func MustNewResolver(prefixes []Prefix) *Resolver {
	r, err := NewResolver(prefixes)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	return MustNewResolver(defaultPrefixes)
})

// Default returns the resolver for the bundled prefix table
func Default() *Resolver {
	return defaultResolver()
}

// Resolve returns the ISO2 code bound to the longest matching prefix of number.
// The number may carry a leading '+'. ok is false when nothing matches.
func (r *Resolver) Resolve(number string) (iso2 string, ok bool) {
	digits := strings.TrimPrefix(number, "+")

	for n := r.minLen; n <= r.maxLen && n <= len(digits); n++ {
		if c, found := r.byDigits[digits[:n]]; found {
			iso2, ok = c, true
		}
	}
	return iso2, ok
}

// Len returns the number of prefixes in the table
func (r *Resolver) Len() int {
	return len(r.byDigits)
}

// Prefixes returns the table sorted by digits
func (r *Resolver) Prefixes() []Prefix {
	out := make([]Prefix, 0, len(r.byDigits))
	for d, c := range r.byDigits {
		out = append(out, Prefix{Digits: d, Country: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Digits < out[j].Digits })
	return out
}

// NameToISO2 maps a country name as it appears in vendor price lists to ISO2
func NameToISO2(name string) (string, bool) {
	iso, ok := vendorNames[strings.TrimSpace(name)]
	return iso, ok
}

var unroutableSet = sync.OnceValue(func() map[string]struct{} {
	m := make(map[string]struct{}, len(unroutable))
	for _, c := range unroutable {
		m[c] = struct{}{}
	}
	return m
})

// Routable reports whether the vendor delivers to the country.
// Unknown codes are assumed routable; pricing decides whether they cost anything.
func Routable(iso2 string) bool {
	_, blocked := unroutableSet()[strings.ToUpper(iso2)]
	return !blocked
}

// ValidISO2 reports whether code is two upper-case ASCII letters
func ValidISO2(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// VendorCountries returns the ISO2 codes the vendor price list names, sorted
func VendorCountries() []string {
	out := make([]string, 0, len(vendorNames))
	for _, iso := range vendorNames {
		out = append(out, iso)
	}
	sort.Strings(out)
	return out
}
