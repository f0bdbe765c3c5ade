// Package phone provides the E.164 phone number value object.
package phone

import (
	stderrors "errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"

	"sms-cost/core/country"
	"sms-cost/internal/errors"
	"sms-cost/internal/logging"
)

// MaxDigits is the E.164 upper bound on digits after the '+'
const MaxDigits = 15

// ErrInvalidPhoneNumber is returned when text is not a strict E.164 number
var ErrInvalidPhoneNumber = stderrors.New("invalid phone number")

// Number is an immutable international phone number.
// The zero value is not a valid number; use Parse.
type Number struct {
	raw        string
	country    string
	overridden bool
}

// Parse validates text as '+' followed by 1..15 digits and resolves its
// country with the bundled prefix table.
func Parse(text string) (Number, error) {
	return ParseWith(country.Default(), text)
}

// ParseWith is Parse with an explicit resolver
func ParseWith(r *country.Resolver, text string) (Number, error) {
	if err := validate(text); err != nil {
		return Number{}, err
	}

	n := Number{raw: text}
	if iso, ok := r.Resolve(text); ok {
		n.country = iso
	} else {
		logging.Debug("country unresolved", zap.String("number", text))
	}
	return n, nil
}

// ParseWithCountry validates text and binds it to iso2 instead of resolving.
// iso2 is upper-cased and must be two ASCII letters.
func ParseWithCountry(text, iso2 string) (Number, error) {
	if err := validate(text); err != nil {
		return Number{}, err
	}

	iso := strings.ToUpper(strings.TrimSpace(iso2))
	if !country.ValidISO2(iso) {
		return Number{}, errors.Input("phone number rejected", ErrInvalidPhoneNumber).
			WithContext("country", iso2)
	}
	return Number{raw: text, country: iso, overridden: true}, nil
}

// MustParse is like Parse but panics on invalid input
func MustParse(text string) Number {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

// Normalize turns a human-formatted number ("+49 (175) 555-5555") into E.164.
// defaultRegion is used for numbers without a leading '+', and may be empty.
func Normalize(text, defaultRegion string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.Input("phone number rejected", ErrInvalidPhoneNumber)
	}

	num, err := phonenumbers.Parse(text, strings.ToUpper(defaultRegion))
	if err != nil {
		return "", errors.Input("phone number rejected", ErrInvalidPhoneNumber).
			WithContext("input", text).
			WithContext("reason", err.Error())
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", errors.Input("phone number rejected", ErrInvalidPhoneNumber).
			WithContext("input", text)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// String returns the E.164 form
func (n Number) String() string {
	return n.raw
}

// Country returns the ISO2 code, ok is false when it could not be resolved
func (n Number) Country() (string, bool) {
	return n.country, n.country != ""
}

// Overridden reports whether the country was supplied rather than resolved
func (n Number) Overridden() bool {
	return n.overridden
}

// IsZero reports whether n is the zero value
func (n Number) IsZero() bool {
	return n.raw == ""
}

func validate(text string) error {
	if len(text) < 2 || text[0] != '+' {
		return errors.Input("phone number rejected", ErrInvalidPhoneNumber).
			WithContext("input", text)
	}

	digits := text[1:]
	if len(digits) > MaxDigits {
		return errors.Input("phone number rejected", ErrInvalidPhoneNumber).
			WithContext("input", text).
			WithContext("digits", len(digits))
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return errors.Input("phone number rejected", ErrInvalidPhoneNumber).
				WithContext("input", text)
		}
	}
	return nil
}

// ParseFormatted accepts what a user would type. Numbers in national format
// or with separators go through Normalize with region first; strict E.164
// input is taken as is. A non-empty iso2 binds the result like
// ParseWithCountry.
func ParseFormatted(text, region, iso2 string) (Number, error) {
	text = strings.TrimSpace(text)
	if validate(text) != nil && (region != "" || strings.ContainsAny(text, " ()-./")) {
		normalized, err := Normalize(text, region)
		if err != nil {
			return Number{}, err
		}
		text = normalized
	}
	if iso2 != "" {
		return ParseWithCountry(text, iso2)
	}
	return Parse(text)
}
