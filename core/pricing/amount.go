package pricing

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount is a monetary result that may be unknown.
// The zero value is Unpriced.
type Amount struct {
	value  decimal.Decimal
	priced bool
}

// Priced wraps a known amount
func Priced(d decimal.Decimal) Amount {
	return Amount{value: d, priced: true}
}

// Unpriced is the amount of something no price is known for
func Unpriced() Amount {
	return Amount{}
}

// Zero is a priced zero
func Zero() Amount {
	return Priced(decimal.Zero)
}

// IsPriced reports whether the amount is known
func (a Amount) IsPriced() bool {
	return a.priced
}

// Value returns the decimal and whether it is known
func (a Amount) Value() (decimal.Decimal, bool) {
	return a.value, a.priced
}

// Mul scales a priced amount; Unpriced stays Unpriced
func (a Amount) Mul(n int) Amount {
	if !a.priced {
		return a
	}
	return Priced(a.value.Mul(decimal.NewFromInt(int64(n))))
}

// Add is strict: if either side is Unpriced so is the result
func (a Amount) Add(b Amount) Amount {
	if !a.priced || !b.priced {
		return Unpriced()
	}
	return Priced(a.value.Add(b.value))
}

// Equal compares amounts; two Unpriced amounts are equal
func (a Amount) Equal(b Amount) bool {
	if a.priced != b.priced {
		return false
	}
	return !a.priced || a.value.Equal(b.value)
}

// String renders the decimal, or "n/a" when unpriced
func (a Amount) String() string {
	if !a.priced {
		return "n/a"
	}
	return a.value.String()
}

// StringFixed renders with a fixed number of places
func (a Amount) StringFixed(places int32) string {
	if !a.priced {
		return "n/a"
	}
	return a.value.StringFixed(places)
}

// MarshalJSON encodes Unpriced as null
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.priced {
		return []byte("null"), nil
	}
	return a.value.MarshalJSON()
}

// UnmarshalJSON is the inverse of MarshalJSON
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Unpriced()
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*a = Priced(d)
	return nil
}

// SumLenient adds the priced amounts and skips the rest.
// With nothing priced the result is a priced zero.
func SumLenient(amounts ...Amount) Amount {
	total := decimal.Zero
	for _, a := range amounts {
		if a.priced {
			total = total.Add(a.value)
		}
	}
	return Priced(total)
}

// SumStrict is Unpriced as soon as one amount is. An empty sum is a priced zero.
func SumStrict(amounts ...Amount) Amount {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
		if !total.priced {
			return total
		}
	}
	return total
}
