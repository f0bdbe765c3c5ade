// Package message counts GSM segments and models a sendable SMS.
package message

import (
	"fmt"
	"unicode/utf8"
)

// Encoding is the character encoding a message body is sent with
type Encoding int

const (
	SevenBit Encoding = iota // GSM 03.38 default alphabet
	UCS2                     // 16-bit units
)

// String returns the encoding name
func (e Encoding) String() string {
	switch e {
	case SevenBit:
		return "GSM-7"
	case UCS2:
		return "UCS-2"
	default:
		return "unknown"
	}
}

// MarshalText encodes the encoding by name
func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText is the inverse of MarshalText
func (e *Encoding) UnmarshalText(text []byte) error {
	switch string(text) {
	case "GSM-7":
		*e = SevenBit
	case "UCS-2":
		*e = UCS2
	default:
		return fmt.Errorf("unknown encoding %q", text)
	}
	return nil
}

// Capacity returns the per-segment unit budget for a single-part message and
// for each part of a concatenated one.
func (e Encoding) Capacity() (single, multipart int) {
	if e == UCS2 {
		return 70, 67
	}
	return 160, 153
}

// Segmentation is the result of counting a body
type Segmentation struct {
	Encoding Encoding `json:"encoding"`
	Units    int      `json:"units"`
	Segments int      `json:"segments"`
}

// Counter counts segments. The zero value is not usable; use NewCounter.
type Counter struct {
	astralUnits int
}

// Option configures a Counter
type Option func(*Counter)

// WithAstralUnits sets how many UCS2 units a rune above U+FFFF consumes.
// Values below 1 are ignored.
func WithAstralUnits(n int) Option {
	return func(c *Counter) {
		if n >= 1 {
			c.astralUnits = n
		}
	}
}

// NewCounter creates a counter; astral runes count as a surrogate pair by default
func NewCounter(opts ...Option) *Counter {
	c := &Counter{astralUnits: 2}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCounter = NewCounter()

// Count segments body with the default counter
func Count(body string) Segmentation {
	return defaultCounter.Count(body)
}

// Classify returns SevenBit when every rune of body is in the GSM alphabet
func Classify(body string) Encoding {
	for _, r := range body {
		if !IsGSM(r) {
			return UCS2
		}
	}
	return SevenBit
}

// Count segments body. An empty body yields zero segments.
func (c *Counter) Count(body string) Segmentation {
	if body == "" {
		return Segmentation{Encoding: SevenBit}
	}

	enc := Classify(body)
	units := 0
	for _, r := range body {
		units += c.runeUnits(enc, r)
	}

	seg := Segmentation{Encoding: enc, Units: units, Segments: 1}
	single, multi := enc.Capacity()
	if units > single {
		seg.Segments = (units + multi - 1) / multi
	}
	return seg
}

func (c *Counter) runeUnits(enc Encoding, r rune) int {
	if enc == SevenBit {
		if IsExtension(r) {
			return 2
		}
		return 1
	}
	if r > 0xFFFF && utf8.ValidRune(r) {
		return c.astralUnits
	}
	return 1
}
