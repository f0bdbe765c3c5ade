package country

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-cost/internal/errors"
)

func TestResolveLongestPrefix(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
		ok     bool
	}{
		{"germany", "+4917612345678", "DE", true},
		{"united kingdom", "+447911123456", "GB", true},
		{"nanp falls back to US", "+12125551234", "US", true},
		{"nanp area code carves out CA", "+12045551234", "CA", true},
		{"nanp area code carves out JM", "+18765551234", "JM", true},
		{"nanp area code carves out DO", "+18295551234", "DO", true},
		{"shared +7 falls back to RU", "+79161234567", "RU", true},
		{"+76 is KZ", "+76123456789", "KZ", true},
		{"+77 is KZ", "+77011234567", "KZ", true},
		{"+5999 is BQ", "+59991234567", "BQ", true},
		{"+5997 is CW", "+59971234567", "CW", true},
		{"bare +599 is unresolved", "+5991234567", "", false},
		{"two codes for SH", "+2475555", "SH", true},
		{"without plus", "4930123456", "DE", true},
		{"no table entry", "+0123456", "", false},
		{"empty", "+", "", false},
		{"short number matches what it can", "+1", "US", true},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.number)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	r := Default()
	first, _ := r.Resolve("+12045551234")
	for i := 0; i < 50; i++ {
		got, _ := r.Resolve("+12045551234")
		require.Equal(t, first, got)
	}
	assert.Same(t, r, Default())
}

func TestNewResolverRejectsDuplicates(t *testing.T) {
	_, err := NewResolver([]Prefix{
		{Digits: "599", Country: "CW"},
		{Digits: "599", Country: "BQ"},
	})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrDuplicatePrefix))
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestNewResolverRejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name   string
		prefix Prefix
	}{
		{"empty digits", Prefix{Digits: "", Country: "DE"}},
		{"plus sign", Prefix{Digits: "+49", Country: "DE"}},
		{"letters", Prefix{Digits: "4a", Country: "DE"}},
		{"three letter country", Prefix{Digits: "49", Country: "DEU"}},
		{"digit country", Prefix{Digits: "49", Country: "D1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResolver([]Prefix{tt.prefix})
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, ErrInvalidPrefix))
		})
	}
}

func TestNewResolverUpperCasesCountry(t *testing.T) {
	r, err := NewResolver([]Prefix{{Digits: "49", Country: "de"}})
	require.NoError(t, err)

	got, ok := r.Resolve("+491234")
	require.True(t, ok)
	assert.Equal(t, "DE", got)
}

func TestMustNewResolverPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewResolver([]Prefix{{Digits: "1", Country: "US"}, {Digits: "1", Country: "CA"}})
	})
}

func TestEmptyResolverResolvesNothing(t *testing.T) {
	r, err := NewResolver(nil)
	require.NoError(t, err)

	_, ok := r.Resolve("+4912345")
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

func TestPrefixesSorted(t *testing.T) {
	p := Default().Prefixes()
	require.Len(t, p, Default().Len())
	for i := 1; i < len(p); i++ {
		assert.Less(t, p[i-1].Digits, p[i].Digits)
	}
}

func TestNameToISO2(t *testing.T) {
	iso, ok := NameToISO2("Germany")
	require.True(t, ok)
	assert.Equal(t, "DE", iso)

	iso, ok = NameToISO2("  Russian Federation ")
	require.True(t, ok)
	assert.Equal(t, "RU", iso)

	_, ok = NameToISO2("Atlantis")
	assert.False(t, ok)
}

func TestRoutable(t *testing.T) {
	assert.True(t, Routable("DE"))
	assert.True(t, Routable("de"))
	assert.False(t, Routable("IL"))
	assert.False(t, Routable("KP"))
	assert.True(t, Routable("QQ"))
}

func TestValidISO2(t *testing.T) {
	assert.True(t, ValidISO2("DE"))
	assert.False(t, ValidISO2("de"))
	assert.False(t, ValidISO2("D"))
	assert.False(t, ValidISO2("DEU"))
	assert.False(t, ValidISO2("Ü1"))
}

func TestBundledTablesAreConsistent(t *testing.T) {
	for name, iso := range vendorNames {
		assert.Truef(t, ValidISO2(iso), "vendor name %q maps to %q", name, iso)
	}
	for _, iso := range unroutable {
		assert.Truef(t, ValidISO2(iso), "unroutable entry %q", iso)
	}

	resolvable := make(map[string]bool)
	for _, p := range Default().Prefixes() {
		resolvable[p.Country] = true
	}
	for _, iso := range []string{"DE", "US", "CA", "GB", "RU", "KZ", "FR", "JP"} {
		assert.Truef(t, resolvable[iso], "no prefix for %s", iso)
	}
}
