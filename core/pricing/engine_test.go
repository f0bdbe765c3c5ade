package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-cost/core/message"
	"sms-cost/core/phone"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable([]Row{
		{Country: "DE", Gross: "0.0894", Net: "0.0751", VAT: "0.19"},
		{Country: "CA", Gross: "0.007", Net: "0.0058", VAT: "0.19"},
		{Country: "GB", Gross: "0.0392"},
	})
	require.NoError(t, err)
	return table
}

func msg(t *testing.T, to, body string) message.Message {
	t.Helper()
	m, err := message.New(message.Text("+4917111111"), message.Text(to), body)
	require.NoError(t, err)
	return m
}

func TestGrossPerSegment(t *testing.T) {
	e := NewEngine(testTable(t))

	assert.True(t, e.GrossPerSegment("DE").Equal(Priced(d("0.0894"))))
	assert.True(t, e.GrossPerSegment("de").Equal(Priced(d("0.0894"))))
	assert.False(t, e.GrossPerSegment("FR").IsPriced())
	assert.False(t, e.GrossPerSegment("").IsPriced())
}

func TestNetPerSegment(t *testing.T) {
	e := NewEngine(testTable(t))

	assert.True(t, e.NetPerSegment("CA").Equal(Priced(d("0.0058"))))
	assert.False(t, e.NetPerSegment("GB").IsPriced())
	assert.False(t, e.NetPerSegment("FR").IsPriced())
}

func TestMessageGross(t *testing.T) {
	e := NewEngine(testTable(t))

	single := msg(t, "+491755555555", "Hello World")
	assert.True(t, e.MessageGross(single).Equal(Priced(d("0.0894"))))

	double := msg(t, "+491755555555", strings.Repeat("a", 161))
	require.Equal(t, 2, double.Segments())
	assert.True(t, e.MessageGross(double).Equal(Priced(d("0.1788"))))

	canada := msg(t, "+12045551234", strings.Repeat("ж", 71))
	assert.True(t, e.MessageGross(canada).Equal(Priced(d("0.014"))))
	assert.True(t, e.MessageNet(canada).Equal(Priced(d("0.0116"))))

	france := msg(t, "+33612345678", "Bonjour")
	assert.False(t, e.MessageGross(france).IsPriced())

	unresolved := msg(t, "+5991234567", "hi")
	assert.False(t, e.MessageGross(unresolved).IsPriced())
}

func TestMessageGrossUsesOverriddenCountry(t *testing.T) {
	e := NewEngine(testTable(t))

	to, err := phone.ParseWithCountry("+491755555555", "GB")
	require.NoError(t, err)
	m, err := message.New(message.Text("+4917111111"), message.Phone(to), "hi")
	require.NoError(t, err)

	assert.True(t, e.MessageGross(m).Equal(Priced(d("0.0392"))))
}

func TestAggregateGross(t *testing.T) {
	e := NewEngine(testTable(t))
	valid := msg(t, "+491755555555", "Hello")
	other := msg(t, "+447911123456", "Hello")
	missing := msg(t, "+33612345678", "Bonjour")

	tests := []struct {
		name   string
		msgs   []message.Message
		strict bool
		want   Amount
	}{
		{"lenient skips unpriced", []message.Message{valid, missing}, false, Priced(d("0.0894"))},
		{"strict propagates unpriced", []message.Message{valid, missing}, true, Unpriced()},
		{"lenient sums", []message.Message{valid, other}, false, Priced(d("0.1286"))},
		{"strict sums", []message.Message{valid, other}, true, Priced(d("0.1286"))},
		{"lenient empty", nil, false, Zero()},
		{"strict empty", nil, true, Zero()},
		{"lenient all unpriced", []message.Message{missing, missing}, false, Zero()},
		{"strict all unpriced", []message.Message{missing}, true, Unpriced()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.AggregateGross(tt.msgs, tt.strict)
			assert.Truef(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestAggregateNet(t *testing.T) {
	e := NewEngine(testTable(t))
	de := msg(t, "+491755555555", "Hello")
	gb := msg(t, "+447911123456", "Hello")

	assert.True(t, e.AggregateNet([]message.Message{de, gb}, false).Equal(Priced(d("0.0751"))))
	assert.False(t, e.AggregateNet([]message.Message{de, gb}, true).IsPriced())
}

func TestEstimate(t *testing.T) {
	e := NewEngine(testTable(t))
	msgs := []message.Message{
		msg(t, "+491755555555", strings.Repeat("a", 161)),
		msg(t, "+33612345678", "Bonjour"),
	}

	est := e.Estimate(msgs, false)
	require.Len(t, est.Lines, 2)
	assert.Equal(t, 3, est.Segments)
	assert.Equal(t, 1, est.Unpriced)
	assert.True(t, est.Total.Equal(Priced(d("0.1788"))))
	assert.True(t, est.TotalNet.Equal(Priced(d("0.1502"))))
	assert.Equal(t, CurrencyEUR, est.Currency)

	first := est.Lines[0]
	assert.Equal(t, "+491755555555", first.Recipient)
	assert.Equal(t, "DE", first.Country)
	assert.Equal(t, message.SevenBit, first.Encoding)
	assert.Equal(t, 161, first.Units)
	assert.True(t, first.PerSegment.Equal(Priced(d("0.0894"))))

	assert.Equal(t, "FR", est.Lines[1].Country)
	assert.False(t, est.Lines[1].Gross.IsPriced())

	strict := e.Estimate(msgs, true)
	assert.False(t, strict.Total.IsPriced())
	assert.True(t, strict.Strict)
}

func TestEngineWithoutTable(t *testing.T) {
	e := NewEngine(nil)
	assert.False(t, e.GrossPerSegment("DE").IsPriced())
	assert.True(t, e.AggregateGross(nil, false).Equal(Zero()))
}
