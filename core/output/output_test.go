package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-cost/core/message"
	"sms-cost/core/pricing"
	"sms-cost/internal/errors"
)

func fixture(t *testing.T, strict bool) (*EstimationResult, *pricing.Table) {
	t.Helper()
	table := pricing.MustNewTable([]pricing.Row{
		{Country: "DE", Gross: "0.0894", Net: "0.0751", VAT: "0.19"},
		{Country: "IL", Gross: "0.05"},
	}, pricing.WithSource(pricing.SourceOffline))

	var msgs []message.Message
	for _, to := range []string{"+491755555555", "+972501234567", "+33612345678"} {
		m, err := message.New(message.Text("+4917111111"), message.Text(to), strings.Repeat("a", 161))
		require.NoError(t, err)
		msgs = append(msgs, m)
	}

	est := pricing.NewEngine(table).Estimate(msgs, strict)
	return NewResult(est, table, time.Now(), "test"), table
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCLI, f)

	_, err = ParseFormat("html")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestNewFormatter(t *testing.T) {
	f, err := New(FormatCLI, true)
	require.NoError(t, err)
	assert.Equal(t, FormatCLI, f.Format())

	f, err = New(FormatJSON, false)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f.Format())

	_, err = New("xml", false)
	assert.Error(t, err)
}

func TestNewResultMetadata(t *testing.T) {
	result, table := fixture(t, false)

	_, err := uuid.Parse(result.Metadata.RunID)
	require.NoError(t, err)
	assert.Equal(t, table.ID(), result.Metadata.TableID)
	assert.Equal(t, "offline", result.Metadata.TableSource)
	assert.Equal(t, "test", result.Metadata.Version)

	other, _ := fixture(t, false)
	assert.NotEqual(t, result.Metadata.RunID, other.Metadata.RunID)
}

func TestCLIRender(t *testing.T) {
	result, _ := fixture(t, false)

	var buf bytes.Buffer
	require.NoError(t, (&CLIFormatter{Details: true}).Render(&buf, result))
	out := buf.String()

	assert.Contains(t, out, "SMS COST ESTIMATE")
	assert.Contains(t, out, "+491755555555 (DE) GSM-7 x2")
	assert.Contains(t, out, "0.1788 EUR")
	assert.Contains(t, out, "not routable by the vendor")
	assert.Contains(t, out, "UNPRICED (excluded from total)")
	assert.Contains(t, out, "0.2788 EUR")
	assert.Contains(t, out, result.Metadata.RunID)
}

func TestCLIRenderStrict(t *testing.T) {
	result, _ := fixture(t, true)

	var buf bytes.Buffer
	require.NoError(t, (&CLIFormatter{}).Render(&buf, result))
	out := buf.String()

	assert.NotContains(t, out, "+491755555555")
	assert.Contains(t, out, "UNPRICED (total unknown)")
	assert.Contains(t, out, "unpriced")
}

func TestCLIRowsAreAligned(t *testing.T) {
	result, _ := fixture(t, false)

	var buf bytes.Buffer
	require.NoError(t, (&CLIFormatter{Details: true}).Render(&buf, result))

	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "│") || strings.HasPrefix(line, "┌") || strings.HasPrefix(line, "└") {
			assert.Equalf(t, 75, len([]rune(line)), "%q", line)
		}
	}
}

func TestJSONRender(t *testing.T) {
	result, _ := fixture(t, false)

	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Render(&buf, result))

	var doc struct {
		Estimate struct {
			Lines []struct {
				Country  string  `json:"country"`
				Encoding string  `json:"encoding"`
				Gross    *string `json:"gross"`
			} `json:"lines"`
			Total    string `json:"total"`
			Unpriced int    `json:"unpriced"`
		} `json:"estimate"`
		Metadata EstimationMetadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Estimate.Lines, 3)
	assert.Equal(t, "GSM-7", doc.Estimate.Lines[0].Encoding)
	require.NotNil(t, doc.Estimate.Lines[0].Gross)
	assert.Equal(t, "0.1788", *doc.Estimate.Lines[0].Gross)
	assert.Nil(t, doc.Estimate.Lines[2].Gross)
	assert.Equal(t, "0.2788", doc.Estimate.Total)
	assert.Equal(t, 1, doc.Estimate.Unpriced)
	assert.Equal(t, result.Metadata.RunID, doc.Metadata.RunID)
}

func TestRenderPrices(t *testing.T) {
	_, table := fixture(t, false)

	var buf bytes.Buffer
	require.NoError(t, (&CLIFormatter{}).RenderPrices(&buf, table))
	assert.Contains(t, buf.String(), "DE")
	assert.Contains(t, buf.String(), "0.0894")
	assert.Contains(t, buf.String(), "2 countries")

	buf.Reset()
	require.NoError(t, (&JSONFormatter{Indent: "  "}).RenderPrices(&buf, table))

	var doc priceList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, table.ID(), doc.ID)
	assert.Equal(t, "offline", doc.Source)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, "DE", doc.Entries[0].Country)
	assert.True(t, doc.Entries[0].Net.Valid)
	assert.False(t, doc.Entries[1].Net.Valid)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestCLIRenderReportsWriteError(t *testing.T) {
	result, _ := fixture(t, false)
	assert.ErrorIs(t, (&CLIFormatter{}).Render(failingWriter{}, result), assert.AnError)
}
