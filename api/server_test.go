package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"sms-cost/core/message"
	"sms-cost/core/pricing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func newTestServer(strict bool) *Server {
	table := pricing.MustNewTable([]pricing.Row{
		{Country: "DE", Gross: "0.0894", Net: "0.0751", VAT: "0.19"},
		{Country: "GB", Gross: "0.0392"},
	}, pricing.WithSource(pricing.SourceOffline))
	return NewServer(NewHandler(table, message.NewCounter(), "test", strict))
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

type estimateDoc struct {
	Estimate struct {
		Lines []struct {
			Recipient string  `json:"recipient"`
			Country   string  `json:"country"`
			Segments  int     `json:"segments"`
			Gross     *string `json:"gross"`
		} `json:"lines"`
		Total    *string `json:"total"`
		Unpriced int     `json:"unpriced"`
		Strict   bool    `json:"strict"`
	} `json:"estimate"`
	Metadata struct {
		RunID   string `json:"run_id"`
		TableID string `json:"table_id"`
	} `json:"metadata"`
	InputHash string `json:"input_hash"`
}

func TestEstimate(t *testing.T) {
	s := newTestServer(false)
	body := `{"from": "+4917111111", "to": ["+491755555555", "+33612345678"], "body": "` + strings.Repeat("a", 161) + `"}`

	rec := do(t, s, http.MethodPost, "/estimate", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc estimateDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Estimate.Lines, 2)
	assert.Equal(t, "DE", doc.Estimate.Lines[0].Country)
	assert.Equal(t, 2, doc.Estimate.Lines[0].Segments)
	require.NotNil(t, doc.Estimate.Lines[0].Gross)
	assert.Equal(t, "0.1788", *doc.Estimate.Lines[0].Gross)
	assert.Nil(t, doc.Estimate.Lines[1].Gross)
	require.NotNil(t, doc.Estimate.Total)
	assert.Equal(t, "0.1788", *doc.Estimate.Total)
	assert.Equal(t, 1, doc.Estimate.Unpriced)
	assert.False(t, doc.Estimate.Strict)
	assert.Len(t, doc.InputHash, 64)
	assert.Equal(t, s.handler.Table().ID(), doc.Metadata.TableID)

	again := do(t, s, http.MethodPost, "/estimate", body)
	var second estimateDoc
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &second))
	assert.Equal(t, doc.InputHash, second.InputHash)
	assert.NotEqual(t, doc.Metadata.RunID, second.Metadata.RunID)
}

func TestEstimateModes(t *testing.T) {
	body := `{"from": "+4917111111", "to": ["+491755555555", "+33612345678"], "body": "hi"%s}`

	var doc estimateDoc
	rec := do(t, newTestServer(false), http.MethodPost, "/estimate", strings.Replace(body, "%s", `, "mode": "strict"`, 1))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.True(t, doc.Estimate.Strict)
	assert.Nil(t, doc.Estimate.Total)

	doc = estimateDoc{}
	rec = do(t, newTestServer(true), http.MethodPost, "/estimate", strings.Replace(body, "%s", "", 1))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.True(t, doc.Estimate.Strict)

	doc = estimateDoc{}
	rec = do(t, newTestServer(true), http.MethodPost, "/estimate", strings.Replace(body, "%s", `, "mode": "permissive"`, 1))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.False(t, doc.Estimate.Strict)
	require.NotNil(t, doc.Estimate.Total)
	assert.Equal(t, "0.0894", *doc.Estimate.Total)
}

func TestEstimateRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"not json", `{`, "INVALID_JSON"},
		{"unknown field", `{"from": "+4917111111", "to": ["+491755555555"], "body": "hi", "priority": 1}`, "INVALID_JSON"},
		{"no sender", `{"to": ["+491755555555"], "body": "hi"}`, "INPUT_ERROR"},
		{"no recipients", `{"from": "+4917111111", "body": "hi"}`, "INPUT_ERROR"},
		{"bad mode", `{"from": "+4917111111", "to": ["+491755555555"], "body": "hi", "mode": "lenient"}`, "INPUT_ERROR"},
		{"bad recipient", `{"from": "+4917111111", "to": ["491755555555"], "body": "hi"}`, "INPUT_ERROR"},
		{"empty body", `{"from": "+4917111111", "to": ["+491755555555"], "body": ""}`, "INPUT_ERROR"},
	}

	s := newTestServer(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/estimate", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestEstimateRecipientIndexInError(t *testing.T) {
	rec := do(t, newTestServer(false), http.MethodPost, "/estimate",
		`{"from": "+4917111111", "to": ["+491755555555", "nope"], "body": "hi"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp.Error.Context["index"])
	assert.Equal(t, "nope", resp.Error.Context["input"])
}

func TestSegments(t *testing.T) {
	rec := do(t, newTestServer(false), http.MethodPost, "/segments", `{"body": "`+strings.Repeat("€", 80)+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SegmentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 160, resp.Units)
	assert.Equal(t, 1, resp.Segments)
	assert.Equal(t, 160, resp.Capacity)
}

func TestPrices(t *testing.T) {
	s := newTestServer(false)

	rec := do(t, s, http.MethodGet, "/prices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all struct {
		ID      string            `json:"id"`
		Entries []json.RawMessage `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all.Entries, 2)
	assert.Equal(t, s.handler.Table().ID(), all.ID)

	rec = do(t, s, http.MethodGet, "/prices/gb", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"0.0392"`)
	assert.NotContains(t, rec.Body.String(), `"DE"`)

	rec = do(t, s, http.MethodGet, "/prices/IL", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer(false)

	rec := do(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)

	s.shuttingDown.Store(true)
	rec = do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, s, http.MethodGet, "/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"test"`)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(false), http.MethodGet, "/estimate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer(false).Serve(ctx, ln) }()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Post("http://"+ln.Addr().String()+"/segments", "application/json", bytes.NewBufferString(`{"body": "hi"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
