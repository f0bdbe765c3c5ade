package pricing

import (
	"go.uber.org/zap"

	"sms-cost/core/message"
	"sms-cost/internal/logging"
)

// Engine prices messages against one table. It never mutates the table
// and never fails: unknown prices come back as Unpriced.
type Engine struct {
	table *Table
}

// NewEngine creates an engine over t
func NewEngine(t *Table) *Engine {
	return &Engine{table: t}
}

// Table returns the table the engine prices against
func (e *Engine) Table() *Table {
	return e.table
}

// GrossPerSegment returns the gross price of one segment to iso2.
// An empty code means the country was not resolved.
func (e *Engine) GrossPerSegment(iso2 string) Amount {
	entry, ok := e.lookup(iso2)
	if !ok {
		return Unpriced()
	}
	return Priced(entry.Gross)
}

// NetPerSegment is GrossPerSegment before VAT; rows without a net price are Unpriced
func (e *Engine) NetPerSegment(iso2 string) Amount {
	entry, ok := e.lookup(iso2)
	if !ok || !entry.Net.Valid {
		return Unpriced()
	}
	return Priced(entry.Net.Decimal)
}

func (e *Engine) lookup(iso2 string) (Entry, bool) {
	if iso2 == "" || e.table == nil {
		return Entry{}, false
	}
	entry, ok := e.table.Lookup(iso2)
	if !ok {
		logging.Debug("no price for country", zap.String("country", iso2))
	}
	return entry, ok
}

// MessageGross is the per-segment gross price times the segment count
func (e *Engine) MessageGross(m message.Message) Amount {
	iso, _ := m.Recipient().Country()
	return e.GrossPerSegment(iso).Mul(m.Segments())
}

// MessageNet is MessageGross before VAT
func (e *Engine) MessageNet(m message.Message) Amount {
	iso, _ := m.Recipient().Country()
	return e.NetPerSegment(iso).Mul(m.Segments())
}

// AggregateGross totals msgs. When strict, one unpriced message makes the
// total Unpriced; otherwise unpriced messages are left out.
func (e *Engine) AggregateGross(msgs []message.Message, strict bool) Amount {
	return aggregate(msgs, strict, e.MessageGross)
}

// AggregateNet is AggregateGross before VAT
func (e *Engine) AggregateNet(msgs []message.Message, strict bool) Amount {
	return aggregate(msgs, strict, e.MessageNet)
}

func aggregate(msgs []message.Message, strict bool, price func(message.Message) Amount) Amount {
	amounts := make([]Amount, len(msgs))
	for i, m := range msgs {
		amounts[i] = price(m)
	}
	if strict {
		return SumStrict(amounts...)
	}
	return SumLenient(amounts...)
}

// Line is one priced message in an Estimate
type Line struct {
	Recipient  string           `json:"recipient"`
	Country    string           `json:"country,omitempty"`
	Encoding   message.Encoding `json:"encoding"`
	Units      int              `json:"units"`
	Segments   int              `json:"segments"`
	PerSegment Amount           `json:"per_segment"`
	Gross      Amount           `json:"gross"`
	Net        Amount           `json:"net"`
}

// Estimate is a per-message breakdown with totals
type Estimate struct {
	Lines    []Line   `json:"lines"`
	Segments int      `json:"segments"`
	Total    Amount   `json:"total"`
	TotalNet Amount   `json:"total_net"`
	Unpriced int      `json:"unpriced"`
	Strict   bool     `json:"strict"`
	Currency Currency `json:"currency"`
}

// Estimate prices every message and totals them with the same rules as
// AggregateGross and AggregateNet.
func (e *Engine) Estimate(msgs []message.Message, strict bool) Estimate {
	est := Estimate{
		Lines:    make([]Line, 0, len(msgs)),
		Strict:   strict,
		Currency: CurrencyEUR,
	}

	gross := make([]Amount, 0, len(msgs))
	net := make([]Amount, 0, len(msgs))
	for _, m := range msgs {
		iso, _ := m.Recipient().Country()
		line := Line{
			Recipient:  m.Recipient().String(),
			Country:    iso,
			Encoding:   m.Encoding(),
			Units:      m.Segmentation().Units,
			Segments:   m.Segments(),
			PerSegment: e.GrossPerSegment(iso),
			Gross:      e.MessageGross(m),
			Net:        e.MessageNet(m),
		}
		if !line.Gross.IsPriced() {
			est.Unpriced++
		}
		est.Segments += line.Segments
		est.Lines = append(est.Lines, line)
		gross = append(gross, line.Gross)
		net = append(net, line.Net)
	}

	if strict {
		est.Total, est.TotalNet = SumStrict(gross...), SumStrict(net...)
	} else {
		est.Total, est.TotalNet = SumLenient(gross...), SumLenient(net...)
	}

	logging.Debug("estimate computed",
		zap.Int("messages", len(msgs)),
		zap.Int("unpriced", est.Unpriced),
		zap.Stringer("total", est.Total),
	)
	return est
}
