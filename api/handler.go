// Package api - HTTP handler for SMS cost estimation
// The handler turns requests into core values and delegates all pricing to
// the engine.
package api

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"sms-cost/core/message"
	"sms-cost/core/output"
	"sms-cost/core/phone"
	"sms-cost/core/pricing"
	"sms-cost/internal/errors"
	"sms-cost/internal/logging"
)

// MaxRecipients bounds the recipients of one estimate request
const MaxRecipients = 10000

// Handler executes requests against one price table
type Handler struct {
	engine  *pricing.Engine
	counter *message.Counter
	version string

	// defaultMode applies when a request has no mode
	defaultMode EstimationMode
}

// NewHandler creates a handler. strict sets the mode used when a request
// does not name one.
func NewHandler(table *pricing.Table, counter *message.Counter, version string, strict bool) *Handler {
	if counter == nil {
		counter = message.NewCounter()
	}
	mode := ModePermissive
	if strict {
		mode = ModeStrict
	}
	return &Handler{
		engine:      pricing.NewEngine(table),
		counter:     counter,
		version:     version,
		defaultMode: mode,
	}
}

// Table returns the price table requests are priced against
func (h *Handler) Table() *pricing.Table {
	return h.engine.Table()
}

func (h *Handler) estimate(ctx context.Context, req *EstimateRequest) (*EstimateResponse, error) {
	started := time.Now()

	if err := validateEstimateRequest(req); err != nil {
		return nil, err
	}
	mode := req.Mode
	if mode == "" {
		mode = h.defaultMode
	}

	sender, err := phone.ParseFormatted(req.From, req.Region, "")
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "invalid sender", err)
	}

	msgs := make([]message.Message, 0, len(req.To))
	for i, to := range req.To {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		recipient, err := phone.ParseFormatted(to, req.Region, req.Country)
		if err != nil {
			return nil, errors.Wrap(errors.TypeInput, "invalid recipient", err).WithContext("index", i)
		}
		m, err := message.NewWithCounter(h.counter, message.Phone(sender), message.Phone(recipient), req.Body)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}

	est := h.engine.Estimate(msgs, mode == ModeStrict)
	logging.Debug("estimate served",
		zap.Int("messages", len(msgs)),
		zap.Int("unpriced", est.Unpriced),
		zap.String("mode", string(mode)),
	)

	return &EstimateResponse{
		EstimationResult: output.NewResult(est, h.Table(), started, h.version),
		InputHash:        computeInputHash(req),
	}, nil
}

func (h *Handler) segments(req *SegmentsRequest) *SegmentsResponse {
	seg := h.counter.Count(req.Body)
	single, multipart := seg.Encoding.Capacity()
	capacity := single
	if seg.Segments > 1 {
		capacity = multipart
	}
	return &SegmentsResponse{Segmentation: seg, Capacity: capacity}
}

func validateEstimateRequest(req *EstimateRequest) error {
	if strings.TrimSpace(req.From) == "" {
		return errors.New(errors.TypeInput, "from is required")
	}
	if len(req.To) == 0 {
		return errors.New(errors.TypeInput, "to needs at least one recipient")
	}
	if len(req.To) > MaxRecipients {
		return errors.Newf(errors.TypeInput, "too many recipients: %d > %d", len(req.To), MaxRecipients)
	}
	switch req.Mode {
	case "", ModeStrict, ModePermissive:
	default:
		return errors.Newf(errors.TypeInput, "unknown mode %q", req.Mode)
	}
	return nil
}
