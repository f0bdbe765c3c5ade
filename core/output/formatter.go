// Package output renders estimates and price tables for humans and machines.
package output

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"sms-cost/core/pricing"
	"sms-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCLI, FormatJSON:
		return f, nil
	case "":
		return FormatCLI, nil
	default:
		return "", errors.Newf(errors.TypeConfig, "unknown output format %q (want cli or json)", s)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes an estimate
	Render(w io.Writer, result *EstimationResult) error

	// RenderPrices writes a price table
	RenderPrices(w io.Writer, table *pricing.Table) error
}

// New returns the formatter for f. details only affects the CLI table.
func New(f Format, details bool) (Formatter, error) {
	switch f {
	case FormatCLI:
		return &CLIFormatter{Details: details}, nil
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}, nil
	default:
		return nil, errors.Newf(errors.TypeConfig, "unknown output format %q", f)
	}
}

// EstimationResult contains the complete estimation output
type EstimationResult struct {
	// Estimate is the per-message breakdown and totals
	Estimate pricing.Estimate `json:"estimate"`

	// Metadata contains execution context
	Metadata EstimationMetadata `json:"metadata"`
}

// EstimationMetadata contains execution context
type EstimationMetadata struct {
	// RunID identifies this estimation run
	RunID string `json:"run_id"`

	// Timestamp is when the estimation was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the estimation took
	Duration string `json:"duration"`

	// TableID is the content hash of the price table
	TableID string `json:"table_id"`

	// TableSource is where the prices came from
	TableSource string `json:"table_source"`

	// Version is the tool version
	Version string `json:"version"`
}

// NewResult wraps an estimate with metadata for a fresh run
func NewResult(est pricing.Estimate, table *pricing.Table, started time.Time, version string) *EstimationResult {
	meta := EstimationMetadata{
		RunID:     uuid.NewString(),
		Timestamp: started.UTC().Format(time.RFC3339),
		Duration:  time.Since(started).String(),
		Version:   version,
	}
	if table != nil {
		meta.TableID = table.ID()
		meta.TableSource = table.Source().String()
	}
	return &EstimationResult{Estimate: est, Metadata: meta}
}
