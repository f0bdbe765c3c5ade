package pricelist

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"sms-cost/core/pricing"
	"sms-cost/internal/config"
	"sms-cost/internal/errors"
	"sms-cost/internal/logging"
)

// Base price lists a Plan can start from
const (
	BaseOffline = "offline"
	BaseURL     = "url"
)

// Plan selects the price lists to merge. Files come after the base list, in
// order, so they act as overrides.
type Plan struct {
	// Base is BaseOffline, BaseURL or anything else for files only
	Base string

	// URL and Timeout configure the BaseURL download
	URL     string
	Timeout time.Duration

	// Fallback serves the bundled list when the BaseURL download fails or
	// comes back empty
	Fallback bool

	// Files are vendor JSON or .hcl override files
	Files []string

	// LastWins allows a country twice within one source
	LastWins bool
}

// FromConfig maps the pricing configuration onto a plan
func FromConfig(cfg config.PricingConfig) Plan {
	return Plan{
		Base:     cfg.Source,
		URL:      cfg.URL,
		Timeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
		Fallback: cfg.OfflineFallback,
		Files:    cfg.Files,
		LastWins: cfg.Duplicates == config.DuplicatesLastWins,
	}
}

// Sources lists the sources the plan loads, in merge order
func (p Plan) Sources() []Source {
	var sources []Source
	switch p.Base {
	case BaseOffline:
		sources = append(sources, Offline())
	case BaseURL:
		var remote Source = NewHTTPSource(p.URL, p.Timeout)
		if p.Fallback {
			remote = &fallback{primary: remote, offline: Offline()}
		}
		sources = append(sources, remote)
	}
	for _, f := range p.Files {
		sources = append(sources, FileSource(f))
	}
	return sources
}

// Load fetches and merges the planned sources
func (p Plan) Load(ctx context.Context) (*pricing.Table, error) {
	return Loader{LastWins: p.LastWins}.Load(ctx, p.Sources()...)
}

// FileSource picks the parser by extension: .hcl files are overrides,
// anything else is vendor JSON.
func FileSource(path string) Source {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return HCLFile{Path: path}
	}
	return JSONFile{Path: path}
}

// fallback reads the offline list when primary is unreachable, unparsable or
// empty. Cancellation and other errors pass through.
type fallback struct {
	primary Source
	offline Source

	// set by Rows, read by Kind after the loader has waited
	usedOffline bool
}

func (f *fallback) Name() string { return f.primary.Name() }

func (f *fallback) Kind() pricing.Source {
	if f.usedOffline {
		return f.offline.Kind()
	}
	return f.primary.Kind()
}

func (f *fallback) Rows(ctx context.Context) ([]pricing.Row, error) {
	rows, err := f.primary.Rows(ctx)
	if err == nil && len(rows) > 0 {
		return rows, nil
	}
	if err != nil && (ctx.Err() != nil || !recoverable(err)) {
		return nil, err
	}

	logging.Warn("price list unavailable, using the offline default",
		zap.String("source", f.primary.Name()),
		zap.String("offline", f.offline.Name()),
		zap.Int("rows", len(rows)),
		zap.Error(err),
	)
	f.usedOffline = true
	return f.offline.Rows(ctx)
}

func recoverable(err error) bool {
	return errors.IsType(err, errors.TypeNetwork) || errors.IsType(err, errors.TypeParsing)
}
