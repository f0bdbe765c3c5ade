// Package pricelist loads raw price rows from the bundled snapshot, vendor
// JSON files, HCL override files and the vendor price endpoint.
package pricelist

import (
	"context"
	stderrors "errors"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sms-cost/core/country"
	"sms-cost/core/pricing"
	"sms-cost/internal/errors"
	"sms-cost/internal/logging"
)

// Source provides raw price rows
type Source interface {
	// Name identifies the source in logs and output
	Name() string

	// Rows returns the rows in source order
	Rows(ctx context.Context) ([]pricing.Row, error)

	// Kind tells the table where the rows came from
	Kind() pricing.Source
}

// Loader merges sources into one table
type Loader struct {
	// LastWins allows a country to appear twice within a single source
	LastWins bool
}

// LoadAll is Loader{}.Load
func LoadAll(ctx context.Context, sources ...Source) (*pricing.Table, error) {
	return Loader{}.Load(ctx, sources...)
}

// Load fetches every source concurrently and merges the rows in argument
// order, so a later source overrides an earlier one per country.
func (l Loader) Load(ctx context.Context, sources ...Source) (*pricing.Table, error) {
	results := make([][]pricing.Row, len(sources))

	var check []pricing.TableOption
	if l.LastWins {
		check = append(check, pricing.WithLastWins())
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			rows, err := src.Rows(ctx)
			if err != nil {
				return err
			}
			if _, err := pricing.NewTable(rows, check...); err != nil {
				return withSource(err, src.Name())
			}
			results[i] = rows
			logging.Debug("price source loaded",
				zap.String("source", src.Name()),
				zap.Int("rows", len(rows)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []pricing.Row
	for _, rows := range results {
		merged = append(merged, rows...)
	}

	kind := pricing.SourceMerged
	if len(sources) == 1 {
		kind = sources[0].Kind()
	}

	table, err := pricing.NewTable(merged, pricing.WithLastWins(), pricing.WithSource(kind))
	if err != nil {
		return nil, err
	}

	if missing := table.Missing(country.VendorCountries()); len(missing) > 0 {
		logging.Debug("price table lacks countries the vendor lists",
			zap.Strings("countries", missing),
		)
	}
	logging.Info("price table loaded",
		zap.String("id", table.ID()),
		zap.Stringer("source", table.Source()),
		zap.Int("countries", table.Len()),
	)
	return table, nil
}

func withSource(err error, name string) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.WithContext("source", name)
	}
	return err
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NotFound("price file", path)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.TypeParsing, err, "failed to read %s", path)
	}
	return data, nil
}
