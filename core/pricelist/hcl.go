package pricelist

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"sms-cost/core/pricing"
	"sms-cost/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "price", LabelNames: []string{"country"}},
	},
}

var priceSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "gross", Required: true},
		{Name: "net"},
		{Name: "vat"},
		{Name: "currency"},
	},
}

// HCLFile holds operator price overrides:
//
//	price "DE" {
//	  gross    = "0.0894"
//	  net      = 0.0751
//	  vat      = 0.19
//	  currency = "EUR"
//	}
type HCLFile struct {
	Path string
}

// Name returns the file path
func (f HCLFile) Name() string { return f.Path }

// Kind reports a file source
func (f HCLFile) Kind() pricing.Source { return pricing.SourceFile }

// Rows reads and parses the file
func (f HCLFile) Rows(ctx context.Context) ([]pricing.Row, error) {
	src, err := readFile(f.Path)
	if err != nil {
		return nil, err
	}
	return ParseHCL(src, f.Path)
}

// ParseHCL parses price blocks from src; filename is used in diagnostics
func ParseHCL(src []byte, filename string) ([]pricing.Row, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags, filename)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(diags, filename)
	}

	rows := make([]pricing.Row, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		attrs, diags := block.Body.Content(priceSchema)
		if diags.HasErrors() {
			return nil, diagError(diags, filename)
		}

		row := pricing.Row{Country: block.Labels[0]}
		for name, dst := range map[string]*string{
			"gross":    &row.Gross,
			"net":      &row.Net,
			"vat":      &row.VAT,
			"currency": &row.Currency,
		} {
			attr, ok := attrs.Attributes[name]
			if !ok {
				continue
			}
			s, err := attrString(attr)
			if err != nil {
				return nil, err.WithContext("file", filename).WithContext("country", row.Country)
			}
			*dst = s
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// attrString accepts string and number literals alike
func attrString(attr *hcl.Attribute) (string, *errors.Error) {
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", errors.Parsing("invalid price attribute", diags).
			WithContext("attribute", attr.Name)
	}
	s, err := convert.Convert(v, cty.String)
	if err != nil || s.IsNull() || !s.IsKnown() {
		return "", errors.Parsing("price attribute must be a string or number", err).
			WithContext("attribute", attr.Name).
			WithContext("line", attr.Range.Start.Line)
	}
	return strings.TrimSpace(s.AsString()), nil
}

func diagError(diags hcl.Diagnostics, filename string) error {
	line := 0
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			line = d.Subject.Start.Line
			break
		}
	}
	return errors.Parsing("failed to parse price overrides", diags).
		WithContext("file", filename).
		WithContext("line", line)
}
