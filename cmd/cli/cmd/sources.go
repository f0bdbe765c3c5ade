package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sms-cost/core/pricelist"
	"sms-cost/core/pricing"
	"sms-cost/internal/config"
	"sms-cost/internal/errors"
	"sms-cost/internal/logging"
)

// loadTable loads and merges the configured price lists
func loadTable(ctx context.Context, cfg config.PricingConfig) (*pricing.Table, error) {
	plan := pricelist.FromConfig(cfg)

	var names []string
	for _, s := range plan.Sources() {
		names = append(names, s.Name())
	}
	logging.Debug("loading prices", zap.Strings("sources", names))

	return plan.Load(ctx)
}

// readBody picks the message body from --body, --file, the arguments or
// stdin, in that order. One trailing newline is dropped from files and stdin.
func readBody(cmd *cobra.Command, body, file string, args []string) (string, error) {
	switch {
	case body != "":
		return body, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NotFound("body file", file)
			}
			return "", errors.Input("failed to read body file", err).WithContext("path", file)
		}
		return trimNewline(string(data)), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Input("failed to read body from stdin", err)
	}
	return trimNewline(string(data)), nil
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
