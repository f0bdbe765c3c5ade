package cmd

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sms-cost/core/message"
	"sms-cost/core/output"
	"sms-cost/core/phone"
	"sms-cost/core/pricing"
	"sms-cost/internal/config"
	"sms-cost/internal/errors"
	"sms-cost/internal/logging"
)

var (
	estimateFrom    string
	estimateTo      []string
	estimateToFile  string
	estimateBody    string
	estimateFile    string
	estimateStrict  bool
	estimateDetails bool
	estimateRegion  string
	estimateCountry string
)

// estimateCmd prices one body sent to one or more recipients
var estimateCmd = &cobra.Command{
	Use:   "estimate [body...]",
	Short: "Estimate the cost of sending a message",
	Long: `Count the segments of a message body and price it for every recipient.

Recipients without a price are reported as unpriced. By default they are left
out of the total; with --strict a single unpriced message makes the total
unknown.

Examples:
  sms-cost estimate --from +4917111111 --to +491755555555 "Hello"
  sms-cost estimate --from +4917111111 --to +4917...,+3361... --file body.txt
  sms-cost estimate --from +4917111111 --to-file recipients.txt --strict --format json`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&estimateFrom, "from", "", "sender phone number")
	estimateCmd.Flags().StringSliceVar(&estimateTo, "to", nil, "recipient phone numbers")
	estimateCmd.Flags().StringVar(&estimateToFile, "to-file", "", "file with one recipient per line")
	estimateCmd.Flags().StringVarP(&estimateBody, "body", "b", "", "message body")
	estimateCmd.Flags().StringVar(&estimateFile, "file", "", "read the message body from a file")
	estimateCmd.Flags().BoolVar(&estimateStrict, "strict", false, "an unpriced message makes the total unpriced")
	estimateCmd.Flags().BoolVarP(&estimateDetails, "details", "d", true, "show one row per message")
	estimateCmd.Flags().StringVar(&estimateRegion, "region", "", "default region for numbers without a country code")
	estimateCmd.Flags().StringVar(&estimateCountry, "country", "", "bill every recipient to this ISO2 country")
	_ = estimateCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	started := time.Now()
	cfg := config.Get()

	strict := cfg.Pricing.Strict
	if cmd.Flags().Changed("strict") {
		strict = estimateStrict
	}
	details := cfg.Output.ShowDetails
	if cmd.Flags().Changed("details") {
		details = estimateDetails
	}

	format, err := output.ParseFormat(cfg.Output.DefaultFormat)
	if err != nil {
		return err
	}
	formatter, err := output.New(format, details)
	if err != nil {
		return err
	}

	recipients, err := collectRecipients(estimateTo, estimateToFile)
	if err != nil {
		return err
	}
	body, err := readBody(cmd, estimateBody, estimateFile, args)
	if err != nil {
		return err
	}
	msgs, err := buildMessages(cfg, body, recipients)
	if err != nil {
		return err
	}

	table, err := loadTable(cmd.Context(), cfg.Pricing)
	if err != nil {
		return err
	}

	est := pricing.NewEngine(table).Estimate(msgs, strict)
	logging.Info("estimate complete",
		zap.Int("messages", len(msgs)),
		zap.Int("segments", est.Segments),
		zap.Int("unpriced", est.Unpriced),
		zap.Bool("strict", strict),
	)

	result := output.NewResult(est, table, started, Version)
	return formatter.Render(cmd.OutOrStdout(), result)
}

func buildMessages(cfg *config.Config, body string, recipients []string) ([]message.Message, error) {
	counter := message.NewCounter(message.WithAstralUnits(cfg.Segmentation.AstralUnits))

	sender, err := phone.ParseFormatted(estimateFrom, estimateRegion, "")
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "invalid sender", err)
	}

	msgs := make([]message.Message, 0, len(recipients))
	for _, to := range recipients {
		recipient, err := phone.ParseFormatted(to, estimateRegion, estimateCountry)
		if err != nil {
			return nil, errors.Wrap(errors.TypeInput, "invalid recipient", err)
		}
		m, err := message.NewWithCounter(counter, message.Phone(sender), message.Phone(recipient), body)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// collectRecipients merges --to with --to-file. Blank lines and lines
// starting with '#' are skipped.
func collectRecipients(to []string, file string) ([]string, error) {
	recipients := make([]string, 0, len(to))
	for _, r := range to {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NotFound("recipients file", file)
			}
			return nil, errors.Input("failed to open recipients file", err).WithContext("path", file)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			recipients = append(recipients, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Input("failed to read recipients file", err).WithContext("path", file)
		}
	}

	if len(recipients) == 0 {
		return nil, errors.New(errors.TypeInput, "no recipients: use --to or --to-file")
	}
	return recipients, nil
}
