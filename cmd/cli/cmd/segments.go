package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sms-cost/core/message"
	"sms-cost/core/output"
	"sms-cost/internal/config"
)

var (
	segmentsBody string
	segmentsFile string
)

// segmentsCmd counts the segments of a message body
var segmentsCmd = &cobra.Command{
	Use:   "segments [body...]",
	Short: "Count the SMS segments of a message body",
	Long: `Classify a body as GSM-7 or UCS-2 and count its segments.

The body is read from --body, --file, the arguments or stdin.

Examples:
  sms-cost segments "Hello world"
  echo "Grüße aus Köln" | sms-cost segments
  sms-cost segments --file body.txt --format json`,
	RunE: runSegments,
}

func init() {
	segmentsCmd.Flags().StringVarP(&segmentsBody, "body", "b", "", "message body")
	segmentsCmd.Flags().StringVar(&segmentsFile, "file", "", "read the message body from a file")
	rootCmd.AddCommand(segmentsCmd)
}

func runSegments(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	body, err := readBody(cmd, segmentsBody, segmentsFile, args)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Output.DefaultFormat)
	if err != nil {
		return err
	}

	counter := message.NewCounter(message.WithAstralUnits(cfg.Segmentation.AstralUnits))
	seg := counter.Count(body)

	w := cmd.OutOrStdout()
	if format == output.FormatJSON {
		return writeJSON(w, seg)
	}

	single, multipart := seg.Encoding.Capacity()
	perSegment := single
	if seg.Segments > 1 {
		perSegment = multipart
	}
	_, err = fmt.Fprintf(w, "Encoding:  %s\nUnits:     %d\nSegments:  %d\nCapacity:  %d per segment\n",
		seg.Encoding, seg.Units, seg.Segments, perSegment)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
