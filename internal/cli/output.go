package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/timetrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// Report output formats.
const (
	outputText     = "text"
	outputTable    = "table"
	outputCSV      = "csv"
	outputMarkdown = "markdown"
	outputXLSX     = "xlsx"
)

var outputFormats = []string{outputText, outputTable, outputCSV, outputMarkdown, outputXLSX}

type outputFlags struct {
	format string
	file   string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "output", outputText, "Output format: "+strings.Join(outputFormats, ", "))
	cmd.Flags().StringVar(&o.file, "file", "", "Write the report to this file instead of stdout")
}

func (o *outputFlags) validate() error {
	switch o.format {
	case outputText, outputTable, outputCSV, outputMarkdown:
		return nil
	case outputXLSX:
		if o.file == "" {
			return fmt.Errorf("--output xlsx requires --file")
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want one of %s)", o.format, strings.Join(outputFormats, ", "))
	}
}

// write renders the report in the chosen format. text is the styled
// terminal rendering; sheet is the flat form used by the export formats.
func (o *outputFlags) write(cmd *cobra.Command, text func() string, sheet func() formatter.Sheet) error {
	if o.format == outputXLSX {
		return o.toFile(cmd, func(w io.Writer) error {
			return formatter.WriteXLSX(w, sheet())
		})
	}

	var rendered string
	switch o.format {
	case outputTable:
		rendered = formatter.RenderBoxed(sheet())
	case outputCSV:
		rendered = formatter.RenderCSV(sheet())
	case outputMarkdown:
		rendered = formatter.RenderMarkdown(sheet())
	default:
		rendered = text()
	}

	if o.file == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), rendered)
		return err
	}
	return o.toFile(cmd, func(w io.Writer) error {
		_, err := io.WriteString(w, rendered)
		return err
	})
}

func (o *outputFlags) toFile(cmd *cobra.Command, render func(io.Writer) error) error {
	f, err := os.Create(o.file)
	if err != nil {
		return fmt.Errorf("creating %s: %w", o.file, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", o.file, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", o.file, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", o.file)
	return nil
}
