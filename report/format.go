package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat and Write.
var ErrUnknownFormat = errors.New("report: unknown output format")

// ParseFormat accepts text, yaml or json in any case ("yml" is an alias).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "table", "":
		return Text, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Tabular is a view that can render itself as tables.
type Tabular interface {
	Tables() []table.Writer
}

// Write encodes v to w in format f. Text renders v.Tables() separated by
// blank lines; YAML and JSON encode v itself.
func Write(w io.Writer, f Format, v Tabular) error {
	switch f {
	case Text:
		for i, t := range v.Tables() {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, t.Render()); err != nil {
				return err
			}
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// newTable returns a table writer with the package's common style. The
// table is at least as wide as its title, which therefore never wraps.
func newTable(title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	s := t.Style()
	s.Size.WidthMin = text.StringWidthWithoutEscSequences(title + s.Box.PaddingLeft + s.Box.PaddingRight + s.Box.Left + s.Box.Right)
	t.SetTitle("%s", title)
	t.AppendHeader(header)
	return t
}

// f2, f3, f4 format a float with fixed decimals.
func f2(v float64) string { return fmt.Sprintf("%.2f", v) }
func f3(v float64) string { return fmt.Sprintf("%.3f", v) }
func f4(v float64) string { return fmt.Sprintf("%.4f", v) }
