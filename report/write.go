package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	json "github.com/goccy/go-json"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects a report encoding.
type Format string

const (
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatParquet Format = "parquet"
)

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML, FormatParquet:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Binary reports whether f should not be written to a terminal.
func (f Format) Binary() bool { return f == FormatParquet }

// Write encodes rows to w in format f.
func Write(w io.Writer, rows []Row, f Format) error {
	switch f {
	case FormatTable:
		return WriteTable(w, rows)
	case FormatJSON:
		return WriteJSON(w, rows)
	case FormatYAML:
		return WriteYAML(w, rows)
	case FormatParquet:
		return WriteParquet(w, rows)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// WriteTable renders rows as a bordered table.
func WriteTable(w io.Writer, rows []Row) error {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STRATEGY", "FOUND", "EXPLORED", "STEPS", "OPTIMAL").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, r := range rows {
		steps := "-"
		if r.Found {
			steps = strconv.FormatInt(r.Steps, 10)
		}
		t.Row(r.Strategy, yesNo(r.Found), strconv.FormatInt(r.Explored, 10), steps, yesNo(r.Optimal))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// WriteJSON encodes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}

// WriteYAML encodes rows as a YAML sequence.
func WriteYAML(w io.Writer, rows []Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	return enc.Close()
}

// WriteParquet writes rows as a zstd-compressed parquet file.
func WriteParquet(w io.Writer, rows []Row) error {
	pw := parquet.NewGenericWriter[Row](w, parquet.Compression(&zstd.Codec{}))
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return fmt.Errorf("report: write parquet: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("report: close parquet: %w", err)
	}
	return nil
}
