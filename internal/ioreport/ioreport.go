// Package ioreport writes report tables as console tables, CSV or JSON.
package ioreport

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/gnames/authcheck/pkg/report"
	"github.com/gnames/gnfmt"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Format is an output format of a report.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat converts a string to a Format. An empty string picks a
// table for terminals and CSV otherwise.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	case "":
		if isatty.IsTerminal(os.Stdout.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return FormatTable, nil
		}
		return FormatCSV, nil
	default:
		return "", UnknownFormatError(s)
	}
}

// Write renders the table in the given format.
func Write(w io.Writer, tbl report.Table, f Format) error {
	var err error
	switch f {
	case FormatTable:
		err = writeTable(w, tbl)
	case FormatCSV:
		err = writeCSV(w, tbl)
	case FormatJSON:
		err = writeJSON(w, tbl)
	default:
		return UnknownFormatError(string(f))
	}
	if err != nil {
		return WriteError(string(tbl.Kind), err)
	}
	return nil
}

// WriteFile renders the table into a file, replacing it.
func WriteFile(path string, tbl report.Table, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}
	if err = Write(file, tbl, f); err != nil {
		file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return WriteError(path, err)
	}
	return nil
}

func writeTable(w io.Writer, tbl report.Table) error {
	config := tablewriter.Config{}
	if tbl.Kind == report.SummaryKind {
		align := []tw.Align{tw.AlignLeft, tw.AlignRight}
		config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}
	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	header := make([]any, len(tbl.Header))
	for i, h := range tbl.Header {
		header[i] = h
	}
	table.Header(header...)

	for _, row := range tbl.Rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

func writeCSV(w io.Writer, tbl report.Table) error {
	var sb strings.Builder
	line := func(cells []string) {
		sb.WriteString(strings.TrimRight(gnfmt.ToCSV(cells, ','), "\r\n"))
		sb.WriteString("\n")
	}
	line(tbl.Header)
	for _, row := range tbl.Rows {
		line(row)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeJSON outputs rows as objects keyed by column names, keys in
// column order.
func writeJSON(w io.Writer, tbl report.Table) error {
	records := make([]orderedRecord, len(tbl.Rows))
	for i, row := range tbl.Rows {
		records[i] = orderedRecord{header: tbl.Header, row: row}
	}

	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(records)
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// orderedRecord is a report row encoded as a JSON object whose keys
// follow the header.
type orderedRecord struct {
	header []string
	row    []string
}

func (r orderedRecord) MarshalJSON() ([]byte, error) {
	enc := gnfmt.GNjson{}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.header {
		var val string
		if i < len(r.row) {
			val = r.row[i]
		}
		k, err := enc.Encode(col)
		if err != nil {
			return nil, err
		}
		v, err := enc.Encode(val)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
