// Package iosheet reads conference spreadsheets exported as CSV or TSV
// into keyed rows.
package iosheet

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/authcheck/pkg/model"
	"golang.org/x/sync/errgroup"
)

// HeaderMarker is a substring of a cell in the header row. Rows above the
// header are title rows and are ignored.
const HeaderMarker = "Paper ID"

// Sheet is a parsed spreadsheet.
type Sheet struct {
	Path string

	// Header holds trimmed column names.
	Header []string

	// HeaderRow is the 0-based index of the header among raw rows.
	HeaderRow int

	Rows []model.Row
}

// FileName returns the base name of the sheet file.
func (s Sheet) FileName() string {
	return filepath.Base(s.Path)
}

// Read parses a CSV or TSV file. The separator is chosen by the file
// extension.
func Read(path string) (Sheet, error) {
	res := Sheet{Path: path}
	sep, err := separator(path)
	if err != nil {
		return res, err
	}

	f, err := os.Open(path)
	if err != nil {
		return res, ReadError(path, err)
	}
	defer f.Close()

	return parse(f, path, sep)
}

// ReadAll reads files concurrently using up to jobs workers. Sheets are
// returned in the order of paths. The first error cancels the rest.
func ReadAll(ctx context.Context, paths []string, jobs int) ([]Sheet, error) {
	res := make([]Sheet, len(paths))
	if jobs < 1 {
		jobs = 1
	}

	bar := pb.Full.Start(len(paths))
	bar.Set("prefix", "Reading sheets: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			sheet, err := Read(path)
			if err != nil {
				return err
			}
			res[i] = sheet
			bar.Increment()
			slog.Info("Sheet read",
				"file", path,
				"rows", len(sheet.Rows),
				"header_row", sheet.HeaderRow,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func separator(path string) (rune, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ',', nil
	case ".tsv", ".tab", ".txt":
		return '\t', nil
	default:
		return 0, UnsupportedFormatError(path)
	}
}

func parse(r io.Reader, path string, sep rune) (Sheet, error) {
	res := Sheet{Path: path}

	reader := csv.NewReader(r)
	reader.Comma = sep
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	raw, err := reader.ReadAll()
	if err != nil {
		return res, ReadError(path, err)
	}

	res.HeaderRow = headerIndex(raw)
	if res.HeaderRow < 0 {
		return res, HeaderNotFoundError(path)
	}
	res.Header = cleanHeader(raw[res.HeaderRow])

	res.Rows = make([]model.Row, 0, len(raw)-res.HeaderRow-1)
	for _, cells := range raw[res.HeaderRow+1:] {
		if isBlank(cells) {
			continue
		}
		res.Rows = append(res.Rows, toRow(res.Header, cells))
	}
	return res, nil
}

func headerIndex(raw [][]string) int {
	for i, cells := range raw {
		for _, v := range cells {
			if strings.Contains(v, HeaderMarker) {
				return i
			}
		}
	}
	return -1
}

// cleanHeader trims names and drops a byte order mark.
func cleanHeader(cells []string) []string {
	res := make([]string, len(cells))
	for i, v := range cells {
		if i == 0 {
			v = strings.TrimPrefix(v, "\ufeff")
		}
		res[i] = strings.TrimSpace(v)
	}
	return res
}

// toRow keys cells by header. Missing cells become empty strings, cells
// beyond the header and unnamed columns are dropped. For repeated column
// names the first one wins.
func toRow(header, cells []string) model.Row {
	res := make(model.Row, len(header))
	for i, col := range header {
		if col == "" {
			continue
		}
		if _, ok := res[col]; ok {
			continue
		}
		if i < len(cells) {
			res[col] = cells[i]
		} else {
			res[col] = ""
		}
	}
	return res
}

func isBlank(cells []string) bool {
	for _, v := range cells {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
