package ioreport_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/authcheck/internal/ioreport"
	"github.com/gnames/authcheck/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tbl = report.Table{
	Kind:   report.Authors,
	Header: []string{"Name", "Email", "Paper IDs"},
	Rows: [][]string{
		{"Ann Lee", "ann@a.org", "1, 2, 3"},
		{"Bob \"B\" Stone", "bob@b.org", "4"},
	},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		res   ioreport.Format
		err   bool
	}{
		{"table", ioreport.FormatTable, false},
		{" CSV ", ioreport.FormatCSV, false},
		{"json", ioreport.FormatJSON, false},
		{"xlsx", "", true},
	}
	for _, v := range tests {
		res, err := ioreport.ParseFormat(v.input)
		assert.Equal(t, v.err, err != nil, v.input)
		assert.Equal(t, v.res, res, v.input)
	}

	res, err := ioreport.ParseFormat("")
	require.NoError(t, err)
	assert.Contains(t, []ioreport.Format{ioreport.FormatTable, ioreport.FormatCSV}, res)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioreport.Write(&buf, tbl, ioreport.FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Email,Paper IDs", lines[0])
	assert.Equal(t, `Ann Lee,ann@a.org,"1, 2, 3"`, lines[1])
	assert.Equal(t, `"Bob ""B"" Stone",bob@b.org,4`, lines[2])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioreport.Write(&buf, tbl, ioreport.FormatJSON))

	var res []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res, 2)
	assert.Equal(t, "ann@a.org", res[0]["Email"])
	assert.Equal(t, "4", res[1]["Paper IDs"])

	// keys keep column order, not alphabetical order
	out := buf.String()
	first := out[:strings.Index(out, "}")]
	name := strings.Index(first, `"Name"`)
	email := strings.Index(first, `"Email"`)
	ids := strings.Index(first, `"Paper IDs"`)
	require.True(t, name >= 0 && email >= 0 && ids >= 0, first)
	assert.Less(t, name, email)
	assert.Less(t, email, ids)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioreport.Write(&buf, tbl, ioreport.FormatTable))
	out := buf.String()
	assert.Contains(t, out, "ann@a.org")
	assert.Contains(t, out, "bob@b.org")

	buf.Reset()
	sum := report.Table{
		Kind:   report.SummaryKind,
		Header: []string{"Metric", "Value"},
		Rows:   [][]string{{"Papers", "10"}},
	}
	require.NoError(t, ioreport.Write(&buf, sum, ioreport.FormatTable))
	assert.Contains(t, buf.String(), "10")
}

func TestWriteFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	path := filepath.Join(t.TempDir(), "authors.csv")
	require.NoError(t, ioreport.WriteFile(path, tbl, ioreport.FormatCSV))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Name,Email"))

	err = ioreport.WriteFile(filepath.Join(path, "x.csv"), tbl, ioreport.FormatCSV)
	assert.Error(t, err)

	err = ioreport.Write(&bytes.Buffer{}, tbl, ioreport.Format("pdf"))
	assert.Error(t, err)
}
