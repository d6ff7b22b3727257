package iosheet

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/authcheck/pkg/model"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvData = `Conference 2025,,,
Exported 2025-03-01,,,
"Paper ID ",Paper Title,Author Names,Author Emails
1,Deep Things,"Ann Lee*; Bob Stone","ann@a.org*; bob@b.org"
,,,
2,"Short, row",Carl
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	return gnErr.Code
}

func TestParse(t *testing.T) {
	assert := assert.New(t)
	sheet, err := parse(strings.NewReader(csvData), "test.csv", ',')
	require.NoError(t, err)

	assert.Equal(2, sheet.HeaderRow)
	assert.Equal([]string{
		"Paper ID", "Paper Title", "Author Names", "Author Emails",
	}, sheet.Header)
	require.Len(t, sheet.Rows, 2)

	first := sheet.Rows[0]
	assert.Equal("1", first.Get(model.ColPaperID))
	assert.Equal("Ann Lee*; Bob Stone", first.Get(model.ColAuthorNames))
	assert.Equal("ann@a.org*; bob@b.org", first.Get(model.ColAuthorEmails))

	second := sheet.Rows[1]
	assert.Equal("Short, row", second.Get(model.ColPaperTitle))
	assert.Equal("Carl", second.Get(model.ColAuthorNames))
	v, ok := second[model.ColAuthorEmails]
	assert.True(ok)
	assert.Equal("", v)
}

func TestParseHeaderVariants(t *testing.T) {
	tests := []struct {
		msg    string
		data   string
		sep    rune
		header []string
		rows   int
	}{
		{"bom", "\ufeffPaper ID,Title\n1,A\n", ',', []string{"Paper ID", "Title"}, 1},
		{"tsv", "Paper ID\tTitle\n1\tA\n2\tB\n", '\t',
			[]string{"Paper ID", "Title"}, 2},
		{"marker inside cell", "x\nOld Paper ID,Title\n1,A\n", ',',
			[]string{"Old Paper ID", "Title"}, 1},
		{"header only", "Paper ID,Title\n", ',', []string{"Paper ID", "Title"}, 0},
	}

	for _, v := range tests {
		sheet, err := parse(strings.NewReader(v.data), "f", v.sep)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.header, sheet.Header, v.msg)
		assert.Len(t, sheet.Rows, v.rows, v.msg)
	}
}

func TestParseNoHeader(t *testing.T) {
	_, err := parse(strings.NewReader("a,b\n1,2\n"), "f.csv", ',')
	require.Error(t, err)
	assert.Equal(t, errcode.SheetHeaderNotFoundError, errCode(t, err))
}

func TestToRowDuplicateColumns(t *testing.T) {
	row := toRow([]string{"A", "", "A", "B"}, []string{"1", "2", "3"})
	assert.Equal(t, model.Row{"A": "1", "B": ""}, row)
}

func TestRead(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	path := writeFile(t, "papers.csv", csvData)
	sheet, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "papers.csv", sheet.FileName())
	assert.Len(t, sheet.Rows, 2)

	_, err = Read(writeFile(t, "papers.xlsx", "PK"))
	assert.Equal(t, errcode.SheetUnsupportedFormatError, errCode(t, err))

	_, err = Read(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Equal(t, errcode.SheetReadError, errCode(t, err))
}

func TestReadAll(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	paths := []string{
		writeFile(t, "a.csv", csvData),
		writeFile(t, "b.tsv", "Paper ID\tAuthor Emails\n7\tx@y.org\n"),
	}
	sheets, err := ReadAll(context.Background(), paths, 2)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, "a.csv", sheets[0].FileName())
	assert.Equal(t, "7", sheets[1].Rows[0].Get(model.ColPaperID))

	paths = append(paths, writeFile(t, "c.csv", "no,header\n"))
	_, err = ReadAll(context.Background(), paths, 1)
	assert.Error(t, err)
}
