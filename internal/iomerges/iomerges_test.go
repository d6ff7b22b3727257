package iomerges_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/authcheck/internal/iomerges"
	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/authcheck/pkg/model"
	"github.com/gnames/authcheck/pkg/templates"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	return gnErr.Code
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)
	res, err := iomerges.Decode([]byte(templates.MergesYAML), "merges.yaml", now)
	require.NoError(t, err)
	require.Len(t, res, 1)

	m := res[0]
	assert.Len(m.ID, 36)
	assert.Equal("ann.lee@uni.edu", m.PrimaryEmail)
	assert.Equal("Ann Lee", m.PrimaryName)
	assert.Equal([]string{"alee@gmail.com"}, m.MergedEmails)
	assert.Equal([]string{"A. Lee"}, m.MergedNames)
	assert.Equal("same ORCID", m.Note)
	assert.Equal(now, m.CreatedAt)

	again, err := iomerges.Decode([]byte(templates.MergesYAML), "merges.yaml", now)
	require.NoError(t, err)
	assert.NotEqual(m.ID, again[0].ID)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		msg  string
		data string
		code gn.ErrorCode
	}{
		{"bad yaml", "primary_email: [", errcode.MergesFileReadError},
		{"no merged", "- primary_email: a@b.c\n  merged: []\n",
			errcode.MergeInvalidError},
		{"overlap", `
- primary_email: a@b.c
  merged: [{email: x@y.z}]
- primary_email: d@e.f
  merged: [{email: x@y.z}]
`, errcode.MergeOverlapError},
	}

	for _, v := range tests {
		_, err := iomerges.Decode([]byte(v.data), "m.yaml", now)
		require.Error(t, err, v.msg)
		assert.Equal(t, v.code, errCode(t, err), v.msg)
	}
}

func TestSaveLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	merges := []model.AuthorMerge{
		{
			ID:           "a",
			PrimaryEmail: "a@x.org",
			PrimaryName:  "Ann",
			MergedEmails: []string{"b@x.org", "c@x.org"},
			MergedNames:  []string{"A. B", "A. C"},
			Note:         "checked",
		},
		{
			ID:           "b",
			PrimaryEmail: "d@x.org",
			MergedEmails: []string{"e@x.org"},
			MergedNames:  []string{""},
		},
	}
	path := filepath.Join(t.TempDir(), "merges.yaml")
	require.NoError(t, iomerges.Save(path, merges))

	res, err := iomerges.Load(path, now)
	require.NoError(t, err)
	require.Len(t, res, 2)
	for i := range merges {
		assert.Equal(t, merges[i].PrimaryEmail, res[i].PrimaryEmail)
		assert.Equal(t, merges[i].PrimaryName, res[i].PrimaryName)
		assert.Equal(t, merges[i].MergedEmails, res[i].MergedEmails)
		assert.Equal(t, merges[i].MergedNames, res[i].MergedNames)
		assert.Equal(t, merges[i].Note, res[i].Note)
	}

	_, err = iomerges.Load(filepath.Join(t.TempDir(), "none.yaml"), now)
	assert.Equal(t, errcode.ReadFileError, errCode(t, err))

	err = iomerges.Save(filepath.Join(path, "sub", "m.yaml"), merges)
	assert.Equal(t, errcode.WriteFileError, errCode(t, err))
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
