package combine_test

import (
	"testing"

	"github.com/gnames/authcheck/pkg/combine"
	"github.com/gnames/authcheck/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sub(id int, names, emails []string) model.Submission {
	return model.Submission{
		PaperID:             id,
		AuthorNames:         names,
		AuthorEmails:        emails,
		AuthorOrganizations: make([]string, len(emails)),
		WarningAuthors:      []model.WarningAuthor{},
	}
}

func TestCompute(t *testing.T) {
	assert := assert.New(t)
	subs := []model.Submission{
		sub(1, []string{"Ann Lee"}, []string{"ann@a.org"}),
		sub(2, []string{"A. Lee"}, []string{"ann@a.org"}),
		sub(3, []string{"ann lee"}, []string{"lee@b.org"}),
		sub(4, []string{"Bob"}, []string{"bob@c.org"}),
	}

	view, err := combine.Compute(subs, nil, []string{"bob@c.org", "none"}, 2)
	require.NoError(t, err)
	assert.Len(view.Authors, 3)
	assert.Equal(map[string][]string{
		"ann@a.org": {"A. Lee", "Ann Lee"},
	}, view.EmailConflicts)
	assert.True(view.Authors["ann@a.org"].HasEmailConflict)
	assert.True(view.Authors["bob@c.org"].HasPotentialDuplicate)
	require.Len(t, view.NameConflicts, 1)
	assert.Equal("Ann Lee", view.NameConflicts[0].Name)
	assert.Equal([]string{"ann@a.org", "lee@b.org"}, view.NameConflicts[0].Emails)
	for _, v := range view.Submissions {
		assert.False(v.HasWarning)
	}
}

func TestComputeWithMerges(t *testing.T) {
	assert := assert.New(t)
	subs := []model.Submission{
		sub(1, []string{"Ann Lee"}, []string{"ann@a.org"}),
		sub(2, []string{"A. Lee"}, []string{"ann@a.org"}),
		sub(3, []string{"ann lee"}, []string{"lee@b.org"}),
	}
	merges := []model.AuthorMerge{{
		ID:           "m1",
		PrimaryEmail: "ann@a.org",
		PrimaryName:  "Ann Lee",
		MergedEmails: []string{"lee@b.org"},
		MergedNames:  []string{"ann lee"},
	}}

	view, err := combine.Compute(subs, merges, []string{"lee@b.org"}, 2)
	require.NoError(t, err)
	require.Len(t, view.Authors, 1)
	ann := view.Authors["ann@a.org"]
	assert.Equal([]int{1, 2, 3}, ann.PaperIDs)
	assert.False(ann.HasEmailConflict)
	assert.True(ann.HasPotentialDuplicate)
	assert.True(ann.HasWarning)

	// conflicts are reported as they were before merges
	assert.Contains(view.EmailConflicts, "ann@a.org")

	assert.True(view.Submissions[2].HasWarning)
	assert.Equal("lee@b.org", view.Submissions[2].WarningAuthors[0].Email)
}

func TestComputeBadMerges(t *testing.T) {
	merges := []model.AuthorMerge{{PrimaryEmail: "a"}}
	_, err := combine.Compute(nil, merges, nil, 2)
	assert.Error(t, err)
}

func TestCombineAll(t *testing.T) {
	assert := assert.New(t)
	x := []string{"x@example.com"}
	ds1 := model.Dataset{
		ID: "d1",
		Submissions: []model.Submission{
			sub(1, []string{"X"}, x),
			sub(2, []string{"X"}, x),
		},
	}
	ds2 := model.Dataset{
		ID: "d2",
		Submissions: []model.Submission{
			sub(1, []string{"X"}, x),
			sub(3, []string{"X"}, x),
		},
	}

	view, err := combine.CombineAll([]model.Dataset{ds1, ds2}, nil, nil, 2)
	require.NoError(t, err)
	require.Len(t, view.Submissions, 4)
	a := view.Authors["x@example.com"]
	assert.Equal([]int{1, 1, 2, 3}, a.PaperIDs)
	assert.Equal(4, a.PaperCount)
	assert.True(a.HasWarning)

	assert.False(view.Submissions[0].HasWarning)
	assert.False(view.Submissions[2].HasWarning)
	assert.True(view.Submissions[1].HasWarning)
	assert.True(view.Submissions[3].HasWarning)
	assert.Equal(4, view.Submissions[3].WarningAuthors[0].PaperRank)

	// each dataset alone stays under quota
	one, err := combine.CombineAll([]model.Dataset{ds1}, nil, nil, 2)
	require.NoError(t, err)
	assert.False(one.Authors["x@example.com"].HasWarning)
}
