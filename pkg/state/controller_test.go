package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/authcheck/pkg/merge"
	"github.com/gnames/authcheck/pkg/model"
	"github.com/gnames/authcheck/pkg/state"
	"github.com/gnames/authcheck/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps the last saved snapshot in memory.
type memStore struct {
	snap    *store.Snapshot
	saves   int
	failErr error
}

func (m *memStore) Load(context.Context) (*store.Snapshot, error) {
	if m.snap == nil {
		return &store.Snapshot{}, nil
	}
	return m.snap, nil
}

func (m *memStore) Save(_ context.Context, snap *store.Snapshot) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.snap = snap
	m.saves++
	return nil
}

func (m *memStore) Close() error { return nil }

func rows() []model.Row {
	return []model.Row{
		{model.ColPaperID: "10", model.ColAuthorNames: "X Y",
			model.ColAuthorEmails: "x@example.com"},
		{model.ColPaperID: "20", model.ColAuthorNames: "X Y; Ann Lee",
			model.ColAuthorEmails: "x@example.com; ann@a.org"},
		{model.ColPaperID: "30", model.ColAuthorNames: "X Y",
			model.ColAuthorEmails: "x@example.com"},
		{model.ColPaperID: "", model.ColAuthorNames: "Nobody"},
	}
}

func TestController(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	st := &memStore{}

	c, err := state.NewController(ctx, st, 2)
	require.NoError(t, err)
	assert.Empty(c.State().Datasets)

	ds, stats, err := c.Import(ctx, "main", "papers.csv", rows())
	require.NoError(t, err)
	assert.Equal("main", ds.Label)
	assert.Equal(3, stats.SubmissionsNum)
	assert.Equal(1, stats.SkippedNum)
	assert.Equal(1, st.saves)

	s := c.State()
	assert.Equal(ds.ID, s.CurrentDatasetID)
	assert.True(s.Authors["x@example.com"].HasWarning)
	assert.True(s.Papers[2].HasWarning)

	sum := c.Summary()
	assert.Equal(1, sum.ViolatorsNum)
	assert.Equal(1, sum.FlaggedPapersNum)

	m, err := c.MergeAuthors(ctx,
		merge.Identity{Email: "ann@a.org"},
		[]merge.Identity{{Email: "x@example.com"}},
		"same person",
	)
	require.NoError(t, err)
	assert.Equal("Ann Lee", m.PrimaryName)
	assert.Equal([]string{"X Y"}, m.MergedNames)
	assert.Len(m.ID, 36)
	assert.Len(c.State().Authors, 1)

	// a new controller on the same store restores the view
	c2, err := state.NewController(ctx, st, 2)
	require.NoError(t, err)
	assert.Equal(c.State().Authors, c2.State().Authors)
	assert.Equal(c.State().AuthorMerges, c2.State().AuthorMerges)

	flagged, err := c.FlagDuplicate(ctx, "ann@a.org")
	require.NoError(t, err)
	assert.True(flagged)
	assert.True(c.State().Authors["ann@a.org"].HasPotentialDuplicate)

	require.NoError(t, c.UnmergeAuthors(ctx, "x@example.com"))
	assert.Len(c.State().Authors, 2)

	require.NoError(t, c.SetCurrentDataset(ctx, "all"))
	require.NoError(t, c.RemoveDataset(ctx, ds.ID))
	assert.Empty(c.State().Papers)

	require.NoError(t, c.Reset(ctx))
	assert.Empty(c.State().FlaggedEmails)
}

func TestControllerKeepsStateOnError(t *testing.T) {
	ctx := context.Background()
	st := &memStore{}
	c, err := state.NewController(ctx, st, 2)
	require.NoError(t, err)
	_, _, err = c.Import(ctx, "", "papers.csv", rows())
	require.NoError(t, err)

	err = c.RemoveAuthorFromMerge(ctx, "x@example.com")
	assert.Error(t, err)

	st.failErr = errors.New("disk full")
	err = c.RemoveDataset(ctx, c.State().CurrentDatasetID)
	assert.Error(t, err)
	assert.Len(t, c.State().Datasets, 1)
}

func TestControllerImportNoData(t *testing.T) {
	ctx := context.Background()
	c, err := state.NewController(ctx, &memStore{}, 2)
	require.NoError(t, err)

	_, _, err = c.Import(ctx, "", "empty.csv", []model.Row{
		{model.ColPaperTitle: "no id"},
	})
	assert.Error(t, err)
	assert.Empty(t, c.State().Datasets)
}
