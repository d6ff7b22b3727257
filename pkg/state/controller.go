package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gnames/authcheck/pkg/merge"
	"github.com/gnames/authcheck/pkg/model"
	"github.com/gnames/authcheck/pkg/record"
	"github.com/gnames/authcheck/pkg/store"
	"github.com/google/uuid"
)

// Controller owns one State and persists it after every change. All
// changes go through it one at a time.
type Controller struct {
	mu    sync.Mutex
	st    store.Store
	quota int
	state State

	// now is replaced in tests.
	now func() time.Time
}

// NewController loads the latest snapshot from the store and computes
// the current view.
func NewController(
	ctx context.Context,
	st store.Store,
	quota int,
) (*Controller, error) {
	snap, err := st.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := FromSnapshot(snap)
	if s.datasetIndex(s.CurrentDatasetID) < 0 {
		s.CurrentDatasetID = AllDatasets
	}
	s, err = Recompute(s, quota)
	if err != nil {
		return nil, err
	}

	slog.Info("State loaded",
		"datasets", len(s.Datasets),
		"merges", len(s.AuthorMerges),
		"quota", quota,
	)
	return &Controller{st: st, quota: quota, state: s, now: time.Now}, nil
}

// State returns the current State.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Quota returns the submission limit used for recomputes.
func (c *Controller) Quota() int {
	return c.quota
}

// Summary returns totals of the current view.
func (c *Controller) Summary() Summary {
	return Summarize(c.State(), c.quota)
}

// Import builds submissions from rows and adds them as a new dataset.
func (c *Controller) Import(
	ctx context.Context,
	label, fileName string,
	rows []model.Row,
) (model.Dataset, record.Stats, error) {
	subs, stats, err := record.BuildAll(rows)
	if err != nil {
		return model.Dataset{}, stats, err
	}

	err = c.apply(ctx, func(s State) (State, error) {
		return ImportData(s, Import{
			Label:       label,
			FileName:    fileName,
			Submissions: subs,
			ImportedAt:  c.now(),
			Quota:       c.quota,
		})
	})
	if err != nil {
		return model.Dataset{}, stats, err
	}

	s := c.State()
	ds, _ := s.Dataset(s.CurrentDatasetID)
	slog.Info("Dataset imported",
		"id", ds.ID,
		"file", fileName,
		"rows", stats.RowsNum,
		"submissions", stats.SubmissionsNum,
		"skipped", stats.SkippedNum,
	)
	return ds, stats, nil
}

// RemoveDataset deletes a dataset.
func (c *Controller) RemoveDataset(ctx context.Context, id string) error {
	return c.apply(ctx, func(s State) (State, error) {
		return RemoveDataset(s, id)
	})
}

// SetCurrentDataset selects a dataset or all of them.
func (c *Controller) SetCurrentDataset(ctx context.Context, id string) error {
	return c.apply(ctx, func(s State) (State, error) {
		return SetCurrentDataset(s, id)
	})
}

// MergeAuthors merges identities into the primary one. Names missing
// from identities are taken from the current authors.
func (c *Controller) MergeAuthors(
	ctx context.Context,
	primary merge.Identity,
	others []merge.Identity,
	note string,
) (model.AuthorMerge, error) {
	var res model.AuthorMerge
	err := c.apply(ctx, func(s State) (State, error) {
		in := Merge{
			ID:      uuid.NewString(),
			Primary: s.withName(primary),
			Note:    note,
			Now:     c.now(),
		}
		for _, v := range others {
			in.Others = append(in.Others, s.withName(v))
		}
		s, err := MergeAuthors(s, in)
		if err != nil {
			return s, err
		}
		res = s.AuthorMerges[len(s.AuthorMerges)-1]
		return s, nil
	})
	return res, err
}

// UnmergeAuthors deletes the merge group containing the e-mail.
func (c *Controller) UnmergeAuthors(ctx context.Context, email string) error {
	return c.apply(ctx, func(s State) (State, error) {
		return UnmergeAuthors(s, email)
	})
}

// RemoveAuthorFromMerge takes one e-mail out of its merge group.
func (c *Controller) RemoveAuthorFromMerge(
	ctx context.Context,
	email string,
) error {
	return c.apply(ctx, func(s State) (State, error) {
		return RemoveAuthorFromMerge(s, email)
	})
}

// ReplaceMerges sets all merge groups at once.
func (c *Controller) ReplaceMerges(
	ctx context.Context,
	merges []model.AuthorMerge,
) error {
	return c.apply(ctx, func(s State) (State, error) {
		return ReplaceMerges(s, merges)
	})
}

// FlagDuplicate toggles the potential-duplicate flag and reports the new
// value.
func (c *Controller) FlagDuplicate(
	ctx context.Context,
	email string,
) (bool, error) {
	err := c.apply(ctx, func(s State) (State, error) {
		return FlagDuplicate(s, email)
	})
	if err != nil {
		return false, err
	}
	return c.State().IsFlagged(email), nil
}

// Reset drops all data.
func (c *Controller) Reset(ctx context.Context) error {
	return c.apply(ctx, Reset)
}

// apply runs an action, recomputes the view and saves the snapshot. On
// any error the previous State stays.
func (c *Controller) apply(
	ctx context.Context,
	action func(State) (State, error),
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := action(c.state)
	if err != nil {
		return err
	}
	s, err = Recompute(s, c.quota)
	if err != nil {
		return err
	}

	snap := s.Snapshot()
	snap.SavedAt = c.now()
	if err = c.st.Save(ctx, snap); err != nil {
		return err
	}
	c.state = s
	return nil
}

// withName fills a missing name from the current authors.
func (s State) withName(id merge.Identity) merge.Identity {
	if id.Name != "" {
		return id
	}
	if a, ok := s.Authors[id.Email]; ok {
		id.Name = a.Name
		return id
	}
	for _, ds := range s.Datasets {
		if a, ok := ds.Authors[id.Email]; ok {
			id.Name = a.Name
			break
		}
	}
	return id
}
