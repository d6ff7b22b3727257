// Package state holds the reconciliation state and the actions that
// change it. Actions are pure: they take a State and return a new one.
// Derived fields are filled by Recompute.
package state

import (
	"slices"

	"github.com/gnames/authcheck/pkg/aggregate"
	"github.com/gnames/authcheck/pkg/model"
	"github.com/gnames/authcheck/pkg/store"
)

// AllDatasets selects the combined view of every dataset.
const AllDatasets = ""

// State is the source data plus the view derived from it.
type State struct {
	Datasets []model.Dataset

	// CurrentDatasetID is AllDatasets or an ID from Datasets.
	CurrentDatasetID string

	AuthorMerges  []model.AuthorMerge
	FlaggedEmails []string

	// Papers are submissions of the current view with warnings.
	Papers []model.Submission

	// Authors are keyed by canonical e-mail.
	Authors        map[string]*model.Author
	EmailConflicts map[string][]string
	NameConflicts  []aggregate.NameConflict
}

// New returns an empty State.
func New() State {
	return State{
		Datasets:       []model.Dataset{},
		AuthorMerges:   []model.AuthorMerge{},
		FlaggedEmails:  []string{},
		Papers:         []model.Submission{},
		Authors:        map[string]*model.Author{},
		EmailConflicts: map[string][]string{},
		NameConflicts:  []aggregate.NameConflict{},
	}
}

// FromSnapshot restores source data. Derived fields stay empty until
// Recompute.
func FromSnapshot(snap *store.Snapshot) State {
	res := New()
	if snap == nil {
		return res
	}
	res.Datasets = append(res.Datasets, snap.Datasets...)
	res.CurrentDatasetID = snap.CurrentDatasetID
	for _, m := range snap.AuthorMerges {
		res.AuthorMerges = append(res.AuthorMerges, m.Clone())
	}
	res.FlaggedEmails = append(res.FlaggedEmails, snap.FlaggedEmails...)
	return res
}

// Snapshot returns the persisted part of the State.
func (s State) Snapshot() *store.Snapshot {
	res := &store.Snapshot{
		Datasets:         slices.Clone(s.Datasets),
		CurrentDatasetID: s.CurrentDatasetID,
		AuthorMerges:     make([]model.AuthorMerge, len(s.AuthorMerges)),
		FlaggedEmails:    slices.Clone(s.FlaggedEmails),
	}
	for i, m := range s.AuthorMerges {
		res.AuthorMerges[i] = m.Clone()
	}
	return res
}

// Dataset returns the dataset with the given ID.
func (s State) Dataset(id string) (model.Dataset, bool) {
	i := s.datasetIndex(id)
	if i < 0 {
		return model.Dataset{}, false
	}
	return s.Datasets[i], true
}

// IsFlagged reports whether the e-mail is flagged as a potential
// duplicate.
func (s State) IsFlagged(email string) bool {
	return slices.Contains(s.FlaggedEmails, email)
}

func (s State) datasetIndex(id string) int {
	return slices.IndexFunc(s.Datasets, func(ds model.Dataset) bool {
		return ds.ID == id
	})
}

// clone copies the source data so that actions never share slices with
// their input.
func (s State) clone() State {
	res := s
	res.Datasets = slices.Clone(s.Datasets)
	res.AuthorMerges = make([]model.AuthorMerge, len(s.AuthorMerges))
	for i, m := range s.AuthorMerges {
		res.AuthorMerges[i] = m.Clone()
	}
	res.FlaggedEmails = slices.Clone(s.FlaggedEmails)
	return res
}
