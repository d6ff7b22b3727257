package state

import (
	"github.com/gnames/authcheck/pkg/aggregate"
	"github.com/gnames/authcheck/pkg/combine"
	"github.com/gnames/authcheck/pkg/model"
)

// Recompute derives papers, authors and conflicts for the current
// dataset, or for the union of all datasets. Nothing is carried over
// from the previous derived fields.
func Recompute(s State, quota int) (State, error) {
	var view combine.View
	var err error

	if s.CurrentDatasetID == AllDatasets {
		view, err = combine.CombineAll(
			s.Datasets, s.AuthorMerges, s.FlaggedEmails, quota,
		)
	} else {
		ds, ok := s.Dataset(s.CurrentDatasetID)
		if !ok {
			return s, DatasetNotFoundError(s.CurrentDatasetID)
		}
		view, err = combine.Compute(
			ds.Submissions, s.AuthorMerges, s.FlaggedEmails, quota,
		)
	}
	if err != nil {
		return s, err
	}

	res := s.clone()
	res.Papers = view.Submissions
	res.Authors = view.Authors
	res.EmailConflicts = view.EmailConflicts
	res.NameConflicts = view.NameConflicts
	return res, nil
}

// Violators returns authors over quota, most papers first.
func (s State) Violators() []*model.Author {
	var res []*model.Author
	for _, a := range aggregate.Sorted(s.Authors) {
		if a.HasWarning {
			res = append(res, a)
		}
	}
	return res
}
