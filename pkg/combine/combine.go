// Package combine runs the reconciliation pipeline over one or many
// datasets: aggregation, conflict detection, merges and warnings.
package combine

import (
	"github.com/gnames/authcheck/pkg/aggregate"
	"github.com/gnames/authcheck/pkg/annotate"
	"github.com/gnames/authcheck/pkg/merge"
	"github.com/gnames/authcheck/pkg/model"
)

// View is the derived state of a set of submissions.
type View struct {
	// Submissions carry fresh warning annotations.
	Submissions []model.Submission `json:"submissions"`

	// Authors are keyed by canonical e-mail, merges applied.
	Authors map[string]*model.Author `json:"authors"`

	// EmailConflicts maps e-mails to the distinct names used with them,
	// computed before merges.
	EmailConflicts map[string][]string `json:"emailConflicts"`

	NameConflicts []aggregate.NameConflict `json:"nameConflicts"`
}

// Compute derives a View from submissions. Flagged e-mails get
// HasPotentialDuplicate before merges, so a merged author is flagged
// when any of its members is.
func Compute(
	subs []model.Submission,
	merges []model.AuthorMerge,
	flagged []string,
	quota int,
) (View, error) {
	var res View
	authors := aggregate.Authors(subs, quota)

	res.EmailConflicts = aggregate.EmailConflicts(subs)
	aggregate.MarkEmailConflicts(authors, res.EmailConflicts)
	res.NameConflicts = aggregate.NameConflicts(subs)

	for _, email := range flagged {
		if a, ok := authors[email]; ok {
			a.HasPotentialDuplicate = true
		}
	}

	if len(merges) > 0 {
		var err error
		authors, err = merge.Apply(authors, merges, quota)
		if err != nil {
			return res, err
		}
	}

	res.Authors = authors
	res.Submissions = annotate.MarkWarnings(subs, authors, merges, quota)
	return res, nil
}

// CombineAll concatenates submissions of all datasets in order and
// computes the View afresh. Paper ids are not deduplicated across
// datasets, and per-dataset aggregates are ignored.
func CombineAll(
	datasets []model.Dataset,
	merges []model.AuthorMerge,
	flagged []string,
	quota int,
) (View, error) {
	var subsNum int
	for _, ds := range datasets {
		subsNum += len(ds.Submissions)
	}
	subs := make([]model.Submission, 0, subsNum)
	for _, ds := range datasets {
		subs = append(subs, ds.Submissions...)
	}
	return Compute(subs, merges, flagged, quota)
}
