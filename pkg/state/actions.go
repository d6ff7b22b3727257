package state

import (
	"slices"
	"strings"
	"time"

	"github.com/gnames/authcheck/pkg/aggregate"
	"github.com/gnames/authcheck/pkg/merge"
	"github.com/gnames/authcheck/pkg/model"
	"github.com/gnames/authcheck/pkg/record"
	"github.com/gnames/gnuuid"
)

// Import describes a parsed spreadsheet added to the State.
type Import struct {
	Label       string
	FileName    string
	Submissions []model.Submission
	ImportedAt  time.Time
	Quota       int
}

// ImportData adds a dataset and makes it current. The dataset keeps its
// own aggregate computed without merges.
func ImportData(s State, in Import) (State, error) {
	if len(in.Submissions) == 0 {
		return s, record.NoDataError(0)
	}
	authors := aggregate.Authors(in.Submissions, in.Quota)
	if len(authors) == 0 {
		return s, aggregate.NoAuthorsError(len(in.Submissions))
	}

	label := in.Label
	if label == "" {
		label = in.FileName
	}
	ts := in.ImportedAt.UTC().Format(time.RFC3339Nano)
	ds := model.Dataset{
		ID:          gnuuid.New(in.FileName + "|" + ts).String(),
		Label:       label,
		FileName:    in.FileName,
		ImportedAt:  in.ImportedAt,
		Submissions: in.Submissions,
		Authors:     authors,
	}

	res := s.clone()
	res.Datasets = append(res.Datasets, ds)
	res.CurrentDatasetID = ds.ID
	return res, nil
}

// RemoveDataset deletes a dataset. Removing the current one switches the
// view to all datasets.
func RemoveDataset(s State, id string) (State, error) {
	i := s.datasetIndex(id)
	if i < 0 {
		return s, DatasetNotFoundError(id)
	}
	res := s.clone()
	res.Datasets = slices.Delete(res.Datasets, i, i+1)
	if res.CurrentDatasetID == id {
		res.CurrentDatasetID = AllDatasets
	}
	return res, nil
}

// SetCurrentDataset selects a dataset, or all of them for AllDatasets
// and "all".
func SetCurrentDataset(s State, id string) (State, error) {
	if strings.EqualFold(id, "all") {
		id = AllDatasets
	}
	if id != AllDatasets && s.datasetIndex(id) < 0 {
		return s, DatasetNotFoundError(id)
	}
	res := s.clone()
	res.CurrentDatasetID = id
	return res, nil
}

// Merge describes a new merge group.
type Merge struct {
	ID      string
	Primary merge.Identity
	Others  []merge.Identity
	Note    string
	Now     time.Time
}

// MergeAuthors adds a merge group.
func MergeAuthors(s State, in Merge) (State, error) {
	merges, err := merge.Link(
		s.AuthorMerges, in.ID, in.Primary, in.Others, in.Note, in.Now,
	)
	if err != nil {
		return s, err
	}
	res := s.clone()
	res.AuthorMerges = merges
	return res, nil
}

// UnmergeAuthors deletes the merge group containing the e-mail.
func UnmergeAuthors(s State, email string) (State, error) {
	merges, err := merge.Unlink(s.AuthorMerges, email)
	if err != nil {
		return s, err
	}
	res := s.clone()
	res.AuthorMerges = merges
	return res, nil
}

// RemoveAuthorFromMerge takes one e-mail out of its merge group.
func RemoveAuthorFromMerge(s State, email string) (State, error) {
	merges, err := merge.RemoveEmail(s.AuthorMerges, email)
	if err != nil {
		return s, err
	}
	res := s.clone()
	res.AuthorMerges = merges
	return res, nil
}

// ReplaceMerges sets all merge groups at once.
func ReplaceMerges(s State, merges []model.AuthorMerge) (State, error) {
	if err := merge.Validate(merges); err != nil {
		return s, err
	}
	res := s.clone()
	res.AuthorMerges = make([]model.AuthorMerge, len(merges))
	for i, m := range merges {
		res.AuthorMerges[i] = m.Clone()
	}
	return res, nil
}

// FlagDuplicate toggles the potential-duplicate flag of an e-mail.
func FlagDuplicate(s State, email string) (State, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return s, EmptyEmailError()
	}
	res := s.clone()
	if i := slices.Index(res.FlaggedEmails, email); i >= 0 {
		res.FlaggedEmails = slices.Delete(res.FlaggedEmails, i, i+1)
		return res, nil
	}
	res.FlaggedEmails = append(res.FlaggedEmails, email)
	slices.Sort(res.FlaggedEmails)
	return res, nil
}

// Reset drops all data.
func Reset(State) (State, error) {
	return New(), nil
}
