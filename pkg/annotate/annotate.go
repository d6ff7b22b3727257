// Package annotate marks submissions whose authors are over quota.
package annotate

import (
	"slices"

	"github.com/gnames/authcheck/pkg/merge"
	"github.com/gnames/authcheck/pkg/model"
)

// MarkWarnings returns copies of submissions with fresh warning
// annotations. An author position gets a warning when its canonical
// author is over quota and the paper's rank among the author's papers,
// ordered by ascending paper id, exceeds the quota. The name and e-mail in
// a warning are the ones written on the submission.
//
// The result depends only on the arguments, previous annotations are
// discarded.
func MarkWarnings(
	subs []model.Submission,
	authors map[string]*model.Author,
	merges []model.AuthorMerge,
	quota int,
) []model.Submission {
	canonical := merge.CanonicalEmails(merges)

	res := make([]model.Submission, len(subs))
	for i, sub := range subs {
		sub.WarningAuthors = []model.WarningAuthor{}
		for j, email := range sub.AuthorEmails {
			a, ok := authors[merge.Canonical(canonical, email)]
			if !ok || !a.HasWarning {
				continue
			}
			rank := slices.Index(a.PaperIDs, sub.PaperID) + 1
			if rank <= quota {
				continue
			}
			sub.WarningAuthors = append(sub.WarningAuthors, model.WarningAuthor{
				Name:       nameAt(sub, j),
				Email:      email,
				PaperCount: a.PaperCount,
				PaperRank:  rank,
			})
		}
		sub.HasWarning = len(sub.WarningAuthors) > 0
		res[i] = sub
	}
	return res
}

func nameAt(sub model.Submission, i int) string {
	if i < len(sub.AuthorNames) && sub.AuthorNames[i] != "" {
		return sub.AuthorNames[i]
	}
	return model.UnknownAuthor
}
