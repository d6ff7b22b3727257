// Package aggregate builds per-author aggregates from submissions and
// detects identity conflicts between names and e-mails.
package aggregate

import (
	"slices"

	"github.com/gnames/authcheck/pkg/model"
)

// Authors builds one aggregate per distinct e-mail. A paper id is added
// once per author position, so an e-mail repeated on the same paper counts
// twice. The first non-empty organization and the first seen name win.
func Authors(subs []model.Submission, quota int) map[string]*model.Author {
	res := make(map[string]*model.Author)
	for _, sub := range subs {
		for i, email := range sub.AuthorEmails {
			a, ok := res[email]
			if !ok {
				a = &model.Author{
					Name:     nameAt(sub, i),
					Email:    email,
					PaperIDs: []int{},
				}
				res[email] = a
			}
			a.PaperIDs = append(a.PaperIDs, sub.PaperID)
			if a.Organization == "" {
				a.Organization = organizationAt(sub, i)
			}
		}
	}

	for _, a := range res {
		Finalize(a, quota)
	}
	return res
}

// Finalize sorts paper ids and recomputes the count and the quota flag.
func Finalize(a *model.Author, quota int) {
	slices.Sort(a.PaperIDs)
	a.PaperCount = len(a.PaperIDs)
	a.HasWarning = a.PaperCount > quota
}

// Emails returns sorted keys of an author map.
func Emails(authors map[string]*model.Author) []string {
	res := make([]string, 0, len(authors))
	for k := range authors {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Sorted returns authors ordered by descending paper count, then e-mail.
func Sorted(authors map[string]*model.Author) []*model.Author {
	res := make([]*model.Author, 0, len(authors))
	for _, k := range Emails(authors) {
		res = append(res, authors[k])
	}
	slices.SortStableFunc(res, func(a, b *model.Author) int {
		return b.PaperCount - a.PaperCount
	})
	return res
}

func nameAt(sub model.Submission, i int) string {
	if i < len(sub.AuthorNames) && sub.AuthorNames[i] != "" {
		return sub.AuthorNames[i]
	}
	return model.UnknownAuthor
}

func organizationAt(sub model.Submission, i int) string {
	if i < len(sub.AuthorOrganizations) {
		return sub.AuthorOrganizations[i]
	}
	return ""
}
