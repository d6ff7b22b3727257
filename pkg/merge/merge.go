// Package merge applies user-declared identity merges to author
// aggregates and edits merge groups.
//
// Merge groups are disjoint: an e-mail belongs to at most one group, and
// a later merge never joins an earlier one transitively.
package merge

import (
	"slices"

	"github.com/gnames/authcheck/pkg/aggregate"
	"github.com/gnames/authcheck/pkg/model"
)

// Validate checks merge invariants: a primary e-mail is set, at least one
// e-mail is absorbed, the primary is not among merged e-mails, merged
// e-mails are unique, and no e-mail is shared between groups.
func Validate(merges []model.AuthorMerge) error {
	owner := make(map[string]string)
	for _, m := range merges {
		if err := validateOne(m); err != nil {
			return err
		}
		for _, email := range m.Emails() {
			if prim, ok := owner[email]; ok {
				return OverlapError(email, prim, m.PrimaryEmail)
			}
			owner[email] = m.PrimaryEmail
		}
	}
	return nil
}

func validateOne(m model.AuthorMerge) error {
	switch {
	case m.PrimaryEmail == "":
		return InvalidError(m.PrimaryEmail, "primary e-mail is empty")
	case len(m.MergedEmails) == 0:
		return InvalidError(m.PrimaryEmail, "no e-mails to merge")
	case len(m.MergedNames) != len(m.MergedEmails):
		return InvalidError(m.PrimaryEmail,
			"merged names and e-mails differ in length")
	case slices.Contains(m.MergedEmails, m.PrimaryEmail):
		return InvalidError(m.PrimaryEmail,
			"primary e-mail is among merged e-mails")
	}
	seen := make(map[string]struct{}, len(m.MergedEmails))
	for _, v := range m.MergedEmails {
		if v == "" {
			return InvalidError(m.PrimaryEmail, "merged e-mail is empty")
		}
		if _, ok := seen[v]; ok {
			return InvalidError(m.PrimaryEmail, "duplicate merged e-mail "+v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Apply replaces the aggregates of every merge group with a single
// aggregate keyed by the primary e-mail. Paper ids are united,
// deduplicated and sorted; the organization is the first non-empty one;
// the conflict flag is cleared. Every group is computed from the input
// snapshot, so the result does not depend on the order of merges. Groups
// without any aggregate in the input are skipped. The input map is not
// modified.
func Apply(
	authors map[string]*model.Author,
	merges []model.AuthorMerge,
	quota int,
) (map[string]*model.Author, error) {
	if err := Validate(merges); err != nil {
		return nil, err
	}

	res := make(map[string]*model.Author, len(authors))
	for k, v := range authors {
		res[k] = v.Clone()
	}

	for _, m := range merges {
		emails := m.Emails()
		var members []*model.Author
		for _, email := range emails {
			if a, ok := authors[email]; ok {
				members = append(members, a)
			}
		}
		if len(members) == 0 {
			continue
		}

		merged := &model.Author{
			Name:     m.PrimaryName,
			Email:    m.PrimaryEmail,
			PaperIDs: []int{},
		}
		if merged.Name == "" {
			merged.Name = members[0].Name
		}
		for _, a := range members {
			merged.PaperIDs = append(merged.PaperIDs, a.PaperIDs...)
			if merged.Organization == "" {
				merged.Organization = a.Organization
			}
			if a.HasPotentialDuplicate {
				merged.HasPotentialDuplicate = true
			}
		}
		slices.Sort(merged.PaperIDs)
		merged.PaperIDs = slices.Compact(merged.PaperIDs)
		aggregate.Finalize(merged, quota)

		for _, email := range emails {
			delete(res, email)
		}
		res[m.PrimaryEmail] = merged
	}
	return res, nil
}

// CanonicalEmails maps every e-mail of every merge group, the primary
// included, to the group's primary e-mail.
func CanonicalEmails(merges []model.AuthorMerge) map[string]string {
	res := make(map[string]string)
	for _, m := range merges {
		for _, email := range m.Emails() {
			res[email] = m.PrimaryEmail
		}
	}
	return res
}

// Canonical returns the canonical e-mail for an e-mail.
func Canonical(canonical map[string]string, email string) string {
	if v, ok := canonical[email]; ok {
		return v
	}
	return email
}

// Find returns the index of the merge group containing the e-mail, or -1.
func Find(merges []model.AuthorMerge, email string) int {
	for i, m := range merges {
		if m.Contains(email) {
			return i
		}
	}
	return -1
}
