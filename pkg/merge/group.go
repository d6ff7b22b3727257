package merge

import (
	"slices"
	"time"

	"github.com/gnames/authcheck/pkg/model"
)

// Identity is one e-mail and the name shown for it.
type Identity struct {
	Email string `json:"email" yaml:"email"`
	Name  string `json:"name"  yaml:"name"`
}

// Link creates a merge group from a primary identity and the identities
// it absorbs. None of the e-mails may belong to an existing group.
func Link(
	merges []model.AuthorMerge,
	id string,
	primary Identity,
	others []Identity,
	note string,
	now time.Time,
) ([]model.AuthorMerge, error) {
	m := model.AuthorMerge{
		ID:           id,
		PrimaryEmail: primary.Email,
		PrimaryName:  primary.Name,
		MergedEmails: []string{},
		MergedNames:  []string{},
		Note:         note,
		CreatedAt:    now,
	}
	for _, v := range others {
		if v.Email == primary.Email || slices.Contains(m.MergedEmails, v.Email) {
			continue
		}
		m.MergedEmails = append(m.MergedEmails, v.Email)
		m.MergedNames = append(m.MergedNames, v.Name)
	}

	if err := validateOne(m); err != nil {
		return nil, err
	}
	for _, email := range m.Emails() {
		if i := Find(merges, email); i >= 0 {
			return nil, OverlapError(
				email, merges[i].PrimaryEmail, m.PrimaryEmail,
			)
		}
	}

	res := clone(merges)
	return append(res, m), nil
}

// Unlink deletes the whole merge group containing the e-mail.
func Unlink(
	merges []model.AuthorMerge,
	email string,
) ([]model.AuthorMerge, error) {
	i := Find(merges, email)
	if i < 0 {
		return nil, NotFoundError(email)
	}
	res := clone(merges)
	return slices.Delete(res, i, i+1), nil
}

// RemoveEmail takes one e-mail out of its merge group. Removing the
// primary promotes the first remaining member. A group left with a single
// identity is deleted.
func RemoveEmail(
	merges []model.AuthorMerge,
	email string,
) ([]model.AuthorMerge, error) {
	i := Find(merges, email)
	if i < 0 {
		return nil, NotFoundError(email)
	}

	res := clone(merges)
	m := &res[i]
	if m.PrimaryEmail == email {
		m.PrimaryEmail = m.MergedEmails[0]
		m.PrimaryName = m.MergedNames[0]
		m.MergedEmails = m.MergedEmails[1:]
		m.MergedNames = m.MergedNames[1:]
	} else {
		j := slices.Index(m.MergedEmails, email)
		m.MergedEmails = slices.Delete(m.MergedEmails, j, j+1)
		m.MergedNames = slices.Delete(m.MergedNames, j, j+1)
	}

	if len(m.MergedEmails) == 0 {
		res = slices.Delete(res, i, i+1)
	}
	return res, nil
}

func clone(merges []model.AuthorMerge) []model.AuthorMerge {
	res := make([]model.AuthorMerge, len(merges))
	for i, m := range merges {
		res[i] = m.Clone()
	}
	return res
}
