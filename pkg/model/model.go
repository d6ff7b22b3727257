// Package model provides the entities shared by the reconciliation engine:
// spreadsheet rows, submissions, author aggregates, identity merges and
// datasets.
package model

import (
	"strings"
	"time"
)

// DefaultQuota is the number of submissions an author may have before the
// following ones are flagged.
const DefaultQuota = 2

// UnknownAuthor replaces a name missing from the author list.
const UnknownAuthor = "Unknown"

// Row is one spreadsheet row keyed by column name.
type Row map[string]string

// Get returns a trimmed cell value, or an empty string for absent columns.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Submission is one paper.
type Submission struct {
	// PaperID is unique within the dataset the submission came from.
	PaperID int `json:"paperId"`

	Title  string `json:"title,omitempty"`
	Track  string `json:"track,omitempty"`
	Status string `json:"status,omitempty"`

	// AuthorNames, AuthorEmails and AuthorOrganizations are positionally
	// aligned: index i describes the same author on this paper.
	AuthorNames         []string `json:"authorNames"`
	AuthorEmails        []string `json:"authorEmails"`
	AuthorOrganizations []string `json:"authorOrganizations"`

	// CorrespondingAuthorIndices are sorted positions marked with '*'.
	CorrespondingAuthorIndices []int `json:"correspondingAuthorIndices"`

	// HasWarning and WarningAuthors are computed by the warning
	// annotator and overwritten on every recompute.
	HasWarning     bool            `json:"hasWarning"`
	WarningAuthors []WarningAuthor `json:"warningAuthors"`

	// Fields keeps the original row for export.
	Fields Row `json:"fields,omitempty"`
}

// AuthorsNum returns the number of author positions on the paper.
func (s Submission) AuthorsNum() int {
	return len(s.AuthorEmails)
}

// IsCorresponding reports whether the author at position i is marked as a
// corresponding author.
func (s Submission) IsCorresponding(i int) bool {
	for _, v := range s.CorrespondingAuthorIndices {
		if v == i {
			return true
		}
	}
	return false
}

// WarningAuthor describes an author who is over quota on a submission.
type WarningAuthor struct {
	Name string `json:"name"`
	// Email is the address used on this submission, not the canonical one.
	Email      string `json:"email"`
	PaperCount int    `json:"paperCount"`
	PaperRank  int    `json:"paperRank"`
}

// Author is a derived aggregate of one contributor keyed by e-mail.
type Author struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`

	// PaperIDs are sorted in ascending order.
	PaperIDs   []int `json:"paperIds"`
	PaperCount int   `json:"paperCount"`

	HasWarning       bool `json:"hasWarning"`
	HasEmailConflict bool `json:"hasEmailConflict"`

	// HasPotentialDuplicate is set only by manual flagging.
	HasPotentialDuplicate bool `json:"hasPotentialDuplicate"`
}

// Clone returns a deep copy of the author.
func (a *Author) Clone() *Author {
	res := *a
	res.PaperIDs = append([]int(nil), a.PaperIDs...)
	return &res
}

// AuthorMerge declares that several e-mail identities belong to the same
// person. MergedEmails and MergedNames are parallel slices.
type AuthorMerge struct {
	ID           string    `json:"id"`
	PrimaryEmail string    `json:"primaryEmail"`
	PrimaryName  string    `json:"primaryName"`
	MergedEmails []string  `json:"mergedEmails"`
	MergedNames  []string  `json:"mergedNames"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Emails returns the primary e-mail followed by the merged ones.
func (m AuthorMerge) Emails() []string {
	res := make([]string, 0, len(m.MergedEmails)+1)
	res = append(res, m.PrimaryEmail)
	return append(res, m.MergedEmails...)
}

// Contains reports whether the e-mail belongs to the merge group.
func (m AuthorMerge) Contains(email string) bool {
	for _, v := range m.Emails() {
		if v == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the merge.
func (m AuthorMerge) Clone() AuthorMerge {
	m.MergedEmails = append([]string(nil), m.MergedEmails...)
	m.MergedNames = append([]string(nil), m.MergedNames...)
	return m
}

// Dataset is one imported spreadsheet.
type Dataset struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	FileName   string    `json:"fileName"`
	ImportedAt time.Time `json:"importedAt"`

	Submissions []Submission `json:"submissions"`

	// Authors is the aggregate of this dataset's own rows computed at
	// import time, without merges.
	Authors map[string]*Author `json:"authors"`
}
