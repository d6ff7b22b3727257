package aggregate

import (
	"slices"
	"strings"

	"github.com/gnames/authcheck/pkg/model"
	"golang.org/x/text/cases"
)

// NameConflict is a name written the same way on submissions that use
// different e-mails. It is a hint for a merge, nothing is flagged
// automatically.
type NameConflict struct {
	Name   string   `json:"name"`
	Emails []string `json:"emails"`
}

// EmailConflicts returns e-mails used with more than one distinct name,
// mapped to their sorted names. Names are compared verbatim, the Unknown
// placeholder is not a name.
func EmailConflicts(subs []model.Submission) map[string][]string {
	names := make(map[string]map[string]struct{})
	for _, sub := range subs {
		for i, email := range sub.AuthorEmails {
			name := nameAt(sub, i)
			if name == model.UnknownAuthor {
				continue
			}
			if names[email] == nil {
				names[email] = make(map[string]struct{})
			}
			names[email][name] = struct{}{}
		}
	}

	res := make(map[string][]string)
	for email, set := range names {
		if len(set) < 2 {
			continue
		}
		res[email] = sortedKeys(set)
	}
	return res
}

// MarkEmailConflicts sets HasEmailConflict on every author whose e-mail
// appears in conflicts. It must run before merges are applied.
func MarkEmailConflicts(
	authors map[string]*model.Author,
	conflicts map[string][]string,
) {
	for email, a := range authors {
		_, ok := conflicts[email]
		a.HasEmailConflict = ok
	}
}

// NameConflicts returns names used with more than one e-mail. Names are
// compared after case folding and whitespace collapsing, the first seen
// spelling is reported. Result is sorted by name.
func NameConflicts(subs []model.Submission) []NameConflict {
	caser := cases.Fold()
	spelling := make(map[string]string)
	emails := make(map[string]map[string]struct{})

	for _, sub := range subs {
		for i, email := range sub.AuthorEmails {
			name := nameAt(sub, i)
			if name == model.UnknownAuthor {
				continue
			}
			key := caser.String(strings.Join(strings.Fields(name), " "))
			if _, ok := spelling[key]; !ok {
				spelling[key] = name
				emails[key] = make(map[string]struct{})
			}
			emails[key][email] = struct{}{}
		}
	}

	res := []NameConflict{}
	for key, set := range emails {
		if len(set) < 2 {
			continue
		}
		res = append(res, NameConflict{
			Name:   spelling[key],
			Emails: sortedKeys(set),
		})
	}
	slices.SortFunc(res, func(a, b NameConflict) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res
}

func sortedKeys(set map[string]struct{}) []string {
	res := make([]string, 0, len(set))
	for k := range set {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
