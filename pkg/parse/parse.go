// Package parse splits raw spreadsheet cells into ordered lists of author
// names, e-mails and organizations.
//
// Author lists use ';' as a fixed separator because names and
// organizations may contain commas. A '*' anywhere inside an entry marks
// a corresponding author. Positions in the returned slices are indices
// into the ';'-split list and are the join key between the three author
// columns of a row.
package parse

import (
	"regexp"
	"slices"
	"strings"
)

// AuthorSeparator separates entries of author lists.
const AuthorSeparator = ";"

// CorrespondingMarker marks a corresponding author inside an entry.
const CorrespondingMarker = "*"

// delimiters are tried in this order by Delimited.
var delimiters = []string{",", ";", "\n", "|"}

var (
	invertedNameRe = regexp.MustCompile(`^([^,]+),\s*(.+)$`)
	organizationRe = regexp.MustCompile(`\(([^)]*)\)`)
)

// Delimited splits a free-form list. The first delimiter from the
// priority list found in the string is used for splitting. Mixed
// delimiters are not supported: "a,b;c" gives ["a", "b;c"].
func Delimited(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}

	for _, d := range delimiters {
		if strings.Contains(s, d) {
			return cleanList(strings.Split(s, d))
		}
	}
	return []string{s}
}

// AuthorNames parses a ';'-separated list of author names. Names in
// "Last, First" form are reordered to "First Last".
func AuthorNames(s string) ([]string, []int) {
	names, idx := authorEntries(s)
	for i := range names {
		names[i] = FormatAuthorName(names[i])
	}
	return names, idx
}

// AuthorEmails parses a ';'-separated list of author e-mails.
func AuthorEmails(s string) ([]string, []int) {
	return authorEntries(s)
}

// AuthorOrganizations parses a ';'-separated list of authors annotated
// with organizations and returns the content of the first parenthesized
// group of every entry. Entries without parentheses give an empty string.
func AuthorOrganizations(s string) ([]string, []int) {
	entries, idx := authorEntries(s)
	res := make([]string, len(entries))
	for i, v := range entries {
		res[i] = Organization(v)
	}
	return res, idx
}

// Organization returns the first parenthesized group of an author entry.
func Organization(s string) string {
	m := organizationRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// FormatAuthorName converts "Last, First" to "First Last". Names without
// a comma are returned unchanged.
func FormatAuthorName(name string) string {
	name = strings.TrimSpace(name)
	m := invertedNameRe.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	first := strings.TrimSpace(m[2])
	last := strings.TrimSpace(m[1])
	if first == "" {
		return last
	}
	return first + " " + last
}

// MergeIndices returns the sorted union of several index lists.
func MergeIndices(lists ...[]int) []int {
	res := []int{}
	for _, l := range lists {
		res = append(res, l...)
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// authorEntries splits on ';' and strips corresponding markers. Every
// token keeps its slot, blank ones as "", so positions line up across
// the author columns of a row. Trailing blank tokens are trimmed.
func authorEntries(s string) ([]string, []int) {
	entries := []string{}
	idx := []int{}
	if strings.TrimSpace(s) == "" {
		return entries, idx
	}

	tokens := strings.Split(s, AuthorSeparator)
	for len(tokens) > 0 && isBlankEntry(tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}

	for i, v := range tokens {
		if strings.Contains(v, CorrespondingMarker) {
			idx = append(idx, i)
		}
		entries = append(entries, cleanEntry(v))
	}
	return entries, idx
}

func cleanEntry(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, CorrespondingMarker, ""))
}

func isBlankEntry(s string) bool {
	return cleanEntry(s) == ""
}

func cleanList(parts []string) []string {
	res := make([]string, 0, len(parts))
	for _, v := range parts {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
