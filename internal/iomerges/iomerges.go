// Package iomerges reads and writes author merges as YAML files.
package iomerges

import (
	"time"

	"github.com/gnames/authcheck/internal/iofs"
	"github.com/gnames/authcheck/pkg/merge"
	"github.com/gnames/authcheck/pkg/model"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Entry is one merge group in a merges file.
type Entry struct {
	PrimaryEmail string           `yaml:"primary_email"`
	PrimaryName  string           `yaml:"primary_name,omitempty"`
	Merged       []merge.Identity `yaml:"merged"`
	Note         string           `yaml:"note,omitempty"`
}

// Load reads merges from a YAML file. Every merge gets a fresh ID and
// the given creation time. The result is validated.
func Load(path string, now time.Time) ([]model.AuthorMerge, error) {
	data, err := iofs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, path, now)
}

// Decode parses YAML merges.
func Decode(data []byte, path string, now time.Time) ([]model.AuthorMerge, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, ReadError(path, err)
	}

	res := make([]model.AuthorMerge, 0, len(entries))
	for _, e := range entries {
		m := model.AuthorMerge{
			ID:           uuid.NewString(),
			PrimaryEmail: e.PrimaryEmail,
			PrimaryName:  e.PrimaryName,
			MergedEmails: make([]string, len(e.Merged)),
			MergedNames:  make([]string, len(e.Merged)),
			Note:         e.Note,
			CreatedAt:    now,
		}
		for i, v := range e.Merged {
			m.MergedEmails[i] = v.Email
			m.MergedNames[i] = v.Name
		}
		res = append(res, m)
	}

	if err := merge.Validate(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Save writes merges to a YAML file.
func Save(path string, merges []model.AuthorMerge) error {
	data, err := Encode(merges)
	if err != nil {
		return WriteError(path, err)
	}
	return iofs.WriteFile(path, data)
}

// Encode converts merges to YAML. IDs and creation times are not kept.
func Encode(merges []model.AuthorMerge) ([]byte, error) {
	entries := make([]Entry, len(merges))
	for i, m := range merges {
		e := Entry{
			PrimaryEmail: m.PrimaryEmail,
			PrimaryName:  m.PrimaryName,
			Merged:       make([]merge.Identity, len(m.MergedEmails)),
			Note:         m.Note,
		}
		for j, email := range m.MergedEmails {
			e.Merged[j] = merge.Identity{Email: email}
			if j < len(m.MergedNames) {
				e.Merged[j].Name = m.MergedNames[j]
			}
		}
		entries[i] = e
	}
	return yaml.Marshal(entries)
}
