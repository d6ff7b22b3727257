package state

// Summary gives totals of the current view.
type Summary struct {
	DatasetsNum int `json:"datasetsNum"`
	PapersNum   int `json:"papersNum"`
	AuthorsNum  int `json:"authorsNum"`

	// ViolatorsNum counts authors over quota.
	ViolatorsNum int `json:"violatorsNum"`
	// AtLimitNum counts authors with exactly quota papers.
	AtLimitNum int `json:"atLimitNum"`
	// UnderLimitNum counts authors below quota.
	UnderLimitNum int `json:"underLimitNum"`

	FlaggedPapersNum  int `json:"flaggedPapersNum"`
	EmailConflictsNum int `json:"emailConflictsNum"`
	NameConflictsNum  int `json:"nameConflictsNum"`
	MergesNum         int `json:"mergesNum"`
	DuplicatesNum     int `json:"duplicatesNum"`
}

// Summarize counts totals of a recomputed State.
func Summarize(s State, quota int) Summary {
	res := Summary{
		DatasetsNum:       len(s.Datasets),
		PapersNum:         len(s.Papers),
		AuthorsNum:        len(s.Authors),
		EmailConflictsNum: len(s.EmailConflicts),
		NameConflictsNum:  len(s.NameConflicts),
		MergesNum:         len(s.AuthorMerges),
	}
	for _, a := range s.Authors {
		switch {
		case a.PaperCount > quota:
			res.ViolatorsNum++
		case a.PaperCount == quota:
			res.AtLimitNum++
		default:
			res.UnderLimitNum++
		}
		if a.HasPotentialDuplicate {
			res.DuplicatesNum++
		}
	}
	for _, p := range s.Papers {
		if p.HasWarning {
			res.FlaggedPapersNum++
		}
	}
	return res
}
