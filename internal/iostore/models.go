package iostore

import "time"

// datasetRecord is a row of the datasets table. Authors holds the
// JSON encoded import-time aggregate.
type datasetRecord struct {
	ID         string `gorm:"primaryKey"`
	Position   int    `gorm:"not null"`
	Label      string
	FileName   string
	ImportedAt time.Time
	Authors    []byte
}

func (datasetRecord) TableName() string { return "datasets" }

// submissionRecord keeps one JSON encoded submission.
type submissionRecord struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	DatasetID string `gorm:"index;not null"`
	Position  int    `gorm:"not null"`
	PaperID   int    `gorm:"index"`
	Data      []byte `gorm:"not null"`
}

func (submissionRecord) TableName() string { return "submissions" }

// authorMergeRecord is a merge group. Merged e-mails and names are
// JSON encoded lists.
type authorMergeRecord struct {
	ID           string `gorm:"primaryKey"`
	Position     int    `gorm:"not null"`
	PrimaryEmail string `gorm:"uniqueIndex;not null"`
	PrimaryName  string
	MergedEmails []byte
	MergedNames  []byte
	Note         string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

func (authorMergeRecord) TableName() string { return "author_merges" }

// settingRecord is a key-value pair for scalar parts of a snapshot.
type settingRecord struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (settingRecord) TableName() string { return "settings" }

const (
	keyCurrentDataset = "current_dataset_id"
	keyFlaggedEmails  = "flagged_emails"
	keySavedAt        = "saved_at"
)

func allModels() []any {
	return []any{
		&datasetRecord{},
		&submissionRecord{},
		&authorMergeRecord{},
		&settingRecord{},
	}
}
