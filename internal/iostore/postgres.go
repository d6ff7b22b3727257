package iostore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gnames/authcheck/pkg/config"
	"github.com/gnames/authcheck/pkg/model"
	"github.com/gnames/authcheck/pkg/store"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// pgStore keeps snapshots in normalized PostgreSQL tables managed by
// GORM AutoMigrate.
type pgStore struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
	db    *gorm.DB
	name string
	enc  gnfmt.GNjson
}

// NewPostgres connects to PostgreSQL and migrates the schema.
func NewPostgres(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) (store.Store, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)
	name := fmt.Sprintf("%s@%s:%d", cfg.Database, cfg.Host, cfg.Port)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, OpenError("postgres", name, err)
	}
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, OpenError("postgres", name, err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, OpenError("postgres", name, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		sqlDB.Close()
		pool.Close()
		return nil, OpenError("postgres", name, err)
	}

	if err = gormDB.WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		sqlDB.Close()
		pool.Close()
		return nil, OpenError("postgres", name, err)
	}

	return &pgStore{pool: pool, sqlDB: sqlDB, db: gormDB, name: name}, nil
}

// Load assembles a snapshot from all tables.
func (p *pgStore) Load(ctx context.Context) (*store.Snapshot, error) {
	db := p.db.WithContext(ctx)
	res := &store.Snapshot{}

	var dss []datasetRecord
	if err := db.Order("position").Find(&dss).Error; err != nil {
		return nil, LoadError(p.name, err)
	}
	var subs []submissionRecord
	if err := db.Order("dataset_id, position").Find(&subs).Error; err != nil {
		return nil, LoadError(p.name, err)
	}
	bySet := make(map[string][]model.Submission)
	for _, v := range subs {
		var sub model.Submission
		if err := p.enc.Decode(v.Data, &sub); err != nil {
			return nil, LoadError(p.name, err)
		}
		bySet[v.DatasetID] = append(bySet[v.DatasetID], sub)
	}

	for _, v := range dss {
		ds := model.Dataset{
			ID:          v.ID,
			Label:       v.Label,
			FileName:    v.FileName,
			ImportedAt:  v.ImportedAt,
			Submissions: bySet[v.ID],
			Authors:     map[string]*model.Author{},
		}
		if len(v.Authors) > 0 {
			if err := p.enc.Decode(v.Authors, &ds.Authors); err != nil {
				return nil, LoadError(p.name, err)
			}
		}
		res.Datasets = append(res.Datasets, ds)
	}

	var merges []authorMergeRecord
	if err := db.Order("position").Find(&merges).Error; err != nil {
		return nil, LoadError(p.name, err)
	}
	for _, v := range merges {
		m := model.AuthorMerge{
			ID:           v.ID,
			PrimaryEmail: v.PrimaryEmail,
			PrimaryName:  v.PrimaryName,
			Note:         v.Note,
			CreatedAt:    v.CreatedAt,
		}
		if err := p.enc.Decode(v.MergedEmails, &m.MergedEmails); err != nil {
			return nil, LoadError(p.name, err)
		}
		if err := p.enc.Decode(v.MergedNames, &m.MergedNames); err != nil {
			return nil, LoadError(p.name, err)
		}
		res.AuthorMerges = append(res.AuthorMerges, m)
	}

	var settings []settingRecord
	if err := db.Find(&settings).Error; err != nil {
		return nil, LoadError(p.name, err)
	}
	for _, v := range settings {
		var err error
		switch v.Key {
		case keyCurrentDataset:
			res.CurrentDatasetID = v.Value
		case keyFlaggedEmails:
			err = p.enc.Decode([]byte(v.Value), &res.FlaggedEmails)
		case keySavedAt:
			res.SavedAt, err = time.Parse(time.RFC3339Nano, v.Value)
		}
		if err != nil {
			return nil, LoadError(p.name, err)
		}
	}
	return res, nil
}

// Save replaces the content of all tables in one transaction.
func (p *pgStore) Save(ctx context.Context, snap *store.Snapshot) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range allModels() {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		for i, ds := range snap.Datasets {
			if err := p.saveDataset(tx, i, ds); err != nil {
				return err
			}
		}

		for i, m := range snap.AuthorMerges {
			rec := authorMergeRecord{
				ID:           m.ID,
				Position:     i,
				PrimaryEmail: m.PrimaryEmail,
				PrimaryName:  m.PrimaryName,
				Note:         m.Note,
				CreatedAt:    m.CreatedAt,
			}
			var err error
			if rec.MergedEmails, err = p.enc.Encode(m.MergedEmails); err != nil {
				return err
			}
			if rec.MergedNames, err = p.enc.Encode(m.MergedNames); err != nil {
				return err
			}
			if err = tx.Create(&rec).Error; err != nil {
				return err
			}
		}

		flagged, err := p.enc.Encode(snap.FlaggedEmails)
		if err != nil {
			return err
		}
		settings := []settingRecord{
			{Key: keyCurrentDataset, Value: snap.CurrentDatasetID},
			{Key: keyFlaggedEmails, Value: string(flagged)},
			{Key: keySavedAt, Value: snap.SavedAt.UTC().Format(time.RFC3339Nano)},
		}
		return tx.Create(&settings).Error
	})
	if err != nil {
		return SaveError(p.name, err)
	}
	return nil
}

func (p *pgStore) saveDataset(tx *gorm.DB, pos int, ds model.Dataset) error {
	authors, err := p.enc.Encode(ds.Authors)
	if err != nil {
		return err
	}
	rec := datasetRecord{
		ID:         ds.ID,
		Position:   pos,
		Label:      ds.Label,
		FileName:   ds.FileName,
		ImportedAt: ds.ImportedAt,
		Authors:    authors,
	}
	if err = tx.Create(&rec).Error; err != nil {
		return err
	}
	if len(ds.Submissions) == 0 {
		return nil
	}

	subs := make([]submissionRecord, len(ds.Submissions))
	for i, sub := range ds.Submissions {
		data, err := p.enc.Encode(sub)
		if err != nil {
			return err
		}
		subs[i] = submissionRecord{
			DatasetID: ds.ID,
			Position:  i,
			PaperID:   sub.PaperID,
			Data:      data,
		}
	}
	return tx.CreateInBatches(subs, 500).Error
}

// Close releases the database/sql handle and the pool under it.
func (p *pgStore) Close() error {
	var err error
	if p.sqlDB != nil {
		err = p.sqlDB.Close()
		p.sqlDB = nil
	}
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return err
}
