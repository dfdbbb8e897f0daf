package journalRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PortfolioBackend/internal/entity"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Entries:  &entryRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Entries interface {
		CreateEntry(ctx context.Context, entry entity.JournalEntry) error
		GetEntryByID(ctx context.Context, id string) (entity.JournalEntry, error)
		ListEntriesByUser(ctx context.Context, userID string) ([]entity.JournalEntry, error)
		UpdateEntry(ctx context.Context, entry entity.JournalEntry) error
		SetNotionPageID(ctx context.Context, id, pageID string) error
		DeleteEntry(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type entryRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
