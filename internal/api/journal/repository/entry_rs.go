package journalRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"PortfolioBackend/internal/api/journal"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

type EntryDB struct {
	ID           sql.NullString `db:"id"`
	Title        sql.NullString `db:"title"`
	Content      sql.NullString `db:"content"`
	Mood         sql.NullString `db:"mood"`
	Tags         pq.StringArray `db:"tags"`
	UserID       sql.NullString `db:"user_id"`
	NotionPageID sql.NullString `db:"notion_page_id"`
	CreatedAt    time.Time      `db:"created_at"`
}

func makeEntry(row EntryDB) entity.JournalEntry {
	return entity.JournalEntry{
		ID:           row.ID.String,
		Title:        row.Title.String,
		Content:      row.Content.String,
		Mood:         row.Mood.String,
		Tags:         []string(row.Tags),
		UserID:       row.UserID.String,
		NotionPageID: row.NotionPageID.String,
		CreatedAt:    row.CreatedAt,
	}
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry entity.JournalEntry) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":             entry.ID,
		"title":          entry.Title,
		"content":        entry.Content,
		"mood":           entry.Mood,
		"tags":           pq.StringArray(entry.Tags),
		"user_id":        entry.UserID,
		"notion_page_id": entry.NotionPageID,
		"created_at":     entry.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateEntry, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateEntry")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating journal entry")
		return err
	}

	return nil
}

func (r *entryRepository) GetEntryByID(ctx context.Context, id string) (entity.JournalEntry, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row EntryDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetEntryByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for GetEntryByID")
		return entity.JournalEntry{}, err
	}
	query = r.q.Rebind(query)

	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.JournalEntry{}, journal.ErrEntryNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting journal entry")
		return entity.JournalEntry{}, err
	}

	return makeEntry(row), nil
}

func (r *entryRepository) ListEntriesByUser(ctx context.Context, userID string) ([]entity.JournalEntry, error) {
	requestID := contextPkg.GetRequestID(ctx)
	rows := []EntryDB{}

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListEntriesByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for ListEntriesByUser")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing journal entries")
		return nil, err
	}

	entries := make([]entity.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, makeEntry(row))
	}

	return entries, nil
}

func (r *entryRepository) UpdateEntry(ctx context.Context, entry entity.JournalEntry) error {
	requestID := contextPkg.GetRequestID(ctx)

	var tags interface{}
	if entry.Tags != nil {
		tags = pq.StringArray(entry.Tags)
	}

	argsKV := map[string]interface{}{
		"id":      entry.ID,
		"title":   entry.Title,
		"content": entry.Content,
		"mood":    entry.Mood,
		"tags":    tags,
	}

	query, args, err := sqlx.Named(queryUpdateEntry, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateEntry")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating journal entry")
		return err
	}

	return nil
}

func (r *entryRepository) SetNotionPageID(ctx context.Context, id, pageID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":             id,
		"notion_page_id": pageID,
	}

	query, args, err := sqlx.Named(querySetNotionPageID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for SetNotionPageID")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when saving notion page id")
		return err
	}

	return nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteEntry, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteEntry")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting journal entry")
		return err
	}

	return nil
}
