package journalService

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/journal"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
	"PortfolioBackend/pkg/notion"
)

// Notion sync outcomes reported back to the editor. A failed sync never
// blocks the local save.
const (
	notionSyncOK     = "synced"
	notionSyncFailed = "failed"
)

func (s *journalService) CreateEntry(ctx context.Context, userID string, req journal.CreateEntryRequest) (journal.EntryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	entryID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return journal.EntryResponse{}, journal.ErrCreateEntry
	}

	entry := entity.JournalEntry{
		ID:        entryID,
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		Tags:      req.Tags,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	repo, err := s.journalRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return journal.EntryResponse{}, journal.ErrCreateEntry
	}

	if err := repo.Entries.CreateEntry(ctx, entry); err != nil {
		return journal.EntryResponse{}, journal.ErrCreateEntry
	}

	syncStatus := notionSyncOK
	pageID, err := s.notionClient.CreatePage(ctx, notion.PageEntry{
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		Tags:      entry.Tags,
		CreatedAt: entry.CreatedAt,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"entry_id":   entry.ID,
			"error":      err.Error(),
		}).Warn("Notion sync failed for new entry")
		syncStatus = notionSyncFailed
	} else {
		entry.NotionPageID = pageID
		if err := repo.Entries.SetNotionPageID(ctx, entry.ID, pageID); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"entry_id":   entry.ID,
				"error":      err.Error(),
			}).Warn("Failed to persist notion page id")
		}
	}

	return journal.EntryResponse{
		Entry:      entry,
		NotionSync: syncStatus,
	}, nil
}

func (s *journalService) ListEntries(ctx context.Context, userID, query, day string) (journal.EntryListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.journalRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return journal.EntryListResponse{}, err
	}

	entries, err := repo.Entries.ListEntriesByUser(ctx, userID)
	if err != nil {
		return journal.EntryListResponse{}, err
	}

	entries = filterEntries(entries, query, day)

	return journal.EntryListResponse{
		Entries: entries,
		Total:   len(entries),
	}, nil
}

func (s *journalService) UpdateEntry(ctx context.Context, userID, id string, req journal.UpdateEntryRequest) (journal.EntryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.journalRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return journal.EntryResponse{}, journal.ErrUpdateEntry
	}

	entry, err := repo.Entries.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, journal.ErrEntryNotFound) {
			return journal.EntryResponse{}, journal.ErrEntryNotFound
		}
		return journal.EntryResponse{}, journal.ErrUpdateEntry
	}

	if entry.UserID != userID {
		return journal.EntryResponse{}, journal.ErrEntryNotOwned
	}

	patch := entity.JournalEntry{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Tags:    req.Tags,
	}

	if err := repo.Entries.UpdateEntry(ctx, patch); err != nil {
		return journal.EntryResponse{}, journal.ErrUpdateEntry
	}

	if req.Title != "" {
		entry.Title = req.Title
	}
	if req.Content != "" {
		entry.Content = req.Content
	}
	if req.Mood != "" {
		entry.Mood = req.Mood
	}
	if req.Tags != nil {
		entry.Tags = req.Tags
	}

	syncStatus := notionSyncOK
	pageEntry := notion.PageEntry{
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		Tags:      entry.Tags,
		CreatedAt: entry.CreatedAt,
	}

	if entry.NotionPageID == "" {
		pageID, err := s.notionClient.CreatePage(ctx, pageEntry)
		if err != nil {
			syncStatus = notionSyncFailed
		} else {
			entry.NotionPageID = pageID
			if err := repo.Entries.SetNotionPageID(ctx, entry.ID, pageID); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"entry_id":   entry.ID,
					"error":      err.Error(),
				}).Warn("Failed to persist notion page id")
			}
		}
	} else if err := s.notionClient.UpdatePage(ctx, entry.NotionPageID, pageEntry); err != nil {
		syncStatus = notionSyncFailed
	}

	if syncStatus == notionSyncFailed {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"entry_id":   entry.ID,
		}).Warn("Notion sync failed for updated entry")
	}

	return journal.EntryResponse{
		Entry:      entry,
		NotionSync: syncStatus,
	}, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, userID, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.journalRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return journal.ErrDeleteEntry
	}

	entry, err := repo.Entries.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, journal.ErrEntryNotFound) {
			return journal.ErrEntryNotFound
		}
		return journal.ErrDeleteEntry
	}

	if entry.UserID != userID {
		return journal.ErrEntryNotOwned
	}

	if err := repo.Entries.DeleteEntry(ctx, id); err != nil {
		return journal.ErrDeleteEntry
	}

	return nil
}

func (s *journalService) CalendarMonth(ctx context.Context, userID string, year, month int) (journal.CalendarMonthResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.journalRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return journal.CalendarMonthResponse{}, err
	}

	entries, err := repo.Entries.ListEntriesByUser(ctx, userID)
	if err != nil {
		return journal.CalendarMonthResponse{}, err
	}

	return buildCalendarMonth(year, time.Month(month), entries, time.Now()), nil
}
