package journalService

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioBackend/internal/api/journal"
	journalRepository "PortfolioBackend/internal/api/journal/repository"
	"PortfolioBackend/internal/entity"
	"PortfolioBackend/pkg/notion"
	"PortfolioBackend/pkg/utils"
)

type fakeEntryStore struct {
	mu sync.Mutex

	entries map[string]entity.JournalEntry

	createErr error
	listErr   error
	updateErr error
	deleteErr error

	pageIDs map[string]string
}

func newFakeEntryStore(entries ...entity.JournalEntry) *fakeEntryStore {
	store := &fakeEntryStore{
		entries: map[string]entity.JournalEntry{},
		pageIDs: map[string]string{},
	}
	for _, entry := range entries {
		store.entries[entry.ID] = entry
	}
	return store
}

func (f *fakeEntryStore) NewClient(tx bool) (journalRepository.Client, error) {
	return journalRepository.Client{
		Entries:  f,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeEntryStore) CreateEntry(ctx context.Context, entry entity.JournalEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	f.entries[entry.ID] = entry
	f.mu.Unlock()
	return nil
}

func (f *fakeEntryStore) GetEntryByID(ctx context.Context, id string) (entity.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[id]
	if !ok {
		return entity.JournalEntry{}, journal.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeEntryStore) ListEntriesByUser(ctx context.Context, userID string) ([]entity.JournalEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := []entity.JournalEntry{}
	for _, entry := range f.entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (f *fakeEntryStore) UpdateEntry(ctx context.Context, entry entity.JournalEntry) error {
	return f.updateErr
}

func (f *fakeEntryStore) SetNotionPageID(ctx context.Context, id, pageID string) error {
	f.mu.Lock()
	f.pageIDs[id] = pageID
	f.mu.Unlock()
	return nil
}

func (f *fakeEntryStore) DeleteEntry(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	delete(f.entries, id)
	f.mu.Unlock()
	return nil
}

type fakeNotion struct {
	createErr error
	updateErr error
	created   []notion.PageEntry
	updated   map[string]notion.PageEntry
	nextID    string
}

func (f *fakeNotion) CreatePage(ctx context.Context, entry notion.PageEntry) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, entry)
	if f.nextID == "" {
		f.nextID = "page-1"
	}
	return f.nextID, nil
}

func (f *fakeNotion) UpdatePage(ctx context.Context, pageID string, entry notion.PageEntry) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = map[string]notion.PageEntry{}
	}
	f.updated[pageID] = entry
	return nil
}

func newJournalTestService(store *fakeEntryStore, notionClient *fakeNotion) IJournalService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewJournalService(logger, store, notionClient, utils.New())
}

func TestCreateEntry(t *testing.T) {
	t.Run("persists locally and syncs the notion page id", func(t *testing.T) {
		store := newFakeEntryStore()
		notionClient := &fakeNotion{nextID: "page-7"}
		svc := newJournalTestService(store, notionClient)

		resp, err := svc.CreateEntry(context.Background(), "u1", journal.CreateEntryRequest{
			Title:   "Morning pages",
			Content: "slept well",
			Mood:    "calm",
			Tags:    []string{"daily"},
		})
		require.NoError(t, err)

		assert.Equal(t, "synced", resp.NotionSync)
		assert.Equal(t, "page-7", resp.Entry.NotionPageID)
		assert.Equal(t, "u1", resp.Entry.UserID)
		assert.Equal(t, "page-7", store.pageIDs[resp.Entry.ID])
		require.Len(t, notionClient.created, 1)
		assert.Equal(t, "Morning pages", notionClient.created[0].Title)
	})

	t.Run("notion failure never blocks the local save", func(t *testing.T) {
		store := newFakeEntryStore()
		notionClient := &fakeNotion{createErr: errors.New("notion unavailable")}
		svc := newJournalTestService(store, notionClient)

		resp, err := svc.CreateEntry(context.Background(), "u1", journal.CreateEntryRequest{
			Title:   "Offline",
			Content: "still saved",
		})
		require.NoError(t, err)

		assert.Equal(t, "failed", resp.NotionSync)
		assert.Empty(t, resp.Entry.NotionPageID)
		assert.Len(t, store.entries, 1)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		store := newFakeEntryStore()
		store.createErr = errors.New("insert failed")
		svc := newJournalTestService(store, &fakeNotion{})

		_, err := svc.CreateEntry(context.Background(), "u1", journal.CreateEntryRequest{Title: "x"})
		assert.ErrorIs(t, err, journal.ErrCreateEntry)
	})
}

func TestListEntries(t *testing.T) {
	store := newFakeEntryStore(
		entity.JournalEntry{ID: "e1", UserID: "u1", Title: "Run"},
		entity.JournalEntry{ID: "e2", UserID: "u1", Title: "Read"},
		entity.JournalEntry{ID: "e3", UserID: "u2", Title: "Someone else"},
	)
	svc := newJournalTestService(store, &fakeNotion{})

	resp, err := svc.ListEntries(context.Background(), "u1", "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = svc.ListEntries(context.Background(), "u1", "run", "")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestUpdateEntry(t *testing.T) {
	existing := entity.JournalEntry{
		ID:           "e1",
		UserID:       "u1",
		Title:        "Draft",
		NotionPageID: "page-1",
	}

	t.Run("owner updates and the existing page is updated in place", func(t *testing.T) {
		store := newFakeEntryStore(existing)
		notionClient := &fakeNotion{}
		svc := newJournalTestService(store, notionClient)

		resp, err := svc.UpdateEntry(context.Background(), "u1", "e1", journal.UpdateEntryRequest{
			Title: "Final",
		})
		require.NoError(t, err)

		assert.Equal(t, "synced", resp.NotionSync)
		assert.Equal(t, "Final", resp.Entry.Title)
		require.Contains(t, notionClient.updated, "page-1")
		assert.Equal(t, "Final", notionClient.updated["page-1"].Title)
	})

	t.Run("missing page id falls back to a create", func(t *testing.T) {
		entry := existing
		entry.NotionPageID = ""
		store := newFakeEntryStore(entry)
		notionClient := &fakeNotion{nextID: "page-9"}
		svc := newJournalTestService(store, notionClient)

		resp, err := svc.UpdateEntry(context.Background(), "u1", "e1", journal.UpdateEntryRequest{
			Title: "Recovered",
		})
		require.NoError(t, err)

		assert.Equal(t, "synced", resp.NotionSync)
		assert.Equal(t, "page-9", resp.Entry.NotionPageID)
		assert.Equal(t, "page-9", store.pageIDs["e1"])
	})

	t.Run("notion update failure is reported but not fatal", func(t *testing.T) {
		store := newFakeEntryStore(existing)
		notionClient := &fakeNotion{updateErr: errors.New("rate limited")}
		svc := newJournalTestService(store, notionClient)

		resp, err := svc.UpdateEntry(context.Background(), "u1", "e1", journal.UpdateEntryRequest{
			Title: "Still saved",
		})
		require.NoError(t, err)
		assert.Equal(t, "failed", resp.NotionSync)
	})

	t.Run("another user cannot touch the entry", func(t *testing.T) {
		store := newFakeEntryStore(existing)
		svc := newJournalTestService(store, &fakeNotion{})

		_, err := svc.UpdateEntry(context.Background(), "u2", "e1", journal.UpdateEntryRequest{Title: "hijack"})
		assert.ErrorIs(t, err, journal.ErrEntryNotOwned)
	})

	t.Run("unknown entry", func(t *testing.T) {
		svc := newJournalTestService(newFakeEntryStore(), &fakeNotion{})
		_, err := svc.UpdateEntry(context.Background(), "u1", "missing", journal.UpdateEntryRequest{})
		assert.ErrorIs(t, err, journal.ErrEntryNotFound)
	})
}

func TestDeleteEntry(t *testing.T) {
	existing := entity.JournalEntry{ID: "e1", UserID: "u1"}

	t.Run("owner deletes", func(t *testing.T) {
		store := newFakeEntryStore(existing)
		svc := newJournalTestService(store, &fakeNotion{})

		require.NoError(t, svc.DeleteEntry(context.Background(), "u1", "e1"))
		assert.Len(t, store.entries, 0)
	})

	t.Run("another user is rejected", func(t *testing.T) {
		store := newFakeEntryStore(existing)
		svc := newJournalTestService(store, &fakeNotion{})

		err := svc.DeleteEntry(context.Background(), "u2", "e1")
		assert.ErrorIs(t, err, journal.ErrEntryNotOwned)
		assert.Len(t, store.entries, 1)
	})

	t.Run("unknown entry", func(t *testing.T) {
		svc := newJournalTestService(newFakeEntryStore(), &fakeNotion{})
		err := svc.DeleteEntry(context.Background(), "u1", "missing")
		assert.ErrorIs(t, err, journal.ErrEntryNotFound)
	})
}
