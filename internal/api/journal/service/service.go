package journalService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/journal"
	journalRepository "PortfolioBackend/internal/api/journal/repository"
	"PortfolioBackend/pkg/notion"
	"PortfolioBackend/pkg/utils"
)

type IJournalService interface {
	CreateEntry(ctx context.Context, userID string, req journal.CreateEntryRequest) (journal.EntryResponse, error)
	ListEntries(ctx context.Context, userID, query, day string) (journal.EntryListResponse, error)
	UpdateEntry(ctx context.Context, userID, id string, req journal.UpdateEntryRequest) (journal.EntryResponse, error)
	DeleteEntry(ctx context.Context, userID, id string) error
	CalendarMonth(ctx context.Context, userID string, year, month int) (journal.CalendarMonthResponse, error)
}

type journalService struct {
	log          *logrus.Logger
	journalRepo  journalRepository.Repository
	notionClient notion.ItfNotion
	utils        utils.IUtils
}

func NewJournalService(
	log *logrus.Logger,
	journalRepo journalRepository.Repository,
	notionClient notion.ItfNotion,
	utils utils.IUtils,
) IJournalService {
	return &journalService{
		log:          log,
		journalRepo:  journalRepo,
		notionClient: notionClient,
		utils:        utils,
	}
}
