package contactService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/contact"
	contactRepository "PortfolioBackend/internal/api/contact/repository"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
	"PortfolioBackend/pkg/smtp"
	"PortfolioBackend/pkg/utils"
)

type IContactService interface {
	CreateMessage(ctx context.Context, req contact.CreateMessageRequest) error
	ListMessages(ctx context.Context) (contact.MessageListResponse, error)
}

type contactService struct {
	log         *logrus.Logger
	contactRepo contactRepository.Repository
	smtpMailer  smtp.ItfSmtp
	utils       utils.IUtils
}

func NewContactService(
	log *logrus.Logger,
	contactRepo contactRepository.Repository,
	smtpMailer smtp.ItfSmtp,
	utils utils.IUtils,
) IContactService {
	return &contactService{
		log:         log,
		contactRepo: contactRepo,
		smtpMailer:  smtpMailer,
		utils:       utils,
	}
}

// CreateMessage persists the inquiry first; the owner notification mail is
// best effort and never fails the request.
func (s *contactService) CreateMessage(ctx context.Context, req contact.CreateMessageRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	messageID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return contact.ErrCreateMessage
	}

	message := entity.ContactMessage{
		ID:        messageID,
		Name:      req.Name,
		Email:     req.Email,
		Project:   req.Project,
		CreatedAt: time.Now(),
	}

	repo, err := s.contactRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return contact.ErrCreateMessage
	}

	if err := repo.Messages.CreateMessage(ctx, message); err != nil {
		return contact.ErrCreateMessage
	}

	if err := s.smtpMailer.SendContactNotification(req.Name, req.Email, req.Project); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to send contact notification mail")
	}

	return nil
}

func (s *contactService) ListMessages(ctx context.Context) (contact.MessageListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contactRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return contact.MessageListResponse{}, contact.ErrListMessages
	}

	messages, err := repo.Messages.ListMessages(ctx)
	if err != nil {
		return contact.MessageListResponse{}, contact.ErrListMessages
	}

	return contact.MessageListResponse{
		Messages: messages,
		Total:    len(messages),
	}, nil
}
