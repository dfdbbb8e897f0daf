package contactRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

const (
	queryCreateMessage = `
	INSERT INTO contact_messages (id, name, email, project, created_at)
	VALUES (:id, :name, :email, :project, :created_at)
	`

	queryListMessages = `
	SELECT id, name, email, project, created_at
	FROM contact_messages
	ORDER BY created_at DESC
	`
)

func (r *messageRepository) CreateMessage(ctx context.Context, message entity.ContactMessage) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         message.ID,
		"name":       message.Name,
		"email":      message.Email,
		"project":    message.Project,
		"created_at": message.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateMessage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateMessage")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating contact message")
		return err
	}

	return nil
}

func (r *messageRepository) ListMessages(ctx context.Context) ([]entity.ContactMessage, error) {
	requestID := contextPkg.GetRequestID(ctx)
	messages := []entity.ContactMessage{}

	if err := sqlx.SelectContext(ctx, r.q, &messages, queryListMessages); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing contact messages")
		return nil, err
	}

	return messages, nil
}
