package contentRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

func (r *skillsRepository) CreateSkill(ctx context.Context, skill entity.Skill) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":       skill.ID,
		"name":     skill.Name,
		"category": skill.Category,
	}

	query, args, err := sqlx.Named(queryCreateSkill, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateSkill")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating skill")
		return err
	}

	return nil
}

func (r *skillsRepository) ListSkills(ctx context.Context) ([]entity.Skill, error) {
	requestID := contextPkg.GetRequestID(ctx)
	skills := []entity.Skill{}

	err := r.q.SelectContext(ctx, &skills, queryListSkills)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing skills")
		return nil, err
	}

	return skills, nil
}

func (r *skillsRepository) UpdateSkill(ctx context.Context, skill entity.Skill) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":       skill.ID,
		"name":     skill.Name,
		"category": skill.Category,
	}

	query, args, err := sqlx.Named(queryUpdateSkill, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateSkill")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating skill")
		return err
	}

	return nil
}

func (r *skillsRepository) DeleteSkill(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteSkill, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteSkill")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting skill")
		return err
	}

	return nil
}
