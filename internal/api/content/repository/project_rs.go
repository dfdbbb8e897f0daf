package contentRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

func (r *projectsRepository) CreateProject(ctx context.Context, project entity.Project) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"title":       project.Title,
		"subtitle":    project.Subtitle,
		"category":    project.Category,
		"description": project.Description,
		"color":       project.Color,
	}

	query, args, err := sqlx.Named(queryCreateProject, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateProject")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	err = r.q.QueryRowxContext(ctx, query, args...).Scan(&id)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating project")
		return 0, err
	}

	return id, nil
}

func (r *projectsRepository) ListProjects(ctx context.Context) ([]entity.Project, error) {
	requestID := contextPkg.GetRequestID(ctx)
	projects := []entity.Project{}

	err := r.q.SelectContext(ctx, &projects, queryListProjects)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing projects")
		return nil, err
	}

	return projects, nil
}

func (r *projectsRepository) UpdateProject(ctx context.Context, project entity.Project) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          project.ID,
		"title":       project.Title,
		"subtitle":    project.Subtitle,
		"category":    project.Category,
		"description": project.Description,
		"color":       project.Color,
	}

	query, args, err := sqlx.Named(queryUpdateProject, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateProject")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating project")
		return err
	}

	return nil
}

func (r *projectsRepository) DeleteProject(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteProject, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteProject")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting project")
		return err
	}

	return nil
}
