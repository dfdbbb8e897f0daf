package contentService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/content"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

// Project ids come back from the store, so the local append waits for the
// insert to return the generated id.
func (s *contentService) CreateProject(ctx context.Context, req content.CreateProjectRequest) {
	requestID := contextPkg.GetRequestID(ctx)

	project := entity.Project{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Category:    req.Category,
		Description: req.Description,
		Color:       req.Color,
		CreatedAt:   time.Now(),
	}

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	id, err := repo.Projects.CreateProject(ctx, project)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create project")
		return
	}

	project.ID = id

	s.mu.Lock()
	s.projects = append(s.projects, project)
	s.mu.Unlock()
}

func (s *contentService) UpdateProject(ctx context.Context, id int64, req content.UpdateProjectRequest) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	project := entity.Project{
		ID:          id,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Category:    req.Category,
		Description: req.Description,
		Color:       req.Color,
	}

	if err := repo.Projects.UpdateProject(ctx, project); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"project_id": id,
			"error":      err.Error(),
		}).Error("Failed to update project")
		return
	}

	s.mu.Lock()
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		if req.Title != "" {
			s.projects[i].Title = req.Title
		}
		if req.Subtitle != "" {
			s.projects[i].Subtitle = req.Subtitle
		}
		if req.Category != "" {
			s.projects[i].Category = req.Category
		}
		if req.Description != "" {
			s.projects[i].Description = req.Description
		}
		if req.Color != "" {
			s.projects[i].Color = req.Color
		}
		break
	}
	s.mu.Unlock()
}

func (s *contentService) DeleteProject(ctx context.Context, id int64) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	if err := repo.Projects.DeleteProject(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"project_id": id,
			"error":      err.Error(),
		}).Error("Failed to delete project")
		return
	}

	s.mu.Lock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
}
