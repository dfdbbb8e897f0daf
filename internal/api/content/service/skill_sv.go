package contentService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/content"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

// Skill writes are absorbed on failure: the error is logged and local state
// stays as it was, so the UI keeps showing a consistent list.
func (s *contentService) CreateSkill(ctx context.Context, req content.CreateSkillRequest) {
	requestID := contextPkg.GetRequestID(ctx)

	skillID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return
	}

	skill := entity.Skill{
		ID:        skillID,
		Name:      req.Name,
		Category:  req.Category,
		CreatedAt: time.Now(),
	}

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	if err := repo.Skills.CreateSkill(ctx, skill); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create skill")
		return
	}

	s.mu.Lock()
	s.skills = append(s.skills, skill)
	s.mu.Unlock()
}

func (s *contentService) UpdateSkill(ctx context.Context, id string, req content.UpdateSkillRequest) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	skill := entity.Skill{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
	}

	if err := repo.Skills.UpdateSkill(ctx, skill); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"skill_id":   id,
			"error":      err.Error(),
		}).Error("Failed to update skill")
		return
	}

	s.mu.Lock()
	for i := range s.skills {
		if s.skills[i].ID != id {
			continue
		}
		if req.Name != "" {
			s.skills[i].Name = req.Name
		}
		if req.Category != "" {
			s.skills[i].Category = req.Category
		}
		break
	}
	s.mu.Unlock()
}

func (s *contentService) DeleteSkill(ctx context.Context, id string) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	if err := repo.Skills.DeleteSkill(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"skill_id":   id,
			"error":      err.Error(),
		}).Error("Failed to delete skill")
		return
	}

	s.mu.Lock()
	for i := range s.skills {
		if s.skills[i].ID == id {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
}
