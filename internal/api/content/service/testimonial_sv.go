package contentService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/content"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

func (s *contentService) CreateTestimonial(ctx context.Context, req content.CreateTestimonialRequest) {
	requestID := contextPkg.GetRequestID(ctx)

	testimonialID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return
	}

	testimonial := entity.Testimonial{
		ID:        testimonialID,
		Text:      req.Text,
		Author:    req.Author,
		Role:      req.Role,
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

	if err := repo.Testimonials.CreateTestimonial(ctx, testimonial); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create testimonial")
		return
	}

	s.mu.Lock()
	s.testimonials = append(s.testimonials, testimonial)
	s.mu.Unlock()
}

func (s *contentService) UpdateTestimonial(ctx context.Context, id string, req content.UpdateTestimonialRequest) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	testimonial := entity.Testimonial{
		ID:     id,
		Text:   req.Text,
		Author: req.Author,
		Role:   req.Role,
	}

	if err := repo.Testimonials.UpdateTestimonial(ctx, testimonial); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"testimonial_id": id,
			"error":          err.Error(),
		}).Error("Failed to update testimonial")
		return
	}

	s.mu.Lock()
	for i := range s.testimonials {
		if s.testimonials[i].ID != id {
			continue
		}
		if req.Text != "" {
			s.testimonials[i].Text = req.Text
		}
		if req.Author != "" {
			s.testimonials[i].Author = req.Author
		}
		if req.Role != "" {
			s.testimonials[i].Role = req.Role
		}
		break
	}
	s.mu.Unlock()
}

func (s *contentService) DeleteTestimonial(ctx context.Context, id string) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	if err := repo.Testimonials.DeleteTestimonial(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"testimonial_id": id,
			"error":          err.Error(),
		}).Error("Failed to delete testimonial")
		return
	}

	s.mu.Lock()
	for i := range s.testimonials {
		if s.testimonials[i].ID == id {
			s.testimonials = append(s.testimonials[:i], s.testimonials[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
}
