package contentRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

func (r *testimonialsRepository) CreateTestimonial(ctx context.Context, testimonial entity.Testimonial) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":     testimonial.ID,
		"text":   testimonial.Text,
		"author": testimonial.Author,
		"role":   testimonial.Role,
	}

	query, args, err := sqlx.Named(queryCreateTestimonial, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTestimonial")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating testimonial")
		return err
	}

	return nil
}

func (r *testimonialsRepository) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	requestID := contextPkg.GetRequestID(ctx)
	testimonials := []entity.Testimonial{}

	err := r.q.SelectContext(ctx, &testimonials, queryListTestimonials)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing testimonials")
		return nil, err
	}

	return testimonials, nil
}

func (r *testimonialsRepository) UpdateTestimonial(ctx context.Context, testimonial entity.Testimonial) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":     testimonial.ID,
		"text":   testimonial.Text,
		"author": testimonial.Author,
		"role":   testimonial.Role,
	}

	query, args, err := sqlx.Named(queryUpdateTestimonial, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateTestimonial")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating testimonial")
		return err
	}

	return nil
}

func (r *testimonialsRepository) DeleteTestimonial(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTestimonial, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteTestimonial")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting testimonial")
		return err
	}

	return nil
}
