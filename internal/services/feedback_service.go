package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-api/internal/models"
	"travel-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeedbackService interface {
	SubmitFeedback(ctx context.Context, feedback *models.Feedback) error
	GetFeedback(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error)
	ListFeedback(ctx context.Context, p models.Pagination) ([]models.Feedback, int64, error)
	DeleteFeedback(ctx context.Context, id primitive.ObjectID) error
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	mailer       Mailer
	audit        AuditLogService
	cache        CacheService
	notifyEmail  string
}

// NewFeedbackService returns a FeedbackService. When notifyEmail is set each
// submission is forwarded there.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, mailer Mailer, audit AuditLogService, cache CacheService, notifyEmail string) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		mailer:       mailer,
		audit:        audit,
		cache:        cache,
		notifyEmail:  notifyEmail,
	}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = primitive.NewObjectID()
	feedback.Email = normalizeEmail(feedback.Email)
	feedback.Name = strings.TrimSpace(feedback.Name)
	feedback.CreatedAt = time.Now().UTC()

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return err
	}
	cacheInvalidate(ctx, s.cache, statsCachePrefix)

	if s.notifyEmail != "" {
		sendMail(ctx, s.mailer, EmailMessage{
			To:      s.notifyEmail,
			Subject: "New feedback from " + feedback.Email,
			PlainText: fmt.Sprintf("From: %s <%s>\nRating: %d\n\n%s",
				feedback.Name, feedback.Email, feedback.Rating, feedback.Message),
		})
	}
	return nil
}

func (s *feedbackService) GetFeedback(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	return s.feedbackRepo.GetByID(ctx, id)
}

func (s *feedbackService) ListFeedback(ctx context.Context, p models.Pagination) ([]models.Feedback, int64, error) {
	return s.feedbackRepo.List(ctx, p)
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, id primitive.ObjectID) error {
	if err := s.feedbackRepo.Delete(ctx, id); err != nil {
		return err
	}
	cacheInvalidate(ctx, s.cache, statsCachePrefix)
	recordAudit(ctx, s.audit, models.AuditActionDelete, "feedback", id.Hex(), nil)
	return nil
}
