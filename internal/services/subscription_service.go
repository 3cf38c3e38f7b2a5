package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-api/internal/models"
	apperrors "travel-api/internal/pkg/errors"
	"travel-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, email, name string) (*models.Subscriber, error)
	ListSubscribers(ctx context.Context, p models.Pagination) ([]models.Subscriber, int64, error)
	Unsubscribe(ctx context.Context, id primitive.ObjectID) error
	UnsubscribeByEmail(ctx context.Context, email string) error
}

type subscriptionService struct {
	subscriberRepo repository.SubscriberRepository
	mailer         Mailer
	audit          AuditLogService
	cache          CacheService
}

func NewSubscriptionService(subscriberRepo repository.SubscriberRepository, mailer Mailer, audit AuditLogService, cache CacheService) SubscriptionService {
	return &subscriptionService{
		subscriberRepo: subscriberRepo,
		mailer:         mailer,
		audit:          audit,
		cache:          cache,
	}
}

// Subscribe adds email to the newsletter list and sends a welcome message.
// Emails are compared case-insensitively.
func (s *subscriptionService) Subscribe(ctx context.Context, email, name string) (*models.Subscriber, error) {
	email = normalizeEmail(email)

	if _, err := s.subscriberRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("this email is already subscribed")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	subscriber := &models.Subscriber{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.subscriberRepo.Create(ctx, subscriber); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.Conflict("this email is already subscribed")
		}
		return nil, err
	}
	cacheInvalidate(ctx, s.cache, statsCachePrefix)

	sendMail(ctx, s.mailer, welcomeEmail(subscriber))
	return subscriber, nil
}

func (s *subscriptionService) ListSubscribers(ctx context.Context, p models.Pagination) ([]models.Subscriber, int64, error) {
	return s.subscriberRepo.List(ctx, p)
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, id primitive.ObjectID) error {
	if err := s.subscriberRepo.Delete(ctx, id); err != nil {
		return err
	}
	cacheInvalidate(ctx, s.cache, statsCachePrefix)
	recordAudit(ctx, s.audit, models.AuditActionDelete, "subscriber", id.Hex(), nil)
	return nil
}

func (s *subscriptionService) UnsubscribeByEmail(ctx context.Context, email string) error {
	if err := s.subscriberRepo.DeleteByEmail(ctx, normalizeEmail(email)); err != nil {
		return err
	}
	cacheInvalidate(ctx, s.cache, statsCachePrefix)
	return nil
}

func welcomeEmail(subscriber *models.Subscriber) EmailMessage {
	greeting := "Hello"
	if subscriber.Name != "" {
		greeting = "Hello " + subscriber.Name
	}

	htmlContent := fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; padding: 20px;">
			<h1>%s, welcome aboard!</h1>
			<p>You are now subscribed to our travel newsletter. Expect new destinations, guides and stories in your inbox.</p>
			<p>If this was not you, you can unsubscribe at any time.</p>
		</body>
		</html>
	`, greeting)

	return EmailMessage{
		To:        subscriber.Email,
		ToName:    subscriber.Name,
		Subject:   "Welcome to our travel newsletter",
		PlainText: greeting + ", you are now subscribed to our travel newsletter.",
		HTML:      htmlContent,
	}
}
