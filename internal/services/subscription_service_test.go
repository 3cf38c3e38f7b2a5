package services

import (
	"context"
	"errors"
	"testing"

	"travel-api/internal/models"
	apperrors "travel-api/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscribe_SendsWelcomeEmail(t *testing.T) {
	repo := new(mockSubscriberRepo)
	mailer := new(mockMailer)
	svc := NewSubscriptionService(repo, mailer, nil, NopCacheService{})
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "wanderer@example.com").Return(nil, apperrors.ErrNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Subscriber")).Return(nil)
	mailer.On("Send", ctx, mock.MatchedBy(func(msg EmailMessage) bool {
		return msg.To == "wanderer@example.com" && msg.HTML != ""
	})).Return(nil)

	sub, err := svc.Subscribe(ctx, "Wanderer@Example.com", "Sam")
	require.NoError(t, err)
	assert.Equal(t, "wanderer@example.com", sub.Email)
	mailer.AssertExpectations(t)
}

func TestSubscribe_DuplicateIsConflict(t *testing.T) {
	repo := new(mockSubscriberRepo)
	svc := NewSubscriptionService(repo, LogMailer{}, nil, NopCacheService{})
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "dup@example.com").Return(&models.Subscriber{Email: "dup@example.com"}, nil)

	_, err := svc.Subscribe(ctx, "DUP@example.com", "")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestSubscribe_RaceOnUniqueIndexIsConflict(t *testing.T) {
	repo := new(mockSubscriberRepo)
	svc := NewSubscriptionService(repo, LogMailer{}, nil, NopCacheService{})
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "race@example.com").Return(nil, apperrors.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(apperrors.ErrAlreadyExists)

	_, err := svc.Subscribe(ctx, "race@example.com", "")
	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ALREADY_EXISTS", appErr.Code)
}

func TestSubscribe_MailFailureDoesNotFail(t *testing.T) {
	repo := new(mockSubscriberRepo)
	mailer := new(mockMailer)
	svc := NewSubscriptionService(repo, mailer, nil, NopCacheService{})
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "quiet@example.com").Return(nil, apperrors.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(nil)
	mailer.On("Send", ctx, mock.Anything).Return(errors.New("smtp down"))

	_, err := svc.Subscribe(ctx, "quiet@example.com", "")
	assert.NoError(t, err)
}

func TestUnsubscribeByEmail_Normalizes(t *testing.T) {
	repo := new(mockSubscriberRepo)
	svc := NewSubscriptionService(repo, LogMailer{}, nil, NopCacheService{})
	ctx := context.Background()

	repo.On("DeleteByEmail", ctx, "bye@example.com").Return(nil)
	require.NoError(t, svc.UnsubscribeByEmail(ctx, " Bye@Example.com"))
	repo.AssertExpectations(t)
}
