package repository_test

import (
	"testing"
	"time"

	"travel-api/internal/models"
	apperrors "travel-api/internal/pkg/errors"
	"travel-api/internal/repository"
	"travel-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSubscriberRepository_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSubscriberRepository(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := &models.Subscriber{ID: primitive.NewObjectID(), Email: "traveler@example.com", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Subscriber{ID: primitive.NewObjectID(), Email: "traveler@example.com", CreatedAt: time.Now()}
	assert.ErrorIs(t, repo.Create(ctx, second), apperrors.ErrAlreadyExists)
}

func TestSubscriberRepository_DeleteByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSubscriberRepository(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := &models.Subscriber{ID: primitive.NewObjectID(), Email: "bye@example.com", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByEmail(ctx, "bye@example.com")
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	require.NoError(t, repo.DeleteByEmail(ctx, "bye@example.com"))
	assert.ErrorIs(t, repo.DeleteByEmail(ctx, "bye@example.com"), apperrors.ErrNotFound)

	items, total, err := repo.List(ctx, models.Pagination{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, items)
}
