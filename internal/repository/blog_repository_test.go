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

func newBlog(title, slug, summary string, published time.Time, tags ...string) *models.Blog {
	return &models.Blog{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Slug:        slug,
		Summary:     summary,
		Content:     "<p>" + title + "</p>",
		Tags:        tags,
		PublishedAt: published,
		CreatedAt:   published,
		UpdatedAt:   published,
	}
}

func blogTitles(blogs []models.Blog) []string {
	titles := make([]string, len(blogs))
	for i, b := range blogs {
		titles[i] = b.Title
	}
	return titles
}

func TestBlogRepository_ListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBlogRepository(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, b := range []*models.Blog{
		newBlog("Eating in Porto", "eating-in-porto", "Tascas and pastries", base, "food", "city"),
		newBlog("Lisbon Viewpoints", "lisbon-viewpoints", "Miradouros near Porto's rival", base.Add(time.Hour), "city"),
		newBlog("Hiking the Alps", "hiking-the-alps", "Huts and trails", base.Add(2*time.Hour), "outdoors"),
	} {
		require.NoError(t, repo.Create(ctx, b))
	}
	p := models.Pagination{Page: 1, PerPage: 10}

	t.Run("tag is case-insensitive and exact", func(t *testing.T) {
		blogs, total, err := repo.List(ctx, models.BlogFilter{Tag: "CITY"}, p)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, []string{"Lisbon Viewpoints", "Eating in Porto"}, blogTitles(blogs))

		blogs, _, err = repo.List(ctx, models.BlogFilter{Tag: "cit"}, p)
		require.NoError(t, err)
		assert.Empty(t, blogs)
	})

	t.Run("search matches title or summary", func(t *testing.T) {
		blogs, total, err := repo.List(ctx, models.BlogFilter{Search: "porto"}, p)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.ElementsMatch(t, []string{"Eating in Porto", "Lisbon Viewpoints"}, blogTitles(blogs))
	})

	t.Run("search and tag combine", func(t *testing.T) {
		blogs, _, err := repo.List(ctx, models.BlogFilter{Search: "porto", Tag: "food"}, p)
		require.NoError(t, err)
		assert.Equal(t, []string{"Eating in Porto"}, blogTitles(blogs))
	})

	t.Run("search is literal", func(t *testing.T) {
		blogs, _, err := repo.List(ctx, models.BlogFilter{Search: ".*"}, p)
		require.NoError(t, err)
		assert.Empty(t, blogs)
	})

	t.Run("pagination", func(t *testing.T) {
		blogs, total, err := repo.List(ctx, models.BlogFilter{}, models.Pagination{Page: 2, PerPage: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []string{"Eating in Porto"}, blogTitles(blogs))
	})
}

func TestBlogRepository_Slug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBlogRepository(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b := newBlog("Porto", "porto", "", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetBySlug(ctx, "porto")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	exists, err := repo.SlugExists(ctx, "porto")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetBySlug(ctx, "lisbon")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
