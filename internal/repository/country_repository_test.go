package repository_test

import (
	"testing"
	"time"

	"travel-api/internal/models"
	"travel-api/internal/repository"
	"travel-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCountryRepository_ListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCountryRepository(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	for _, c := range []struct{ name, continent string }{
		{"Portugal", "Europe"},
		{"Japan", "Asia"},
		{"Norway", "Europe"},
		{"South Africa", "Africa"},
	} {
		require.NoError(t, repo.Create(ctx, &models.Country{
			ID:        primitive.NewObjectID(),
			Name:      c.name,
			Continent: c.continent,
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}
	p := models.Pagination{Page: 1, PerPage: 10}

	names := func(countries []models.Country) []string {
		out := make([]string, len(countries))
		for i, c := range countries {
			out[i] = c.Name
		}
		return out
	}

	countries, total, err := repo.List(ctx, models.CountryFilter{Continent: "europe"}, p)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []string{"Norway", "Portugal"}, names(countries))

	countries, _, err = repo.List(ctx, models.CountryFilter{Continent: "Eur"}, p)
	require.NoError(t, err)
	assert.Empty(t, countries)

	countries, _, err = repo.List(ctx, models.CountryFilter{Search: "south", Continent: "Africa"}, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"South Africa"}, names(countries))
}
