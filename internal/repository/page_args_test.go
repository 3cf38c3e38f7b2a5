package repository

import (
	"testing"

	"travel-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPageArgs(t *testing.T) {
	tests := []struct {
		name          string
		in            models.Pagination
		limit, offset int
	}{
		{"first page", models.Pagination{Page: 1, PerPage: 10}, 10, 0},
		{"third page", models.Pagination{Page: 3, PerPage: 20}, 20, 40},
		{"zero page", models.Pagination{Page: 0, PerPage: 10}, 10, 0},
		{"default size", models.Pagination{Page: 2}, models.DefaultPerPage, models.DefaultPerPage},
		{"clamped size", models.Pagination{Page: 2, PerPage: 500}, models.MaxPerPage, models.MaxPerPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pageArgs(tt.in)
			assert.Equal(t, tt.limit, limit)
			assert.Equal(t, tt.offset, offset)
		})
	}
}
