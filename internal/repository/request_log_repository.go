package repository

import (
	"context"

	"travel-api/internal/models"
	apperrors "travel-api/internal/pkg/errors"

	"gorm.io/gorm"
)

type RequestLogRepository interface {
	Create(ctx context.Context, log *models.RequestLog) error
	List(ctx context.Context, filter models.RequestLogFilter, page, pageSize int) ([]models.RequestLog, int64, error)
}

type requestLogRepository struct {
	db *gorm.DB
}

func NewRequestLogRepository(db *gorm.DB) RequestLogRepository {
	return &requestLogRepository{db: db}
}

func (r *requestLogRepository) Create(ctx context.Context, log *models.RequestLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return apperrors.Wrap(err, "failed to create request log")
	}
	return nil
}

func (r *requestLogRepository) List(ctx context.Context, filter models.RequestLogFilter, page, pageSize int) ([]models.RequestLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.RequestLog{}).
		Where("timestamp BETWEEN ? AND ?", filter.From, filter.To)
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Endpoint != "" {
		query = query.Where("endpoint = ?", filter.Endpoint)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count request logs")
	}

	var logs []models.RequestLog
	err := query.
		Order("timestamp desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list request logs")
	}
	return logs, total, nil
}
