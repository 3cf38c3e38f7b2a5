package services

import (
	"context"

	"travel-api/internal/models"
	apperrors "travel-api/internal/pkg/errors"
	"travel-api/internal/repository"
)

type RequestLogService interface {
	LogRequest(ctx context.Context, log *models.RequestLog) error
	GetRequestLogs(ctx context.Context, filter models.RequestLogFilter, page, pageSize int) ([]models.RequestLog, int64, error)
}

type requestLogService struct {
	repo repository.RequestLogRepository
}

// NewRequestLogService returns a RequestLogService. A nil repository drops
// writes and makes reads unavailable.
func NewRequestLogService(repo repository.RequestLogRepository) RequestLogService {
	return &requestLogService{repo: repo}
}

func (s *requestLogService) LogRequest(ctx context.Context, log *models.RequestLog) error {
	if s.repo == nil {
		return nil
	}
	if log.StatusCode >= 400 {
		log.Status = models.StatusError
	} else {
		log.Status = models.StatusSuccess
	}
	return s.repo.Create(ctx, log)
}

func (s *requestLogService) GetRequestLogs(ctx context.Context, filter models.RequestLogFilter, page, pageSize int) ([]models.RequestLog, int64, error) {
	if s.repo == nil {
		return nil, 0, apperrors.Unavailable("request log storage is not configured")
	}
	return s.repo.List(ctx, filter, page, pageSize)
}
