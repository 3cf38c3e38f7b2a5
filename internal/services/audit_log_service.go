package services

import (
	"context"
	"time"

	"travel-api/internal/logger"
	"travel-api/internal/models"
	apperrors "travel-api/internal/pkg/errors"
	"travel-api/internal/repository"

	"github.com/sirupsen/logrus"
)

type AuditLogService interface {
	GetAuditLogs(ctx context.Context, entityType string, page, pageSize int) ([]models.AuditLog, int64, error)
	CreateAuditLog(ctx context.Context, action, entityType, entityID string, details models.JSON) error
}

type auditLogService struct {
	auditLogRepo repository.AuditLogRepository
}

// NewAuditLogService returns an AuditLogService. With a nil repository,
// entries are only written to the application log and reads are unavailable.
func NewAuditLogService(auditLogRepo repository.AuditLogRepository) AuditLogService {
	return &auditLogService{
		auditLogRepo: auditLogRepo,
	}
}

func (s *auditLogService) GetAuditLogs(ctx context.Context, entityType string, page, pageSize int) ([]models.AuditLog, int64, error) {
	if s.auditLogRepo == nil {
		return nil, 0, apperrors.Unavailable("audit log storage is not configured")
	}
	return s.auditLogRepo.ListAuditLogs(ctx, entityType, page, pageSize)
}

// CreateAuditLog records a write made by the user attached to ctx.
func (s *auditLogService) CreateAuditLog(ctx context.Context, action, entityType, entityID string, details models.JSON) error {
	log := &models.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Timestamp:  time.Now().UTC(),
	}
	if user, ok := UserFromContext(ctx); ok {
		log.ActorID = user.ID.Hex()
		log.ActorEmail = user.Email
	}

	logger.Logger.WithFields(logrus.Fields{
		"actor":       log.ActorEmail,
		"action":      action,
		"entity_type": entityType,
		"entity_id":   entityID,
	}).Info("audit")

	if s.auditLogRepo == nil {
		return nil
	}
	return s.auditLogRepo.CreateAuditLog(ctx, log)
}

// recordAudit writes an audit entry, logging rather than returning failures.
func recordAudit(ctx context.Context, audit AuditLogService, action, entityType, entityID string, details models.JSON) {
	if audit == nil {
		return
	}
	if err := audit.CreateAuditLog(ctx, action, entityType, entityID, details); err != nil {
		logger.Logger.WithError(err).WithField("entity_id", entityID).Error("failed to write audit log")
	}
}
