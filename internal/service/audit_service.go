package service

import (
	"context"
	"time"

	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditWriteTimeout = 5 * time.Second

// AuditEntry is one (actor, action, description, ip) tuple.
type AuditEntry struct {
	ActorID     *int64
	Action      string
	Description string
	IPAddress   string
}

// AuditService appends to system_logs. Record never fails the caller: it
// writes on its own connection and only logs persistence errors.
type AuditService interface {
	Record(ctx context.Context, entry AuditEntry)
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, entry AuditEntry) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("Recovered while writing audit log %q: %v", entry.Action, r)
		}
	}()

	// Detached from request cancellation so a finished response does not drop the entry
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	ip := entry.IPAddress
	if ip == "" {
		ip = "Unknown"
	}

	auditLog := &entity.AuditLog{
		UserID:      entry.ActorID,
		Action:      entry.Action,
		Description: entry.Description,
		IPAddress:   ip,
	}

	if err := s.auditRepo.Create(s.db.WithContext(writeCtx), auditLog); err != nil {
		s.log.WithFields(logrus.Fields{
			"action":   entry.Action,
			"actor_id": entry.ActorID,
		}).Warnf("Failed to create audit log: %+v", err)
	}
}
