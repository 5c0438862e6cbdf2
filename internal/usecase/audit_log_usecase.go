package usecase

import (
	"context"
	"errors"
	"fmt"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/export"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidExportFormat = errors.New("invalid export format")
)

const (
	defaultAuditLogLimit = 100
	DefaultRetentionDays = 90
	ExportFormatJSON     = "json"
	ExportFormatXLSX     = "xlsx"
)

type AuditLogUsecase interface {
	GetAll(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogListResponse, error)
	GetStatistics(ctx context.Context) (*entity.AuditLogStats, error)
	GetUsers(ctx context.Context) ([]dto.AuditActorResponse, error)
	ClearOldLogs(ctx context.Context, days int) (*dto.ClearOldLogsResponse, error)
	Export(ctx context.Context, req *dto.ExportAuditLogsRequest) (*dto.AuditLogExport, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
	audit        service.AuditService
	clock        clock.Clock
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
	audit service.AuditService,
	clk clock.Clock,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
		audit:        audit,
		clock:        clk,
	}
}

func (u *auditLogUsecase) GetAll(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogListResponse, error) {
	filter, err := u.buildFilter(req)
	if err != nil {
		return nil, err
	}

	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: total,
	}, nil
}

func (u *auditLogUsecase) GetStatistics(ctx context.Context) (*entity.AuditLogStats, error) {
	stats, err := u.auditLogRepo.Statistics(u.db.WithContext(ctx), u.clock.Today())
	if err != nil {
		u.log.Warnf("Failed to get audit log statistics: %+v", err)
		return nil, err
	}

	return stats, nil
}

func (u *auditLogUsecase) GetUsers(ctx context.Context) ([]dto.AuditActorResponse, error) {
	actors, err := u.auditLogRepo.FindActors(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find audit log users: %+v", err)
		return nil, err
	}

	return converter.AuditActorsToResponses(actors), nil
}

// ClearOldLogs deletes entries older than days (default 90) and records the
// purge itself as a maintenance entry.
func (u *auditLogUsecase) ClearOldLogs(ctx context.Context, days int) (*dto.ClearOldLogsResponse, error) {
	if days <= 0 {
		days = DefaultRetentionDays
	}

	cutoff := u.clock.Now().AddDate(0, 0, -days)
	deleted, err := u.auditLogRepo.DeleteOlderThan(u.db.WithContext(ctx), cutoff)
	if err != nil {
		u.log.Warnf("Failed to clear old audit logs: %+v", err)
		return nil, err
	}

	u.log.Infof("Cleared %d audit logs older than %d days", deleted, days)
	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionMaintenance,
		fmt.Sprintf("Cleared logs older than %d days (%d records)", days, deleted),
	))

	return &dto.ClearOldLogsResponse{
		Days:    days,
		Deleted: deleted,
	}, nil
}

func (u *auditLogUsecase) Export(ctx context.Context, req *dto.ExportAuditLogsRequest) (*dto.AuditLogExport, error) {
	format := req.Format
	if format == "" {
		format = ExportFormatJSON
	}
	if format != ExportFormatJSON && format != ExportFormatXLSX {
		return nil, ErrInvalidExportFormat
	}

	list, err := u.GetAll(ctx, &req.AuditLogListRequest)
	if err != nil {
		return nil, err
	}

	result := &dto.AuditLogExport{Format: format}
	switch format {
	case ExportFormatXLSX:
		now := u.clock.Now()
		content, err := export.GenerateAuditLogExport(list.Logs, now.Location())
		if err != nil {
			u.log.Warnf("Failed to generate audit log spreadsheet: %+v", err)
			return nil, err
		}
		result.Filename = export.AuditLogFilename(now)
		result.ContentType = export.XLSXContentType
		result.Content = content
	default:
		result.Logs = list.Logs
	}

	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionExport,
		fmt.Sprintf("Exported audit logs (%d records)", list.Total),
	))

	return result, nil
}

func (u *auditLogUsecase) buildFilter(req *dto.AuditLogListRequest) (*entity.AuditLogFilter, error) {
	loc := u.clock.Now().Location()

	filter := &entity.AuditLogFilter{
		UserID: req.UserID,
		Action: req.Action,
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultAuditLogLimit
	}

	if req.FromDate != "" {
		from, err := parseDate(req.FromDate, loc)
		if err != nil {
			return nil, err
		}
		filter.FromDate = &from
	}
	if req.ToDate != "" {
		to, err := parseDate(req.ToDate, loc)
		if err != nil {
			return nil, err
		}
		filter.ToDate = &to
	}

	return filter, nil
}
