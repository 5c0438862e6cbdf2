package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// newAuditEntry fills actor and client IP from the request context
func newAuditEntry(ctx context.Context, action, description string) service.AuditEntry {
	return service.AuditEntry{
		ActorID:     middleware.GetActorFromContext(ctx),
		Action:      action,
		Description: description,
		IPAddress:   middleware.GetClientIPFromContext(ctx),
	}
}

// parseDate parses YYYY-MM-DD in loc
func parseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(validator.DateLayout, value, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

func parseClock(value string) (string, error) {
	clock, err := validator.ParseClock(value)
	if err != nil {
		return "", ErrInvalidTimeFormat
	}
	return clock, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
