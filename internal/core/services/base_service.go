package services

import (
	"context"
	"log/slog"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
	"github.com/assureline/payroll_engine/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting.
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// RequireAdmin checks that the actor carries the admin role. Role resolution
// belongs to the external identity provider; the engine only inspects the
// credential it was handed.
func (s *BaseService) RequireAdmin(ctx context.Context, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		s.LogWarn(ctx, "Actor lacks admin role",
			slog.String("user_id", actor.UserID),
			slog.String("role", string(actor.Role)))
		return apperrors.ErrForbidden
	}
	return nil
}
