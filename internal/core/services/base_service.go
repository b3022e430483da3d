package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.PermissionSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks that a user may perform action in a workplace.
// Without an authorizer every action is denied.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, workplaceID string, action domain.Permission) error {
	if s.Authorizer == nil {
		s.GetLogger(ctx).Error("No permission service configured, denying action",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID),
			slog.String("action", string(action)))
		return apperrors.ErrForbidden
	}
	return s.Authorizer.AuthorizeAction(ctx, userID, workplaceID, action)
}
