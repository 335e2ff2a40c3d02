package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Authorize checks the caller's capabilities before an operation runs.
func (s *BaseService) Authorize(ctx context.Context, caps domain.Capabilities, action domain.Action, resource domain.Resource) error {
	if caps.Can(action, resource) {
		return nil
	}
	s.LogWarn(ctx, "Capability check failed",
		slog.String("action", string(action)),
		slog.String("resource", string(resource)))
	return fmt.Errorf("%w: cannot %s %s", apperrors.ErrForbidden, action, resource)
}

// logUnexpected logs err unless it is one of the expected domain outcomes.
func (s *BaseService) logUnexpected(ctx context.Context, err error, msg string, keyvals ...any) {
	if apperrors.IsExpected(err) {
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}
