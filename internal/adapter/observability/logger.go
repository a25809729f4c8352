package observability

import (
	"context"

	apihttp "github.com/kmorrow/issuesheet/internal/adapter/api/http"
	"github.com/kmorrow/issuesheet/internal/usecase/sync"
)

// SyncLogger adapts apihttp.Logger to the sync.Logger interface, so the
// batch driver shares the structured logging infrastructure of the API client.
type SyncLogger struct {
	logger apihttp.Logger
}

// NewSyncLogger creates a new sync logger adapter.
func NewSyncLogger(logger apihttp.Logger) sync.Logger {
	return &SyncLogger{logger: logger}
}

// LogInfo logs an informational message with structured fields.
func (l *SyncLogger) LogInfo(ctx context.Context, message string, fields map[string]interface{}) {
	l.logger.LogInfo(ctx, message, fields)
}

// LogWarning logs a warning message with structured fields.
func (l *SyncLogger) LogWarning(ctx context.Context, message string, fields map[string]interface{}) {
	l.logger.LogWarning(ctx, message, fields)
}
