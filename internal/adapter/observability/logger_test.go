package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apihttp "github.com/kmorrow/issuesheet/internal/adapter/api/http"
	"github.com/kmorrow/issuesheet/internal/adapter/observability"
)

type recordingLogger struct {
	apihttp.Logger

	infos    []string
	warnings []string
	fields   []map[string]interface{}
}

func (r *recordingLogger) LogInfo(ctx context.Context, message string, fields map[string]interface{}) {
	r.infos = append(r.infos, message)
	r.fields = append(r.fields, fields)
}

func (r *recordingLogger) LogWarning(ctx context.Context, message string, fields map[string]interface{}) {
	r.warnings = append(r.warnings, message)
	r.fields = append(r.fields, fields)
}

func TestSyncLogger_DelegatesInfo(t *testing.T) {
	inner := &recordingLogger{}
	logger := observability.NewSyncLogger(inner)

	logger.LogInfo(context.Background(), "starting batch", map[string]interface{}{"rows": 2})

	assert.Equal(t, []string{"starting batch"}, inner.infos)
	assert.Equal(t, map[string]interface{}{"rows": 2}, inner.fields[0])
}

func TestSyncLogger_DelegatesWarning(t *testing.T) {
	inner := &recordingLogger{}
	logger := observability.NewSyncLogger(inner)

	logger.LogWarning(context.Background(), "row failed", map[string]interface{}{"row": 4})

	assert.Equal(t, []string{"row failed"}, inner.warnings)
}
