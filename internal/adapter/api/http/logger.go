package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

// Logger provides structured logging for GitHub API calls.
type Logger interface {
	// LogRequest logs an outgoing API request (token redacted)
	LogRequest(ctx context.Context, req RequestLog)

	// LogResponse logs an API response with timing info
	LogResponse(ctx context.Context, resp ResponseLog)

	// LogError logs an API error
	LogError(ctx context.Context, err ErrorLog)

	// LogInfo logs an informational message with structured fields
	LogInfo(ctx context.Context, message string, fields map[string]interface{})

	// LogWarning logs a warning message with structured fields
	LogWarning(ctx context.Context, message string, fields map[string]interface{})
}

// RequestLog contains request information for logging.
type RequestLog struct {
	Operation string
	Timestamp time.Time
	Token     string // Will be redacted to last 4 chars
}

// ResponseLog contains response information for logging.
type ResponseLog struct {
	Operation  string
	Timestamp  time.Time
	Duration   time.Duration
	StatusCode int
}

// ErrorLog contains error information for logging.
type ErrorLog struct {
	Operation  string
	Timestamp  time.Time
	Duration   time.Duration
	Error      error
	ErrorType  ErrorType
	StatusCode int
}

// LogLevel defines the logging verbosity level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelError
)

// LogFormat defines the output format for logs.
type LogFormat int

const (
	LogFormatHuman LogFormat = iota
	LogFormatJSON
)

// DefaultLogger writes logs in structured format via the standard log package.
type DefaultLogger struct {
	level       LogLevel
	format      LogFormat
	redactToken bool
}

// NewDefaultLogger creates a logger with the specified config.
func NewDefaultLogger(level LogLevel, format LogFormat, redactToken bool) *DefaultLogger {
	return &DefaultLogger{
		level:       level,
		format:      format,
		redactToken: redactToken,
	}
}

// LogRequest logs an API request.
func (l *DefaultLogger) LogRequest(ctx context.Context, req RequestLog) {
	if l.level > LogLevelDebug {
		return
	}

	redacted := l.RedactToken(req.Token)

	if l.format == LogFormatJSON {
		log.Printf(`{"level":"debug","type":"request","operation":"%s","timestamp":"%s","token":"%s"}`,
			req.Operation, req.Timestamp.Format(time.RFC3339), redacted)
	} else {
		log.Printf("[DEBUG] %s: request sent (token=%s)", req.Operation, redacted)
	}
}

// LogResponse logs an API response.
func (l *DefaultLogger) LogResponse(ctx context.Context, resp ResponseLog) {
	if l.level > LogLevelInfo {
		return
	}

	if l.format == LogFormatJSON {
		log.Printf(`{"level":"info","type":"response","operation":"%s","timestamp":"%s","duration_ms":%d,"status_code":%d}`,
			resp.Operation, resp.Timestamp.Format(time.RFC3339),
			resp.Duration.Milliseconds(), resp.StatusCode)
	} else {
		log.Printf("[INFO] %s: response received (duration=%.1fs, status=%d)",
			resp.Operation, resp.Duration.Seconds(), resp.StatusCode)
	}
}

// LogError logs an API error.
func (l *DefaultLogger) LogError(ctx context.Context, err ErrorLog) {
	if l.level > LogLevelError {
		return
	}

	if l.format == LogFormatJSON {
		log.Printf(`{"level":"error","type":"error","operation":"%s","timestamp":"%s","duration_ms":%d,"error":%q,"error_type":"%s","status_code":%d}`,
			err.Operation, err.Timestamp.Format(time.RFC3339),
			err.Duration.Milliseconds(), err.Error.Error(), err.ErrorType.String(),
			err.StatusCode)
	} else {
		log.Printf("[ERROR] %s: API call failed (status=%d, %s): %v",
			err.Operation, err.StatusCode, err.ErrorType.String(), err.Error)
	}
}

// LogInfo logs an informational message with structured fields.
func (l *DefaultLogger) LogInfo(ctx context.Context, message string, fields map[string]interface{}) {
	if l.level > LogLevelInfo {
		return
	}
	l.logMessage("info", "[INFO]", message, fields)
}

// LogWarning logs a warning message with structured fields.
// Warnings are always emitted regardless of level.
func (l *DefaultLogger) LogWarning(ctx context.Context, message string, fields map[string]interface{}) {
	l.logMessage("warning", "[WARN]", message, fields)
}

func (l *DefaultLogger) logMessage(jsonLevel, humanPrefix, message string, fields map[string]interface{}) {
	if l.format == LogFormatJSON {
		payload := map[string]interface{}{
			"level":   jsonLevel,
			"message": message,
		}
		for k, v := range fields {
			payload[k] = v
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			log.Printf(`{"level":"%s","message":%q}`, jsonLevel, message)
			return
		}
		log.Print(string(encoded))
		return
	}

	if len(fields) == 0 {
		log.Printf("%s %s", humanPrefix, message)
		return
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	log.Printf("%s %s (%s)", humanPrefix, message, strings.Join(parts, ", "))
}

// RedactToken shows only the last 4 characters of a token with explicit redaction markers.
func (l *DefaultLogger) RedactToken(token string) string {
	if !l.redactToken {
		return token
	}
	if len(token) <= 4 {
		return "[REDACTED]"
	}
	return fmt.Sprintf("[REDACTED-%s]", token[len(token)-4:])
}
