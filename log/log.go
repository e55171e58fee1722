package log

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/motemen/go-loghttp"
)

// EnvDebug enables debug logging, see IsDebugValue
const EnvDebug = "PPA_DEBUG"

// Logger is the global logger instance
var Logger *slog.Logger

var level = new(slog.LevelVar)

// InitLogger initializes the global logger writing to stderr
func InitLogger() {
	level.Set(slog.LevelInfo)
	if IsDebugValue(os.Getenv(EnvDebug)) {
		level.Set(slog.LevelDebug)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	loghttp.DefaultTransport.LogRequest = func(req *http.Request) {
		Debug("HTTP request",
			"method", req.Method,
			"url", req.URL.String(),
			"headers", req.Header,
		)
	}

	loghttp.DefaultTransport.LogResponse = func(resp *http.Response) {
		Debug("HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL.String(),
			"status", resp.Status,
			"status_code", resp.StatusCode,
			"content_length", resp.ContentLength,
		)
	}
}

func init() {
	InitLogger()
}

// IsDebugValue reports whether a PPA_DEBUG or debug config value turns
// debug logging on. Empty, "0", "false", "no" and "off" turn it off, any other
// value turns it on.
func IsDebugValue(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

// SetDebug switches the global logger between Info and Debug level
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

// Transport returns the HTTP transport that logs requests and responses at debug level
func Transport() http.RoundTripper {
	return loghttp.DefaultTransport
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
