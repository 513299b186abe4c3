// Package logger provides structured logging functionality for the application.
//
// It uses the standard library log/slog package with a JSON handler and carries
// request-scoped loggers (tagged with trace IDs) through context.Context.
package logger
