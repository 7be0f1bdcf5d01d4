// Package context carries request-scoped values between the HTTP layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values this package stores.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyActorID   ContextKey = "actor_id"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = echo.HeaderXRequestID
)

// GetRequestID returns the id assigned by the RequestID middleware, or a fresh one
// when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request logger stored in ctx, falling back to base.
func GetLoggerOrDefault(ctx context.Context, base *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return base
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetActorID records the authenticated user for the rest of the handler chain.
func SetActorID(c echo.Context, id uuid.UUID) {
	c.Set(string(KeyActorID), id)
}

// GetActorID reports the authenticated user, if any.
func GetActorID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyActorID)).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetOptionalActorID is GetActorID shaped for usecases that accept anonymous callers.
func GetOptionalActorID(c echo.Context) *uuid.UUID {
	id, ok := GetActorID(c)
	if !ok {
		return nil
	}

	return &id
}
