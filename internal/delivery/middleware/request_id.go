// Package middleware holds echo middleware shared by every HTTP delivery.
package middleware

import (
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process honours an inbound X-Request-Id, minting a UUID when absent, echoes it
// back and stores a request-scoped logger in the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		id := req.Header.Get(deliverycontext.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)
		deliverycontext.SetRequestID(c, id)

		scoped := m.logger.With(slog.String("request_id", id))
		ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), id), scoped)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
