package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reuses the client id", incoming: "client-id"},
		{name: "mints an id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var fromCtx string
			err := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")
				return nil
			})(c)
			require.NoError(t, err)

			id := rec.Header().Get(echo.HeaderXRequestID)
			require.NotEmpty(t, id)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, id)
			}
			assert.Equal(t, id, fromCtx)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, id, line["request_id"])
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("silent unless debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cfg := &config.Config{}
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})(c)

		require.NoError(t, err)
		assert.Zero(t, buf.Len())
	})

	t.Run("logs the rendered status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing?x=1", nil), rec)

		err := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg).Handle(func(echo.Context) error {
			return echo.ErrNotFound
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "WARN", line["level"])
		assert.EqualValues(t, http.StatusNotFound, line["status"])
		assert.Equal(t, http.MethodGet, line["method"])
		assert.Equal(t, "x=1", line["query"])
	})
}
