package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/delivery/api/validator"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renderedError struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Code       string          `json:"code"`
	Errors     json.RawMessage `json:"errors"`
	Meta       struct {
		RequestID string `json:"requestId"`
	} `json:"meta"`
}

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, renderedError) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body renderedError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
		wantErrors string
	}{
		{
			name:       "domain error with details",
			err:        domainerrors.ErrInvalidID.WithDetails("videoId must be a valid id"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
			wantMsg:    domainerrors.ErrInvalidID.Message(),
			wantErrors: `["videoId must be a valid id"]`,
		},
		{
			name:       "wrapped domain error",
			err:        errors.Wrap(domainerrors.ErrVideoNotFound, "get video"),
			wantStatus: http.StatusNotFound,
			wantCode:   domainerrors.ErrVideoNotFound.ErrorCode(),
			wantMsg:    domainerrors.ErrVideoNotFound.Message(),
		},
		{
			name:       "forbidden drops details",
			err:        domainerrors.ErrVideoOwnershipViolation.WithDetails("owner is someone else"),
			wantStatus: http.StatusForbidden,
			wantCode:   domainerrors.ErrVideoOwnershipViolation.ErrorCode(),
			wantMsg:    domainerrors.ErrVideoOwnershipViolation.Message(),
		},
		{
			name: "validation error lists fields",
			err: errors.WithStack(&validator.Error{Fields: []validator.FieldError{
				{Field: "title", Rule: "notblank", Message: "title is required"},
			}}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantMsg:    domainerrors.ErrValidationFailed.Message(),
			wantErrors: `[{"field":"title","rule":"notblank","message":"title is required"}]`,
		},
		{
			name:       "echo error keeps its status",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
			wantMsg:    "Method Not Allowed",
		},
		{
			name:       "echo 5xx is hidden",
			err:        echo.NewHTTPError(http.StatusBadGateway, "upstream exploded"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "HTTP_ERROR",
			wantMsg:    internalErrorMessage,
		},
		{
			name:       "server side domain error is hidden",
			err:        domainerrors.ErrMediaUploadFailed.WithDetails("cloudinary said no"),
			wantStatus: domainerrors.ErrMediaUploadFailed.HTTPCode(),
			wantCode:   domainerrors.ErrMediaUploadFailed.ErrorCode(),
			wantMsg:    internalErrorMessage,
		},
		{
			name:       "plain error",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, body := renderError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, body.StatusCode)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			if tt.wantErrors == "" {
				assert.Empty(t, body.Errors)
			} else {
				assert.JSONEq(t, tt.wantErrors, string(body.Errors))
			}
		})
	}
}

func TestErrorMiddleware_CommittedResponseIsLeftAlone(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "done", rec.Body.String())
}
