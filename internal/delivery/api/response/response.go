// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "vidtube/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	StatusCode int       `json:"statusCode"`
	Data       any       `json:"data"`
	Message    string    `json:"message"`
	Success    bool      `json:"success"`
	Code       string    `json:"code,omitempty"`
	Errors     any       `json:"errors,omitempty"`
	Meta       *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"requestId"`
}

func newEnvelope(c echo.Context, statusCode int, data any, message string) *Envelope {
	return &Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	}
}

// Success writes data with a 2xx status.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, newEnvelope(c, statusCode, data, message))
}

// OK writes a 200 success envelope.
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Created writes a 201 success envelope.
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error writes a failed envelope. errs is dropped for 5xx, 401 and 403 so nothing
// internal or security relevant leaks to the client.
func Error(c echo.Context, statusCode int, code, message string, errs any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		errs = nil
	}

	env := newEnvelope(c, statusCode, nil, message)
	env.Code = code
	env.Errors = errs

	return c.JSON(statusCode, env)
}
