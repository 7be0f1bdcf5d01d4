package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "vidtube/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func TestOK(t *testing.T) {
	t.Parallel()

	c, rec := newContext()
	require.NoError(t, OK(c, map[string]int{"views": 3}, "Fetched"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"statusCode": 200,
		"data": {"views": 3},
		"message": "Fetched",
		"success": true,
		"meta": {"requestId": "req-42"}
	}`, rec.Body.String())
}

func TestCreated(t *testing.T) {
	t.Parallel()

	c, rec := newContext()
	require.NoError(t, Created(c, struct{}{}, "Made"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"statusCode": 201,
		"data": {},
		"message": "Made",
		"success": true,
		"meta": {"requestId": "req-42"}
	}`, rec.Body.String())
}

func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   string
	}{
		{
			name:   "client error keeps errors",
			status: http.StatusBadRequest,
			want:   `{"statusCode":400,"data":null,"message":"Bad","success":false,"code":"X","errors":["detail"],"meta":{"requestId":"req-42"}}`,
		},
		{
			name:   "unauthorized drops errors",
			status: http.StatusUnauthorized,
			want:   `{"statusCode":401,"data":null,"message":"Bad","success":false,"code":"X","meta":{"requestId":"req-42"}}`,
		},
		{
			name:   "forbidden drops errors",
			status: http.StatusForbidden,
			want:   `{"statusCode":403,"data":null,"message":"Bad","success":false,"code":"X","meta":{"requestId":"req-42"}}`,
		},
		{
			name:   "server error drops errors",
			status: http.StatusServiceUnavailable,
			want:   `{"statusCode":503,"data":null,"message":"Bad","success":false,"code":"X","meta":{"requestId":"req-42"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, rec := newContext()
			require.NoError(t, Error(c, tt.status, "X", "Bad", []string{"detail"}))

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
