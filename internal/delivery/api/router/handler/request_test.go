package handler

import (
	"bytes"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, bytes.Repeat([]byte{0}, 32)...)

func TestListOptions(t *testing.T) {
	t.Parallel()

	paging := &config.PaginationConfig{DefaultLimit: 10, MaxLimit: 50}

	tests := []struct {
		name  string
		query string
		want  usecase.ListOptions
	}{
		{name: "empty", query: "", want: usecase.ListOptions{Page: 1, Limit: 10}},
		{name: "zero page", query: "page=0&limit=5", want: usecase.ListOptions{Page: 1, Limit: 5}},
		{name: "negative", query: "page=-2&limit=-1", want: usecase.ListOptions{Page: 1, Limit: 10}},
		{name: "not numbers", query: "page=two&limit=ten", want: usecase.ListOptions{Page: 1, Limit: 10}},
		{name: "over max", query: "page=4&limit=500", want: usecase.ListOptions{Page: 4, Limit: 50}},
		{name: "huge page", query: "page=9223372036854775807", want: usecase.ListOptions{Page: math.MaxInt32, Limit: 10}},
		{
			name:  "sorting passes through",
			query: "sortBy=createdAt&sortType=desc",
			want:  usecase.ListOptions{Page: 1, Limit: 10, SortBy: "createdAt", SortType: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil), httptest.NewRecorder())

			assert.Equal(t, tt.want, listOptions(c, paging))
		})
	}
}

func TestPathID(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	want := uuid.New()
	c.SetParamNames("videoId", "tweetId")
	c.SetParamValues(want.String(), "42")

	got, err := pathID(c, "videoId")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = pathID(c, "tweetId")
	require.ErrorIs(t, err, domainerrors.ErrInvalidID)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "tweetId must be a valid id", appErr.Details())
}

func TestActorID(t *testing.T) {
	t.Parallel()

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := actorID(c)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	id := uuid.New()
	deliverycontext.SetActorID(c, id)
	got, err := actorID(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func uploadContext(t *testing.T, field, name string, content []byte) echo.Context {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if field != "" {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestUploads_Image(t *testing.T) {
	t.Parallel()

	t.Run("sniffs and rewinds", func(t *testing.T) {
		t.Parallel()

		files := newUploads(uploadContext(t, "avatar", "me.bin", jpegBytes))
		defer files.Close()

		in, err := files.Image("avatar", true)
		require.NoError(t, err)
		require.NotNil(t, in)
		assert.Equal(t, "image/jpeg", in.ContentType)
		assert.Equal(t, "me.bin", in.Name)
		assert.Equal(t, int64(len(jpegBytes)), in.Size)

		got, err := io.ReadAll(in.Reader)
		require.NoError(t, err)
		assert.Equal(t, jpegBytes, got)
	})

	t.Run("rejects other content", func(t *testing.T) {
		t.Parallel()

		files := newUploads(uploadContext(t, "avatar", "me.png", []byte("GIF89a not really allowed here")))
		defer files.Close()

		_, err := files.Image("avatar", true)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
	})

	t.Run("required field missing", func(t *testing.T) {
		t.Parallel()

		files := newUploads(uploadContext(t, "", "", nil))
		defer files.Close()

		_, err := files.Image("avatar", true)
		assert.ErrorIs(t, err, domainerrors.ErrMissingFile)
	})

	t.Run("optional field missing", func(t *testing.T) {
		t.Parallel()

		files := newUploads(uploadContext(t, "", "", nil))
		defer files.Close()

		in, err := files.Image("coverImage", false)
		require.NoError(t, err)
		assert.Nil(t, in)
	})

	t.Run("not multipart", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPatch, "/", nil)
		files := newUploads(echo.New().NewContext(req, httptest.NewRecorder()))
		defer files.Close()

		_, err := files.Image("avatar", true)
		assert.ErrorIs(t, err, domainerrors.ErrMissingFile)
	})
}

func TestSessionCookies(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}}
	cfg.HTTP.Cookie = config.CookieConfig{Secure: true, SameSite: "Strict", Domain: "example.com"}
	cookies := newSessionCookies(cfg)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	cookies.set(c, "a", "r")

	got := rec.Result().Cookies()
	require.Len(t, got, 2)
	assert.Equal(t, "accessToken", got[0].Name)
	assert.Equal(t, 60, got[0].MaxAge)
	assert.Equal(t, "refreshToken", got[1].Name)
	assert.Equal(t, 3600, got[1].MaxAge)
	for _, ck := range got {
		assert.True(t, ck.HttpOnly)
		assert.True(t, ck.Secure)
		assert.Equal(t, "example.com", ck.Domain)
		assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	}
}

func TestSameSite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.SameSiteStrictMode, sameSite("strict"))
	assert.Equal(t, http.SameSiteNoneMode, sameSite("None"))
	assert.Equal(t, http.SameSiteLaxMode, sameSite("lax"))
	assert.Equal(t, http.SameSiteLaxMode, sameSite(""))
}
