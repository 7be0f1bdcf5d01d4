// Package handler contains the HTTP handlers of the public API.
package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"
	"vidtube/internal/pagination"
	"vidtube/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	videoTypes = []string{"video/mp4"}
	imageTypes = []string{"image/jpeg", "image/png"}
)

// listOptions reads page and limit leniently: anything that is not a positive
// integer falls back to page 1 and the default limit. Both are capped.
func listOptions(c echo.Context, cfg *config.PaginationConfig) usecase.ListOptions {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	page = min(page, pagination.MaxPage)

	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = cfg.DefaultLimit
	}
	limit = min(limit, cfg.MaxLimit)

	return usecase.ListOptions{
		Page:     page,
		Limit:    limit,
		SortBy:   c.QueryParam("sortBy"),
		SortType: c.QueryParam("sortType"),
	}
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(name + " must be a valid id")
	}

	return id, nil
}

// actorID returns the user resolved by the Authenticate middleware.
func actorID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetActorID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		details := "malformed request body"
		if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
			if msg, ok := httpErr.Message.(string); ok {
				details = msg
			}
		}

		return domainerrors.ErrValidationFailed.WithDetails(details)
	}

	return errors.WithStack(c.Validate(req))
}

// uploads opens multipart files and closes them when the request is done.
type uploads struct {
	c     echo.Context
	files []multipart.File
}

func newUploads(c echo.Context) *uploads {
	return &uploads{c: c}
}

func (u *uploads) Close() {
	for _, f := range u.files {
		_ = f.Close()
	}
}

func (u *uploads) Video(field string, required bool) (*usecase.FileInput, error) {
	return u.open(field, required, videoTypes)
}

func (u *uploads) Image(field string, required bool) (*usecase.FileInput, error) {
	return u.open(field, required, imageTypes)
}

// open returns nil without error when an optional field is absent. The content
// type is sniffed from the bytes, the client supplied header is ignored.
func (u *uploads) open(field string, required bool, allowed []string) (*usecase.FileInput, error) {
	header, err := u.c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			if required {
				return nil, domainerrors.ErrMissingFile.WithDetails(field + " is required")
			}

			return nil, nil
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable " + field)
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open upload %s", field)
	}
	u.files = append(u.files, file)

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "sniff upload %s", field)
	}
	if !acceptable(mtype, allowed) {
		return nil, domainerrors.ErrInvalidFileType.WithDetails(field + " has unsupported type " + mtype.String())
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "rewind upload %s", field)
	}

	return &usecase.FileInput{
		Name:        header.Filename,
		ContentType: mtype.String(),
		Size:        header.Size,
		Reader:      file,
	}, nil
}

func acceptable(mtype *mimetype.MIME, allowed []string) bool {
	for _, a := range allowed {
		if mtype.Is(a) {
			return true
		}
	}

	return false
}
