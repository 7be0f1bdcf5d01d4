package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{name: "same instance", err: ErrVideoNotFound, target: ErrVideoNotFound, want: true},
		{name: "copy with details", err: ErrValidationFailed.WithDetails("title is required"), target: ErrValidationFailed, want: true},
		{name: "wrapped copy", err: pkgerrors.Wrap(ErrInvalidSort.WithDetails("unknown sort key: x"), "list"), target: ErrInvalidSort, want: true},
		{name: "different code", err: ErrVideoNotFound, target: ErrCommentNotFound, want: false},
		{name: "plain error", err: pkgerrors.New("boom"), target: ErrVideoNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pkgerrors.Is(tt.err, tt.target))
		})
	}
}

func TestBaseError_WithDetailsKeepsOriginal(t *testing.T) {
	t.Parallel()

	detailed := ErrMissingFile.WithDetails("avatar is required")

	assert.Equal(t, "avatar is required", detailed.Details())
	assert.Equal(t, ErrMissingFile.ErrorCode(), detailed.ErrorCode())
	assert.Equal(t, ErrMissingFile.HTTPCode(), detailed.HTTPCode())
	assert.NotEqual(t, "avatar is required", ErrMissingFile.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	t.Parallel()

	err := NewDatabaseExecuteError(pkgerrors.New("connection reset"), "failed to create video")

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "failed to create video", appErr.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
