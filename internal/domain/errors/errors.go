package errors

import (
	"net/http"

	"vidtube/internal/errors"
)

// AppError is an error that knows how it should be rendered to a client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a catalogue entry. Copies made by WithDetails stay comparable to
// the original through Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func newCatalogError(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

func (e *BaseError) Error() string { return e.message }
func (e *BaseError) HTTPCode() int { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string { return e.message }
func (e *BaseError) Details() string { return e.details }

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage adds context and a stack while keeping e reachable via errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Catalogue. Codes are stable and sent to clients.
var (
	// user
	ErrUserNotFound      = newCatalogError(http.StatusNotFound, "USER_NOT_FOUND", "User not found.")
	ErrUserAlreadyExists = newCatalogError(http.StatusConflict, "USER_ALREADY_EXISTS", "User with same username or email already exists.")
	ErrChannelNotFound   = newCatalogError(http.StatusNotFound, "CHANNEL_NOT_FOUND", "Channel not found.")
	ErrUserUpdateFailed  = newCatalogError(http.StatusInternalServerError, "USER_UPDATE_FAILED", "Failed to update user.")

	// authentication
	ErrUnauthorized           = newCatalogError(http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized request.")
	ErrInvalidAccessToken     = newCatalogError(http.StatusUnauthorized, "INVALID_ACCESS_TOKEN", "Invalid access token.")
	ErrInvalidCredentials     = newCatalogError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid user credentials.")
	ErrInvalidCurrentPassword = newCatalogError(http.StatusUnauthorized, "INVALID_CURRENT_PASSWORD", "Invalid current password.")
	ErrRefreshTokenInvalid    = newCatalogError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid refresh token.")
	ErrRefreshTokenMissing    = newCatalogError(http.StatusUnauthorized, "REFRESH_TOKEN_MISSING", "Unauthorized access.")
	ErrPasswordHashFailed     = newCatalogError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Failed to process password.")
	ErrTokenGenerationFailed  = newCatalogError(http.StatusInternalServerError, "TOKEN_GENERATION_FAILED", "Failed to generate tokens.")

	// validation
	ErrValidationFailed = newCatalogError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed.")
	ErrInvalidID        = newCatalogError(http.StatusBadRequest, "INVALID_ID", "Invalid identifier.")
	ErrMissingFile      = newCatalogError(http.StatusBadRequest, "MISSING_FILE", "A required file was not provided.")
	ErrInvalidFileType  = newCatalogError(http.StatusBadRequest, "INVALID_FILE_TYPE", "Unsupported file type.")
	ErrFileTooLarge     = newCatalogError(http.StatusBadRequest, "FILE_TOO_LARGE", "File exceeds the maximum upload size.")
	ErrNothingToUpdate  = newCatalogError(http.StatusBadRequest, "NOTHING_TO_UPDATE", "At least one field must be provided.")
	ErrInvalidSort      = newCatalogError(http.StatusBadRequest, "INVALID_SORT", "Unsupported sort key or direction.")

	// video
	ErrVideoNotFound           = newCatalogError(http.StatusNotFound, "VIDEO_NOT_FOUND", "Video not found.")
	ErrVideoOwnershipViolation = newCatalogError(http.StatusForbidden, "VIDEO_OWNERSHIP_VIOLATION", "You are not authorized to modify this video.")

	// comment
	ErrCommentNotFound           = newCatalogError(http.StatusNotFound, "COMMENT_NOT_FOUND", "Comment not found.")
	ErrCommentAlreadyExists      = newCatalogError(http.StatusConflict, "COMMENT_ALREADY_EXISTS", "You have already commented on this video.")
	ErrCommentOwnershipViolation = newCatalogError(http.StatusForbidden, "COMMENT_OWNERSHIP_VIOLATION", "You are not authorized to modify this comment.")

	// tweet
	ErrTweetNotFound           = newCatalogError(http.StatusNotFound, "TWEET_NOT_FOUND", "Tweet not found.")
	ErrTweetOwnershipViolation = newCatalogError(http.StatusForbidden, "TWEET_OWNERSHIP_VIOLATION", "You are not authorized to modify this tweet.")

	// playlist
	ErrPlaylistNotFound           = newCatalogError(http.StatusNotFound, "PLAYLIST_NOT_FOUND", "Playlist not found.")
	ErrPlaylistOwnershipViolation = newCatalogError(http.StatusForbidden, "PLAYLIST_OWNERSHIP_VIOLATION", "You are not authorized to modify this playlist.")
	ErrVideoAlreadyInPlaylist     = newCatalogError(http.StatusConflict, "VIDEO_ALREADY_IN_PLAYLIST", "Video already in playlist.")
	ErrVideoNotInPlaylist         = newCatalogError(http.StatusBadRequest, "VIDEO_NOT_IN_PLAYLIST", "Video not in playlist.")

	// subscription
	ErrSelfSubscription     = newCatalogError(http.StatusBadRequest, "SELF_SUBSCRIPTION", "You cannot subscribe to your own channel.")
	ErrSubscribersForbidden = newCatalogError(http.StatusForbidden, "SUBSCRIBERS_FORBIDDEN", "You are not authorized to view this resource.")
	ErrInvalidQRCode        = newCatalogError(http.StatusBadRequest, "INVALID_QR_CODE", "Invalid subscription QR code.")

	// like
	ErrLikeTargetNotFound = newCatalogError(http.StatusNotFound, "LIKE_TARGET_NOT_FOUND", "The liked resource does not exist.")

	// media
	ErrMediaUploadFailed = newCatalogError(http.StatusInternalServerError, "MEDIA_UPLOAD_FAILED", "Error uploading media.")
	ErrMediaDeleteFailed = newCatalogError(http.StatusInternalServerError, "MEDIA_DELETE_FAILED", "Error deleting media.")

	// transaction
	ErrTransactionFailed = newCatalogError(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed.")

	// generic
	ErrInternalError   = newCatalogError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error.")
	ErrForbidden       = newCatalogError(http.StatusForbidden, "FORBIDDEN", "Access denied.")
	ErrNotFound        = newCatalogError(http.StatusNotFound, "NOT_FOUND", "Resource not found.")
	ErrConflict        = newCatalogError(http.StatusConflict, "CONFLICT", "Resource conflict.")
	ErrTooManyRequests = newCatalogError(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many requests, please slow down.")
)

// DatabaseExecuteError hides a driver failure behind a generic 500. The cause is
// only visible through Error, which the error middleware logs.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) HTTPCode() int { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string { return "Database execution failed." }
func (e *DatabaseExecuteError) Details() string { return e.details }
