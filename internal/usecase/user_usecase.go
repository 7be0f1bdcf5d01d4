// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/pagination"

	"github.com/google/uuid"
)

// --- Shared Inputs ---

// FileInput is an uploaded file handed over by the delivery layer.
type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ListOptions carries sanitized pagination and sort parameters.
type ListOptions struct {
	Page     int
	Limit    int
	SortBy   string
	SortType string
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	FullName   string
	Email      string
	Username   string
	Password   string
	Avatar     *FileInput
	CoverImage *FileInput // Optional.
}

// LoginInput accepts either the username or the email as the handle.
type LoginInput struct {
	UsernameOrEmail string
	Password        string
}

// ChangePasswordInput defines the data required to change the current password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// UpdateAccountInput carries the editable account fields. Empty fields are left unchanged.
type UpdateAccountInput struct {
	FullName string
	Email    string
}

// --- Output DTOs ---

// UserView is the account as returned to its owner. It carries no credentials.
type UserView struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewUserView projects a user onto its public account view.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// AuthOutput returns the session tokens issued by login or refresh.
type AuthOutput struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	User         *UserView `json:"user,omitempty"`
}

// ChannelProfile is a user's public channel page.
type ChannelProfile struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	Avatar            string    `json:"avatar"`
	CoverImage        string    `json:"coverImage"`
	SubscriberCount   int64     `json:"subscriberCount"`
	SubscribedToCount int64     `json:"subscribedToCount"`
	IsSubscribed      bool      `json:"isSubscribed"`
}

// WatchHistoryView is a watched video with the time it was last opened.
type WatchHistoryView struct {
	VideoView
	WatchedAt time.Time `json:"watchedAt"`
}

// UserUsecase defines the account, session and channel operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*UserView, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Authenticate validates an access token and returns the user it belongs to.
	Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error)

	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	UpdateAccountDetails(ctx context.Context, userID uuid.UUID, input *UpdateAccountInput) (*UserView, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar *FileInput) (*UserView, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, cover *FileInput) (*UserView, error)

	// GetChannelProfile looks a channel up by username. viewer is nil for anonymous requests.
	GetChannelProfile(ctx context.Context, viewer *uuid.UUID, username string) (*ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID uuid.UUID, opts ListOptions) (*pagination.Page[WatchHistoryView], error)
}
