// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account on the platform. Every user is also a channel that others can subscribe to.
type User struct {
	ID               uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username         string    // Unique handle, always stored lower-case.
	Email            string    // Unique login email, always stored lower-case.
	FullName         string    // Display name shown on the channel page.
	PasswordHash     string    // bcrypt hash of the password.
	Avatar           string    // URL of the avatar image.
	CoverImage       string    // URL of the channel cover image, empty when unset.
	RefreshTokenHash string    // SHA-256 of the currently valid refresh token, empty after logout.
	CreatedAt        time.Time // Timestamp of when this user account was created.
	UpdatedAt        time.Time // Timestamp of the last modification to this user's data.
}

// UserProfile is the public projection of a User. It carries no credentials.
type UserProfile struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Avatar   string    `json:"avatar"`
}

// Profile returns the public projection of the user.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}

// NormalizeHandle trims and lower-cases a username or email before it is stored or looked up.
func NormalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
