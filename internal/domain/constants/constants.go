// Package constants defines identifiers shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Media storage providers
const (
	MediaProviderCloudinary = "cloudinary"
	MediaProviderS3         = "s3"
	MediaProviderBlob       = "blob"
)

// Cookie names carrying the session tokens.
const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// Token types stored in the JWT "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Pagination defaults applied when the query string is missing or invalid.
const (
	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)
