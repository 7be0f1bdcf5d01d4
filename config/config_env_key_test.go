package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	t.Parallel()

	fileKeys := map[string]any{
		"http": map[string]any{
			"maxRequestBodySize": "",
			"cookie":             map[string]any{"sameSite": "lax"},
		},
		"media": map[string]any{
			"maxUploadSize": "",
			"cloudinary":    map[string]any{"apiSecret": ""},
			"s3":            map[string]any{"baseUrl": ""},
		},
		"rateLimit": map[string]any{"requests": 20},
		"secretKey": map[string]any{"refresh": ""},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "HTTP_COOKIE_SAMESITE", want: "http.cookie.sameSite"},
		{envKey: "MEDIA_CLOUDINARY_APISECRET", want: "media.cloudinary.apiSecret"},
		{envKey: "MEDIA_S3_BASEURL", want: "media.s3.baseUrl"},
		{envKey: "RATELIMIT_REQUESTS", want: "rateLimit.requests"},
		{envKey: "SECRETKEY_REFRESH", want: "secretKey.refresh"},
		{envKey: "MEDIA__FOLDER", want: "media.folder"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicid"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, fileKeys))
		})
	}
}
