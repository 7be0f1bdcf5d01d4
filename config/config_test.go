package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadTestConfig struct {
	Service struct {
		Name    string        `yaml:"name"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"service"`
	Media struct {
		Folder string `yaml:"folder"`
	} `yaml:"media"`
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func relativeToWorkdir(t *testing.T, dir string) string {
	t.Helper()
	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	return rel
}

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "vidtube-test.yaml", `
service:
  name: vidtube
  timeout: 3s
media:
  folder: uploads
`)
	t.Setenv("MEDIA_FOLDER", "override")

	cfg, err := LoadWithEnv[loadTestConfig]("vidtube-test", relativeToWorkdir(t, dir))
	require.NoError(t, err)

	assert.Equal(t, "vidtube", cfg.Service.Name)
	assert.Equal(t, 3*time.Second, cfg.Service.Timeout)
	assert.Equal(t, "override", cfg.Media.Folder)
}

func TestLoadWithEnv_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "vidtube-dotenv.yaml", "service:\n  name: from-yaml\n")
	writeTestFile(t, dir, ".env", "SERVICE_NAME=from-dotenv\n")
	t.Cleanup(func() { _ = os.Unsetenv("SERVICE_NAME") })

	cfg, err := LoadWithEnv[loadTestConfig]("vidtube-dotenv", relativeToWorkdir(t, dir))
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.Service.Name)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[loadTestConfig]("does-not-exist", relativeToWorkdir(t, t.TempDir()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "lax", cfg.HTTP.Cookie.SameSite)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, defaultMaxUploadSize, cfg.Media.MaxUploadSize)
	assert.Equal(t, defaultMediaFolder, cfg.Media.Folder)
	assert.Equal(t, defaultPageLimit, cfg.Pagination.DefaultLimit)
	assert.Equal(t, defaultMaxPageLimit, cfg.Pagination.MaxLimit)
	assert.Equal(t, defaultRateLimitRequests, cfg.RateLimit.Requests)
	assert.Equal(t, defaultRateLimitRequests, cfg.RateLimit.Burst)
	assert.Equal(t, defaultRateLimitWindow, cfg.RateLimit.Window)
	assert.Equal(t, defaultRateLimitTTL, cfg.RateLimit.TTL)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:       &AuthConfig{AccessTokenTTL: time.Minute},
		Pagination: &PaginationConfig{DefaultLimit: 5, MaxLimit: 50},
		RateLimit:  &RateLimitConfig{Requests: 3, Burst: 1},
	}
	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 5, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit)
	assert.Equal(t, 3, cfg.RateLimit.Requests)
	assert.Equal(t, 1, cfg.RateLimit.Burst)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5432", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
