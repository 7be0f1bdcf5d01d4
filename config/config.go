package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxUploadSize      = "200MB"
	defaultMediaFolder        = "vidtube"
	defaultPageLimit          = 10
	defaultMaxPageLimit       = 100
	defaultAccessTokenTTL     = 15 * time.Minute
	defaultRefreshTokenTTL    = 7 * 24 * time.Hour
	defaultRateLimitRequests  = 20
	defaultRateLimitWindow    = time.Minute
	defaultRateLimitTTL       = 10 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		Cookie       CookieConfig `json:"cookie" yaml:"cookie"`
		AllowOrigins []string     `json:"allowOrigins" yaml:"allowOrigins"`
		// TrustedProxies lists CIDRs whose X-Forwarded-For is believed. Empty means
		// the socket peer is the client.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Media configuration for uploaded videos and images
	Media *MediaConfig `json:"media" yaml:"media"`

	// QRCode configuration for channel subscription QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for video lifecycle events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Pagination *PaginationConfig `json:"pagination" yaml:"pagination"`

	// Migrations configuration used by cmd/migrate
	Migrations struct {
		Source string `json:"source" yaml:"source"`
	} `json:"migrations" yaml:"migrations"`
}

// CookieConfig controls the attributes of the session cookies.
type CookieConfig struct {
	Secure   bool   `json:"secure" yaml:"secure"`
	SameSite string `json:"sameSite" yaml:"sameSite"`
	Domain   string `json:"domain" yaml:"domain"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MediaConfig selects and configures the media storage provider.
type MediaConfig struct {
	// Provider type: "cloudinary", "s3" or "blob"
	Provider      string `json:"provider" yaml:"provider"`
	MaxUploadSize string `json:"maxUploadSize" yaml:"maxUploadSize"`
	Folder        string `json:"folder" yaml:"folder"`

	Cloudinary CloudinaryConfig `json:"cloudinary" yaml:"cloudinary"`
	S3         S3Config         `json:"s3" yaml:"s3"`
	Blob       BlobConfig       `json:"blob" yaml:"blob"`
}

// CloudinaryConfig holds Cloudinary API credentials.
type CloudinaryConfig struct {
	CloudName string `json:"cloudName" yaml:"cloudName"`
	APIKey    string `json:"apiKey" yaml:"apiKey"`
	APISecret string `json:"apiSecret" yaml:"apiSecret"`
}

// S3Config holds settings for S3 compatible object storage.
type S3Config struct {
	Bucket   string `json:"bucket" yaml:"bucket"`
	Region   string `json:"region" yaml:"region"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	BaseURL  string `json:"baseUrl" yaml:"baseUrl"`
}

// BlobConfig holds settings for a gocloud.dev bucket.
type BlobConfig struct {
	// BucketURL is any URL understood by gocloud.dev/blob, e.g. file:///var/lib/vidtube/media
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RateLimitConfig configures the per-IP limiter on credential endpoints.
type RateLimitConfig struct {
	Requests int           `json:"requests" yaml:"requests"`
	Window   time.Duration `json:"window" yaml:"window"`
	Burst    int           `json:"burst" yaml:"burst"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// PaginationConfig bounds the page size accepted from clients.
type PaginationConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int `json:"maxLimit" yaml:"maxLimit"`
}

// LoadWithEnv reads <currEnv>.yaml from the working directory or one of
// configPath (relative to it), then overlays the process environment. A .env
// file next to the YAML is loaded first and never overrides variables that are
// already set.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	dirs, err := searchDirs(configPath)
	if err != nil {
		return nil, err
	}
	if err := loadDotEnv(dirs); err != nil {
		return nil, err
	}

	name := currEnv + ".yaml"
	configFile, ok := firstExisting(dirs, name)
	if !ok {
		return nil, errors.Errorf("config file %s not found in any search path", name)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	known := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, known), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	decoder := &mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		MatchName: strings.EqualFold,
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoder}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func searchDirs(configPath []string) ([]string, error) {
	dirs := []string{defaultPath}
	if len(configPath) == 0 {
		return dirs, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "os.Getwd")
	}
	for _, rel := range configPath {
		dirs = append(dirs, filepath.Join(pwd, rel))
	}

	return dirs, nil
}

func firstExisting(dirs []string, name string) (string, bool) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Cookie.SameSite == "" {
		cfg.HTTP.Cookie.SameSite = "lax"
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL <= 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}

	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if strings.TrimSpace(cfg.Media.MaxUploadSize) == "" {
		cfg.Media.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Media.Folder == "" {
		cfg.Media.Folder = defaultMediaFolder
	}

	if cfg.Pagination == nil {
		cfg.Pagination = &PaginationConfig{}
	}
	if cfg.Pagination.DefaultLimit <= 0 {
		cfg.Pagination.DefaultLimit = defaultPageLimit
	}
	if cfg.Pagination.MaxLimit <= 0 {
		cfg.Pagination.MaxLimit = defaultMaxPageLimit
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.Requests <= 0 {
		cfg.RateLimit.Requests = defaultRateLimitRequests
	}
	if cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = defaultRateLimitWindow
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = cfg.RateLimit.Requests
	}
	if cfg.RateLimit.TTL <= 0 {
		cfg.RateLimit.TTL = defaultRateLimitTTL
	}
}

func loadDotEnv(dirs []string) error {
	dotenv, ok := firstExisting(dirs, ".env")
	if !ok {
		return nil
	}

	return errors.Wrapf(godotenv.Load(dotenv), "load %s failed", dotenv)
}

// canonicalizeEnvKey maps MEDIA_CLOUDINARY_APISECRET onto the key path spelled
// in the YAML file (media.cloudinary.apiSecret). Segments the file does not know
// stay lower case.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var path []string
	level := existing

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := lookupFold(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// lookupFold finds the key of level equal to segment when case and punctuation
// are ignored. It returns segment itself when nothing matches.
func lookupFold(level map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index missing a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for n := 0; ; n++ {
		field := func(name string) string {
			return os.Getenv("POSTGRES_REPLICAS_" + strconv.Itoa(n) + "_" + name)
		}

		replica := postgres.ConnectionConfig{
			Host:     field("HOST"),
			Port:     field("PORT"),
			UserName: field("USERNAME"),
			Password: field("PASSWORD"),
		}
		if replica.Host == "" || replica.Port == "" {
			return replicas
		}
		replicas = append(replicas, replica)
	}
}
