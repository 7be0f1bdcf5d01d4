package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"vidtube/config"
	"vidtube/internal/delivery"
	apimiddleware "vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router"
	"vidtube/internal/delivery/api/validator"
	"vidtube/internal/delivery/middleware"
	"vidtube/internal/domain/lifecycle"
	"vidtube/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	r := router.NewRouter(params.RouterParams)
	echoServer := NewEcho(params.Cfg, params.Logger, r)

	srv := &apiServer{cfg: params.Cfg, logger: params.Logger, server: echoServer}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// NewEcho builds the fully wired echo instance without starting it.
func NewEcho(cfg *config.Config, logger *slog.Logger, r *router.Router) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout
	e.IPExtractor = clientIPExtractor(cfg.HTTP.TrustedProxies, logger)

	// Recover stays outermost; the request logger must exist before anything logs.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.AllowOrigins,
		AllowCredentials: len(cfg.HTTP.AllowOrigins) > 0,
		ExposeHeaders:    []string{echo.HeaderXRequestID},
	}))
	e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Limit:   cfg.HTTP.MaxRequestBodySize,
		Skipper: r.IsUploadRoute,
	}))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	r.RegisterRoutes(e)
	serveLocalMedia(e, cfg.Media, logger)

	return e
}

// clientIPExtractor takes the socket peer as the client unless it is one of the
// trusted proxies, in which case X-Forwarded-For is walked past them. Only the
// configured ranges are trusted, not echo's private-network defaults.
func clientIPExtractor(trusted []string, logger *slog.Logger) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, entry := range trusted {
		ipNet, err := parseTrustedRange(entry)
		if err != nil {
			logger.Warn("Ignoring trusted proxy", slog.String("entry", entry), slog.Any("error", err))
			continue
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(opts...)
}

// parseTrustedRange accepts a CIDR or a bare address.
func parseTrustedRange(entry string) (*net.IPNet, error) {
	entry = strings.TrimSpace(entry)
	if !strings.Contains(entry, "/") {
		ip := net.ParseIP(entry)
		if ip == nil {
			return nil, errors.Errorf("invalid address %q", entry)
		}
		bits := 8 * net.IPv6len
		if ip.To4() != nil {
			ip, bits = ip.To4(), 8*net.IPv4len
		}

		return &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}, nil
	}

	_, ipNet, err := net.ParseCIDR(entry)

	return ipNet, errors.WithStack(err)
}

// serveLocalMedia exposes a file:// blob bucket under the path of its public base URL.
func serveLocalMedia(e *echo.Echo, media *config.MediaConfig, logger *slog.Logger) {
	if media.Provider != "blob" || !strings.HasPrefix(media.Blob.BucketURL, "file://") {
		return
	}

	bucket, err := url.Parse(media.Blob.BucketURL)
	if err != nil {
		logger.Warn("Local media not served", slog.Any("error", err))
		return
	}

	prefix := "/media"
	if public, err := url.Parse(media.Blob.PublicBaseURL); err == nil && public.Path != "" {
		prefix = strings.TrimSuffix(public.Path, "/")
	}

	e.Static(prefix, bucket.Path)
	logger.Info("Serving local media", slog.String("prefix", prefix), slog.String("dir", bucket.Path))
}

func (s *apiServer) Serve(ctx context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.InfoContext(ctx, "API server listening", slog.String("addr", addr))

	err := s.server.StartH2CServer(addr, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.InfoContext(ctx, "API server draining")

	return errors.WithStack(s.server.Shutdown(ctx))
}
