package impl

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"vidtube/internal/domain/lifecycle"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"
	"vidtube/internal/util"

	"go.uber.org/fx"
)

const (
	databaseConnected    = "connected"
	databaseDisconnected = "disconnected"
)

type healthService struct {
	checker   repository.HealthChecker
	startedAt time.Time
	logger    *slog.Logger
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	Checker repository.HealthChecker
	Logger  *slog.Logger
}

// NewHealthService is the constructor for healthService. Uptime is measured from its creation.
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		checker:   params.Checker,
		startedAt: time.Now(),
		logger:    params.Logger,
	}
}

// Check never fails. A database that does not answer is reported as disconnected.
func (srv *healthService) Check(ctx context.Context) *usecase.HealthReport {
	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	database := databaseConnected
	if err := srv.checker.Ping(pingCtx); err != nil {
		srv.logger.WarnContext(ctx, "Healthcheck database ping failed", slog.Any("error", err))
		database = databaseDisconnected
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	report := &usecase.HealthReport{
		Status:     "ok",
		Database:   database,
		Uptime:     util.FormatDuration(time.Since(srv.startedAt)),
		Goroutines: runtime.NumGoroutine(),
	}
	report.Memory.Alloc = util.FormatBytes(int64(mem.Alloc))
	report.Memory.TotalAlloc = util.FormatBytes(int64(mem.TotalAlloc))
	report.Memory.Sys = util.FormatBytes(int64(mem.Sys))
	report.Memory.NumGC = mem.NumGC

	return report
}
