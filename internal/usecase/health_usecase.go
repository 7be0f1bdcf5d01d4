package usecase

import "context"

// HealthReport is the runtime state reported by the healthcheck.
type HealthReport struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	Uptime     string `json:"uptime"`
	Goroutines int    `json:"goroutines"`
	Memory     struct {
		Alloc      string `json:"alloc"`
		TotalAlloc string `json:"totalAlloc"`
		Sys        string `json:"sys"`
		NumGC      uint32 `json:"numGC"`
	} `json:"memory"`
}

// HealthUsecase reports process and database health.
type HealthUsecase interface {
	Check(ctx context.Context) *HealthReport
}
