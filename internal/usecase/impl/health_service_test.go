package impl

import (
	"context"
	"testing"

	mockRepo "vidtube/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealthService_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pingErr error
		want    string
	}{
		{name: "database up", want: "connected"},
		{name: "database down", pingErr: assert.AnError, want: "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checker := mockRepo.NewMockHealthChecker(t)
			checker.EXPECT().Ping(mock.Anything).Return(tt.pingErr)

			srv := NewHealthService(HealthServiceParams{Checker: checker, Logger: newDiscardLogger()})
			report := srv.Check(context.Background())

			assert.Equal(t, "ok", report.Status)
			assert.Equal(t, tt.want, report.Database)
			assert.Positive(t, report.Goroutines)
			assert.NotEmpty(t, report.Uptime)
			assert.NotEmpty(t, report.Memory.Alloc)
			assert.NotEmpty(t, report.Memory.Sys)
		})
	}
}
