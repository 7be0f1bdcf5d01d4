package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "INSERT INTO likes ...", 0
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		debug   bool
		err     error
		want    string
		notWant string
	}{
		{
			name: "query error is logged",
			err:  errors.New("boom"),
			want: "GORM query failed",
		},
		{
			name:    "record not found is ignored",
			err:     gorm.ErrRecordNotFound,
			notWant: "GORM",
		},
		{
			name:    "unique violation is demoted below error",
			err:     &pgconn.PgError{Code: pgUniqueViolation},
			notWant: "GORM query failed",
		},
		{
			name:  "unique violation shows at debug",
			debug: true,
			err:   &pgconn.PgError{Code: pgUniqueViolation},
			want:  "GORM constraint rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(newBufferLogger(&buf), cfg)

			l.Trace(context.Background(), time.Now(), sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.notWant != "" {
				assert.NotContains(t, buf.String(), tt.notWant)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	t.Parallel()

	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"request_id":"req-1"`)
}
