package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0 B"},
		{in: 1023, want: "1023 B"},
		{in: 1024, want: "1.0 KB"},
		{in: 1536, want: "1.5 KB"},
		{in: 3 << 20, want: "3.0 MB"},
		{in: 200 << 20, want: "200.0 MB"},
		{in: 5 << 30, want: "5.0 GB"},
		{in: 1 << 60, want: "1.0 EB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FormatBytes(tt.in))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0s"},
		{in: 400 * time.Millisecond, want: "0s"},
		{in: 45 * time.Second, want: "45s"},
		{in: 59*time.Second + 600*time.Millisecond, want: "1m0s"},
		{in: 2*time.Minute + 30*time.Second, want: "2m30s"},
		{in: 90 * time.Minute, want: "1h30m"},
		{in: 49*time.Hour + 5*time.Minute + 20*time.Second, want: "49h5m"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", SHA256Hex("abc"))
	assert.NotEqual(t, SHA256Hex("refresh-a"), SHA256Hex("refresh-b"))
	assert.Len(t, SHA256Hex(""), 64)
}
