package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestLimiter(requests int, window time.Duration, burst int, ttl time.Duration) (*ClientLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewClientLimiter(requests, window, burst, ttl)
	l.now = clock.now
	l.lastGC = clock.t

	return l, clock
}

func TestClientLimiter_BurstThenRefill(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(6, time.Minute, 3, time.Hour)

	for i := range 3 {
		assert.True(t, l.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, l.Allow("10.0.0.1"))

	// One token every ten seconds.
	clock.advance(10 * time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestClientLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(1, time.Hour, 1, time.Hour)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestClientLimiter_EmptyKeySharesBucket(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(1, time.Hour, 1, time.Hour)

	assert.True(t, l.Allow(""))
	assert.False(t, l.Allow("unknown"))
}

func TestClientLimiter_ForgetsIdleClients(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(1, 24*time.Hour, 1, time.Minute)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.Len(t, l.clients, 1)

	clock.advance(2 * time.Minute)
	assert.True(t, l.Allow("10.0.0.2"))
	assert.Len(t, l.clients, 1)
	assert.NotContains(t, l.clients, "10.0.0.1")

	// A forgotten client starts with a full bucket again.
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestNewClientLimiter_Defaults(t *testing.T) {
	t.Parallel()

	l := NewClientLimiter(0, 0, 0, 0)

	assert.Equal(t, 1, l.burst)
	assert.Equal(t, 10*time.Minute, l.ttl)
	assert.InDelta(t, 1.0/60, float64(l.limit), 1e-9)
}
