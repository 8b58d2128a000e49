package security

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ────────────────────────────── rate limiter ──────────────────────────────

func TestLimiter_AllowsUpToMax(t *testing.T) {
	l := NewLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, _ := l.Allow("10.0.0.1")
		require.True(t, ok, "request %d should be allowed", i+1)
	}

	ok, retryAfter := l.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)
}

func TestLimiter_WindowReset(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	ok, _ := l.Allow("10.0.0.1")
	require.True(t, ok)
	ok, _ = l.Allow("10.0.0.1")
	require.True(t, ok)

	ok, retryAfter := l.Allow("10.0.0.1")
	require.False(t, ok)
	assert.Equal(t, time.Minute, retryAfter)

	// halfway through the window the wait shrinks accordingly
	now = now.Add(30 * time.Second)
	ok, retryAfter = l.Allow("10.0.0.1")
	require.False(t, ok)
	assert.Equal(t, 30*time.Second, retryAfter)

	// once the window expires a fresh one opens
	now = now.Add(31 * time.Second)
	ok, _ = l.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestLimiter_RetryAfterRoundsUpToWholeSeconds(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	ok, _ := l.Allow("10.0.0.1")
	require.True(t, ok)

	now = now.Add(500 * time.Millisecond)
	ok, retryAfter := l.Allow("10.0.0.1")
	require.False(t, ok)
	assert.Equal(t, time.Minute, retryAfter)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(1, time.Minute)

	ok, _ := l.Allow("10.0.0.1")
	require.True(t, ok)
	ok, _ = l.Allow("10.0.0.1")
	require.False(t, ok)

	ok, _ = l.Allow("10.0.0.2")
	assert.True(t, ok, "a different client must have its own window")
}

// ─────────────────────────────── blocklist ────────────────────────────────

func newTestBlocklist() *Blocklist {
	log := logger.Nop()
	return NewBlocklist(NewEvents(log, false))
}

func TestBlocklist(t *testing.T) {
	b := newTestBlocklist()

	assert.False(t, b.IsBlocked("192.168.1.50"))

	b.Block("192.168.1.50", "repeated injection attempts")
	assert.True(t, b.IsBlocked("192.168.1.50"))
	assert.False(t, b.IsBlocked("192.168.1.51"))

	entries := b.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "192.168.1.50", entries[0].IP)
	assert.Equal(t, "repeated injection attempts", entries[0].Reason)

	assert.True(t, b.Unblock("192.168.1.50"))
	assert.False(t, b.IsBlocked("192.168.1.50"))
	assert.False(t, b.Unblock("192.168.1.50"), "second unblock reports absence")
}

func TestBlocklist_ListSorted(t *testing.T) {
	b := newTestBlocklist()
	b.Block("10.0.0.9", "manual")
	b.Block("10.0.0.1", "manual")
	b.Block("10.0.0.5", "manual")

	entries := b.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "10.0.0.1", entries[0].IP)
	assert.Equal(t, "10.0.0.5", entries[1].IP)
	assert.Equal(t, "10.0.0.9", entries[2].IP)
}

// ─────────────────────────────── inspector ────────────────────────────────

func TestInspector_SQLPatterns(t *testing.T) {
	i := NewInspector(1 << 20)

	tests := []struct {
		name    string
		target  string
		rejects bool
	}{
		{name: "clean query", target: "/api/products?name=hello+world", rejects: false},
		{name: "no query at all", target: "/api/users", rejects: false},
		{name: "classic tautology", target: "/api/users?id=1+OR+1%3D1", rejects: true},
		{name: "union select", target: "/api/users?q=UNION+SELECT+*", rejects: true},
		{name: "comment marker", target: "/api/users?id=1--", rejects: true},
		{name: "drop statement", target: "/api/users?q=DROP+TABLE+users", rejects: true},
		{name: "mixed case keyword", target: "/api/users?q=SeLeCt+1", rejects: true},
		{name: "extended proc prefix", target: "/api/users?q=xp_cmdshell", rejects: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			rejection := i.Scan(r)

			if !tt.rejects {
				assert.Nil(t, rejection)
				return
			}
			require.NotNil(t, rejection)
			assert.Equal(t, 400, rejection.Status)
			assert.Equal(t, EventSQLInjectionFound, rejection.EventType)
			assert.Equal(t, SeverityCritical, rejection.Severity)
		})
	}
}

func TestInspector_TruncatesReportedValue(t *testing.T) {
	i := NewInspector(1 << 20)

	long := "select " + string(make([]byte, 200))
	r := httptest.NewRequest("GET", "/api/users", nil)
	q := r.URL.Query()
	q.Set("q", long)
	r.URL.RawQuery = q.Encode()

	rejection := i.Scan(r)
	require.NotNil(t, rejection)
	assert.Len(t, rejection.Details["value"], maxReportedValueLen)
}

func TestInspector_OversizedBody(t *testing.T) {
	i := NewInspector(1 << 20)

	r := httptest.NewRequest("POST", "/api/users", nil)
	r.ContentLength = 2 << 20

	rejection := i.Scan(r)
	require.NotNil(t, rejection)
	assert.Equal(t, 413, rejection.Status)
	assert.Equal(t, EventRequestTooLarge, rejection.EventType)
	assert.Equal(t, SeverityWarning, rejection.Severity)
}

func TestInspector_SQLProbeWinsOverOversizedBody(t *testing.T) {
	i := NewInspector(1 << 20)

	r := httptest.NewRequest("POST", "/api/users?q=1+OR+1%3D1", nil)
	r.ContentLength = 2 << 20

	rejection := i.Scan(r)
	require.NotNil(t, rejection)
	assert.Equal(t, 400, rejection.Status, "the parameter scan runs first")
	assert.Equal(t, EventSQLInjectionFound, rejection.EventType)
	assert.Equal(t, SeverityCritical, rejection.Severity)
}

func TestInspector_BodyAtLimitPasses(t *testing.T) {
	i := NewInspector(1 << 20)

	r := httptest.NewRequest("POST", "/api/users", nil)
	r.ContentLength = 1 << 20

	assert.Nil(t, i.Scan(r))
}

// ─────────────────────────────── client ip ────────────────────────────────

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trustProxy bool
		want       string
	}{
		{name: "plain peer", remoteAddr: "10.1.2.3:5544", want: "10.1.2.3"},
		{name: "forwarded single", remoteAddr: "10.1.2.3:5544", forwarded: "203.0.113.7", trustProxy: true, want: "203.0.113.7"},
		{name: "forwarded chain", remoteAddr: "10.1.2.3:5544", forwarded: "203.0.113.7, 10.0.0.1", trustProxy: true, want: "203.0.113.7"},
		{name: "forwarded with spaces", remoteAddr: "10.1.2.3:5544", forwarded: " 203.0.113.7 ,10.0.0.1", trustProxy: true, want: "203.0.113.7"},
		{name: "forwarded ignored without trusted proxy", remoteAddr: "10.1.2.3:5544", forwarded: "203.0.113.7", want: "10.1.2.3"},
		{name: "empty forwarded falls back to peer", remoteAddr: "10.1.2.3:5544", forwarded: " ", trustProxy: true, want: "10.1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, ClientIP(r, tt.trustProxy))
		})
	}
}
