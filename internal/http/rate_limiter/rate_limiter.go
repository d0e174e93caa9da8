package rate_limiter

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/warehousr/inventory-api/internal/redissvc"
)

// Limiter decides whether a request identified by key (normally the client
// IP) may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps a token bucket per visitor.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	rps      rate.Limit
	burst    int
}

func NewMemoryLimiter(rps, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		visitors: make(map[string]*clientLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, exists := m.visitors[key]
	if !exists {
		v = &clientLimiter{limiter: rate.NewLimiter(m.rps, m.burst)}
		m.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

// StartCleanupLoop evicts visitors idle for more than five minutes. Run it in
// its own goroutine.
func (m *MemoryLimiter) StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		m.mu.Lock()
		for key, v := range m.visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(m.visitors, key)
			}
		}
		m.mu.Unlock()
	}
}

// RedisLimiter is a fixed-window counter shared across instances. It fails
// open: when redis is unreachable the request proceeds.
type RedisLimiter struct {
	rs     *redissvc.RedisService
	limit  int64
	window time.Duration
}

func NewRedisLimiter(rs *redissvc.RedisService, limitPerWindow int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rs: rs, limit: int64(limitPerWindow), window: window}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) bool {
	windowKey := "ratelimit:" + key + ":" + strconv.FormatInt(time.Now().Unix()/int64(r.window.Seconds()), 10)

	n, err := r.rs.Rdb().Incr(ctx, windowKey).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		r.rs.Rdb().Expire(ctx, windowKey, r.window)
	}
	return n <= r.limit
}
