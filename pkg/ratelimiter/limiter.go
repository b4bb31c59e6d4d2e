package ratelimiter

import (
	"fmt"
	"sync"
	"time"
)

// Config defines the token bucket parameters.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_BURST" envDefault:"30"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"2s"`
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// fullRefill is the time an empty bucket needs to fill up again.
func (c Config) fullRefill() time.Duration {
	intervals := (c.Capacity + c.RefillRate - 1) / c.RefillRate
	return time.Duration(intervals) * c.RefillInterval
}

// Result reports the state of a bucket after a request.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
	Allowed   bool
}

// RetryAfter returns how long a rejected caller should wait.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// Limiter is a set of token buckets keyed by string. It is safe for
// concurrent use.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastPrune time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// New returns a Limiter with one bucket of cfg.Capacity tokens per key.
func New(cfg Config, opts ...Option) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastPrune = l.now()
	return l, nil
}

// Allow takes one token from the bucket of key.
func (l *Limiter) Allow(key string) Result {
	res, _ := l.AllowN(key, 1)
	return res
}

// AllowN takes n tokens from the bucket of key. A rejected request takes
// nothing.
func (l *Limiter) AllowN(key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.pruneLocked(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Capacity, lastRefill: now}
		l.buckets[key] = b
	}

	if intervals := int(now.Sub(b.lastRefill) / l.cfg.RefillInterval); intervals > 0 {
		// Cap before multiplying so long idle periods cannot overflow.
		intervals = min(intervals, l.cfg.Capacity/l.cfg.RefillRate+1)
		b.tokens = min(b.tokens+intervals*l.cfg.RefillRate, l.cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.cfg.RefillInterval)
		if b.tokens == l.cfg.Capacity {
			b.lastRefill = now
		}
	}

	res := Result{
		Limit:   l.cfg.Capacity,
		ResetAt: b.lastRefill.Add(l.cfg.RefillInterval),
	}
	if b.tokens >= n {
		b.tokens -= n
		res.Allowed = true
	}
	res.Remaining = b.tokens
	return res, nil
}

// Reset forgets the bucket of key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// Len returns the number of tracked buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// pruneLocked drops buckets that would be full by now, at most once per
// full refill period.
func (l *Limiter) pruneLocked(now time.Time) {
	idle := l.cfg.fullRefill()
	if now.Sub(l.lastPrune) < idle {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.lastRefill) >= idle {
			delete(l.buckets, key)
		}
	}
	l.lastPrune = now
}
