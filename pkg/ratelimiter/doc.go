// Package ratelimiter implements an in-memory token bucket limiter and HTTP
// middleware built on it.
//
// Each key owns a bucket holding up to Config.Capacity tokens. Every
// Config.RefillInterval, Config.RefillRate tokens are added back. A request
// consumes one token and is rejected when the bucket is empty:
//
//	limiter, err := ratelimiter.New(ratelimiter.Config{
//		Capacity:       30,
//		RefillRate:     1,
//		RefillInterval: 2 * time.Second,
//	})
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP, deny)).Post("/check", h)
//
// Buckets idle for longer than a full refill are dropped lazily.
package ratelimiter
