package middleware

import (
	pkgLog "taskgen/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware set. rateLimitPerMin <= 0 disables limiting.
func New(l pkgLog.Logger, rateLimitPerMin int) Middleware {
	var limiter *rateLimiter
	if rateLimitPerMin > 0 {
		limiter = newRateLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
