package middleware

import (
	"vendor-message-analysis/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	var limiter *rateLimiter
	if requestsPerMin > 0 {
		limiter = newRateLimiter(requestsPerMin, limiterIdleTTL)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
