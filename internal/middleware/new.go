package middleware

import (
	"booking-widget/pkg/log"
)

// Config holds the tunables of the HTTP middlewares.
type Config struct {
	// RateLimitPerMin caps requests per client IP on the booking routes. 0 disables it.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
