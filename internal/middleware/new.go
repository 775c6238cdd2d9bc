package middleware

import (
	"enterprise-advisors/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	// RateLimitPerMin is the per-client request budget; zero disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *ipRateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newIPRateLimiter(cfg.RateLimitPerMin),
	}
}
