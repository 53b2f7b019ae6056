package resilience

import "time"

const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 30 * time.Second
	defaultHalfOpenMaxReq   = 1
)

// CircuitBreakerConfig zero values fall back to the defaults above. A breaker
// built with Enabled=false runs every call and never opens.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	c.FailureThreshold = positiveOr(c.FailureThreshold, defaultFailureThreshold)
	c.HalfOpenMaxReq = positiveOr(c.HalfOpenMaxReq, defaultHalfOpenMaxReq)
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaultOpenTimeout
	}
	return c
}

func positiveOr(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}
