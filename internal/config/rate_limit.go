package config

import "time"

// RateLimitConfig bounds public write endpoints per client IP.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	IdleTimeout       time.Duration
}

func NewRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 1),
		Burst:             getEnvInt("RATE_LIMIT_BURST", 5),
		IdleTimeout:       getEnvDuration("RATE_LIMIT_IDLE_TIMEOUT", 3*time.Minute),
	}
}
