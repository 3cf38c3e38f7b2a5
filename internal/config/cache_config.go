package config

import (
	"time"
)

type CacheConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	DefaultTTL    time.Duration
	StaleTime     time.Duration
	Enabled       bool
}

func NewCacheConfig() *CacheConfig {
	return &CacheConfig{
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		DefaultTTL:    getEnvDuration("CACHE_TTL", 15*time.Minute),
		StaleTime:     getEnvDuration("CACHE_STALE_TIME", time.Minute),
		Enabled:       getEnvBool("CACHE_ENABLED", true),
	}
}
