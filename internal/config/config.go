package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type MailConfig struct {
	SendGridAPIKey string
	FromAddress    string
	FromName       string
	// FeedbackNotify receives a copy of every feedback submission when set.
	FeedbackNotify string
}

type StorageConfig struct {
	Region        string
	Bucket        string
	MaxUploadSize int64
}

type Config struct {
	Env                 string
	Port                string
	AllowedOrigins      []string
	JWTSecret           string
	JWTTTL              time.Duration
	AdminEmails         []string
	LogLevel            string
	LogFile             string
	ActivityDatabaseURL string
	TrustedProxies      []netip.Prefix

	Mongo     MongoConfig
	Mail      MailConfig
	Storage   StorageConfig
	Cache     *CacheConfig
	RateLimit *RateLimitConfig
}

// Load reads configuration from the environment, after populating it from a
// .env file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "5050"),
		AllowedOrigins:      getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTTTL:              getEnvDuration("JWT_TTL", 24*time.Hour),
		AdminEmails:         getEnvList("ADMIN_EMAILS", nil),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFile:             os.Getenv("LOG_FILE"),
		ActivityDatabaseURL: os.Getenv("ACTIVITY_DATABASE_URL"),
		Mongo: MongoConfig{
			URI:            os.Getenv("MONGO_URI"),
			Database:       getEnv("MONGO_DB", "travel"),
			ConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		},
		Mail: MailConfig{
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			FromAddress:    getEnv("MAIL_FROM_ADDRESS", "noreply@travel.local"),
			FromName:       getEnv("MAIL_FROM_NAME", "Travel"),
			FeedbackNotify: os.Getenv("FEEDBACK_NOTIFY_EMAIL"),
		},
		Storage: StorageConfig{
			Region:        getEnv("AWS_REGION", "eu-north-1"),
			Bucket:        os.Getenv("S3_BUCKET"),
			MaxUploadSize: int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20,
		},
		Cache:     NewCacheConfig(),
		RateLimit: NewRateLimitConfig(),
	}

	proxies, err := parsePrefixes(getEnvList("TRUSTED_PROXIES", nil))
	if err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	cfg.TrustedProxies = proxies

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI environment variable is required")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL)
	}
	if c.Cache.StaleTime > c.Cache.DefaultTTL {
		return fmt.Errorf("CACHE_STALE_TIME (%s) must not exceed CACHE_TTL (%s)", c.Cache.StaleTime, c.Cache.DefaultTTL)
	}
	return nil
}

// parsePrefixes accepts CIDRs and bare addresses, which cover one host.
func parsePrefixes(values []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		if prefix, err := netip.ParsePrefix(v); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("invalid address or CIDR %q", v)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
