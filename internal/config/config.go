package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	RateLimitRPM    int
	CacheTTL        time.Duration
	CacheMaxEntries int
	SieveMaxN       int
	SieveTimeout    time.Duration
	MaxConcurrency  int
	MaxNums         int
	TrustProxy      bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

// Load loads configuration from environment variables with sane defaults.
// An empty MONGO_URI disables the run history store.
func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		MongoURI:        getenv("MONGO_URI", ""),
		MongoDB:         getenv("MONGO_DB", "primesum"),
		RateLimitRPM:    getint("RATE_LIMIT_RPM", 60),
		CacheTTL:        getdur("CACHE_TTL", 5*time.Minute),
		CacheMaxEntries: getint("CACHE_MAX_ENTRIES", 16),
		SieveMaxN:       getint("SIEVE_MAX_N", 10_000_000),
		SieveTimeout:    getdur("SIEVE_TIMEOUT", 10*time.Second),
		MaxConcurrency:  getint("MAX_CONCURRENCY", 4),
		MaxNums:         getint("MAX_NUMS", 10_000),
		TrustProxy:      getbool("TRUST_PROXY", false),
	}
}
