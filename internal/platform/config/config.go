package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	pstrings "prisonerprofile/pkg/platform/strings"
)

// Config captures everything the server needs from the environment so main
// stays lean.
type Config struct {
	Addr          string
	JWTSigningKey string

	Redis     RedisConfig
	Upstreams UpstreamsConfig
	Audit     AuditConfig
}

// RedisConfig configures the register cache connection.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// UpstreamConfig configures one upstream REST API.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// UpstreamsConfig lists every upstream dependency of the profile page.
type UpstreamsConfig struct {
	PrisonAPI      UpstreamConfig
	AlertsAPI      UpstreamConfig
	CuriousGen1    UpstreamConfig
	CuriousGen2    UpstreamConfig
	PrisonRegister UpstreamConfig
	KeyWorkerAPI   UpstreamConfig
	CaseNotesAPI   UpstreamConfig
}

// AuditConfig configures the staff-access audit pipeline.
type AuditConfig struct {
	Brokers []string
	Topic   string
}

// RegisterCacheTTLDays bounds how long the active-prison snapshot is served
// from cache before a refresh from the register API.
const RegisterCacheTTLDays = 1

// FromEnv builds a Config from environment variables with development defaults.
func FromEnv() Config {
	return Config{
		Addr:          envOr("PROFILE_ADDR", ":8080"),
		JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Upstreams: UpstreamsConfig{
			PrisonAPI:      upstream("PRISON_API", "http://localhost:8081"),
			AlertsAPI:      upstream("ALERTS_API", "http://localhost:8082"),
			CuriousGen1:    upstream("CURIOUS_GEN1_API", "http://localhost:8083"),
			CuriousGen2:    upstream("CURIOUS_GEN2_API", "http://localhost:8084"),
			PrisonRegister: upstream("PRISON_REGISTER_API", "http://localhost:8085"),
			KeyWorkerAPI:   upstream("KEYWORKER_API", "http://localhost:8086"),
			CaseNotesAPI:   upstream("CASENOTES_API", "http://localhost:8087"),
		},
		Audit: AuditConfig{
			Brokers: splitList(os.Getenv("AUDIT_KAFKA_BROKERS")),
			Topic:   envOr("AUDIT_KAFKA_TOPIC", "prisoner-profile.access"),
		},
	}
}

func upstream(prefix, defaultURL string) UpstreamConfig {
	return UpstreamConfig{
		BaseURL: envOr(prefix+"_URL", defaultURL),
		Timeout: envDuration(prefix+"_TIMEOUT", 10*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	return pstrings.DedupeAndTrim(strings.Split(v, ","))
}
