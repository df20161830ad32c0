package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/hassanali167/remote-desktop/internal/constants"
)

// Config holds every tunable of the gateway. It is populated once at
// startup and never mutated afterwards.
type Config struct {
	Host  string
	Port  string
	Debug bool

	// Authentication
	Username     string
	Password     string
	PasswordHash string // optional bcrypt hash; takes precedence over Password
	Secret       string // session cookie signing secret

	// Streaming / capture
	CaptureInterval time.Duration
	JPEGQuality     int

	// Login rate limiting (per IP)
	RateLimitWindow   time.Duration
	RateLimitAttempts int

	// Network restrictions (CIDR blocks)
	AllowedSubnets []string
	TrustedProxies []string

	// Display wake
	WakeCommands      []string
	KeepAliveInterval time.Duration

	// Host agent integration
	AgentBaseURL string
	AgentToken   string
	AgentTimeout time.Duration
	AgentEnabled bool

	// Startup banner
	PrintQR bool

	// Optional Redis session store
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
}

// Load reads the configuration from the environment. An optional .env
// file in the working directory is applied first; real environment
// variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Host:  GetEnv("HOST", constants.DefaultHost),
		Port:  GetEnv("PORT", constants.DefaultPort),
		Debug: getEnvBool("DEBUG", false),

		Username:     GetEnv("REMOTE_DESKTOP_USER", "admin"),
		Password:     GetEnv("REMOTE_DESKTOP_PASSWORD", "changeme"),
		PasswordHash: GetEnv("REMOTE_DESKTOP_PASSWORD_HASH", ""),
		Secret:       GetEnv("REMOTE_DESKTOP_SECRET", "replace-with-random-secret"),

		CaptureInterval: getEnvSeconds("REMOTE_DESKTOP_INTERVAL", constants.DefaultCaptureInterval),
		JPEGQuality:     getEnvInt("REMOTE_DESKTOP_JPEG_QUALITY", constants.DefaultJPEGQuality),

		RateLimitWindow:   getEnvSeconds("REMOTE_DESKTOP_RATE_WINDOW", constants.DefaultRateLimitWindow),
		RateLimitAttempts: getEnvInt("REMOTE_DESKTOP_RATE_ATTEMPTS", constants.DefaultRateLimitAttempts),

		AllowedSubnets: splitList(GetEnv("REMOTE_DESKTOP_ALLOWED_SUBNETS", constants.DefaultAllowedSubnets), ","),
		TrustedProxies: splitList(GetEnv("REMOTE_DESKTOP_TRUSTED_PROXIES", constants.DefaultTrustedProxies), ","),

		WakeCommands:      splitList(GetEnv("REMOTE_DESKTOP_WAKE_COMMANDS", constants.DefaultWakeCommands), ";"),
		KeepAliveInterval: getEnvSeconds("REMOTE_DESKTOP_KEEP_ALIVE", constants.DefaultKeepAliveInterval),

		AgentBaseURL: strings.TrimRight(GetEnv("REMOTE_AGENT_BASE_URL", constants.DefaultAgentBaseURL), "/"),
		AgentToken:   GetEnv("REMOTE_AGENT_TOKEN", "replace-this-agent-token"),
		AgentTimeout: getEnvSeconds("REMOTE_AGENT_TIMEOUT", constants.DefaultAgentTimeout),
		AgentEnabled: getEnvBool("REMOTE_AGENT_ENABLED", false),

		PrintQR: getEnvBool("REMOTE_DESKTOP_PRINT_QR", false),

		RedisHost:     GetEnv("REDIS_HOST", ""),
		RedisPort:     GetEnv("REDIS_PORT", "6379"),
		RedisUsername: GetEnv("REDIS_USERNAME", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
	}
}

// GetEnv returns the environment variable value or the default if empty.
func GetEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := strings.ToLower(os.Getenv(key))
	if val == "" {
		return defaultVal
	}
	switch val {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// getEnvSeconds parses a float number of seconds, the unit the original
// deployment scripts use for all interval settings.
func getEnvSeconds(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil && f > 0 {
			return time.Duration(f * float64(time.Second))
		}
	}
	return defaultVal
}

func splitList(val, sep string) []string {
	var out []string
	for _, item := range strings.Split(val, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
