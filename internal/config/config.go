// Package config provides application configuration.
//
// Configuration is loaded from environment variables with sensible defaults.
// All timeouts and operational parameters are configurable. Every binary
// loads the same Config and reads the sections it needs; main constructs
// the Config and passes it down — there is no process-global state.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RedisConfig holds key-value store settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MySQLConfig holds relational store settings. WriteDSN points at the
// primary; ReadDSNs list the replicas (reads fall back to the primary when
// empty).
type MySQLConfig struct {
	WriteDSN     string
	ReadDSNs     []string
	MaxOpenConns int
	MaxIdleConns int
	InitSchema   bool
}

// GatewayConfig holds the gateway node settings.
type GatewayConfig struct {
	WSPort           string
	PushPort         string
	HandshakeTimeout time.Duration
	IdleTimeout      time.Duration
	WriteQueueSize   int
	LocationTTL      time.Duration
	LocationRefresh  time.Duration
}

// DirectoryConfig holds service-directory timing. HeartbeatInterval must
// stay below half of ServiceTTL so a single missed refresh does not expire
// the record.
type DirectoryConfig struct {
	ServiceTTL        time.Duration
	HeartbeatInterval time.Duration
	PollInterval      time.Duration
}

// AuthConfig holds auth-service settings.
type AuthConfig struct {
	TokenSecret string
	SessionTTL  time.Duration
}

// TimeoutConfig holds RPC deadlines.
type TimeoutConfig struct {
	Backend time.Duration // gateway/dispatch -> service RPC deadline
	Push    time.Duration // chat -> peer gateway push deadline
}

// Config holds all application configuration.
type Config struct {
	// PublicHost is the address peers and clients can reach this process
	// on; it is advertised in service records and location records.
	PublicHost string

	DispatchPort string
	ChatPort     string
	UserPort     string

	Redis     RedisConfig
	MySQL     MySQLConfig
	Gateway   GatewayConfig
	Directory DirectoryConfig
	Auth      AuthConfig
	Timeout   TimeoutConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		PublicHost:   getEnv("PUBLIC_HOST", "127.0.0.1"),
		DispatchPort: getEnv("DISPATCH_PORT", "8000"),
		ChatPort:     getEnv("CHAT_PORT", "50052"),
		UserPort:     getEnv("USER_PORT", "50053"),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MySQL: MySQLConfig{
			WriteDSN:     getEnv("MYSQL_WRITE_DSN", "root:root@tcp(127.0.0.1:3306)/tinyim?parseTime=true"),
			ReadDSNs:     getEnvList("MYSQL_READ_DSNS"),
			MaxOpenConns: getEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("MYSQL_MAX_IDLE_CONNS", 5),
			InitSchema:   getEnvBool("MYSQL_INIT_SCHEMA", false),
		},
		Gateway: GatewayConfig{
			WSPort:           getEnv("GATEWAY_WS_PORT", "8080"),
			PushPort:         getEnv("GATEWAY_PUSH_PORT", "50060"),
			HandshakeTimeout: getEnvDuration("GATEWAY_HANDSHAKE_TIMEOUT", 5*time.Second),
			IdleTimeout:      getEnvDuration("GATEWAY_IDLE_TIMEOUT", 5*time.Second),
			WriteQueueSize:   getEnvInt("GATEWAY_WRITE_QUEUE_SIZE", 256),
			LocationTTL:      getEnvDuration("GATEWAY_LOCATION_TTL", 30*time.Second),
			LocationRefresh:  getEnvDuration("GATEWAY_LOCATION_REFRESH", 10*time.Second),
		},
		Directory: DirectoryConfig{
			ServiceTTL:        getEnvDuration("DIRECTORY_SERVICE_TTL", 10*time.Second),
			HeartbeatInterval: getEnvDuration("DIRECTORY_HEARTBEAT_INTERVAL", 3*time.Second),
			PollInterval:      getEnvDuration("DIRECTORY_POLL_INTERVAL", 3*time.Second),
		},
		Auth: AuthConfig{
			TokenSecret: getEnv("AUTH_TOKEN_SECRET", "dev-only-secret"),
			SessionTTL:  getEnvDuration("AUTH_SESSION_TTL", 24*time.Hour),
		},
		Timeout: TimeoutConfig{
			Backend: getEnvDuration("BACKEND_RPC_TIMEOUT", 5*time.Second),
			Push:    getEnvDuration("PUSH_RPC_TIMEOUT", 3*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are consistent.
func (c *Config) Validate() error {
	if c.PublicHost == "" {
		return fmt.Errorf("PUBLIC_HOST cannot be empty")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR cannot be empty")
	}
	if c.MySQL.WriteDSN == "" {
		return fmt.Errorf("MYSQL_WRITE_DSN cannot be empty")
	}
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("AUTH_TOKEN_SECRET cannot be empty")
	}
	if c.Gateway.WriteQueueSize <= 0 {
		return fmt.Errorf("GATEWAY_WRITE_QUEUE_SIZE must be > 0")
	}
	if c.Directory.HeartbeatInterval >= c.Directory.ServiceTTL/2 {
		return fmt.Errorf("DIRECTORY_HEARTBEAT_INTERVAL must be below half of DIRECTORY_SERVICE_TTL")
	}
	return nil
}

// WSAddr returns the client-facing WebSocket address of this gateway.
func (c *Config) WSAddr() string {
	return c.PublicHost + ":" + c.Gateway.WSPort
}

// PushAddr returns the push-endpoint address written into location records.
func (c *Config) PushAddr() string {
	return c.PublicHost + ":" + c.Gateway.PushPort
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}

func getEnvList(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
