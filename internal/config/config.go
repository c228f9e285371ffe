package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	CORS     CORSConfig     `yaml:"cors"`
	Gateway  GatewayConfig  `yaml:"gateway"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

// DatabaseConfig durable mirror database settings.
// Driver is "sqlite" (embedded, default) or "mysql".
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"` // sqlite file path
	DSN    string `yaml:"dsn"`  // mysql DSN
}

// RedisConfig cache/pubsub settings. Optional: the API degrades
// gracefully when Redis is unreachable.
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// JWTConfig session token settings
type JWTConfig struct {
	Secret      string `yaml:"secret"`
	ExpiryHours int    `yaml:"expiry_hours"`
}

// CORSConfig allowed browser origins
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// GatewayConfig simulated external boundary settings
type GatewayConfig struct {
	OrderDelayMs    int `yaml:"order_delay_ms"`    // simulated order submission delay
	IdentityDelayMs int `yaml:"identity_delay_ms"` // simulated auth provider delay
	CartClearMs     int `yaml:"cart_clear_ms"`     // delay before clearing cart post-confirmation
}

// Load reads configuration from a YAML file and applies env-var overrides
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadOrDefault loads configuration, falling back to built-in defaults
// (plus env overrides) when the file does not exist.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		cfg = defaults()
		applyEnvOverrides(cfg)
	}
	return cfg
}

func defaults() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080, Env: "local"},
		Database: DatabaseConfig{Driver: "sqlite", Path: "kedai.db"},
		Redis:    RedisConfig{Host: "localhost", Port: 6379, PoolSize: 10},
		JWT:      JWTConfig{Secret: "kedai-mae-dev-secret", ExpiryHours: 24},
		CORS:     CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
		Gateway:  GatewayConfig{OrderDelayMs: 1000, IdentityDelayMs: 1000, CartClearMs: 2000},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Redis.Port = port
		}
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
}

// JWTExpiry returns the configured token lifetime
func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWT.ExpiryHours) * time.Hour
}

// OrderDelay returns the simulated order gateway latency
func (c *Config) OrderDelay() time.Duration {
	return time.Duration(c.Gateway.OrderDelayMs) * time.Millisecond
}

// IdentityDelay returns the simulated identity gateway latency
func (c *Config) IdentityDelay() time.Duration {
	return time.Duration(c.Gateway.IdentityDelayMs) * time.Millisecond
}

// CartClearDelay returns the post-confirmation cart clear delay
func (c *Config) CartClearDelay() time.Duration {
	return time.Duration(c.Gateway.CartClearMs) * time.Millisecond
}
