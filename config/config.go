package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported route sets.
const (
	VariantBasic  = "basic"
	VariantSecure = "secure"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	Variant         string        `mapstructure:"variant"` // "basic" or "secure"
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AuthConfig holds access-token and Google sign-in settings.
type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	JWTExpiration   time.Duration `mapstructure:"jwt_expiration"`
	GoogleClientIDs []string      `mapstructure:"google_client_ids"` // accepted "aud" values of Google ID tokens
	GoogleIssuer    string        `mapstructure:"google_issuer"`
	JWKSCacheTTL    time.Duration `mapstructure:"jwks_cache_ttl"`
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Production bool   `mapstructure:"production"`
}

// TelemetryConfig controls OpenTelemetry tracing.
type TelemetryConfig struct {
	TracesEnabled bool    `mapstructure:"traces_enabled"`
	ServiceName   string  `mapstructure:"service_name"`
	Environment   string  `mapstructure:"environment"`
	OTLPEndpoint  string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure  bool    `mapstructure:"otlp_insecure"`
	SampleRatio   float64 `mapstructure:"sample_ratio"`
}

// Load configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app/config")
	v.AddConfigPath("/app")

	setDefaults(v)

	// --- Read Config File (Optional) ---
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		log.Println("Config file not found, using defaults and environment variables.")
	}

	return load(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.variant", VariantBasic)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("auth.jwt_secret", "") // required by the secure variant, no usable default
	v.SetDefault("auth.jwt_expiration", 30*time.Minute)
	v.SetDefault("auth.google_client_ids", []string{})
	v.SetDefault("auth.google_issuer", "https://accounts.google.com")
	v.SetDefault("auth.jwks_cache_ttl", 15*time.Minute)
	// Default CORS: common local dev origins. Production overrides via environment.
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.production", false)
	v.SetDefault("telemetry.traces_enabled", false)
	v.SetDefault("telemetry.service_name", "go-item-api")
	v.SetDefault("telemetry.environment", "development")
	v.SetDefault("telemetry.otlp_endpoint", "localhost:4318")
	v.SetDefault("telemetry.otlp_insecure", true)
	v.SetDefault("telemetry.sample_ratio", 1.0)
}

func load(v *viper.Viper) (*Config, error) {
	// --- Bind Environment Variables ---
	v.SetEnvPrefix("API") // Example: API_SERVER_VARIANT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("Configuration loaded: Server Port=%d, Variant=%s, Allowed Origins=%v",
		cfg.Server.Port, cfg.Server.Variant, cfg.CORS.AllowedOrigins)

	return &cfg, nil
}

// applyEnvOverrides reads the unprefixed variables deployments already use. They win over
// everything else.
func applyEnvOverrides(cfg *Config) {
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if ids := os.Getenv("GOOGLE_CLIENT_IDS"); ids != "" {
		cfg.Auth.GoogleClientIDs = splitList(ids)
	}
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = splitList(originsStr)
	}
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	switch c.Server.Variant {
	case VariantBasic, VariantSecure:
	default:
		return fmt.Errorf("config: unknown server.variant %q (want %q or %q)", c.Server.Variant, VariantBasic, VariantSecure)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if c.Server.Variant == VariantSecure && c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret (or JWT_SECRET) must be set for the secure variant")
	}
	if c.Auth.JWTExpiration <= 0 {
		return errors.New("config: auth.jwt_expiration must be positive")
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
