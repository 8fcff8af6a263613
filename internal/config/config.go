package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AppInfo holds basic application metadata.
type AppInfo struct {
	Name        string `yaml:"name"`        // service name, reported by /api/health
	Version     string `yaml:"version"`     // application version
	Environment string `yaml:"environment"` // e.g. "development", "production"
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"` // listen address, e.g. ":8001"
}

// LoggerConfig holds the logger settings.
type LoggerConfig struct {
	Level string `yaml:"level"` // log level: "debug", "info", "warn", "error"
}

// AdminCredential is one entry of the static administrator credential table.
// PasswordHash is a bcrypt hash; plaintext passwords are never configured.
type AdminCredential struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"passwordHash"`
}

// AuthConfig configures the admin auth gate.
type AuthConfig struct {
	JwtSecret string            `yaml:"jwtSecret"` // HS256 signing secret
	TokenTTL  int               `yaml:"tokenTTL"`  // token lifetime in seconds
	Admins    []AdminCredential `yaml:"admins"`    // static credential table
}

// MongoConfig holds the MongoDB connection settings.
type MongoConfig struct {
	Address  string `yaml:"address"`  // connection URI, e.g. "mongodb://localhost:27017"
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// DatabaseConfigs groups the storage backends.
type DatabaseConfigs struct {
	MongoDB MongoConfig `yaml:"mongodb"`
}

// RateLimiterConfig configures the optional global rate limiter.
type RateLimiterConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Rate     float64 `yaml:"rate"`     // tokens per second
	Capacity int     `yaml:"capacity"` // burst size
}

// MiddlewareConfig groups middleware settings.
type MiddlewareConfig struct {
	RateLimiter RateLimiterConfig `yaml:"rateLimiter"`
}

// AppConfig is the root of the YAML configuration file.
type AppConfig struct {
	App        AppInfo          `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Logger     LoggerConfig     `yaml:"logger"`
	Auth       AuthConfig       `yaml:"auth"`
	Databases  DatabaseConfigs  `yaml:"databases"`
	Middleware MiddlewareConfig `yaml:"middleware"`
}

// LoadConfig reads and parses the YAML configuration file at path, then
// applies environment overrides. MONGO_URL and JWT_SECRET replace their file
// counterparts when set; WIKI_ADMIN_USERNAME together with
// WIKI_ADMIN_PASSWORD_HASH replaces the whole credential table, so secrets
// can live entirely outside the config file in deployments.
func LoadConfig(path string) (*AppConfig, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file '%s': %w", path, err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file: %w", err)
	}
	applyEnvOverrides(&cfg)
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 8 * 60 * 60
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("MONGO_URL"); v != "" {
		cfg.Databases.MongoDB.Address = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JwtSecret = v
	}
	user := os.Getenv("WIKI_ADMIN_USERNAME")
	hash := os.Getenv("WIKI_ADMIN_PASSWORD_HASH")
	if user != "" && hash != "" {
		cfg.Auth.Admins = []AdminCredential{{Username: user, PasswordHash: hash}}
	}
}
