package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
app:
  name: "Böttcher Wiki API"
  version: "1.0.0"
  environment: "development"
server:
  address: ":8001"
logger:
  level: "debug"
auth:
  jwtSecret: "file-secret"
  tokenTTL: 3600
  admins:
    - username: "admin"
      passwordHash: "$2a$10$abcdefghijklmnopqrstuv"
databases:
  mongodb:
    address: "mongodb://file-host:27017"
    database: "boettcher_wiki"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.App.Name != "Böttcher Wiki API" {
		t.Errorf("unexpected app name %q", cfg.App.Name)
	}
	if cfg.Server.Address != ":8001" {
		t.Errorf("unexpected server address %q", cfg.Server.Address)
	}
	if cfg.Auth.TokenTTL != 3600 {
		t.Errorf("unexpected token TTL %d", cfg.Auth.TokenTTL)
	}
	if len(cfg.Auth.Admins) != 1 || cfg.Auth.Admins[0].Username != "admin" {
		t.Errorf("unexpected credential table %+v", cfg.Auth.Admins)
	}
	if cfg.Databases.MongoDB.Database != "boettcher_wiki" {
		t.Errorf("unexpected database %q", cfg.Databases.MongoDB.Database)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://env-host:27017")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("WIKI_ADMIN_USERNAME", "root")
	t.Setenv("WIKI_ADMIN_PASSWORD_HASH", "$2a$10$envhashenvhashenvhash")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Databases.MongoDB.Address != "mongodb://env-host:27017" {
		t.Errorf("MONGO_URL override not applied: %q", cfg.Databases.MongoDB.Address)
	}
	if cfg.Auth.JwtSecret != "env-secret" {
		t.Errorf("JWT_SECRET override not applied: %q", cfg.Auth.JwtSecret)
	}
	if len(cfg.Auth.Admins) != 1 || cfg.Auth.Admins[0].Username != "root" {
		t.Errorf("admin credential override not applied: %+v", cfg.Auth.Admins)
	}
}

func TestLoadConfigDefaultTokenTTL(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
app:
  name: "wiki"
auth:
  jwtSecret: "s"
`))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Auth.TokenTTL != 8*60*60 {
		t.Errorf("expected 8h default TTL, got %d", cfg.Auth.TokenTTL)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
