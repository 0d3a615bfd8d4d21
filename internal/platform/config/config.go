package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

const (
	ModeDev     = "dev"
	ModeRelease = "release"
)

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

type RedisConfig struct {
	URL         string        `yaml:"url"`
	PackagesTTL time.Duration `yaml:"packages_ttl"`
}

type Config struct {
	Version      string         `yaml:"version"`
	Mode         string         `yaml:"mode"`
	Port         int            `yaml:"port"`
	StoreDriver  string         `yaml:"store_driver"` // mongo | mysql | sqlite
	Mongo        MongoConfig    `yaml:"mongo"`
	DB           DatabaseConfig `yaml:"database"`
	SQLitePath   string         `yaml:"sqlite_path"`
	Auth         AuthConfig     `yaml:"auth"`
	Redis        RedisConfig    `yaml:"redis"`
	AllowOrigins []string       `yaml:"cors_allow_origins"`
	Certificate  Certs          `yaml:"certificate"`
}

// Load reads .env (if present), the YAML file at path (if present), then
// applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] .env not loaded: %v", err)
	}

	var cfg Config
	buf, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("[INFO] %s not found, using environment only", path)
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Mode, "MODE")
	setString(&c.StoreDriver, "STORE_DRIVER")
	setString(&c.Mongo.URI, "MONGODB_URI")
	setString(&c.Mongo.Database, "MONGODB_DATABASE")
	setString(&c.DB.Host, "DB_HOST")
	setString(&c.DB.Username, "DB_USER")
	setString(&c.DB.Password, "DB_PASS")
	setString(&c.DB.DBName, "DB_NAME")
	setString(&c.SQLitePath, "SQLITE_PATH")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.Redis.URL, "REDIS_URL")
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		c.AllowOrigins = splitCSV(v)
	}
	if err := setInt(&c.Port, "PORT"); err != nil {
		return err
	}
	return setInt(&c.DB.Port, "DB_PORT")
}

func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = ModeRelease
	}
	if c.Port == 0 {
		c.Port = 5000
	}
	if c.StoreDriver == "" {
		c.StoreDriver = "mongo"
	}
	if c.Mongo.URI == "" {
		c.Mongo.URI = "mongodb://localhost:27017"
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "AssetVerse"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 3306
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "assetverse.db"
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	if c.Redis.PackagesTTL <= 0 {
		c.Redis.PackagesTTL = 10 * time.Minute
	}
}

func (c *Config) Validate() error {
	if c.Mode != ModeDev && c.Mode != ModeRelease {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeDev, ModeRelease, c.Mode)
	}
	switch c.StoreDriver {
	case "mongo", "mysql", "sqlite":
	default:
		return fmt.Errorf("store_driver must be mongo, mysql or sqlite, got %q", c.StoreDriver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret (JWT_SECRET) is required")
	}
	if (c.Certificate.Cert == "") != (c.Certificate.Key == "") {
		return errors.New("certificate.cert and certificate.key must be set together")
	}
	return nil
}

// TLS reports whether the server should listen with TLS.
func (c *Config) TLS() bool { return c.Certificate.Cert != "" }

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
