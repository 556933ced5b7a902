package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Someshsw1109/soundwave-backend/auth"
)

// Config is read from an optional TOML file and then overridden by the
// environment, so a plain .env is enough to run the server.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Auth     AuthConfig     `toml:"auth"`
	Log      LogConfig      `toml:"log"`
}

type ServerConfig struct {
	Port        string `toml:"port"`
	FrontendURL string `toml:"frontend_url"`
}

type DatabaseConfig struct {
	Driver       string `toml:"driver"`
	URL          string `toml:"url"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// RedisConfig is optional. Without an address logout still answers but
// tokens stay valid until they expire.
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

type AuthConfig struct {
	JWTSecret  string `toml:"jwt_secret"`
	TokenTTL   string `toml:"token_ttl"`
	BcryptCost int    `toml:"bcrypt_cost"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "5000",
			FrontendURL: "http://localhost:3000",
		},
		Database: DatabaseConfig{
			Driver:       "postgres",
			URL:          "postgres://localhost:5432/music_player?sslmode=disable",
			MaxOpenConns: 20,
			MaxIdleConns: 5,
		},
		Redis: RedisConfig{
			PoolSize: 10,
		},
		Auth: AuthConfig{
			JWTSecret:  "your-secret-key",
			TokenTTL:   auth.DefaultTokenTTL.String(),
			BcryptCost: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig starts from the defaults, applies the TOML file at path if one
// is given and finally the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if _, err := cfg.Auth.tokenTTL(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.FrontendURL, "FRONTEND_URL")
	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Redis.Address, "REDIS_ADDRESS")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Auth.TokenTTL, "TOKEN_TTL")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.File, "LOG_FILE")

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BCRYPT_COST %q: %w", v, err)
		}
		cfg.Auth.BcryptCost = cost
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (ac AuthConfig) tokenTTL() (time.Duration, error) {
	if ac.TokenTTL == "" {
		return auth.DefaultTokenTTL, nil
	}

	ttl, err := time.ParseDuration(ac.TokenTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid token ttl %q: %w", ac.TokenTTL, err)
	}

	return ttl, nil
}
