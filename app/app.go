package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Someshsw1109/soundwave-backend/auth"
	"github.com/Someshsw1109/soundwave-backend/store"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	searchLimit          = 10
	recommendationsLimit = 20
	revokedTokensPrefix  = "revoked_tokens"
)

type Application struct {
	Config *Config
	Log    *logrus.Logger

	Tokens *auth.TokenManager

	UserStore     store.UserStore
	FollowStore   store.FollowStore
	PlaylistStore store.PlaylistStore
	FavoriteStore store.FavoriteStore
	// TokenStore is nil when redis is not configured.
	TokenStore store.TokenStore

	now func() time.Time
}

// NewApplication opens the database and, if configured, redis.
func NewApplication(cfg *Config) (*Application, error) {
	log, err := NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	db, err := createSQLDB(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	rc := createRedisClient(cfg.Redis)
	if rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rc.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
	} else {
		log.Warn("REDIS_ADDRESS not set, logout will not revoke tokens")
	}

	if cfg.Auth.JWTSecret == DefaultConfig().Auth.JWTSecret {
		log.Warn("JWT_SECRET not set, using the development default")
	}

	return New(cfg, log, db, rc)
}

func New(cfg *Config, log *logrus.Logger, db *gorm.DB, rc *redis.Client) (*Application, error) {
	ttl, err := cfg.Auth.tokenTTL()
	if err != nil {
		return nil, err
	}

	application := &Application{
		Config: cfg,
		Log:    log,

		Tokens: auth.NewTokenManager(cfg.Auth.JWTSecret, ttl),

		UserStore:     store.NewUserStore(db),
		FollowStore:   store.NewFollowStore(db),
		PlaylistStore: store.NewPlaylistStore(db),
		FavoriteStore: store.NewFavoriteStore(db),

		now: time.Now,
	}

	if rc != nil {
		application.TokenStore = store.NewTokenStore(rc, revokedTokensPrefix)
	}

	return application, nil
}

func (app *Application) Migrate() error {
	tables := []interface{ CreateTable() error }{
		app.UserStore,
		app.FollowStore,
		app.PlaylistStore,
		app.FavoriteStore,
	}

	for _, t := range tables {
		if err := t.CreateTable(); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return nil
}
