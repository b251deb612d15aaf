package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weatherfav/internal/config"
	"weatherfav/internal/http/server"
	"weatherfav/internal/repository/inmemory"
	"weatherfav/internal/repository/mongodb"
	"weatherfav/internal/repository/postgres"
	"weatherfav/internal/repository/rediscache"
	"weatherfav/internal/services/admin"
	"weatherfav/internal/services/auth"
	"weatherfav/internal/services/favorites"
	"weatherfav/internal/services/session"
	"weatherfav/internal/services/users"
	"weatherfav/internal/services/weather"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// store - пользователи и избранное в одном хранилище (Postgres или память)
type store interface {
	users.UserStorage
	favorites.FavoritesStorage
	admin.Storage
	Close() error
}

type sessionStore interface {
	session.SessionStorage
	admin.SessionPurger
	Close(ctx context.Context) error
}

type App struct {
	cfg      *config.Config
	log      *zerolog.Logger
	store    store
	cache    *rediscache.FavoritesCache
	sessions sessionStore
	server   *server.Server
}

func NewApp(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	if err := a.initStorages(ctx); err != nil {
		a.closeStorages(ctx)
		return nil, err
	}

	if err := a.initServer(); err != nil {
		a.closeStorages(ctx)
		return nil, err
	}

	return a, nil
}

func (a *App) initStorages(ctx context.Context) error {
	if a.cfg.DatabaseDSN != "" {
		pg, err := postgres.NewStorage(ctx, a.cfg.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("postgres init error: %w", err)
		}
		a.store = pg
		a.log.Info().Msg("using PostgreSQL storage")
	} else {
		a.store = inmemory.NewStorage()
		a.log.Warn().Msg("DATABASE_DSN is empty, using in-memory storage")
	}

	if a.cfg.RedisAddr != "" {
		cache, err := rediscache.Connect(ctx, a.cfg.RedisAddr, a.cfg.RedisPassword, a.cfg.RedisDB, a.cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("redis init error: %w", err)
		}
		a.cache = cache
		a.log.Info().Str("addr", a.cfg.RedisAddr).Msg("favorites cache enabled")
	} else {
		a.log.Warn().Msg("REDIS_ADDR is empty, favorites cache disabled")
	}

	if a.cfg.MongoURI != "" {
		sessions, err := mongodb.NewSessionStorage(ctx, a.cfg.MongoURI, a.cfg.MongoDatabase)
		if err != nil {
			return fmt.Errorf("mongodb init error: %w", err)
		}
		a.sessions = sessions
		a.log.Info().Str("database", a.cfg.MongoDatabase).Msg("using MongoDB session storage")
	} else {
		a.sessions = inmemory.NewSessionStorage()
		a.log.Warn().Msg("MONGO_URI is empty, sessions are kept in memory")
	}

	return nil
}

func (a *App) initServer() error {
	// nil-указатель на кэш нельзя передавать как интерфейс
	var (
		favCache favorites.FavoritesCache
		purger   admin.CachePurger
	)
	if a.cache != nil {
		favCache = a.cache
		purger = a.cache
	}

	tokens, err := auth.NewAuthentication(a.cfg.JWTSecretKey, a.cfg.JWTAccessExpire)
	if err != nil {
		return err
	}

	favoritesSvc := favorites.NewService(a.store, favCache, a.log)

	srv, err := server.NewServer(a.log, a.cfg.ServerAddress, server.Services{
		Users:     users.NewService(a.store),
		Favorites: favoritesSvc,
		Sessions:  session.NewService(a.sessions, favoritesSvc, a.log),
		Tokens:    tokens,
		Weather:   weather.NewClient(a.cfg.WeatherBaseURL, a.cfg.WeatherAPIKey, a.cfg.WeatherTimeout),
		Admin:     admin.NewService(a.store, purger, a.sessions, a.log),
	})
	if err != nil {
		return fmt.Errorf("server init error: %w", err)
	}
	a.server = srv
	return nil
}

// Run блокируется до отмены ctx или ошибки сервера, затем останавливает сервер и закрывает хранилища
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info().Msg("shutdown signal received")
	case runErr = <-errCh:
		if runErr != nil {
			a.log.Error().Err(runErr).Msg("server stopped with error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("server shutdown failed")
		runErr = errors.Join(runErr, err)
	}
	a.closeStorages(shutdownCtx)

	a.log.Info().Msg("server stopped")
	return runErr
}

func (a *App) closeStorages(ctx context.Context) {
	if a.sessions != nil {
		if err := a.sessions.Close(ctx); err != nil {
			a.log.Error().Err(err).Msg("failed to close session storage")
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.log.Error().Err(err).Msg("failed to close redis client")
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Error().Err(err).Msg("failed to close storage")
		}
	}
}

// Migrate накатывает миграции (reset=false) или пересоздает схему (reset=true)
func Migrate(ctx context.Context, cfg *config.Config, log *zerolog.Logger, reset bool) error {
	if cfg.DatabaseDSN == "" {
		return errors.New("database DSN is required for migrations")
	}

	pg, err := postgres.NewStorage(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer pg.Close()

	if reset {
		if err := pg.Reset(ctx); err != nil {
			return err
		}
		log.Info().Msg("database schema recreated")
		return nil
	}

	log.Info().Msg("migrations applied")
	return nil
}
