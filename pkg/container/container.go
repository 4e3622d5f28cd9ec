package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"posterapi/internal/config"
	infraCache "posterapi/internal/infrastructure/cache"
	"posterapi/internal/infrastructure/database"
	"posterapi/pkg/cache"

	artistHandler "posterapi/internal/domains/artist/handler"
	artistRepo "posterapi/internal/domains/artist/repository"
	artistService "posterapi/internal/domains/artist/service"
	posterHandler "posterapi/internal/domains/poster/handler"
	posterRepo "posterapi/internal/domains/poster/repository"
	posterService "posterapi/internal/domains/poster/service"
)

// Container is the root of the dependency graph. Initialization order
// matters: config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	ArtistRepo artistRepo.Repository
	PosterRepo posterRepo.Repository

	Resolver      *artistService.Resolver
	ArtistService artistService.Service
	PosterService posterService.Service

	ArtistHandler *artistHandler.ArtistHandler
	PosterHandler *posterHandler.PosterHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		// A missing cache degrades to plain database reads, so connection
		// failure is not fatal.
		if err := rc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("redis connection failed, continuing without warm cache")
		}
	}
	c.Cache = redisCache

	c.ArtistRepo = artistRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.PosterRepo = posterRepo.NewPostgresRepository(db.Pool, c.Cache)

	c.Resolver = artistService.NewResolver(c.ArtistRepo)
	c.ArtistService = artistService.NewArtistService(db.Pool, c.ArtistRepo, c.Resolver)
	c.PosterService = posterService.NewPosterService(db.Pool, c.PosterRepo, c.ArtistRepo, c.Resolver)

	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService)
	c.PosterHandler = posterHandler.NewPosterHandler(c.PosterService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
