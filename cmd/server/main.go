package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-api/internal/cache"
	"github.com/MKhiriev/go-catalog-api/internal/config"
	api "github.com/MKhiriev/go-catalog-api/internal/handler/http"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/security"
	"github.com/MKhiriev/go-catalog-api/internal/server"
	"github.com/MKhiriev/go-catalog-api/internal/service"
	"github.com/MKhiriev/go-catalog-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-catalog-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	// a missing or unreachable cache backend is not fatal: the API keeps
	// serving straight from the database
	var c cache.Cache
	if cfg.Storage.Redis.Host == "" {
		log.Warn().Msg("no redis host configured, cache disabled")
		c = cache.NewNopCache()
	} else if c, err = cache.NewRedisCache(ctx, cfg.Storage.Redis, log); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, cache disabled")
		c = cache.NewNopCache()
	}

	repos := store.NewRepositories(db, log)
	services := service.NewServices(*repos, db, c, *cfg, log)

	events := security.NewEvents(log, cfg.Security.TrustProxyHeader)
	handler := api.NewHandler(services, api.SecurityComponents{
		Limiter:          security.NewLimiter(cfg.Security.RateLimitMax, cfg.Security.RateLimitWindow),
		Blocklist:        security.NewBlocklist(events),
		Inspector:        security.NewInspector(cfg.Security.MaxBodyBytes),
		Events:           events,
		TrustProxyHeader: cfg.Security.TrustProxyHeader,
	}, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
