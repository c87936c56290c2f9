package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/cache"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/config"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/fetcher"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/league"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/providers/espn"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/registry"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/sports/americanfootball_nfl"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/store"
)

// app holds the wired components of one process
type app struct {
	league  *league.League
	games   *fetcher.Fetcher
	redis   *redis.Client
	archive *store.Postgres
}

// newApp connects the optional cache and archive and selects the game source.
// A cache or archive that cannot be reached is skipped with a warning unless
// the archive is the selected source.
func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	a := &app{}
	module := americanfootball_nfl.New()

	opts := []fetcher.Option{fetcher.WithLogger(log)}

	if cfg.Cache.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.Cache.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("cache disabled")
		} else {
			a.redis = client
			opts = append(opts, fetcher.WithCache(cache.NewRedisCache(client, cfg.Cache.TTL)))
			log.Debug().Dur("ttl", cfg.Cache.TTL).Msg("connected to redis cache")
		}
	}

	if cfg.ArchiveDSN != "" {
		archive, err := openArchive(ctx, cfg.ArchiveDSN)
		switch {
		case err != nil && cfg.Source == config.SourcePostgres:
			a.Close()
			return nil, err
		case err != nil:
			log.Warn().Err(err).Msg("archive disabled")
		default:
			a.archive = archive
			if cfg.Source == config.SourceESPN {
				opts = append(opts, fetcher.WithArchive(archive))
			}
			log.Debug().Msg("connected to archive")
		}
	}

	client := espn.New(espn.WithBaseURL(cfg.ESPN.BaseURL), espn.WithTimeout(cfg.ESPN.Timeout))

	// Box scores always come from ESPN; the archive keeps team totals only.
	a.games = fetcher.New(module, client, opts...)

	sources := registry.New()
	sources.Register(config.SourceESPN, a.games)
	if a.archive != nil {
		sources.Register(config.SourcePostgres, a.archive)
	}

	source, err := sources.GetSource(cfg.Source)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.league = league.New(source, module, log)
	return a, nil
}

func openArchive(ctx context.Context, dsn string) (*store.Postgres, error) {
	archive, err := store.NewPostgres(dsn)
	if err != nil {
		return nil, err
	}
	if err := archive.Migrate(ctx); err != nil {
		archive.Close()
		return nil, fmt.Errorf("archive: %w", err)
	}
	return archive, nil
}

// Close releases connections
func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
	if a.archive != nil {
		a.archive.Close()
	}
}
