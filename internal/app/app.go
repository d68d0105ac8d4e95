package app

import (
	"net/http"
	"time"

	"github.com/ibanezbetes/trinity-sub006/internal/config"
	http_init "github.com/ibanezbetes/trinity-sub006/internal/delivery/http/init"
	http_pool "github.com/ibanezbetes/trinity-sub006/internal/delivery/http/pool"
	"github.com/ibanezbetes/trinity-sub006/internal/infra/criteriamock"
	infra_pool_memcache "github.com/ibanezbetes/trinity-sub006/internal/infra/memcache/poolcache"
	infra_postgres_criteria "github.com/ibanezbetes/trinity-sub006/internal/infra/postgres/criteria"
	infra_pg_init "github.com/ibanezbetes/trinity-sub006/internal/infra/postgres/init"
	infra_redis_init "github.com/ibanezbetes/trinity-sub006/internal/infra/redis/init"
	infra_pool_cache "github.com/ibanezbetes/trinity-sub006/internal/infra/redis/poolcache"
	infra_tmdb "github.com/ibanezbetes/trinity-sub006/internal/infra/tmdb"
	"github.com/ibanezbetes/trinity-sub006/internal/service/quality"
	"github.com/ibanezbetes/trinity-sub006/internal/service/ratelimit"
	"github.com/ibanezbetes/trinity-sub006/internal/service/selection"
	usecase_pool "github.com/ibanezbetes/trinity-sub006/internal/usecase/pool"
)

func Go(cfg *config.Config) {
	limiter := ratelimit.New(cfg.TMDB.MinInterval)

	validator := quality.NewValidator(quality.Config{
		MinRating:      cfg.Quality.MinRating,
		MinVotes:       cfg.Quality.MinVotes,
		MinOverviewLen: cfg.Quality.MinOverviewLen,
		ScriptRatio:    cfg.Quality.ScriptRatio,
	})

	catalog := infra_tmdb.New(
		&http.Client{Timeout: 30 * time.Second},
		limiter,
		validator,
		infra_tmdb.Config{
			APIKey:   cfg.TMDB.APIKey,
			BaseURL:  cfg.TMDB.BaseURL,
			Language: cfg.TMDB.Language,
			Region:   cfg.TMDB.Region,
		},
	)

	var cache usecase_pool.Cache
	if cfg.Redis.Host == "" {
		cache = infra_pool_memcache.New(cfg.TMDB.CacheTTL)
	} else {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		cache = infra_pool_cache.New(redisConn, "pool_cache", cfg.TMDB.CacheTTL)
	}

	var criteriaRepo usecase_pool.CriteriaRepository
	if cfg.Postgres.Host == "" {
		criteriaRepo = criteriamock.New()
	} else {
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		criteriaRepo = infra_postgres_criteria.New(pgConn)
	}

	poolUC := usecase_pool.New(catalog, cache, criteriaRepo, selection.New())

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_pool.New(poolUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
