package api

import (
	"winterfieldday/logkeeper/internal/common"
	"winterfieldday/logkeeper/internal/config"
	"winterfieldday/logkeeper/internal/db"
	"winterfieldday/logkeeper/internal/db/repositories"
	"winterfieldday/logkeeper/internal/logging"
	"winterfieldday/logkeeper/internal/metrics"
	"winterfieldday/logkeeper/internal/services"
)

type Repositories struct {
	Contacts   *repositories.ContactRepository
	Stations   *repositories.StationRepository
	Objectives *repositories.ObjectiveRepository
	Stats      *repositories.StatsRepository
}

type Services struct {
	Cache      common.CacheInterface
	Duplicates *services.DuplicateService
	Scoring    *services.ScoringService
	Stats      *services.StatsService
	Stations   *services.StationService
	Cabrillo   *services.CabrilloService
	ADIF       *services.ADIFService
	Signer     *common.URLSignerService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(cfg *config.Config) (*Dependencies, error) {
	repos := &Repositories{
		Contacts:   repositories.NewContactRepository(db.ORM),
		Stations:   repositories.NewStationRepository(db.ORM),
		Objectives: repositories.NewObjectiveRepository(db.ORM),
		Stats:      repositories.NewStatsRepository(db.DB),
	}

	var cache common.CacheInterface
	if cfg.RedisAddr != "" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err)
			cache = common.NewCacheService(60000, 600)
		} else {
			cache = redisCache
		}
	} else {
		cache = common.NewCacheService(60000, 600)
	}

	svcs := &Services{
		Cache:      cache,
		Duplicates: services.NewDuplicateService(repos.Contacts),
		Scoring:    services.NewScoringService(repos.Contacts, repos.Objectives),
		Stats:      services.NewStatsService(repos.Stats, repos.Contacts, cache),
		Stations:   services.NewStationService(repos.Stations),
		Cabrillo:   services.NewCabrilloService(repos.Contacts, repos.Stations),
		ADIF:       services.NewADIFService(repos.Contacts, repos.Stations),
		Signer:     common.NewURLSignerService([]byte(cfg.ExportSigningKey), cache),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metrics.NewMetricsRegistry(),
	}, nil
}
