package main

import (
	"github.com/rs/zerolog/log"

	"orgsite-backend/internal/infrastructure/queue"
	"orgsite-backend/pkg/container"
)

type asynqScheduler struct {
	*queue.Scheduler
}

func setupScheduler(c *container.Container) *asynqScheduler {
	redisCfg := c.Config.Redis
	scheduler := queue.NewScheduler(redisCfg.Host, redisCfg.Password, redisCfg.DB)

	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatal().Err(err).Msg("failed to register scheduled jobs")
	}

	go func() {
		log.Info().Msg("scheduler starting")
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("scheduler failed")
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	s.Scheduler.Shutdown()
	log.Info().Msg("scheduler stopped")
}
