package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"orgsite-backend/internal/shared"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr, password string, db int) *Scheduler {
	return &Scheduler{
		scheduler: asynq.NewScheduler(
			asynq.RedisClientOpt{Addr: redisAddr, Password: password, DB: db},
			&asynq.SchedulerOpts{
				Location: time.UTC,
				LogLevel: asynq.InfoLevel,
			},
		),
	}
}

// RegisterJobs registers every periodic task.
func (s *Scheduler) RegisterJobs() error {
	return s.registerRecruitmentWindowJob()
}

// Recruitment window sync, every 15 minutes.
func (s *Scheduler) registerRecruitmentWindowJob() error {
	payload, err := json.Marshal(shared.SyncRecruitmentWindowPayload{})
	if err != nil {
		return err
	}

	entryID, err := s.scheduler.Register(
		"*/15 * * * *",
		asynq.NewTask(shared.TypeSyncRecruitmentWindow, payload),
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		return fmt.Errorf("register %s: %w", shared.TypeSyncRecruitmentWindow, err)
	}

	log.Info().Str("entry_id", entryID).Str("type", shared.TypeSyncRecruitmentWindow).Msg("scheduled job registered")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
