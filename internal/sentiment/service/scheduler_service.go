package service

import (
	"context"
	"fmt"
	"time"

	"golang-crypto-sentiment/pkg/logger"
	"golang-crypto-sentiment/pkg/utils"

	"github.com/robfig/cron/v3"
)

// Job is a periodic task driven by the scheduler.
type Job interface {
	Name() string
	Run(ctx context.Context)
}

// SchedulerService defines the interface for the periodic job scheduler.
type SchedulerService interface {
	Register(job Job, interval time.Duration)
	Start(ctx context.Context) error
	Stop()
}

// NewSchedulerService creates a new scheduler service.
func NewSchedulerService(log *logger.Logger) SchedulerService {
	return &schedulerService{
		cron:   cron.New(),
		logger: log,
	}
}

type scheduledJob struct {
	job      Job
	interval time.Duration
}

type schedulerService struct {
	cron   *cron.Cron
	logger *logger.Logger
	jobs   []scheduledJob
}

// Register adds a job to be run at the given fixed interval.
func (s *schedulerService) Register(job Job, interval time.Duration) {
	s.jobs = append(s.jobs, scheduledJob{job: job, interval: interval})
}

// Start fires every registered job once immediately, then on its fixed
// interval. Jobs overlap freely: a slow run never delays or skips the next
// trigger, and ingestion and aggregation never block each other.
func (s *schedulerService) Start(ctx context.Context) error {
	for _, sj := range s.jobs {
		run := s.wrap(ctx, sj.job)

		utils.GoSafe(run)

		spec := fmt.Sprintf("@every %s", sj.interval)
		if _, err := s.cron.AddFunc(spec, run); err != nil {
			return fmt.Errorf("failed to schedule job %s: %w", sj.job.Name(), err)
		}

		s.logger.Info("Scheduled job",
			logger.StringField("job", sj.job.Name()),
			logger.DurationField("interval", sj.interval),
		)
	}

	s.cron.Start()
	return nil
}

// Stop halts the trigger loop and waits for in-flight runs started by the
// cron to complete.
func (s *schedulerService) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *schedulerService) wrap(ctx context.Context, job Job) func() {
	return func() {
		if !utils.ShouldContinue(ctx) {
			return
		}

		start := time.Now()
		s.logger.Info("Job started", logger.StringField("job", job.Name()))

		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Job panicked", logger.StringField("job", job.Name()), logger.Field("panic", r))
				return
			}
			s.logger.Info("Job finished",
				logger.StringField("job", job.Name()),
				logger.DurationField("duration", time.Since(start)),
			)
		}()

		job.Run(ctx)
	}
}
