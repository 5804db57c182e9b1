package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a named unit of periodic work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs registered jobs on cron schedules.
//
// A job still running when its next trigger fires is skipped for that cycle,
// never run concurrently with itself.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	timeout time.Duration
}

// New creates a scheduler. Schedules are evaluated in loc; each job run is
// bounded by timeout.
func New(loc *time.Location, timeout time.Duration, logger *slog.Logger) *Scheduler {
	cronLogger := &slogCronLogger{logger: logger}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger)),
		),
		logger:  logger,
		timeout: timeout,
	}
}

// Register adds a job on the given standard 5-field cron spec.
func (s *Scheduler) Register(spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		started := time.Now()
		if err := job.Run(ctx); err != nil {
			s.logger.Error("Scheduled job failed",
				"job", job.Name(),
				"duration", time.Since(started),
				"error", err,
			)
			return
		}

		s.logger.Info("Scheduled job finished",
			"job", job.Name(),
			"duration", time.Since(started),
		)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Scheduled job registered", "job", job.Name(), "spec", spec)
	return nil
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling new runs and returns a context that is done once all
// in-flight jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// slogCronLogger adapts slog to the cron.Logger interface.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	args := append([]interface{}{"error", err}, keysAndValues...)
	l.logger.Error(msg, args...)
}
