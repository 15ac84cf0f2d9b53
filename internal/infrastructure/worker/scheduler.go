package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
)

// Job is one periodic task
type Job struct {
	Name     string
	Schedule string        // Six-field cron expression (seconds first) or a @every descriptor
	Timeout  time.Duration // Upper bound for a single run
	Run      func(ctx context.Context) error
}

// Scheduler runs jobs on cron schedules; overlapping runs of one job are skipped
type Scheduler struct {
	cron   *cron.Cron
	logger core.Logger
	jobs   []string
}

// NewScheduler creates a scheduler with second-level precision
func NewScheduler(logger core.Logger) *Scheduler {
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

// Register adds a job; an invalid schedule is an error
func (s *Scheduler) Register(job Job) error {
	if job.Run == nil {
		return errors.New("job has no run function")
	}
	timeout := job.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	_, err := s.cron.AddFunc(job.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := job.Run(ctx); err != nil {
			s.logger.Error("Scheduled job failed", map[string]any{
				"job":   job.Name,
				"error": err.Error(),
			})
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s (%q): %w", job.Name, job.Schedule, err)
	}

	s.jobs = append(s.jobs, job.Name)
	return nil
}

// Start begins running registered jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", map[string]any{"jobs": s.jobs})
}

// Stop prevents new runs and waits for running jobs until ctx ends
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped gracefully", nil)
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out with jobs still running", nil)
	}
}

// cronLogger adapts core.Logger to cron.Logger
type cronLogger struct {
	logger core.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, pairs(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	fields := pairs(keysAndValues)
	fields["error"] = err.Error()
	l.logger.Error("cron: "+msg, fields)
}

func pairs(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
