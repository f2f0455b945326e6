package usecase

import (
	"context"

	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
)

var (
	// ErrJobAlreadyRunning is returned when another worker holds the job lock.
	ErrJobAlreadyRunning = errors.New("job already running")
	// ErrUnknownJob is returned for job names the worker does not handle.
	ErrUnknownJob = errors.New("unknown job")
)

// JobResult holds the report of the job that ran.
type JobResult struct {
	Job   string          `json:"job"`
	Daily *DailyRunReport `json:"daily,omitempty"`
	Sweep *SweepReport    `json:"sweep,omitempty"`
}

// JobUsecase runs scheduled jobs.
type JobUsecase interface {
	RunJob(ctx context.Context, event service.JobEvent) (*JobResult, error)
}
