package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"hivewatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - publish: publish a job event for the worker
// - run:     run a job in this process

func main() {
	publishCmd := flag.NewFlagSet("publish", flag.ExitOnError)
	runCmd := flag.NewFlagSet("run", flag.ExitOnError)

	publishJob := publishCmd.String("job", service.JobDailyNotifications, "Job to schedule (daily_notifications, gps_sweep)")
	publishDate := publishCmd.String("date", "", "Run date as YYYY-MM-DD in the scheduler timezone (daily_notifications only)")

	runJob := runCmd.String("job", service.JobDailyNotifications, "Job to run (daily_notifications, gps_sweep)")
	runDate := runCmd.String("date", "", "Run date as YYYY-MM-DD in the scheduler timezone (daily_notifications only)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var err error
	switch os.Args[1] {
	case "publish":
		_ = publishCmd.Parse(os.Args[2:])
		err = publish(ctx, *publishJob, *publishDate)
	case "run":
		_ = runCmd.Parse(os.Args[2:])
		err = run(ctx, *runJob, *runDate)
	case "help", "-h", "--help":
		printUsage()

		return
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: scheduler <command> [flags]

Commands:
  publish   Publish a job event to Pub/Sub for the worker
  run       Run a job in this process, under the same job lock

Examples:
  scheduler publish -job daily_notifications
  scheduler publish -job daily_notifications -date 2026-03-01
  scheduler run -job gps_sweep`)
}

// newJobEvent validates the job name and parses the optional run date.
func newJobEvent(job, date string, loc *time.Location) (*service.JobEvent, error) {
	switch job {
	case service.JobDailyNotifications, service.JobGPSSweep:
	default:
		return nil, errors.Errorf("unknown job %q", job)
	}

	event := &service.JobEvent{
		RequestID: uuid.New().String(),
		Job:       job,
	}
	if date == "" {
		return event, nil
	}
	if job != service.JobDailyNotifications {
		return nil, errors.Errorf("-date is only supported by %s", service.JobDailyNotifications)
	}

	runDate, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid date %q", date)
	}
	event.RunDate = &runDate

	return event, nil
}
