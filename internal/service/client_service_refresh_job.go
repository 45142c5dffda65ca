package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tasklist/internal/logger"
)

// DefaultBackgroundRefreshInterval is used when the configured tick is not
// positive.
const DefaultBackgroundRefreshInterval = time.Minute

type organizationRefreshJob struct {
	synchronizer OrganizationSynchronizer
	interval     time.Duration
	logger       *logger.Logger
}

// NewOrganizationRefreshJob creates a worker that calls
// synchronizer.BackgroundRefresh every interval until its context ends.
func NewOrganizationRefreshJob(synchronizer OrganizationSynchronizer, interval time.Duration, logger *logger.Logger) ClientRefreshJob {
	if interval <= 0 {
		interval = DefaultBackgroundRefreshInterval
	}

	return &organizationRefreshJob{
		synchronizer: synchronizer,
		interval:     interval,
		logger:       logger,
	}
}

// Run implements workers.Worker. Refresh failures are already reported as
// silent events and never stop the job.
func (j *organizationRefreshJob) Run(ctx context.Context) error {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			fetched, err := j.synchronizer.BackgroundRefresh(ctx)
			if err != nil {
				j.logger.Debug().Err(err).Msg("background organization refresh failed")
				continue
			}
			if fetched {
				j.logger.Debug().Msg("background organization refresh done")
			}
		}
	}
}
