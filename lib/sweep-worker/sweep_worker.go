package sweepworker

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	documenthandler "staffhub-backend/lib/document"
	timeentryhandler "staffhub-backend/lib/timeentry"
	"staffhub-backend/models"
)

const (
	autoClockOutPeriod = 15 * time.Minute
	docExpiryPeriod    = 12 * time.Hour
)

func StartWorker(ctx context.Context) {
	i := impl{}
	go i.run(ctx, "AutoClockOutSweep", autoClockOutPeriod, i.handleAutoClockOut)
	go i.run(ctx, "DocExpirySweep", docExpiryPeriod, i.handleDocExpiry)
}

type impl struct{}

func (i impl) getLogger(workerName string) *log.Entry {
	return log.WithField("worker_name", workerName)
}

func (i impl) run(ctx context.Context, workerName string, handlePeriod time.Duration, handle func(logger *log.Entry)) {
	period := time.Second
	logger := i.getLogger(workerName)
	for {
		select {
		case <-ctx.Done():
			logger.Info("worker stopped")
			return
		case <-time.After(period):
			handle(logger)
		}
		period = handlePeriod
	}
}

func (i impl) handleAutoClockOut(logger *log.Entry) {
	result, err := timeentryhandler.Instance.AutoClockOut(models.SystemUser)
	if err != nil {
		logger.WithError(err).Error("auto clock-out sweep failed")
		return
	}
	if result.Affected > 0 {
		logger.WithField("affected", result.Affected).Info("stale active entries auto-clocked-out")
	}
}

func (i impl) handleDocExpiry(logger *log.Entry) {
	// threshold 0 falls back to the configured default
	result, err := documenthandler.Instance.CheckExpiry(models.SystemUser, 0)
	if err != nil {
		logger.WithError(err).Error("document expiry sweep failed")
		return
	}
	if result.Affected > 0 {
		logger.WithField("affected", result.Affected).Info("documents flagged as expiring")
	}
}
