package jobs

import (
	"context"
	"log/slog"

	"repairshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// retryBatchSize caps how many parked notifications one run drains.
const retryBatchSize = 50

// NotificationRetryJob re-publishes notifications that failed their first
// delivery and were parked in the outbox. Runs every minute.
type NotificationRetryJob struct {
	outbox   ports.OutboxRepository
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationRetryJob creates a job that drains the notification outbox.
func NewNotificationRetryJob(
	outbox ports.OutboxRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) *NotificationRetryJob {
	return &NotificationRetryJob{
		outbox:   outbox,
		notifier: notifier,
		cron:     cron.New(),
		logger:   logger.With("component", "notification_retry_job"),
	}
}

// Start begins the retry job to run every minute.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.drain(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification retry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started (running every minute)")
	return nil
}

// Stop stops the retry job.
func (j *NotificationRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}

// drain retries one batch. Messages that fail again stay parked with their
// attempt counter bumped; they are retried on the next run.
func (j *NotificationRetryJob) drain(ctx context.Context) error {
	messages, err := j.outbox.GetPending(ctx, retryBatchSize)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if publishErr := j.notifier.Publish(ctx, msg.Notification); publishErr != nil {
			j.logger.WarnContext(ctx, "Notification retry failed",
				"order", msg.Notification.OrderCode, "attempts", msg.Attempts+1, "error", publishErr)

			if markErr := j.outbox.MarkFailed(ctx, msg.ID); markErr != nil {
				j.logger.ErrorContext(ctx, "Failed to record retry attempt", "error", markErr)
			}
			continue
		}

		if markErr := j.outbox.MarkDelivered(ctx, msg.ID); markErr != nil {
			j.logger.ErrorContext(ctx, "Failed to remove delivered message", "error", markErr)
		}
	}

	return nil
}
