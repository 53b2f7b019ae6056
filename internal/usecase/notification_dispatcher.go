package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/novaleague/vrfs-bot/internal/domain/notification"
	"github.com/novaleague/vrfs-bot/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"
)

const (
	defaultNotifyWorkers = 4
	defaultNotifyTimeout = 10 * time.Second
)

type NotificationDispatcherConfig struct {
	Workers int
	Timeout time.Duration
}

// NotificationDispatcher delivers stat notices after the recording transaction
// has committed. Delivery failures are logged and dropped.
type NotificationDispatcher struct {
	notifier notification.Notifier
	pool     *ants.Pool
	timeout  time.Duration
	logger   *logging.Logger
	inflight sync.WaitGroup
}

func NewNotificationDispatcher(
	notifier notification.Notifier,
	cfg NotificationDispatcherConfig,
	logger *logging.Logger,
) (*NotificationDispatcher, error) {
	if logger == nil {
		logger = logging.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultNotifyWorkers
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}

	pool, err := ants.NewPool(workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("create notification worker pool: %w", err)
	}

	return &NotificationDispatcher{
		notifier: notifier,
		pool:     pool,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// Dispatch queues the notice and returns immediately. The only error is a
// rejected submission, which callers log and discard like a failed delivery.
func (d *NotificationDispatcher) Dispatch(notice notification.StatNotice) error {
	if d == nil || d.notifier == nil {
		return nil
	}

	d.inflight.Add(1)
	if err := d.pool.Submit(func() {
		defer d.inflight.Done()
		d.deliver(notice)
	}); err != nil {
		d.inflight.Done()
		return fmt.Errorf("submit notification: %w", err)
	}
	return nil
}

func (d *NotificationDispatcher) deliver(notice notification.StatNotice) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	var err error
	var catcher panics.Catcher
	catcher.Try(func() {
		err = d.notifier.NotifyStatRecorded(ctx, notice)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		err = recovered.AsError()
	}
	if err != nil {
		d.logger.WarnContext(ctx, "stat notification failed",
			"player_id", notice.PlayerID,
			"stat_kind", string(notice.Kind),
			"division", string(notice.Division),
			"error", err,
		)
		return
	}
	d.logger.DebugContext(ctx, "stat notification delivered", "player_id", notice.PlayerID)
}

// Wait blocks until every queued notice has been attempted.
func (d *NotificationDispatcher) Wait() {
	if d == nil {
		return
	}
	d.inflight.Wait()
}

func (d *NotificationDispatcher) Close() {
	if d == nil {
		return
	}
	d.inflight.Wait()
	d.pool.Release()
}
