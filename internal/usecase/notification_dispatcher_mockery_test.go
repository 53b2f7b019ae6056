package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/novaleague/vrfs-bot/internal/domain/notification"
	"github.com/novaleague/vrfs-bot/internal/domain/stat"
	notificationmock "github.com/novaleague/vrfs-bot/internal/mocks/domain/notification"
	"github.com/stretchr/testify/mock"
)

func TestNotificationDispatcher_DeliversNoticeUsingMockery(t *testing.T) {
	t.Parallel()

	notifier := notificationmock.NewNotifier(t)
	dispatcher, err := NewNotificationDispatcher(notifier, NotificationDispatcherConfig{Workers: 1, Timeout: time.Second}, nil)
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	defer dispatcher.Close()

	notice := notification.StatNotice{
		PlayerID:    "p1",
		Gameweek:    5,
		Season:      1,
		Kind:        stat.KindGoal,
		Division:    stat.Div1,
		Count:       1,
		PointsDelta: 9,
	}

	notifier.
		On("NotifyStatRecorded", mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()
			return hasDeadline
		}), notice).
		Return(nil).
		Once()

	if err := dispatcher.Dispatch(notice); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	dispatcher.Wait()
}

func TestNotificationDispatcher_SwallowsNotifierFailureUsingMockery(t *testing.T) {
	t.Parallel()

	notifier := notificationmock.NewNotifier(t)
	dispatcher, err := NewNotificationDispatcher(notifier, NotificationDispatcherConfig{Workers: 1}, nil)
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	defer dispatcher.Close()

	notifier.
		On("NotifyStatRecorded", mock.Anything, mock.AnythingOfType("notification.StatNotice")).
		Return(errors.New("dm closed")).
		Once()

	if err := dispatcher.Dispatch(notification.StatNotice{PlayerID: "p1", Kind: stat.KindAssist, Division: stat.Div2}); err != nil {
		t.Fatalf("expected failure to be swallowed, got %v", err)
	}
	dispatcher.Wait()
}

func TestNotificationDispatcher_NilNotifierIsNoop(t *testing.T) {
	t.Parallel()

	dispatcher, err := NewNotificationDispatcher(nil, NotificationDispatcherConfig{}, nil)
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	defer dispatcher.Close()

	if err := dispatcher.Dispatch(notification.StatNotice{PlayerID: "p1"}); err != nil {
		t.Fatalf("expected noop dispatch, got %v", err)
	}
}

func TestNotificationDispatcher_RecoversNotifierPanicUsingMockery(t *testing.T) {
	t.Parallel()

	notifier := notificationmock.NewNotifier(t)
	dispatcher, err := NewNotificationDispatcher(notifier, NotificationDispatcherConfig{Workers: 1}, nil)
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	defer dispatcher.Close()

	notifier.
		On("NotifyStatRecorded", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { panic("embed builder exploded") }).
		Return(nil).
		Twice()

	for i := 0; i < 2; i++ {
		if err := dispatcher.Dispatch(notification.StatNotice{PlayerID: "p1", Kind: stat.KindGoal, Division: stat.Div1}); err != nil {
			t.Fatalf("dispatch %d: %v", i, err)
		}
		dispatcher.Wait()
	}
}
