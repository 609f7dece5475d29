package scheduler_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wellnesshub/pkg/scheduler"
	"wellnesshub/pkg/session"
)

type listSource struct {
	mu       sync.Mutex
	sessions []*session.Session
	err      error
}

func (l *listSource) fetch(ctx context.Context) ([]*session.Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sessions, l.err
}

func (l *listSource) set(sessions []*session.Session, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sessions = sessions
	l.err = err
}

func TestFeedRecomputesOnChange(t *testing.T) {
	clock := &fakeClock{now: baseTime}
	sched, timers, sink, _ := newTestScheduler(clock)

	source := &listSource{}
	feed := &scheduler.Feed{
		Fetch:    source.fetch,
		Sched:    sched,
		Interval: 5 * time.Millisecond,
		Logger:   slog.Default(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		feed.Run(ctx)
		close(done)
	}()

	// initial load of an empty list surfaces the nothing-scheduled state
	assert.Eventually(t, func() bool {
		return sink.lastAlert() != nil
	}, time.Second, time.Millisecond)

	// a published upcoming session appears: the plan is armed
	source.set([]*session.Session{published("aaa", baseTime.Add(10*time.Minute))}, nil)
	assert.Eventually(t, func() bool {
		return timers.get("start") != nil
	}, time.Second, time.Millisecond)

	// a fetch failure keeps the armed plan
	source.set(nil, errors.New("store down"))
	time.Sleep(20 * time.Millisecond)
	assert.NotNil(t, timers.get("start"))

	// teardown cancels every outstanding timer
	cancel()
	<-done
	assert.Zero(t, timers.count())
}

func TestFeedSkipsRecomputeWhenUnchanged(t *testing.T) {
	clock := &fakeClock{now: baseTime}
	sched, _, sink, _ := newTestScheduler(clock)

	source := &listSource{}
	feed := &scheduler.Feed{
		Fetch:    source.fetch,
		Sched:    sched,
		Interval: 5 * time.Millisecond,
		Logger:   slog.Default(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	feed.Run(ctx)

	// many polls of the same empty list produce a single recompute
	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Len(t, sink.alerts, 1)
}
