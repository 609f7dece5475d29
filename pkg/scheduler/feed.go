package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wellnesshub/pkg/session"
)

// Feed polls the caller's owned-session list and recomputes the notification
// plan whenever the list changes. Canceling the context tears the scheduler
// down, which cancels every outstanding timer.
type Feed struct {
	Fetch    func(ctx context.Context) ([]*session.Session, error)
	Sched    *Scheduler
	Interval time.Duration
	Logger   *slog.Logger
}

func (f *Feed) Run(ctx context.Context) {
	defer f.Sched.Close()

	last, primed := f.refresh(ctx, "", false)

	ticker := time.NewTicker(f.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			last, primed = f.refresh(ctx, last, primed)
		}
	}
}

// refresh fetches the list and recomputes when its fingerprint moved. A fetch
// failure keeps the previous plan; a flapping store must not disarm alarms.
func (f *Feed) refresh(ctx context.Context, last string, primed bool) (string, bool) {
	sessions, err := f.Fetch(ctx)
	if err != nil {
		f.Logger.Error("session feed fetch failed", "error", err)
		return last, primed
	}

	fp := fingerprint(sessions)
	if primed && fp == last {
		return last, primed
	}

	f.Sched.Recompute(sessions)
	return fp, true
}

func fingerprint(sessions []*session.Session) string {
	var b strings.Builder
	for _, s := range sessions {
		at := int64(0)
		if s.ScheduledAt != nil {
			at = s.ScheduledAt.UnixNano()
		}
		fmt.Fprintf(&b, "%s|%s|%d|%d;", s.ID, s.Status, at, s.UpdatedAt.UnixNano())
	}
	return b.String()
}
